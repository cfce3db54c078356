package cache

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/lrukit/pkg/logger"
)

// LRU is a fixed-capacity least recently used cache.
// Get and Put run in constant time; when a new key would exceed the
// capacity, the least recently used entry is evicted first.
//
// LRU is not safe for concurrent use. Wrap it with LRUCache when it is
// shared between goroutines.
type LRU[K comparable, V any] struct {
	capacity int
	index    map[K]int32
	list     *store[K, V]
	onEvict  func(key K, value V)
	logger   *slog.Logger
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback registers fn to be called with every entry evicted
// for capacity or dropped by Clear. Explicit Remove does not call it.
// fn runs once the cache is consistent again, so it may use the cache.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRU[K, V]) {
		c.onEvict = fn
	}
}

// WithLogger sets the logger used to report evictions at debug level.
// Nil loggers are ignored.
func WithLogger[K comparable, V any](l *slog.Logger) Option[K, V] {
	return func(c *LRU[K, V]) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an LRU holding at most capacity entries.
// It returns ErrInvalidCapacity when capacity is below one.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*LRU[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	c := &LRU[K, V]{
		capacity: capacity,
		index:    make(map[K]int32, capacity),
		list:     newStore[K, V](capacity),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	c, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value stored under key and marks it as most recently used.
// A miss returns the zero value and false and leaves the recency order untouched.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.list.moveToFront(i)
	c.assertInvariants()
	return c.list.nodes[i].value, true
}

// Put stores value under key and marks it as most recently used.
// An existing key is updated in place and the size does not change.
// A new key evicts the least recently used entry when the cache is full.
// Put reports whether an eviction happened.
func (c *LRU[K, V]) Put(key K, value V) bool {
	if i, ok := c.index[key]; ok {
		c.list.nodes[i].value = value
		c.list.moveToFront(i)
		c.assertInvariants()
		return false
	}

	var (
		old     node[K, V]
		evicted bool
	)
	if len(c.index) >= c.capacity {
		old, evicted = c.evictOldest()
	}

	i := c.list.alloc(key, value)
	c.index[key] = i
	c.list.insertFront(i)
	c.assertInvariants()

	if evicted && c.onEvict != nil {
		c.onEvict(old.key, old.value)
	}
	return evicted
}

// Peek returns the value stored under key without updating its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.list.nodes[i].value, true
}

// Contains reports whether key is cached without updating its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Remove deletes key and returns its value.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	value := c.list.nodes[i].value
	c.list.remove(i)
	delete(c.index, key)
	c.list.release(i)
	c.assertInvariants()
	return value, true
}

// Oldest returns the least recently used entry without updating its recency.
func (c *LRU[K, V]) Oldest() (K, V, bool) {
	i := c.list.back()
	if i == nilSlot {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := &c.list.nodes[i]
	return n.key, n.value, true
}

// Keys returns the cached keys ordered from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	c.list.walk(func(i int32) bool {
		keys = append(keys, c.list.nodes[i].key)
		return true
	})
	return keys
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return len(c.index)
}

// IsEmpty reports whether the cache holds no entries.
func (c *LRU[K, V]) IsEmpty() bool {
	return len(c.index) == 0
}

// Cap returns the capacity fixed at construction.
func (c *LRU[K, V]) Cap() int {
	return c.capacity
}

// Clear drops every entry. The evict callback, if any, is called for each
// entry from least to most recently used after the cache is emptied.
func (c *LRU[K, V]) Clear() {
	var dropped []node[K, V]
	if c.onEvict != nil {
		dropped = make([]node[K, V], 0, len(c.index))
		for i := c.list.back(); i != nilSlot && i != headSlot; i = c.list.nodes[i].prev {
			dropped = append(dropped, c.list.nodes[i])
		}
	}
	clear(c.index)
	c.list.reset()
	c.assertInvariants()

	for _, n := range dropped {
		c.onEvict(n.key, n.value)
	}
}

// evictOldest unlinks the tail entry and releases its cell for reuse.
// It returns a copy of the evicted node.
func (c *LRU[K, V]) evictOldest() (node[K, V], bool) {
	i, err := c.list.removeTail()
	if err != nil {
		return node[K, V]{}, false
	}

	n := c.list.nodes[i]
	delete(c.index, n.key)
	c.list.release(i)

	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		c.logger.LogAttrs(context.Background(), slog.LevelDebug, "cache entry evicted",
			logger.Key(n.key),
			logger.Capacity(c.capacity),
		)
	}
	return n, true
}
