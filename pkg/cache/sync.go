package cache

import "sync"

// LRUCache is a thread-safe LRU cache.
// A single mutex guards the whole LRU: Get reorders the recency list, so
// reads need the exclusive lock as well.
type LRUCache[K comparable, V any] struct {
	mu  sync.Mutex
	lru *LRU[K, V]
}

// NewLRUCache creates a new thread-safe LRU cache with the specified capacity.
// The capacity must be positive, otherwise it panics.
func NewLRUCache[K comparable, V any](capacity int, opts ...Option[K, V]) *LRUCache[K, V] {
	return &LRUCache[K, V]{lru: MustNew(capacity, opts...)}
}

// Synchronized wraps an existing LRU. The caller must stop using lru directly.
func Synchronized[K comparable, V any](lru *LRU[K, V]) *LRUCache[K, V] {
	return &LRUCache[K, V]{lru: lru}
}

// SetEvictCallback sets a callback function that is called when items are evicted.
// The callback runs with the cache lock held and must not call back into the cache.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.onEvict = fn
}

// Get retrieves a value from the cache and marks it as recently used.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Get(key)
}

// Put adds or updates a value in the cache.
// If the cache is at capacity, the least recently used item is evicted.
// Returns the previous value if it existed, and a boolean indicating if it existed.
func (c *LRUCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, existed := c.lru.Peek(key)
	c.lru.Put(key, value)
	return old, existed
}

// Peek retrieves a value without marking it as recently used.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Peek(key)
}

func (c *LRUCache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Contains(key)
}

// Remove removes an item from the cache.
// Returns the removed value and true if it existed, zero value and false otherwise.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Remove(key)
}

// Keys returns a snapshot of the keys from most to least recently used.
func (c *LRUCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Keys()
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *LRUCache[K, V]) Cap() int {
	return c.lru.Cap()
}

// Clear removes all items from the cache.
// If an evict callback is set, it's called for each item.
func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Clear()
}
