package cache

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"
)

// LoadFunc fetches the value for a key that is not cached.
type LoadFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Loader is a read-through layer over LRUCache. Concurrent misses for the
// same key share a single call to the load function.
type Loader[K comparable, V any] struct {
	cache *LRUCache[K, V]
	load  LoadFunc[K, V]
	group singleflight.Group
}

// NewLoader creates a read-through loader backed by c.
func NewLoader[K comparable, V any](c *LRUCache[K, V], load LoadFunc[K, V]) *Loader[K, V] {
	return &Loader[K, V]{cache: c, load: load}
}

// Get returns the cached value for key, loading and caching it on a miss.
// Failed loads are not cached.
//
// The load runs on a context detached from the caller's cancellation, so one
// caller giving up does not fail the others waiting on the same key. Get
// itself returns ctx.Err() as soon as ctx is done.
func (l *Loader[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := l.cache.Get(key); ok {
		return v, nil
	}

	var zero V
	if l.load == nil {
		return zero, ErrLoaderNotSet
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(flightKey(key), func() (any, error) {
		// Another flight may have filled the cache while this one waited.
		if v, ok := l.cache.Peek(key); ok {
			return v, nil
		}
		v, err := l.load(loadCtx, key)
		if err != nil {
			return nil, err
		}
		l.cache.Put(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, errors.Join(ErrLoadFailed, res.Err)
		}
		v, _ := res.Val.(V)
		return v, nil
	}
}

// Forget drops key from the cache so the next Get reloads it.
func (l *Loader[K, V]) Forget(key K) {
	l.cache.Remove(key)
}

// Cache returns the underlying cache.
func (l *Loader[K, V]) Cache() *LRUCache[K, V] {
	return l.cache
}

// flightKey maps a key to the string singleflight groups calls by.
// The Go-syntax form quotes strings and names struct fields, so keys that
// differ only in how their fields split a string stay distinct.
func flightKey[K comparable](key K) string {
	return fmt.Sprintf("%#v", key)
}
