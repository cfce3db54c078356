package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrukit/pkg/cache"
)

func TestLRUCache_Put(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](3)

	old, existed := c.Put("a", 1)
	assert.False(t, existed)
	assert.Zero(t, old)

	old, existed = c.Put("a", 2)
	assert.True(t, existed)
	assert.Equal(t, 1, old)

	val, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, val)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 3, c.Cap())
}

func TestLRUCache_EvictionCallback(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](2)

	evicted := make(map[string]int)
	c.SetEvictCallback(func(key string, value int) {
		evicted[key] = value
	})

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")

	c.Put("c", 3)
	assert.Equal(t, 2, evicted["b"], "b is least recently used after reading a")

	c.Clear()
	assert.Equal(t, 1, evicted["a"])
	assert.Equal(t, 3, evicted["c"])
	assert.Equal(t, 0, c.Len())
}

func TestLRUCache_ReadsWithoutPromotion(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Peek("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, c.Contains("a"))
	assert.Equal(t, []string{"b", "a"}, c.Keys())

	v, ok = c.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, c.Contains("a"))
}

func TestLRUCache_PanicsOnInvalidCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.NewLRUCache[string, int](0) })
	assert.Panics(t, func() { cache.NewLRUCache[string, int](-1) })
}

func TestSynchronized(t *testing.T) {
	t.Parallel()

	lru := cache.MustNew[string, int](2)
	lru.Put("a", 1)

	c := cache.Synchronized(lru)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestLRUCache_Concurrent(t *testing.T) {
	t.Parallel()

	const capacity = 64
	lru := cache.MustNew[int, int](capacity)
	c := cache.Synchronized(lru)

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := range 1000 {
				key := (worker*31 + i) % 200
				switch i % 3 {
				case 0:
					c.Put(key, i)
				case 1:
					c.Get(key)
				default:
					c.Remove(key)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), capacity)
	require.NoError(t, cache.CheckInvariants(lru))
}

func BenchmarkLRUCache_Mixed(b *testing.B) {
	c := cache.NewLRUCache[int, int](1000)

	b.ResetTimer()
	for i := range b.N {
		if i%2 == 0 {
			c.Put(i%2000, i)
		} else {
			c.Get(i % 2000)
		}
	}
}
