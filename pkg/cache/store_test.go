package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeOrder(s *store[string, int]) []string {
	var keys []string
	s.walk(func(i int32) bool {
		keys = append(keys, s.nodes[i].key)
		return true
	})
	return keys
}

func fill(t *testing.T, s *store[string, int], keys ...string) map[string]int32 {
	t.Helper()
	slots := make(map[string]int32, len(keys))
	for _, k := range keys {
		i := s.alloc(k, 0)
		require.NotEqual(t, nilSlot, i)
		s.insertFront(i)
		slots[k] = i
	}
	return slots
}

func TestStore_Empty(t *testing.T) {
	t.Parallel()
	s := newStore[string, int](2)

	assert.Equal(t, 0, s.len)
	assert.Equal(t, nilSlot, s.front())
	assert.Equal(t, nilSlot, s.back())
	assert.Equal(t, tailSlot, s.nodes[headSlot].next)
	assert.Equal(t, headSlot, s.nodes[tailSlot].prev)

	i, err := s.removeTail()
	assert.ErrorIs(t, err, ErrEmptyStore)
	assert.Equal(t, nilSlot, i)
}

func TestStore_InsertFront(t *testing.T) {
	t.Parallel()
	s := newStore[string, int](3)
	fill(t, s, "a", "b", "c")

	assert.Equal(t, []string{"c", "b", "a"}, storeOrder(s))
	assert.Equal(t, 3, s.len)
	assert.Equal(t, "c", s.nodes[s.front()].key)
	assert.Equal(t, "a", s.nodes[s.back()].key)
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()
	s := newStore[string, int](3)
	slots := fill(t, s, "a", "b", "c")

	s.remove(slots["b"])
	assert.Equal(t, []string{"c", "a"}, storeOrder(s))
	assert.Equal(t, 2, s.len)
	assert.Equal(t, nilSlot, s.nodes[slots["b"]].prev)
	assert.Equal(t, nilSlot, s.nodes[slots["b"]].next)

	// Unlinked cells are ignored.
	s.remove(slots["b"])
	assert.Equal(t, 2, s.len)
	assert.Equal(t, []string{"c", "a"}, storeOrder(s))
}

func TestStore_MoveToFront(t *testing.T) {
	t.Parallel()
	s := newStore[string, int](3)
	slots := fill(t, s, "a", "b", "c")

	s.moveToFront(slots["a"])
	assert.Equal(t, []string{"a", "c", "b"}, storeOrder(s))

	s.moveToFront(slots["a"])
	assert.Equal(t, []string{"a", "c", "b"}, storeOrder(s))
	assert.Equal(t, 3, s.len)
}

func TestStore_RemoveTail(t *testing.T) {
	t.Parallel()
	s := newStore[string, int](2)
	slots := fill(t, s, "a", "b")

	i, err := s.removeTail()
	require.NoError(t, err)
	assert.Equal(t, slots["a"], i)
	assert.Equal(t, []string{"b"}, storeOrder(s))

	i, err = s.removeTail()
	require.NoError(t, err)
	assert.Equal(t, slots["b"], i)
	assert.Empty(t, storeOrder(s))

	_, err = s.removeTail()
	assert.ErrorIs(t, err, ErrEmptyStore)
}

func TestStore_AllocRelease(t *testing.T) {
	t.Parallel()
	s := newStore[string, int](2)

	a := s.alloc("a", 1)
	b := s.alloc("b", 2)
	assert.Equal(t, nilSlot, s.alloc("c", 3), "arena is exhausted")

	s.release(a)
	assert.Zero(t, s.nodes[a].key)

	c := s.alloc("c", 3)
	assert.Equal(t, a, c, "released cell is reused")
	assert.NotEqual(t, b, c)
}

func TestStore_Reset(t *testing.T) {
	t.Parallel()
	s := newStore[string, int](2)
	fill(t, s, "a", "b")

	s.reset()
	assert.Equal(t, 0, s.len)
	assert.Empty(t, storeOrder(s))
	fill(t, s, "c", "d")
	assert.Equal(t, []string{"d", "c"}, storeOrder(s))
}
