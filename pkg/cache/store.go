package cache

const (
	headSlot int32 = 0
	tailSlot int32 = 1
	nilSlot  int32 = -1

	// firstSlot is the first arena index available for real entries.
	firstSlot int32 = 2
)

// node is one arena cell. Links are arena indices, so the recency list
// never holds pointers into itself.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  int32
	next  int32
}

// store is the recency list: a fixed arena with two permanent sentinels.
// head.next is the most recently used entry, tail.prev the least.
// Released cells are chained through next into a free list.
type store[K comparable, V any] struct {
	nodes []node[K, V]
	free  int32
	len   int
}

func newStore[K comparable, V any](capacity int) *store[K, V] {
	s := &store[K, V]{
		nodes: make([]node[K, V], capacity+int(firstSlot)),
	}
	s.reset()
	return s
}

// reset unlinks every entry and rebuilds the free list over all cells.
func (s *store[K, V]) reset() {
	var zero node[K, V]
	for i := range s.nodes {
		s.nodes[i] = zero
	}

	s.nodes[headSlot].prev = nilSlot
	s.nodes[headSlot].next = tailSlot
	s.nodes[tailSlot].prev = headSlot
	s.nodes[tailSlot].next = nilSlot

	s.free = nilSlot
	for i := int32(len(s.nodes)) - 1; i >= firstSlot; i-- {
		s.nodes[i].prev = nilSlot
		s.nodes[i].next = s.free
		s.free = i
	}
	s.len = 0
}

// alloc takes a cell from the free list and fills it. The cell is not linked.
// It returns nilSlot when the arena is exhausted.
func (s *store[K, V]) alloc(key K, value V) int32 {
	i := s.free
	if i == nilSlot {
		return nilSlot
	}
	s.free = s.nodes[i].next
	s.nodes[i] = node[K, V]{key: key, value: value, prev: nilSlot, next: nilSlot}
	return i
}

// release zeroes an unlinked cell and returns it to the free list.
func (s *store[K, V]) release(i int32) {
	s.nodes[i] = node[K, V]{prev: nilSlot, next: s.free}
	s.free = i
}

func (s *store[K, V]) linked(i int32) bool {
	return s.nodes[i].prev != nilSlot
}

// insertFront splices an unlinked cell right after the head sentinel.
func (s *store[K, V]) insertFront(i int32) {
	first := s.nodes[headSlot].next
	s.nodes[i].prev = headSlot
	s.nodes[i].next = first
	s.nodes[first].prev = i
	s.nodes[headSlot].next = i
	s.len++
}

// remove unlinks a cell and joins its neighbours. Removing a cell that is
// not linked is a no-op.
func (s *store[K, V]) remove(i int32) {
	if !s.linked(i) {
		return
	}
	prev, next := s.nodes[i].prev, s.nodes[i].next
	s.nodes[prev].next = next
	s.nodes[next].prev = prev
	s.nodes[i].prev = nilSlot
	s.nodes[i].next = nilSlot
	s.len--
}

func (s *store[K, V]) moveToFront(i int32) {
	if s.nodes[headSlot].next == i {
		return
	}
	s.remove(i)
	s.insertFront(i)
}

// removeTail unlinks and returns the least recently used cell.
func (s *store[K, V]) removeTail() (int32, error) {
	i := s.nodes[tailSlot].prev
	if i == headSlot {
		return nilSlot, ErrEmptyStore
	}
	s.remove(i)
	return i, nil
}

// front returns the most recently used cell, or nilSlot when empty.
func (s *store[K, V]) front() int32 {
	if i := s.nodes[headSlot].next; i != tailSlot {
		return i
	}
	return nilSlot
}

// back returns the least recently used cell, or nilSlot when empty.
func (s *store[K, V]) back() int32 {
	if i := s.nodes[tailSlot].prev; i != headSlot {
		return i
	}
	return nilSlot
}

// walk calls fn for each linked cell from most to least recently used
// until fn returns false.
func (s *store[K, V]) walk(fn func(i int32) bool) {
	for i := s.nodes[headSlot].next; i != tailSlot; i = s.nodes[i].next {
		if !fn(i) {
			return
		}
	}
}
