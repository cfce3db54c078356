package cache

import (
	"errors"
	"fmt"
)

// assertInvariants panics on a broken cache when built with the lrudebug tag.
// In regular builds the check compiles away.
func (c *LRU[K, V]) assertInvariants() {
	if !debugInvariants {
		return
	}
	if err := c.checkInvariants(); err != nil {
		panic(err)
	}
}

// checkInvariants walks the recency list in both directions and compares it
// with the index. It is O(n) and meant for tests and debug builds.
func (c *LRU[K, V]) checkInvariants() error {
	if len(c.index) > c.capacity {
		return errors.Join(ErrInvariantViolation,
			fmt.Errorf("index size %d exceeds capacity %d", len(c.index), c.capacity))
	}
	if c.list.len != len(c.index) {
		return errors.Join(ErrInvariantViolation,
			fmt.Errorf("list length %d does not match index size %d", c.list.len, len(c.index)))
	}

	seen := make(map[int32]struct{}, len(c.index))
	prev := headSlot
	for i := c.list.nodes[headSlot].next; i != tailSlot; i = c.list.nodes[i].next {
		if i < firstSlot || int(i) >= len(c.list.nodes) {
			return errors.Join(ErrInvariantViolation, fmt.Errorf("slot %d out of range", i))
		}
		if _, dup := seen[i]; dup {
			return errors.Join(ErrInvariantViolation, fmt.Errorf("slot %d linked twice", i))
		}
		seen[i] = struct{}{}

		n := c.list.nodes[i]
		if n.prev != prev {
			return errors.Join(ErrInvariantViolation,
				fmt.Errorf("slot %d prev is %d, want %d", i, n.prev, prev))
		}
		if at, ok := c.index[n.key]; !ok || at != i {
			return errors.Join(ErrInvariantViolation,
				fmt.Errorf("linked key %v is not indexed at slot %d", n.key, i))
		}
		prev = i
	}
	if c.list.nodes[tailSlot].prev != prev {
		return errors.Join(ErrInvariantViolation, fmt.Errorf("tail prev is %d, want %d", c.list.nodes[tailSlot].prev, prev))
	}
	if len(seen) != len(c.index) {
		return errors.Join(ErrInvariantViolation,
			fmt.Errorf("%d linked entries but %d indexed keys", len(seen), len(c.index)))
	}
	return nil
}
