// Package cache provides a generic, fixed-capacity LRU (Least Recently Used)
// cache with constant-time reads and writes.
//
// The cache evicts the least recently used entry whenever inserting a new
// key would exceed its capacity. Both Get and Put count as a use.
//
// # Layout
//
// Entries live in a preallocated arena and link to their neighbours by
// arena index rather than by pointer. Two permanent sentinel cells bound the
// recency list, so splicing never has to special-case an empty list or the
// ends of it. A map from key to arena index completes the structure. An
// evicted cell is reused by the insert that caused the eviction, so a full
// cache does not allocate on Put.
//
// # Usage
//
//	c, err := cache.New[string, int](2)
//	if err != nil {
//		// capacity < 1
//	}
//
//	c.Put("a", 1)
//	c.Put("b", 2)
//	c.Get("a")    // "a" becomes most recently used
//	c.Put("c", 3) // evicts "b"
//
//	if _, ok := c.Get("b"); !ok {
//		// miss: recency order is untouched
//	}
//
// Peek, Contains and Oldest read without touching recency. Keys lists
// entries from most to least recently used.
//
// # Concurrency
//
// LRU is not safe for concurrent use. LRUCache wraps one in a single mutex.
// Get takes the exclusive lock because it reorders the list:
//
//	shared := cache.NewLRUCache[string, *sql.DB](10)
//	shared.SetEvictCallback(func(dsn string, db *sql.DB) {
//		db.Close()
//	})
//
// # Read-through
//
// Loader fills an LRUCache on misses and collapses concurrent misses for the
// same key into one load:
//
//	users := cache.NewLoader(cache.NewLRUCache[string, *User](1000),
//		func(ctx context.Context, id string) (*User, error) {
//			return repo.FindUser(ctx, id)
//		})
//	u, err := users.Get(ctx, "42")
//
// # Errors
//
// New returns ErrInvalidCapacity for a capacity below one; MustNew and
// NewLRUCache panic instead. A miss is never an error.
//
// # Debug builds
//
// Building with the lrudebug tag verifies every list and index invariant
// after each mutation and panics with ErrInvariantViolation on the first
// inconsistency. The check is O(n); do not ship it.
package cache
