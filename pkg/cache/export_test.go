package cache

// CheckInvariants exposes the invariant walk to external tests.
func CheckInvariants[K comparable, V any](c *LRU[K, V]) error {
	return c.checkInvariants()
}

const DebugInvariants = debugInvariants
