package cache

import "errors"

var (
	// ErrInvalidCapacity is returned when a cache is constructed with a capacity below one.
	ErrInvalidCapacity = errors.New("cache capacity must be positive")

	// ErrEmptyStore is returned when the least recently used entry is requested from an empty store.
	ErrEmptyStore = errors.New("node store is empty")

	// ErrInvariantViolation signals that the index and the recency list disagree.
	// It always indicates a bug in the cache, never a caller error.
	ErrInvariantViolation = errors.New("cache invariant violated")

	// ErrLoaderNotSet is returned by Loader when no load function was configured.
	ErrLoaderNotSet = errors.New("cache loader function is not set")

	// ErrLoadFailed wraps errors returned by a Loader's load function.
	ErrLoadFailed = errors.New("failed to load value into cache")
)
