package cache

// Config holds cache settings that can be populated from the environment
// with the config package.
type Config struct {
	Capacity int `env:"CACHE_CAPACITY" envDefault:"1024"` // Capacity is the maximum number of cached entries.
}

// NewFromConfig creates an LRU sized by cfg.
func NewFromConfig[K comparable, V any](cfg Config, opts ...Option[K, V]) (*LRU[K, V], error) {
	return New(cfg.Capacity, opts...)
}
