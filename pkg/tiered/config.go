package tiered

import (
	"time"

	"github.com/dmitrymomot/lrukit/pkg/cache"
)

type Config struct {
	cache.Config

	KeyPrefix string        `env:"CACHE_KEY_PREFIX" envDefault:"lru:"` // KeyPrefix namespaces keys in the remote store.
	RemoteTTL time.Duration `env:"CACHE_REMOTE_TTL" envDefault:"0s"`   // RemoteTTL expires remote copies. Zero keeps them until deleted.
}
