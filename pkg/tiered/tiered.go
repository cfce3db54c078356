package tiered

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/lrukit/pkg/cache"
	"github.com/dmitrymomot/lrukit/pkg/logger"
)

// Cache keeps hot values in a local LRU in front of a remote Store.
// Reads try the local tier first and promote remote hits into it.
// Writes go to the remote store first and reach the local tier only when the
// remote write succeeds. Local evictions never touch the remote store.
type Cache[V any] struct {
	local  *cache.LRUCache[string, V]
	remote Store
	codec  Codec
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// Option configures a tiered Cache.
type Option func(*options)

type options struct {
	codec  Codec
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// WithCodec replaces the default JSON codec. Nil codecs are ignored.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithKeyPrefix namespaces every remote key.
func WithKeyPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithRemoteTTL sets the expiration of values written to the remote store.
func WithRemoteTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a tiered cache over local and remote.
func New[V any](local *cache.LRUCache[string, V], remote Store, opts ...Option) (*Cache[V], error) {
	if remote == nil {
		return nil, ErrNilStore
	}

	o := options{codec: JSONCodec{}, logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache[V]{
		local:  local,
		remote: remote,
		codec:  o.codec,
		prefix: o.prefix,
		ttl:    o.ttl,
		logger: o.logger,
	}, nil
}

// NewFromConfig builds the local LRU from cfg and applies its remote settings.
// Options passed explicitly override cfg.
func NewFromConfig[V any](cfg Config, remote Store, opts ...Option) (*Cache[V], error) {
	lru, err := cache.NewFromConfig[string, V](cfg.Config)
	if err != nil {
		return nil, err
	}
	base := []Option{WithKeyPrefix(cfg.KeyPrefix), WithRemoteTTL(cfg.RemoteTTL)}
	return New(cache.Synchronized(lru), remote, append(base, opts...)...)
}

// Get returns the value for key. A miss in both tiers returns false and a nil error.
func (c *Cache[V]) Get(ctx context.Context, key string) (V, bool, error) {
	if v, ok := c.local.Get(key); ok {
		c.logHit(ctx, key, "local")
		return v, true, nil
	}

	var zero V
	data, ok, err := c.remote.Get(ctx, c.prefix+key)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "remote cache read failed",
			logger.Key(key), logger.Tier("remote"), logger.Error(err))
		return zero, false, errors.Join(ErrStore, err)
	}
	if !ok {
		return zero, false, nil
	}

	var v V
	if err := c.codec.Unmarshal(data, &v); err != nil {
		return zero, false, errors.Join(ErrDecode, err)
	}
	c.local.Put(key, v)
	c.logHit(ctx, key, "remote")
	return v, true, nil
}

func (c *Cache[V]) logHit(ctx context.Context, key, tier string) {
	if c.logger.Enabled(ctx, slog.LevelDebug) {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "cache hit", logger.Key(key), logger.Tier(tier))
	}
}

// Set writes value to the remote store, then to the local tier.
func (c *Cache[V]) Set(ctx context.Context, key string, value V) error {
	data, err := c.codec.Marshal(value)
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	if err := c.remote.Set(ctx, c.prefix+key, data, c.ttl); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "remote cache write failed",
			logger.Key(key), logger.Tier("remote"), logger.Error(err))
		return errors.Join(ErrStore, err)
	}
	c.local.Put(key, value)
	return nil
}

// Delete removes key from both tiers.
func (c *Cache[V]) Delete(ctx context.Context, key string) error {
	c.local.Remove(key)
	if err := c.remote.Delete(ctx, c.prefix+key); err != nil {
		return errors.Join(ErrStore, err)
	}
	return nil
}

// Local returns the in-process tier.
func (c *Cache[V]) Local() *cache.LRUCache[string, V] {
	return c.local
}
