package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dmitrymomot/lrukit/pkg/cache"
	"github.com/dmitrymomot/lrukit/pkg/config"
	"github.com/dmitrymomot/lrukit/pkg/logger"
	"github.com/dmitrymomot/lrukit/pkg/redis"
	"github.com/dmitrymomot/lrukit/pkg/tiered"
)

type appConfig struct {
	Env   string `env:"APP_ENV" envDefault:"development"`
	Cache tiered.Config
	Redis redis.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "lrudemo"))
	logger.SetAsDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.LogAttrs(ctx, slog.LevelError, "demo failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	if err := recencyDemo(logger.ContextWithOperation(ctx, "recency"), log); err != nil {
		return err
	}
	if err := loaderDemo(logger.ContextWithOperation(ctx, "loader"), cfg.Cache.Config, log); err != nil {
		return err
	}
	if cfg.Redis.ConnectionURL == "" {
		log.InfoContext(ctx, "REDIS_URL is not set, skipping the tiered cache demo")
		return nil
	}
	return tieredDemo(logger.ContextWithOperation(ctx, "tiered"), cfg, log)
}

// recencyDemo walks through eviction with a capacity of two.
func recencyDemo(ctx context.Context, log *slog.Logger) error {
	c, err := cache.New(2, cache.WithLogger[int, int](log))
	if err != nil {
		return err
	}

	c.Put(1, 1)
	c.Put(2, 2)
	if v, ok := c.Get(1); ok {
		log.InfoContext(ctx, "get", slog.Int("key", 1), slog.Int("value", v))
	}
	c.Put(3, 3)
	if _, ok := c.Get(2); !ok {
		log.InfoContext(ctx, "get miss", slog.Int("key", 2))
	}
	c.Put(4, 4)
	if _, ok := c.Get(1); !ok {
		log.InfoContext(ctx, "get miss", slog.Int("key", 1))
	}
	log.InfoContext(ctx, "recency order", slog.Any("keys", c.Keys()), slog.Int("len", c.Len()))
	return nil
}

// loaderDemo memoizes a slow computation behind a read-through cache.
func loaderDemo(ctx context.Context, cfg cache.Config, log *slog.Logger) error {
	lru, err := cache.NewFromConfig[int, string](cfg)
	if err != nil {
		return err
	}
	squares := cache.NewLoader(cache.Synchronized(lru), func(ctx context.Context, n int) (string, error) {
		log.DebugContext(ctx, "computing", slog.Int("n", n))
		return strconv.Itoa(n * n), nil
	})

	for _, n := range []int{3, 4, 3} {
		v, err := squares.Get(ctx, n)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "square", slog.Int("n", n), slog.String("value", v))
	}
	return nil
}

func tieredDemo(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	store := redis.NewStorage(client)
	defer func() {
		if err := store.Close(); err != nil {
			log.LogAttrs(ctx, slog.LevelWarn, "closing redis", logger.Error(err))
		}
	}()

	if err := redis.Healthcheck(store)(ctx); err != nil {
		return err
	}

	tc, err := tiered.NewFromConfig[string](cfg.Cache, store, tiered.WithLogger(log))
	if err != nil {
		return err
	}

	for i := range 3 {
		key := fmt.Sprintf("greeting:%d", i)
		if err := tc.Set(ctx, key, "hello "+strconv.Itoa(i)); err != nil {
			return err
		}
	}

	v, ok, err := tc.Get(ctx, "greeting:0")
	switch {
	case err != nil:
		return err
	case !ok:
		return errors.New("greeting:0 is missing from both tiers")
	}
	log.InfoContext(ctx, "tiered get", logger.Key("greeting:0"), slog.String("value", v),
		slog.Any("local_keys", tc.Local().Keys()))
	return nil
}
