package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrukit/pkg/redis"
	"github.com/dmitrymomot/lrukit/pkg/tiered"
)

var _ tiered.Store = (*redis.Storage)(nil)

func TestConnect_ConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	_, err = redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost"})
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

func TestConnect_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := redis.Connect(ctx, redis.Config{
		ConnectionURL: "redis://127.0.0.1:1/0",
		RetryAttempts: 3,
		RetryInterval: time.Hour,
	})
	assert.ErrorIs(t, err, redis.ErrRedisNotReady)
}

func TestHealthcheck_Unreachable(t *testing.T) {
	t.Parallel()

	store := redis.NewStorage(goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))
	t.Cleanup(func() { _ = store.Close() })

	err := redis.Healthcheck(store)(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)

	_, _, err = store.Get(context.Background(), "k")
	assert.Error(t, err, "transport errors are not reported as misses")
}
