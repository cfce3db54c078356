package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect establishes a connection to a Redis server using the provided configuration.
// It pings the server up to RetryAttempts times, waiting RetryInterval between
// attempts, and gives up once ConnectTimeout has elapsed.
//
// Returns ErrEmptyConnectionURL, ErrFailedToParseRedisConnString or ErrRedisNotReady.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	var lastErr error
	for attempt := range max(cfg.RetryAttempts, 1) {
		if attempt > 0 {
			timer := time.NewTimer(cfg.RetryInterval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, errors.Join(ErrRedisNotReady, ctx.Err(), lastErr)
			case <-timer.C:
			}
		}

		client := redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}
