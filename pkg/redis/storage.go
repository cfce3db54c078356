package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is a byte-oriented key/value store on top of a Redis client.
// It serves as the remote tier of a tiered cache.
type Storage struct {
	db redis.UniversalClient
}

// NewStorage wraps an existing client. Closing the Storage closes the client.
func NewStorage(client redis.UniversalClient) *Storage {
	return &Storage{db: client}
}

// Get returns the value for key. A missing key yields (nil, false, nil).
func (s *Storage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.db.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores val under key. Zero ttl means no expiration.
func (s *Storage) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return s.db.Set(ctx, key, val, ttl).Err()
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.db.Del(ctx, key).Err()
}

// Close terminates the Redis connection.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Conn returns the underlying Redis client for advanced operations.
func (s *Storage) Conn() redis.UniversalClient {
	return s.db
}
