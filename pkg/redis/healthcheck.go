package redis

import (
	"context"
	"errors"
)

// Healthcheck returns a probe that pings the server behind s.
func Healthcheck(s *Storage) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := s.db.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
