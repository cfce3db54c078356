// Package redis connects to Redis and exposes it as the remote tier of a
// tiered cache.
//
// The package wraps github.com/redis/go-redis/v9 and adds:
//
//   - Connect, which pings the server with retries before handing out a client.
//   - Storage, a byte-oriented Get/Set/Delete wrapper satisfying tiered.Store.
//   - Healthcheck, a probe function for liveness or readiness checks.
//
// Config fields can be populated from the environment with the config package:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := redis.NewStorage(client)
//	defer store.Close()
//
// Errors are sentinel values joined with the go-redis error via errors.Join.
package redis
