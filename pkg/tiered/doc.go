// Package tiered puts a fixed-capacity LRU in front of a remote key/value
// store such as Redis.
//
//	client, _ := redis.Connect(ctx, redisCfg)
//	users, err := tiered.New(cache.NewLRUCache[string, User](1000),
//	    redis.NewStorage(client),
//	    tiered.WithKeyPrefix("users:"),
//	)
//
//	u, ok, err := users.Get(ctx, "42")
//
// Values are encoded with JSONCodec unless WithCodec says otherwise. Only
// the remote tier expires entries (WithRemoteTTL); the local LRU evicts by
// recency alone.
package tiered
