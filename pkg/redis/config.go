package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                              // ConnectionURL is the server URL, e.g. "redis://:password@localhost:6379/0". Empty disables the remote tier.
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`   // RetryInterval is the delay between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"` // ConnectTimeout bounds all attempts together.
}
