// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv, which reads .env files into the process
// environment, and github.com/caarlos0/env/v11, which parses the environment
// into a struct using field tags.
//
//	type Config struct {
//	    Capacity int `env:"CACHE_CAPACITY" envDefault:"1024"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load reads the default .env file once, if present, and caches each parsed
// type for the lifetime of the process. Use LoadEnv for other files and
// ResetCache in tests that change the environment between loads.
//
// Errors are comparable with errors.Is: ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer.
package config
