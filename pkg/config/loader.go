package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu     sync.Mutex
	loaded = make(map[reflect.Type]any)

	defaultEnvLoaded sync.Once
)

// LoadEnv loads the given .env files into the process environment.
// Variables that are already set are not overridden. Without arguments it
// loads ".env" from the working directory and ignores a missing file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses environment variables into v using `env` struct tags.
// The default .env file is loaded once before the first parse. Each config
// type is parsed once; later calls copy the cached value into v.
//
//	var cfg cache.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() { _ = LoadEnv() })

	typ := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[typ]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	loaded[typ] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every parsed configuration. Intended for tests.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	clear(loaded)
}
