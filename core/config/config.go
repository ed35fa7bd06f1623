package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParseConfig is returned when environment variables cannot be parsed
// into the target configuration struct.
var ErrParseConfig = errors.New("failed to parse config from environment")

var (
	cache  sync.Map // reflect.Type -> parsed config value
	dotenv sync.Once
)

// Load parses environment variables into cfg. The first call for a given
// type reads the environment; subsequent calls return the cached value.
// A .env file in the working directory is loaded once, if present.
func Load[T any](cfg *T) error {
	dotenv.Do(func() {
		// Missing .env is the normal case outside local development.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseConfig, err)
	}

	cache.Store(key, *cfg)
	return nil
}

// MustLoad is Load that panics on failure. Intended for application startup
// where a broken environment should stop the process immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
