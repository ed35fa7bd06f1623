package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildcost/buildcost-go/core/config"
)

type testConfig struct {
	Host string `env:"CONFIG_TEST_HOST" envDefault:"localhost"`
	Port int    `env:"CONFIG_TEST_PORT" envDefault:"8080"`
}

type requiredConfig struct {
	Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when environment is empty", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("returns cached value on subsequent loads", func(t *testing.T) {
		var first testConfig
		require.NoError(t, config.Load(&first))

		// Changing the environment after the first load must not matter.
		t.Setenv("CONFIG_TEST_HOST", "changed.example.com")

		var second testConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("fails on missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)

		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParseConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on invalid environment", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("does not panic with defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
