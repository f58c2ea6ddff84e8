package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/brokerkit/pkg/config"
)

type brokerConfig struct {
	Addr      string        `env:"TEST_BROKER_ADDR" envDefault:":8080"`
	KeepAlive time.Duration `env:"TEST_BROKER_KEEPALIVE" envDefault:"15s"`
	Debug     bool          `env:"TEST_BROKER_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is unset", func(t *testing.T) {
		var cfg brokerConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 15*time.Second, cfg.KeepAlive)
		assert.False(t, cfg.Debug)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_BROKER_ADDR", ":9090")
		t.Setenv("TEST_BROKER_KEEPALIVE", "1m")
		t.Setenv("TEST_BROKER_DEBUG", "true")

		var cfg brokerConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, time.Minute, cfg.KeepAlive)
		assert.True(t, cfg.Debug)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[brokerConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg brokerConfig
			config.MustLoad(&cfg)
		})
	})
}
