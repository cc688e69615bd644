package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "STORE_DRIVER", "POSTGRES_HOST", "POSTGRES_PORT", "RATE_LIMIT_PER_MINUTE", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("POSTGRES_USER", "poll")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "polls")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("RATE_LIMIT_BURST", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.Equal(t, 1, cfg.RateLimitBurst)
	assert.Equal(t, "postgres://poll:secret@db:6543/polls?sslmode=disable", cfg.DSN())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		_, err := Load()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})

	t.Run("rate limit", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
		_, err := Load()
		assert.ErrorContains(t, err, "RATE_LIMIT_PER_MINUTE")
	})
}
