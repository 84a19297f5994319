package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "test")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "foodItems.db", cfg.SQLitePath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.RedisHost)
}

func TestLoadConfigPostgres(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "fresh")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "db.internal", cfg.DBHost)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown DB_DRIVER")
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
