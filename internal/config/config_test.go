package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gamemaster", cfg.Persona)
	assert.Equal(t, "stormglass", cfg.World)
	assert.Equal(t, ".talekeeper/orders.json", cfg.LedgerPath)
	assert.Equal(t, ".talekeeper/sessions", cfg.SessionDir)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TALEKEEPER_PERSONA", "shopkeeper")
	t.Setenv("TALEKEEPER_REDIS_ADDR", "localhost:6379")
	t.Setenv("TALEKEEPER_REDIS_DB", "3")
	t.Setenv("TALEKEEPER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shopkeeper", cfg.Persona)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "debug", cfg.LogLevel)
}
