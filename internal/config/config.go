// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries everything the worker process needs. Values come from the
// environment, optionally seeded from a .env.local file.
type Config struct {
	// Persona selects the agent voice: "gamemaster" or "shopkeeper".
	Persona string `env:"TALEKEEPER_PERSONA" envDefault:"gamemaster"`

	// World names a built-in world: "stormglass" or "fallen-kingdom".
	// Ignored when WorldFile is set.
	World string `env:"TALEKEEPER_WORLD" envDefault:"stormglass"`

	// WorldFile points at a YAML world definition. Empty uses the
	// built-in world and catalog.
	WorldFile string `env:"TALEKEEPER_WORLD_FILE"`

	// LedgerPath is the order ledger JSON document.
	LedgerPath string `env:"TALEKEEPER_LEDGER_PATH" envDefault:".talekeeper/orders.json"`

	// SessionDir is where session state files live.
	SessionDir string `env:"TALEKEEPER_SESSION_DIR" envDefault:".talekeeper/sessions"`

	// RedisAddr switches the ledger to Redis when set (host:port).
	RedisAddr     string `env:"TALEKEEPER_REDIS_ADDR"`
	RedisPassword string `env:"TALEKEEPER_REDIS_PASSWORD"`
	RedisDB       int    `env:"TALEKEEPER_REDIS_DB" envDefault:"0"`

	// HTTPAddr is the REST adapter bind address.
	HTTPAddr string `env:"TALEKEEPER_HTTP_ADDR" envDefault:":8080"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"TALEKEEPER_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env.local if present, then parses the environment.
func Load() (*Config, error) {
	// Missing .env.local is the normal case in production.
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
