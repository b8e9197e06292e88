package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andsky/talekeeper/internal/config"
	"github.com/andsky/talekeeper/internal/logging"
	"github.com/andsky/talekeeper/pkg/engine"
	"github.com/andsky/talekeeper/pkg/ledger"
	"github.com/andsky/talekeeper/pkg/world"
)

// appEnv bundles everything a command needs to run the agent.
type appEnv struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *world.Registry
	orders   ledger.Ledger
	persona  engine.Persona
}

// buildEnv loads config, applies flag overrides, and wires the shared
// components. Flags win over environment values.
func buildEnv(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if worldFile, _ := cmd.Flags().GetString("world"); worldFile != "" {
		cfg.WorldFile = worldFile
	}
	if worldName, _ := cmd.Flags().GetString("world-name"); worldName != "" {
		cfg.World = worldName
	}
	if persona, _ := cmd.Flags().GetString("persona"); persona != "" {
		cfg.Persona = persona
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	registry, ok := world.Builtin(cfg.World)
	if !ok {
		return nil, fmt.Errorf("unknown built-in world %q (try stormglass or fallen-kingdom)", cfg.World)
	}
	if cfg.WorldFile != "" {
		registry, err = world.Load(cfg.WorldFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load world: %w", err)
		}
	}

	var orders ledger.Ledger
	if cfg.RedisAddr != "" {
		orders = ledger.NewRedisLedger(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		logger.Info("using redis order ledger", "addr", cfg.RedisAddr)
	} else {
		orders = ledger.NewFileLedger(cfg.LedgerPath, ledger.WithLogger(logger))
	}

	return &appEnv{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		orders:   orders,
		persona:  engine.Persona(cfg.Persona),
	}, nil
}
