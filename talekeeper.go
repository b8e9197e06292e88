package talekeeper

import (
	"fmt"
	"log/slog"

	"github.com/andsky/talekeeper/pkg/engine"
	"github.com/andsky/talekeeper/pkg/ledger"
	"github.com/andsky/talekeeper/pkg/world"
)

// Version is the library version reported by the CLI and the MCP server.
const Version = "0.3.0"

// Options configures the high-level constructor.
type Options struct {
	// World names a built-in world: "stormglass" (the default) or
	// "fallen-kingdom". Ignored when WorldFile is set.
	World string

	// WorldFile is a YAML world definition. Empty uses a built-in world
	// and the built-in retail catalog.
	WorldFile string

	// LedgerPath is the order ledger document. Empty uses the default
	// location under .talekeeper.
	LedgerPath string

	// Ledger overrides the file ledger entirely (e.g. Redis-backed).
	Ledger ledger.Ledger

	// Persona selects the agent voice.
	Persona engine.Persona

	Logger *slog.Logger
}

// New wires a registry, a ledger, and an agent from the given options.
// It is the one-call entry point for hosts that just want a working agent.
func New(opts Options) (*engine.Agent, *world.Registry, error) {
	registry, ok := world.Builtin(opts.World)
	if !ok {
		return nil, nil, fmt.Errorf("unknown built-in world %q", opts.World)
	}
	if opts.WorldFile != "" {
		var err error
		registry, err = world.Load(opts.WorldFile)
		if err != nil {
			return nil, nil, err
		}
	}

	orders := opts.Ledger
	if orders == nil {
		var ledgerOpts []ledger.FileOption
		if opts.Logger != nil {
			ledgerOpts = append(ledgerOpts, ledger.WithLogger(opts.Logger))
		}
		orders = ledger.NewFileLedger(opts.LedgerPath, ledgerOpts...)
	}

	agentOpts := []engine.AgentOption{}
	if opts.Persona != "" {
		agentOpts = append(agentOpts, engine.WithPersona(opts.Persona))
	}
	if opts.Logger != nil {
		agentOpts = append(agentOpts, engine.WithLogger(opts.Logger))
	}

	return engine.NewAgent(registry, orders, agentOpts...), registry, nil
}
