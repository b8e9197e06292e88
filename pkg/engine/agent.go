// Package engine is the transition/action engine behind the tool surface.
// Given the session state and a resolved entity it computes the next state,
// applies side effects, and renders the text the conversation driver speaks.
package engine

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andsky/talekeeper/internal/logging"
	"github.com/andsky/talekeeper/pkg/domain"
	"github.com/andsky/talekeeper/pkg/ledger"
	"github.com/andsky/talekeeper/pkg/world"
)

// Persona selects the voice of the rendered text. Both tool sets are always
// available; the persona only shapes greetings and framing lines.
type Persona string

const (
	// PersonaGameMaster narrates the adventure.
	PersonaGameMaster Persona = "gamemaster"
	// PersonaShopkeeper runs the storefront.
	PersonaShopkeeper Persona = "shopkeeper"
)

// catalogLimit caps how many matches showCatalog reads out. Four keeps a
// spoken listing short enough to remember.
const catalogLimit = 4

// Agent owns one conversation's state and exposes the tool operations.
// Tool calls are strictly sequential within a conversation; the shared
// ledger handles its own locking.
type Agent struct {
	registry *world.Registry
	orders   ledger.Ledger
	state    *domain.State
	persona  Persona
	logger   *slog.Logger

	now   func() time.Time
	newID func() string
}

// AgentOption configures the Agent.
type AgentOption func(*Agent)

// WithPersona sets the agent persona.
func WithPersona(p Persona) AgentOption {
	return func(a *Agent) {
		a.persona = p
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) AgentOption {
	return func(a *Agent) {
		a.logger = logger
	}
}

// WithClock injects the time source. Used by tests for deterministic
// history timestamps.
func WithClock(now func() time.Time) AgentOption {
	return func(a *Agent) {
		a.now = now
	}
}

// WithIDGenerator injects the token source for session and order ids.
func WithIDGenerator(newID func() string) AgentOption {
	return func(a *Agent) {
		a.newID = newID
	}
}

// WithState adopts an existing session state instead of starting fresh,
// e.g. one loaded from a session store.
func WithState(state *domain.State) AgentOption {
	return func(a *Agent) {
		a.state = state
	}
}

// NewAgent creates an agent bound to a registry and an order ledger.
func NewAgent(registry *world.Registry, orders ledger.Ledger, opts ...AgentOption) *Agent {
	a := &Agent{
		registry: registry,
		orders:   orders,
		persona:  PersonaGameMaster,
		logger:   logging.NewNop(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    defaultToken,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.state == nil {
		a.state = domain.NewState(a.newID(), registry.StartScene(), a.now())
	}
	return a
}

// defaultToken returns a short random token, enough to make collisions a
// birthday-bound improbability rather than something to handle.
func defaultToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// State exposes the session state for persistence by the host.
func (a *Agent) State() *domain.State {
	return a.state
}

// Registry exposes the static world registry.
func (a *Agent) Registry() *world.Registry {
	return a.registry
}

func (a *Agent) orderID() string {
	return "ORD-" + strings.ToUpper(a.newID())
}
