package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andsky/talekeeper/pkg/ledger"
	"github.com/andsky/talekeeper/pkg/session"
	"github.com/andsky/talekeeper/pkg/world"
)

func TestAgentForIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	s := NewServer(world.Default(), ledger.NewMemoryLedger())

	a1, err := s.agentFor(ctx, "alpha")
	require.NoError(t, err)
	a2, err := s.agentFor(ctx, "beta")
	require.NoError(t, err)
	assert.NotSame(t, a1, a2)

	// Same id returns the cached agent.
	again, err := s.agentFor(ctx, "alpha")
	require.NoError(t, err)
	assert.Same(t, a1, again)

	// Empty id falls back to the shared default session.
	d1, err := s.agentFor(ctx, "")
	require.NoError(t, err)
	d2, err := s.agentFor(ctx, defaultSession)
	require.NoError(t, err)
	assert.Same(t, d1, d2)

	// State does not bleed between sessions.
	a1.StartAdventure("Mira")
	a1.PlayerAction("examine_sphere")
	assert.Equal(t, "sphere", a1.State().CurrentScene)
	assert.Equal(t, "intro", a2.State().CurrentScene)
}

func TestSessionPersistence(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	manager := session.NewManager(store)
	registry := world.Default()

	s := NewServer(registry, ledger.NewMemoryLedger(), WithSessionManager(manager))

	agent, err := s.agentFor(ctx, "persisted")
	require.NoError(t, err)
	agent.StartAdventure("Mira")
	agent.PlayerAction("enter_forest")
	s.persist(ctx, "persisted", agent)

	// A second server over the same store resumes where the first left off.
	s2 := NewServer(registry, ledger.NewMemoryLedger(), WithSessionManager(manager))
	resumed, err := s2.agentFor(ctx, "persisted")
	require.NoError(t, err)
	assert.Equal(t, "forest", resumed.State().CurrentScene)
	assert.Equal(t, "Mira", resumed.State().PlayerName)
}
