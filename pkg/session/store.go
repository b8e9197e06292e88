// Package session manages per-conversation state: storage and safe
// concurrent access. One conversation owns one session; tool calls within it
// are sequential, but distinct conversations may share a store.
package session

import (
	"context"
	"sync"

	"github.com/andsky/talekeeper/pkg/domain"
)

// Store persists session state between tool invocations.
type Store interface {
	Save(ctx context.Context, sessionID string, state *domain.State) error
	Load(ctx context.Context, sessionID string) (*domain.State, error)
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context) ([]string, error)
}

// MemoryStore implements Store in memory. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*domain.State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]*domain.State)}
}

// Save stores a copy of the state so the caller cannot mutate the stored
// snapshot through the original pointer.
func (s *MemoryStore) Save(ctx context.Context, sessionID string, state *domain.State) error {
	copied := cloneState(state)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = copied
	return nil
}

// Load retrieves a copy of the stored state.
func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneState(state), nil
}

// Delete removes the state.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns active session IDs.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	return sessions, nil
}

func cloneState(state *domain.State) *domain.State {
	c := *state
	c.History = append([]domain.TransitionRecord{}, state.History...)
	c.Journal = append([]string{}, state.Journal...)
	c.Inventory = append([]string{}, state.Inventory...)
	c.ChoicesMade = append([]string{}, state.ChoicesMade...)
	c.Cart = append([]domain.LineItem{}, state.Cart...)
	c.Orders = append([]domain.Order{}, state.Orders...)
	c.Events = append([]domain.EventRecord{}, state.Events...)
	c.NamedNPCs = make(map[string]string, len(state.NamedNPCs))
	for k, v := range state.NamedNPCs {
		c.NamedNPCs[k] = v
	}
	return &c
}
