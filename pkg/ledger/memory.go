package ledger

import (
	"context"
	"sync"

	"github.com/andsky/talekeeper/pkg/domain"
)

// MemoryLedger keeps orders in memory. Safe for concurrent use.
type MemoryLedger struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// Create appends the order.
func (m *MemoryLedger) Create(ctx context.Context, order domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, order)
	return nil
}

// MostRecent returns the newest order, or nil when empty.
func (m *MemoryLedger) MostRecent(ctx context.Context) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.orders) == 0 {
		return nil, nil
	}
	o := m.orders[len(m.orders)-1]
	return &o, nil
}

// ByID returns the order with the given id, or nil when absent.
func (m *MemoryLedger) ByID(ctx context.Context, id string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

// All returns every order in append order.
func (m *MemoryLedger) All(ctx context.Context) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}
