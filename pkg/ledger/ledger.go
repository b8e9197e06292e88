// Package ledger persists completed orders. The ledger is append-only:
// orders are never mutated or deleted once created.
package ledger

import (
	"context"

	"github.com/andsky/talekeeper/pkg/domain"
)

// Ledger is the process-wide order store. Implementations must serialize
// reads and appends internally; concurrent sessions share one instance.
type Ledger interface {
	// Create appends an order. Persistence is best-effort for file-backed
	// implementations: a write failure is logged, not returned, and the
	// in-memory view stays authoritative.
	Create(ctx context.Context, order domain.Order) error

	// MostRecent returns the newest order, or (nil, nil) when the ledger
	// is empty.
	MostRecent(ctx context.Context) (*domain.Order, error)

	// ByID returns the order with the given id, or (nil, nil) when absent.
	ByID(ctx context.Context, id string) (*domain.Order, error)

	// All returns every order in append order.
	All(ctx context.Context) ([]domain.Order, error)
}
