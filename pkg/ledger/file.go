package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/andsky/talekeeper/internal/logging"
	"github.com/andsky/talekeeper/pkg/domain"
)

// FileLedger persists orders as a single JSON array document. Every append
// reads the in-memory view and rewrites the whole file; the document layout
// is the external contract, so no streaming or partial writes.
//
// The in-memory slice is authoritative: a corrupt or absent file degrades to
// an empty ledger on load, and a failed write is logged and swallowed.
type FileLedger struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	orders []domain.Order
}

// FileOption configures the FileLedger.
type FileOption func(*FileLedger)

// WithLogger sets the logger used for deferred persistence errors.
func WithLogger(logger *slog.Logger) FileOption {
	return func(f *FileLedger) {
		f.logger = logger
	}
}

// NewFileLedger creates a ledger backed by the JSON document at path and
// loads any existing orders. If path is empty, it defaults to
// ".talekeeper/orders.json".
func NewFileLedger(path string, opts ...FileOption) *FileLedger {
	if path == "" {
		path = filepath.Join(".talekeeper", "orders.json")
	}
	f := &FileLedger{
		path:   path,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.load()
	return f
}

func (f *FileLedger) load() {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.logger.Warn("failed to read order ledger, starting empty", "path", f.path, "err", err)
		}
		f.orders = []domain.Order{}
		return
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		f.logger.Warn("order ledger is corrupt, starting empty", "path", f.path, "err", err)
		f.orders = []domain.Order{}
		return
	}
	f.orders = orders
}

// Create appends the order and rewrites the backing file. A write failure is
// logged; the order stays in the in-memory view either way.
func (f *FileLedger) Create(ctx context.Context, order domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.orders = append(f.orders, order)

	if err := f.persist(); err != nil {
		f.logger.Error("failed to persist order ledger", "path", f.path, "order_id", order.ID, "err", err)
	}
	return nil
}

func (f *FileLedger) persist() error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(f.orders, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0644)
}

// MostRecent returns the newest order, or nil when empty.
func (f *FileLedger) MostRecent(ctx context.Context) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.orders) == 0 {
		return nil, nil
	}
	o := f.orders[len(f.orders)-1]
	return &o, nil
}

// ByID returns the order with the given id, or nil when absent.
func (f *FileLedger) ByID(ctx context.Context, id string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

// All returns every order in append order.
func (f *FileLedger) All(ctx context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}
