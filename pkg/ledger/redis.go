package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/andsky/talekeeper/pkg/domain"
)

// RedisLedger stores orders on a Redis list, one JSON document per order.
// Appends use RPUSH so list order is append order.
type RedisLedger struct {
	client *backend.Client
	key    string
}

// RedisOption configures the RedisLedger.
type RedisOption func(*RedisLedger)

// WithKey overrides the list key.
func WithKey(key string) RedisOption {
	return func(r *RedisLedger) {
		r.key = key
	}
}

// NewRedisLedger creates a ledger on a fresh client.
func NewRedisLedger(address, password string, db int, opts ...RedisOption) *RedisLedger {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisLedgerFromClient(client, opts...)
}

// NewRedisLedgerFromClient creates a ledger from an existing client.
func NewRedisLedgerFromClient(client *backend.Client, opts ...RedisOption) *RedisLedger {
	r := &RedisLedger{
		client: client,
		key:    "talekeeper:orders",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create appends the order to the list.
func (r *RedisLedger) Create(ctx context.Context, order domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	if err := r.client.RPush(ctx, r.key, data).Err(); err != nil {
		return fmt.Errorf("failed to append order: %w", err)
	}
	return nil
}

// MostRecent returns the newest order, or nil when the list is empty.
func (r *RedisLedger) MostRecent(ctx context.Context) (*domain.Order, error) {
	data, err := r.client.LIndex(ctx, r.key, -1).Bytes()
	if err == backend.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}

// ByID scans the list for the given order id.
func (r *RedisLedger) ByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

// All returns every order in append order.
func (r *RedisLedger) All(ctx context.Context) ([]domain.Order, error) {
	raw, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(raw))
	for _, item := range raw {
		var o domain.Order
		if err := json.Unmarshal([]byte(item), &o); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
