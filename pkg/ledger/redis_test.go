package ledger_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andsky/talekeeper/pkg/domain"
	"github.com/andsky/talekeeper/pkg/ledger"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisLedger(t *testing.T) {
	_, client := newTestRedis(t)
	l := ledger.NewRedisLedgerFromClient(client)
	ctx := context.Background()

	recent, err := l.MostRecent(ctx)
	require.NoError(t, err)
	assert.Nil(t, recent)

	first := domain.Order{ID: "ORD-AAAAAAAA", Status: domain.OrderStatusConfirmed, Total: 299, Currency: "INR"}
	second := domain.Order{ID: "ORD-BBBBBBBB", Status: domain.OrderStatusConfirmed, Total: 1299, Currency: "INR"}
	require.NoError(t, l.Create(ctx, first))
	require.NoError(t, l.Create(ctx, second))

	recent, err = l.MostRecent(ctx)
	require.NoError(t, err)
	require.NotNil(t, recent)
	assert.Equal(t, "ORD-BBBBBBBB", recent.ID)

	byID, err := l.ByID(ctx, "ORD-AAAAAAAA")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, 299, byID.Total)

	missing, err := l.ByID(ctx, "ORD-XXXXXXXX")
	require.NoError(t, err)
	assert.Nil(t, missing)

	all, err := l.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ORD-AAAAAAAA", all[0].ID)
	assert.Equal(t, "ORD-BBBBBBBB", all[1].ID)
}

func TestRedisLedgerCustomKey(t *testing.T) {
	mr, client := newTestRedis(t)
	l := ledger.NewRedisLedgerFromClient(client, ledger.WithKey("shop:orders"))
	ctx := context.Background()

	require.NoError(t, l.Create(ctx, domain.Order{ID: "ORD-CCCCCCCC"}))

	assert.True(t, mr.Exists("shop:orders"), "Expected orders under the custom key")
	assert.False(t, mr.Exists("talekeeper:orders"))
}
