package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRoutesEveryTool(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAgent(t)

	for _, name := range ToolNames() {
		t.Run(name, func(t *testing.T) {
			out, err := a.Dispatch(ctx, name, map[string]any{})
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestDispatchWeaklyTypedArguments(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAgent(t)

	// JSON decoding hands numbers over as float64 and clients sometimes send
	// booleans as strings.
	out, err := a.Dispatch(ctx, ToolAddToCart, map[string]any{
		"product":  "mug-001",
		"quantity": float64(2),
	})
	require.NoError(t, err)
	assert.Contains(t, out, "x 2")

	out, err = a.Dispatch(ctx, ToolPlaceOrder, map[string]any{"confirm": "false"})
	require.NoError(t, err)
	assert.Contains(t, out, "I won't place the order.")

	// Omitted confirm defaults to placing the order.
	out, err = a.Dispatch(ctx, ToolPlaceOrder, map[string]any{})
	require.NoError(t, err)
	assert.Contains(t, out, "confirmed!")
}

func TestDispatchUnknownTool(t *testing.T) {
	a, _ := newTestAgent(t)
	_, err := a.Dispatch(context.Background(), "read_minds", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool not found")
}

func TestDispatchShowCatalogFilter(t *testing.T) {
	a, _ := newTestAgent(t)
	out, err := a.Dispatch(context.Background(), ToolShowCatalog, map[string]any{
		"category":  "tees",
		"max_price": float64(400),
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Cotton T-Shirt - White")
	assert.NotContains(t, out, "Graphic T-Shirt - Blue")
}
