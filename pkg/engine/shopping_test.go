package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andsky/talekeeper/pkg/domain"
)

func TestShowCatalog(t *testing.T) {
	a, _ := newTestAgent(t)

	t.Run("caps the listing", func(t *testing.T) {
		out := a.ShowCatalog(domain.Filter{})
		assert.Contains(t, out, "Here's what I found:")
		assert.Equal(t, catalogLimit, strings.Count(out, "(say: "))
		assert.Contains(t, out, "...and 7 more.")
	})

	t.Run("category filter", func(t *testing.T) {
		out := a.ShowCatalog(domain.Filter{Category: "mugs"})
		assert.Contains(t, out, "Ceramic Coffee Mug - White")
		assert.Contains(t, out, "Travel Mug - Stainless Steel")
		assert.NotContains(t, out, "more.")
	})

	t.Run("sizes listed", func(t *testing.T) {
		out := a.ShowCatalog(domain.Filter{Category: "hoodie", Color: "black"})
		assert.Contains(t, out, "[sizes: S, M, L, XL]")
	})

	t.Run("nothing matches", func(t *testing.T) {
		out := a.ShowCatalog(domain.Filter{Category: "furniture"})
		assert.Contains(t, out, "I couldn't find anything matching that.")
	})
}

func TestAddToCart(t *testing.T) {
	a, _ := newTestAgent(t)

	t.Run("by id", func(t *testing.T) {
		out := a.AddToCart("mug-001", 2, "")
		assert.Contains(t, out, "Added Ceramic Coffee Mug - White x 2 to your cart.")
		assert.Contains(t, out, "You have 1 item lines in the cart.")
	})

	t.Run("by loose text with size", func(t *testing.T) {
		out := a.AddToCart("that black hoodie", 1, "l")
		assert.Contains(t, out, "Added Cotton Hoodie - Black (size L) x 1 to your cart.")
		assert.Contains(t, out, "You have 2 item lines in the cart.")
	})

	t.Run("zero quantity defaults to one", func(t *testing.T) {
		a.AddToCart("cap-001", 0, "")
		last := a.State().Cart[len(a.State().Cart)-1]
		assert.Equal(t, 1, last.Quantity)
	})

	t.Run("lines never merge", func(t *testing.T) {
		before := len(a.State().Cart)
		a.AddToCart("mug-001", 1, "")
		assert.Len(t, a.State().Cart, before+1)
	})

	t.Run("invalid size is rejected", func(t *testing.T) {
		before := len(a.State().Cart)
		out := a.AddToCart("hoodie-001", 1, "XS")
		assert.Contains(t, out, "isn't available in size XS")
		assert.Contains(t, out, "Available sizes: S, M, L, XL.")
		assert.Len(t, a.State().Cart, before)
	})

	t.Run("unknown product", func(t *testing.T) {
		before := len(a.State().Cart)
		out := a.AddToCart("a seven league boot", 1, "")
		assert.Contains(t, out, "I couldn't find that product.")
		assert.Len(t, a.State().Cart, before)
	})
}

func TestShowCart(t *testing.T) {
	a, _ := newTestAgent(t)

	assert.Equal(t, "Your cart is empty.", a.ShowCart())

	a.AddToCart("mug-001", 2, "")
	a.AddToCart("hoodie-002", 1, "M")

	out := a.ShowCart()
	assert.Contains(t, out, "- Ceramic Coffee Mug - White x 2 = 598 INR")
	assert.Contains(t, out, "- Cotton Hoodie - Navy Blue x 1 = 1499 INR (size M)")
	assert.Contains(t, out, "Total: 2097 INR")
}

func TestShowCartAllLinesVanished(t *testing.T) {
	a, _ := newTestAgent(t)
	a.State().Cart = append(a.State().Cart, domain.LineItem{ProductID: "ghost-001", Quantity: 1})

	out := a.ShowCart()
	assert.Contains(t, out, "- ghost-001 x 1 (no longer available)")
	// No resolvable line means no currency; the total renders bare.
	assert.True(t, strings.HasSuffix(out, "Total: 0"), "got %q", out)
}

func TestClearCart(t *testing.T) {
	a, _ := newTestAgent(t)
	a.AddToCart("mug-001", 1, "")

	assert.Equal(t, "Your cart has been cleared.", a.ClearCart())
	assert.Empty(t, a.State().Cart)
	assert.Equal(t, "Your cart is empty.", a.ShowCart())
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("declined leaves cart untouched", func(t *testing.T) {
		a, orders := newTestAgent(t)
		a.AddToCart("mug-001", 1, "")

		out := a.PlaceOrder(ctx, false)
		assert.Contains(t, out, "I won't place the order.")
		assert.Len(t, a.State().Cart, 1)

		all, err := orders.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("empty cart places nothing", func(t *testing.T) {
		a, orders := newTestAgent(t)
		out := a.PlaceOrder(ctx, true)
		assert.Equal(t, "Your cart is empty. There's nothing to place.", out)

		all, err := orders.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("confirmed order snapshots the cart", func(t *testing.T) {
		a, orders := newTestAgent(t)
		a.StartAdventure("Mira")
		a.AddToCart("mug-001", 2, "")
		a.AddToCart("tshirt-002", 1, "L")

		out := a.PlaceOrder(ctx, true)
		assert.Contains(t, out, "confirmed! Total: 997 INR.")

		all, err := orders.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)

		order := all[0]
		assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
		assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
		assert.Equal(t, "Mira", order.Buyer.Name)
		require.Len(t, order.Items, 2)
		assert.Equal(t, 598, order.Items[0].LineTotal)
		assert.Equal(t, "L", order.Items[1].Size)

		// The order total always equals the sum of its line totals.
		sum := 0
		for _, item := range order.Items {
			sum += item.LineTotal
		}
		assert.Equal(t, sum, order.Total)

		assert.Empty(t, a.State().Cart, "cart empties after placing")
		require.Len(t, a.State().Orders, 1)
		assert.Equal(t, order.ID, a.State().Orders[0].ID)
	})

	t.Run("anonymous buyer falls back to Guest", func(t *testing.T) {
		a, orders := newTestAgent(t)
		a.AddToCart("cap-001", 1, "")
		a.PlaceOrder(ctx, true)

		recent, err := orders.MostRecent(ctx)
		require.NoError(t, err)
		require.NotNil(t, recent)
		assert.Equal(t, "Guest", recent.Buyer.Name)
	})

	t.Run("vanished product aborts the whole order", func(t *testing.T) {
		a, orders := newTestAgent(t)
		a.AddToCart("mug-001", 1, "")
		a.State().Cart = append(a.State().Cart, domain.LineItem{ProductID: "ghost-001", Quantity: 1})

		out := a.PlaceOrder(ctx, true)
		assert.Contains(t, out, "no longer available")
		assert.Len(t, a.State().Cart, 2, "cart is unchanged")

		all, err := orders.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestLastOrder(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAgent(t)

	assert.Equal(t, "No orders yet.", a.LastOrder(ctx))

	a.StartAdventure("Mira")
	a.AddToCart("mug-003", 1, "")
	placed := a.PlaceOrder(ctx, true)

	out := a.LastOrder(ctx)
	orderID := a.State().Orders[0].ID
	assert.Contains(t, placed, orderID)
	assert.Contains(t, out, "Order "+orderID+" (CONFIRMED)")
	assert.Contains(t, out, "- Travel Mug - Stainless Steel x 1 = 599 INR")
	assert.Contains(t, out, "Total: 599 INR")
}
