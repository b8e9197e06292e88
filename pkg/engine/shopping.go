package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/andsky/talekeeper/internal/metrics"
	"github.com/andsky/talekeeper/pkg/domain"
	"github.com/andsky/talekeeper/pkg/resolve"
)

// ShowCatalog renders up to four products matching the filter, or a
// not-found line naming what the store carries.
func (a *Agent) ShowCatalog(filter domain.Filter) string {
	matches := a.registry.ListProducts(filter)
	if len(matches) == 0 {
		return "I couldn't find anything matching that. We carry mugs, hoodies, t-shirts, caps, and phones."
	}

	shown := matches
	if len(shown) > catalogLimit {
		shown = shown[:catalogLimit]
	}

	lines := []string{"Here's what I found:"}
	for i := range shown {
		lines = append(lines, renderProductLine(&shown[i]))
	}
	if len(matches) > len(shown) {
		lines = append(lines, fmt.Sprintf("...and %d more. Narrow it down by category, color, or price.", len(matches)-len(shown)))
	}
	return strings.Join(lines, "\n")
}

// AddToCart resolves a free-text product reference and appends a cart line.
// Lines are never merged; each add is its own entry.
func (a *Agent) AddToCart(productRef string, quantity int, size string) string {
	product, ok := resolve.Product(productRef, a.registry.Products())
	if !ok {
		return "I couldn't find that product. Ask for the catalog to hear what's available."
	}

	if quantity < 1 {
		quantity = 1
	}
	size = strings.ToUpper(strings.TrimSpace(size))
	if size != "" && !product.HasSize(size) {
		return fmt.Sprintf("%s isn't available in size %s. Available sizes: %s.",
			product.Name, size, strings.Join(product.Sizes, ", "))
	}

	a.state.Cart = append(a.state.Cart, domain.LineItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Size:      size,
	})
	a.recordEvent("add_to_cart", fmt.Sprintf("%s x %d", product.ID, quantity))

	confirmation := fmt.Sprintf("Added %s x %d to your cart.", product.Name, quantity)
	if size != "" {
		confirmation = fmt.Sprintf("Added %s (size %s) x %d to your cart.", product.Name, size, quantity)
	}
	return fmt.Sprintf("%s You have %d item lines in the cart.", confirmation, len(a.state.Cart))
}

// ShowCart renders cart lines with per-line and grand totals.
func (a *Agent) ShowCart() string {
	if len(a.state.Cart) == 0 {
		return "Your cart is empty."
	}

	lines := []string{"Your cart:"}
	total := 0
	currency := ""
	for _, item := range a.state.Cart {
		product, ok := a.registry.GetProduct(item.ProductID)
		if !ok {
			lines = append(lines, fmt.Sprintf("- %s x %d (no longer available)", item.ProductID, item.Quantity))
			continue
		}
		lineTotal := product.Price * item.Quantity
		total += lineTotal
		currency = product.Currency

		line := fmt.Sprintf("- %s x %d = %d %s", product.Name, item.Quantity, lineTotal, product.Currency)
		if item.Size != "" {
			line += fmt.Sprintf(" (size %s)", item.Size)
		}
		lines = append(lines, line)
	}
	// Currency stays unknown when no line resolved against the catalog.
	totalLine := fmt.Sprintf("Total: %d", total)
	if currency != "" {
		totalLine += " " + currency
	}
	lines = append(lines, totalLine)
	return strings.Join(lines, "\n")
}

// ClearCart empties the cart and logs the event.
func (a *Agent) ClearCart() string {
	a.state.Cart = []domain.LineItem{}
	a.recordEvent("clear_cart", "")
	return "Your cart has been cleared."
}

// PlaceOrder materializes the cart into an immutable order, appends it to
// the shared ledger and the session history, and empties the cart. A cart
// line whose product no longer resolves aborts the whole order; no partial
// order is ever persisted.
func (a *Agent) PlaceOrder(ctx context.Context, confirm bool) string {
	if !confirm {
		return "Okay, I won't place the order. Your cart is untouched."
	}
	if len(a.state.Cart) == 0 {
		return "Your cart is empty. There's nothing to place."
	}

	order, err := a.buildOrder()
	if err != nil {
		a.logger.Warn("order rejected", "session_id", a.state.SessionID, "err", err)
		return "I couldn't complete that order: one of the items is no longer available. Your cart is unchanged."
	}

	// The session view is authoritative; a ledger write failure is logged
	// and the confirmation still stands for this conversation.
	if err := a.orders.Create(ctx, *order); err != nil {
		a.logger.Error("failed to persist order", "order_id", order.ID, "err", err)
	}
	a.state.Orders = append(a.state.Orders, *order)
	a.state.Cart = []domain.LineItem{}
	a.recordEvent("place_order", order.ID)

	a.logger.Info("order placed", "order_id", order.ID, "total", order.Total, "items", len(order.Items))
	metrics.OrdersPlaced.Inc()
	metrics.OrderTotals.Observe(float64(order.Total))

	return fmt.Sprintf("Order %s confirmed! Total: %d %s. Thank you for shopping with us.",
		order.ID, order.Total, order.Currency)
}

// buildOrder snapshots every cart line against the live catalog.
func (a *Agent) buildOrder() (*domain.Order, error) {
	items := make([]domain.OrderLine, 0, len(a.state.Cart))
	total := 0
	currency := ""

	for _, item := range a.state.Cart {
		product, ok := a.registry.GetProduct(item.ProductID)
		if !ok {
			return nil, fmt.Errorf("line item %s: %w", item.ProductID, domain.ErrUnknownProduct)
		}

		lineTotal := product.Price * item.Quantity
		items = append(items, domain.OrderLine{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			LineTotal: lineTotal,
			Currency:  product.Currency,
			Size:      item.Size,
		})
		total += lineTotal
		currency = product.Currency
	}

	buyer := domain.Buyer{Name: "Guest"}
	if a.state.PlayerName != "" {
		buyer.Name = a.state.PlayerName
	}

	return &domain.Order{
		ID:        a.orderID(),
		Status:    domain.OrderStatusConfirmed,
		Items:     items,
		Total:     total,
		Currency:  currency,
		CreatedAt: a.now(),
		Buyer:     buyer,
	}, nil
}

// LastOrder renders the most recent ledger order.
func (a *Agent) LastOrder(ctx context.Context) string {
	order, err := a.orders.MostRecent(ctx)
	if err != nil {
		a.logger.Error("failed to read order ledger", "err", err)
		return "I couldn't look up your orders right now."
	}
	if order == nil {
		return "No orders yet."
	}
	return renderOrder(order)
}

func (a *Agent) recordEvent(action, detail string) {
	a.state.Events = append(a.state.Events, domain.EventRecord{
		Action: action,
		Detail: detail,
		Time:   a.now(),
	})
}
