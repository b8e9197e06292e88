package domain

import "time"

// OrderStatusConfirmed is the only status the core produces; orders are
// immutable once created.
const OrderStatusConfirmed = "CONFIRMED"

// OrderLine is a frozen snapshot of one cart line taken at order-creation
// time, decoupled from later catalog changes.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"product_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_amount"`
	LineTotal int    `json:"line_total"`
	Currency  string `json:"currency"`
	Size      string `json:"size,omitempty"`
}

// Buyer identifies who placed an order.
type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Order is an immutable completed transaction appended to the ledger.
// The JSON field names are the external persistence contract.
type Order struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Items     []OrderLine `json:"line_items"`
	Total     int         `json:"total_amount"`
	Currency  string      `json:"currency"`
	CreatedAt time.Time   `json:"created_at"`
	Buyer     Buyer       `json:"buyer"`
}
