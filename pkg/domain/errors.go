package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrUnknownProduct is returned when a cart line references a product that no
// longer resolves against the catalog. It aborts the whole order.
var ErrUnknownProduct = errors.New("unknown product")
