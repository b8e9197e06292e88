// Package world holds the static scene-graph and product-catalog registries.
// Both are read-only at runtime and safe to share across sessions.
package world

import (
	"strings"

	"github.com/andsky/talekeeper/pkg/domain"
)

// categorySynonyms normalizes the loose category words a voice transcript
// produces to canonical catalog categories.
var categorySynonyms = map[string]string{
	"mugs":          "mug",
	"cup":           "mug",
	"cups":          "mug",
	"hoodies":       "hoodie",
	"sweatshirt":    "hoodie",
	"sweatshirts":   "hoodie",
	"tshirts":       "tshirt",
	"t-shirt":       "tshirt",
	"t-shirts":      "tshirt",
	"tee":           "tshirt",
	"tees":          "tshirt",
	"shirt":         "tshirt",
	"shirts":        "tshirt",
	"caps":          "cap",
	"hat":           "cap",
	"hats":          "cap",
	"phone":         "mobile",
	"phones":        "mobile",
	"mobiles":       "mobile",
	"mobile phone":  "mobile",
	"mobile phones": "mobile",
	"smartphone":    "mobile",
	"smartphones":   "mobile",
}

// NormalizeCategory maps a requested category through the synonym table.
// Unknown categories pass through lower-cased.
func NormalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if canonical, ok := categorySynonyms[c]; ok {
		return canonical
	}
	return c
}

// Registry is the static world and catalog lookup surface. All accessors are
// pure and deterministic.
type Registry struct {
	startScene string
	tagline    string
	scenes     map[string]*domain.Scene
	products   []domain.Product
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithTagline sets the one-line pitch spoken in the adventure greeting.
func WithTagline(tagline string) RegistryOption {
	return func(r *Registry) {
		r.tagline = tagline
	}
}

// NewRegistry builds a registry from scene and product data. Scene order is
// irrelevant (lookup is by id) but product order is preserved: resolver
// tie-breaks depend on it.
func NewRegistry(startScene string, scenes []domain.Scene, products []domain.Product, opts ...RegistryOption) *Registry {
	byID := make(map[string]*domain.Scene, len(scenes))
	for i := range scenes {
		byID[scenes[i].ID] = &scenes[i]
	}
	r := &Registry{
		startScene: startScene,
		scenes:     byID,
		products:   products,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StartScene returns the scene id new sessions begin at.
func (r *Registry) StartScene() string {
	return r.startScene
}

// Tagline returns the world's greeting pitch. May be empty for worlds loaded
// without one.
func (r *Registry) Tagline() string {
	return r.tagline
}

// GetScene looks up a scene by id.
func (r *Registry) GetScene(id string) (*domain.Scene, bool) {
	s, ok := r.scenes[id]
	return s, ok
}

// GetProduct looks up a product by exact id.
func (r *Registry) GetProduct(id string) (*domain.Product, bool) {
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], true
		}
	}
	return nil, false
}

// Products returns all catalog entries in declaration order.
func (r *Registry) Products() []domain.Product {
	return r.products
}

// ListProducts returns catalog entries matching the filter, in declaration
// order.
func (r *Registry) ListProducts(f domain.Filter) []domain.Product {
	if f.IsZero() {
		return r.products
	}

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchProduct(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matchProduct(p domain.Product, f domain.Filter) bool {
	if f.Category != "" && !matchCategory(p.Category, NormalizeCategory(f.Category)) {
		return false
	}
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Color != "" && !strings.Contains(strings.ToLower(p.Color), strings.ToLower(f.Color)) {
		return false
	}
	if f.Size != "" && !p.HasSize(strings.ToUpper(f.Size)) {
		return false
	}
	if f.Query != "" && !matchQuery(p, f.Query) {
		return false
	}
	return true
}

// matchCategory accepts an exact match first, then either direction of
// substring containment. Intentionally permissive so plural and partial forms
// still land.
func matchCategory(actual, requested string) bool {
	actual = strings.ToLower(actual)
	if actual == requested {
		return true
	}
	return strings.Contains(actual, requested) || strings.Contains(requested, actual)
}

func matchQuery(p domain.Product, query string) bool {
	q := strings.ToLower(query)

	// Domain keywords in the query promote the category itself to a match
	// target, so "a cheap phone" finds the mobile category even though no
	// product name contains "phone".
	if ContainsPhoneKeyword(q) && strings.ToLower(p.Category) == "mobile" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Desc), q)
}

// ContainsPhoneKeyword reports whether the text carries one of the
// phone/mobile domain keywords used for category biasing.
func ContainsPhoneKeyword(text string) bool {
	t := strings.ToLower(text)
	for _, kw := range []string{"phone", "mobile", "smartphone"} {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
