package domain

// Product is a single immutable catalog entry. Prices are whole units of a
// single currency (no minor-unit splitting).
type Product struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Desc     string   `json:"description" yaml:"description"`
	Price    int      `json:"price" yaml:"price"`
	Currency string   `json:"currency" yaml:"currency"`
	Category string   `json:"category" yaml:"category"`
	Color    string   `json:"color,omitempty" yaml:"color,omitempty"`
	Material string   `json:"material,omitempty" yaml:"material,omitempty"`
	Sizes    []string `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	InStock  bool     `json:"in_stock" yaml:"in_stock"`
}

// HasSize reports whether the product is offered in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Filter narrows a catalog listing. Zero values mean "no constraint".
type Filter struct {
	// Query is a case-insensitive substring test against name or description.
	Query string

	// Category is normalized through a synonym table before matching
	// ("phones" -> "mobile", "tees" -> "tshirt").
	Category string

	MinPrice int
	MaxPrice int

	// Color matches by substring containment against the product color.
	Color string

	// Size requires the product to be offered in this exact size.
	Size string
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f == Filter{}
}
