package resolve

import (
	"strconv"
	"strings"

	"github.com/andsky/talekeeper/pkg/domain"
	"github.com/andsky/talekeeper/pkg/world"
)

var ordinals = []string{"first", "second", "third", "fourth"}

// Product maps a free-text product reference to a single catalog entry.
// Candidates default to the full catalog; a narrower slice (e.g. the results
// of a prior listing) can be passed so ordinals refer to what the user just
// heard.
//
// Tier order, first hit wins:
//  1. phone/mobile keyword narrows candidates to the mobile category
//  2. ordinal word against the narrowed list
//  3. exact id match against the full list
//  4. color and category both contained in the text
//  5. name tokens: all tokens in the narrowed set, else any token in the full set
//  6. bare numeric token as a 1-based index into the narrowed list
//  7. ordinal word against the full list
func Product(text string, candidates []domain.Product) (*domain.Product, bool) {
	full := candidates
	if len(full) == 0 {
		return nil, false
	}

	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return nil, false
	}

	// Tier 1: domain-keyword bias. An empty narrowing reverts to the full set.
	narrowed := full
	if world.ContainsPhoneKeyword(normalized) {
		mobile := filterCategory(full, "mobile")
		if len(mobile) > 0 {
			narrowed = mobile
		}
	}

	// Tier 2: ordinal into the narrowed list. Out-of-range is not a match
	// at this tier.
	if idx, ok := ordinalIndex(normalized); ok && idx < len(narrowed) {
		return &narrowed[idx], true
	}

	// Tier 3: exact identifier against the full, unnarrowed source.
	for i := range full {
		id := strings.ToLower(full[i].ID)
		if normalized == id || containsToken(normalized, id) {
			return &full[i], true
		}
	}

	// Tier 4: both color and category appear in the text.
	for i := range narrowed {
		p := &narrowed[i]
		if p.Color == "" {
			continue
		}
		if strings.Contains(normalized, strings.ToLower(p.Color)) &&
			strings.Contains(normalized, strings.ToLower(p.Category)) {
			return p, true
		}
	}

	// Tier 5: name-token match.
	tokens := meaningfulTokens(normalized)
	if len(tokens) > 0 {
		for i := range narrowed {
			if nameContainsAll(&narrowed[i], tokens) {
				return &narrowed[i], true
			}
		}
		for i := range full {
			if nameContainsAny(&full[i], tokens) {
				return &full[i], true
			}
		}
	}

	// Tier 6: bare number as a 1-based index into the narrowed list.
	if n, ok := numericToken(normalized); ok && n >= 1 && n <= len(narrowed) {
		return &narrowed[n-1], true
	}

	// Tier 7: ordinal reinterpreted against the full list.
	if idx, ok := ordinalIndex(normalized); ok && idx < len(full) {
		return &full[idx], true
	}

	return nil, false
}

func filterCategory(products []domain.Product, category string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.ToLower(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

func ordinalIndex(text string) (int, bool) {
	for i, word := range ordinals {
		if containsToken(text, word) {
			return i, true
		}
	}
	return 0, false
}

func numericToken(text string) (int, bool) {
	for _, tok := range strings.Fields(text) {
		if n, err := strconv.Atoi(tok); err == nil {
			return n, true
		}
	}
	return 0, false
}

func containsToken(text, want string) bool {
	for _, tok := range strings.Fields(text) {
		if strings.Trim(tok, ".,!?") == want {
			return true
		}
	}
	return false
}

// meaningfulTokens drops the short glue words a transcript is full of.
func meaningfulTokens(text string) []string {
	var out []string
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,!?")
		if len(tok) > 2 {
			out = append(out, tok)
		}
	}
	return out
}

func nameContainsAll(p *domain.Product, tokens []string) bool {
	name := strings.ToLower(p.Name)
	for _, tok := range tokens {
		if !strings.Contains(name, tok) {
			return false
		}
	}
	return true
}

func nameContainsAny(p *domain.Product, tokens []string) bool {
	name := strings.ToLower(p.Name)
	for _, tok := range tokens {
		if strings.Contains(name, tok) {
			return true
		}
	}
	return false
}
