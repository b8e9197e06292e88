// Package resolve maps loose free-text phrases to canonical entities: scene
// choices and catalog products.
//
// Both resolvers are explicit ordered tier pipelines, not scoring functions.
// Each tier is tried in sequence and the first hit wins; within a tier,
// candidates are scanned in declaration order. The layering trades precision
// for forgiving voice-transcribed input, and the tie-break behavior is part
// of the contract.
package resolve

import (
	"strings"

	"github.com/andsky/talekeeper/pkg/domain"
)

type choiceMatcher func(text string, choices []domain.Choice) (*domain.Choice, bool)

// choiceTiers are tried in strict order.
var choiceTiers = []choiceMatcher{
	choiceExactID,
	choiceLoose,
	choiceKeyword,
}

// Choice maps raw player input to one of the scene's declared choices.
// Returns false when no tier produced a hit; the caller re-lists the choices.
func Choice(text string, scene *domain.Scene) (*domain.Choice, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" || scene == nil {
		return nil, false
	}
	for _, tier := range choiceTiers {
		if c, ok := tier(normalized, scene.Choices); ok {
			return c, true
		}
	}
	return nil, false
}

// Tier 1: the normalized text is exactly a choice identifier.
func choiceExactID(text string, choices []domain.Choice) (*domain.Choice, bool) {
	for i := range choices {
		if text == choices[i].ID {
			return &choices[i], true
		}
	}
	return nil, false
}

// Tier 2: the choice id appears inside the text, or one of the first four
// words of the choice description does.
func choiceLoose(text string, choices []domain.Choice) (*domain.Choice, bool) {
	for i := range choices {
		if strings.Contains(text, choices[i].ID) {
			return &choices[i], true
		}
		words := strings.Fields(strings.ToLower(choices[i].Desc))
		if len(words) > 4 {
			words = words[:4]
		}
		for _, w := range words {
			if strings.Contains(text, w) {
				return &choices[i], true
			}
		}
	}
	return nil, false
}

// Tier 3: any single word of the choice description appears inside the text.
func choiceKeyword(text string, choices []domain.Choice) (*domain.Choice, bool) {
	for i := range choices {
		for _, w := range strings.Fields(strings.ToLower(choices[i].Desc)) {
			if w != "" && strings.Contains(text, w) {
				return &choices[i], true
			}
		}
	}
	return nil, false
}
