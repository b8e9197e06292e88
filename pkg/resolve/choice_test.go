package resolve

import (
	"testing"

	"github.com/andsky/talekeeper/pkg/domain"
)

func hatchScene() *domain.Scene {
	return &domain.Scene{
		ID:    "beacon",
		Title: "The Silent Beacon",
		Choices: []domain.Choice{
			{ID: "open_hatch", Desc: "Try opening the buried hatch.", ResultScene: "hatch_fail"},
			{ID: "investigate_lens", Desc: "Examine the shattered lens.", ResultScene: "lens"},
			{ID: "follow_footsteps", Desc: "Follow the footsteps deeper into the isle.", ResultScene: "forest"},
		},
	}
}

func TestChoiceExactID(t *testing.T) {
	c, ok := Choice("investigate_lens", hatchScene())
	if !ok {
		t.Fatal("expected a match")
	}
	if c.ID != "investigate_lens" {
		t.Errorf("got %q, want investigate_lens", c.ID)
	}
}

func TestChoiceLooseMatch(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"id embedded in sentence", "i want to open_hatch now", "open_hatch"},
		{"desc word in first four", "open the hatch", "open_hatch"},
		{"later choice by desc word", "examine shattered lens", "investigate_lens"},
		{"case and whitespace", "  TRY OPENING it  ", "open_hatch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Choice(tt.in, hatchScene())
			if !ok {
				t.Fatalf("no match for %q", tt.in)
			}
			if c.ID != tt.want {
				t.Errorf("Choice(%q) = %q, want %q", tt.in, c.ID, tt.want)
			}
		})
	}
}

func TestChoiceKeywordTier(t *testing.T) {
	// "into" sits beyond the first four description words, so only the
	// keyword tier can reach it.
	c, ok := Choice("venture into darkness", hatchScene())
	if !ok || c.ID != "follow_footsteps" {
		t.Fatalf("got %v, want follow_footsteps", c)
	}
}

func TestChoiceDeclarationOrderWins(t *testing.T) {
	// "the" appears in both descriptions; the first declared choice takes it.
	scene := &domain.Scene{
		ID: "s",
		Choices: []domain.Choice{
			{ID: "a", Desc: "Walk the long road."},
			{ID: "b", Desc: "Climb the tall wall."},
		},
	}
	c, ok := Choice("the", scene)
	if !ok || c.ID != "a" {
		t.Fatalf("got %v, want choice a", c)
	}
}

func TestChoiceNoMatch(t *testing.T) {
	for _, in := range []string{"", "   ", "xyzzy plugh"} {
		if c, ok := Choice(in, hatchScene()); ok {
			t.Errorf("Choice(%q) = %q, want no match", in, c.ID)
		}
	}
	if _, ok := Choice("hatch", nil); ok {
		t.Error("nil scene should not match")
	}
}
