package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	tests := []struct {
		name      string
		wantScene string
		ok        bool
	}{
		{"", "intro", true},
		{"stormglass", "intro", true},
		{"fallen-kingdom", "intro", true},
		{"fallen", "intro", true},
		{"  Fallen-Kingdom ", "intro", true},
		{"atlantis", "", false},
	}
	for _, tt := range tests {
		r, ok := Builtin(tt.name)
		require.Equal(t, tt.ok, ok, "Builtin(%q)", tt.name)
		if ok {
			assert.Equal(t, tt.wantScene, r.StartScene())
		}
	}
}

func TestBuiltinWorldsDiffer(t *testing.T) {
	storm, _ := Builtin("stormglass")
	fallen, _ := Builtin("fallen-kingdom")

	_, ok := storm.GetScene("undercell")
	assert.True(t, ok)
	_, ok = fallen.GetScene("undercell")
	assert.False(t, ok)

	_, ok = fallen.GetScene("shadow_gate")
	assert.True(t, ok)

	assert.NotEqual(t, storm.Tagline(), fallen.Tagline())
	assert.Contains(t, fallen.Tagline(), "Crown of Eternity")

	// The catalog is shared between worlds.
	assert.Len(t, fallen.Products(), len(storm.Products()))
}

func TestFallenKingdomGraphIsClosed(t *testing.T) {
	scenes := FallenKingdomScenes()
	declared := make(map[string]bool, len(scenes))
	for _, s := range scenes {
		declared[s.ID] = true
	}

	// Every choice leads to a declared scene; this graph has no dangling
	// edges.
	for _, s := range scenes {
		for _, c := range s.Choices {
			assert.True(t, declared[c.ResultScene],
				"%s/%s leads to undeclared scene %q", s.ID, c.ID, c.ResultScene)
		}
	}
}

func TestFallenKingdomVictoryPath(t *testing.T) {
	r, _ := Builtin("fallen-kingdom")

	path := []struct{ scene, choice, next string }{
		{"intro", "enter_catacombs", "catacombs"},
		{"catacombs", "royal_passage", "shadow_gate"},
		{"shadow_gate", "touch_sword", "trial_of_courage"},
		{"trial_of_courage", "defensive_stance", "throne_room"},
		{"throne_room", "grab_crown", "victory"},
	}
	for _, step := range path {
		s, ok := r.GetScene(step.scene)
		require.True(t, ok, "scene %s", step.scene)
		found := false
		for _, c := range s.Choices {
			if c.ID == step.choice {
				assert.Equal(t, step.next, c.ResultScene)
				found = true
			}
		}
		assert.True(t, found, "%s has no choice %s", step.scene, step.choice)
	}
}
