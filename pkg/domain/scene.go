package domain

// EffectKind constants enumerate the state mutations a choice may carry.
const (
	// EffectJournal appends a narrative note to the session journal.
	EffectJournal = "journal"
	// EffectInventory appends an item identifier to the session inventory.
	EffectInventory = "inventory"
)

// Effect is a declarative state mutation attached to a choice.
// Effects are applied in declaration order when the choice is taken.
type Effect struct {
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

// Choice is a labeled edge from one scene to another.
type Choice struct {
	ID string `json:"id" yaml:"id"`

	// Desc is the spoken description of the choice. The resolver matches
	// free-text input against it, so wording matters.
	Desc string `json:"desc" yaml:"desc"`

	// ResultScene is the scene reached when this choice is taken. It may
	// reference a scene that does not exist; rendering degrades to a
	// fallback prompt rather than failing.
	ResultScene string `json:"result_scene" yaml:"result_scene"`

	Effects []Effect `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// Scene is a node in the narrative graph.
// Choices is an ordered slice, not a map: resolution tie-breaks and prompt
// rendering both depend on declaration order.
type Scene struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Desc    string   `json:"desc" yaml:"desc"`
	Choices []Choice `json:"choices" yaml:"choices"`
}
