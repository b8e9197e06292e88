package world

import (
	"strings"

	"github.com/andsky/talekeeper/pkg/domain"
)

// stormglassTagline opens a Stormglass Isles session.
const stormglassTagline = "The Stormglass Isles are waiting. Find the Heartlight before the storms return."

// Default returns a registry with the built-in Stormglass Isles world and the
// built-in retail catalog. Zero-config boot path; deployments with their own
// content use Builtin or Load instead.
func Default() *Registry {
	return NewRegistry("intro", StormglassScenes(), DefaultCatalog(),
		WithTagline(stormglassTagline))
}

// Builtin returns a named built-in world sharing the built-in catalog.
// Recognized names: "stormglass" (the default) and "fallen-kingdom".
func Builtin(name string) (*Registry, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "stormglass":
		return Default(), true
	case "fallen-kingdom", "fallen":
		return NewRegistry("intro", FallenKingdomScenes(), DefaultCatalog(),
			WithTagline(fallenTagline)), true
	default:
		return nil, false
	}
}

// StormglassScenes is the built-in narrative graph. The dead-end loops back to
// the intro on purpose; cycles are allowed.
func StormglassScenes() []domain.Scene {
	return []domain.Scene{
		{
			ID:    "intro",
			Title: "The Glittering Shore",
			Desc: "You wake on the shore of the Stormglass Isles. Waves leave trails of glowing glass dust on the sand. " +
				"Ahead you can make out a half-buried crystal sphere, a leaning beacon tower, and the edge of a luminous mangrove forest.",
			Choices: []domain.Choice{
				{ID: "examine_sphere", Desc: "Examine the half-buried crystal sphere.", ResultScene: "sphere"},
				{ID: "approach_beacon", Desc: "Walk toward the leaning beacon tower.", ResultScene: "beacon"},
				{ID: "enter_forest", Desc: "Head into the luminous mangrove forest.", ResultScene: "forest"},
			},
		},
		{
			ID:    "sphere",
			Title: "Stormglass Memory",
			Desc: "The stormglass sphere is warm, humming faintly. When you lift it, an image flickers inside: " +
				"a figure cloaked in sea-mist whispering, 'Find the Heartlight before the storms return.' On its base, a sigil glows dimly.",
			Choices: []domain.Choice{
				{
					ID: "take_sphere", Desc: "Take the sphere with you.", ResultScene: "beacon_path",
					Effects: []domain.Effect{
						{Kind: domain.EffectInventory, Value: "cracked_stormglass"},
						{Kind: domain.EffectJournal, Value: "Recovered a cracked stormglass sphere showing a warning vision."},
					},
				},
				{ID: "leave_sphere", Desc: "Leave the sphere on the sand.", ResultScene: "intro"},
			},
		},
		{
			ID:    "beacon",
			Title: "The Silent Beacon",
			Desc: "The beacon tower leans slightly, its crystal core dark. Strange metallic roots curl across its base. " +
				"There is a hatch partially buried in sand, a shattered lens on the ground, and faint footsteps leading inland.",
			Choices: []domain.Choice{
				{ID: "open_hatch", Desc: "Try opening the buried hatch.", ResultScene: "hatch_fail"},
				{ID: "investigate_lens", Desc: "Examine the shattered lens.", ResultScene: "lens"},
				{ID: "follow_footsteps", Desc: "Follow the footsteps deeper into the isle.", ResultScene: "forest"},
			},
		},
		{
			ID:    "beacon_path",
			Title: "Path of Resonance",
			Desc: "Holding the stormglass, you notice the lighthouse beacon responds. Its dead crystal flickers. " +
				"The sphere vibrates in your hand as if guiding you toward the tower's base.",
			Choices: []domain.Choice{
				{
					ID: "sync_sphere_with_beacon", Desc: "Press the stormglass sphere against the beacon core.", ResultScene: "beacon_awakened",
					Effects: []domain.Effect{
						{Kind: domain.EffectJournal, Value: "Synced the stormglass with the dormant beacon."},
					},
				},
				{ID: "follow_footsteps", Desc: "Ignore the beacon and follow the footsteps toward the forest.", ResultScene: "forest"},
				{ID: "return_shore", Desc: "Return to the glittering shoreline.", ResultScene: "intro"},
			},
		},
		{
			ID:    "hatch_fail",
			Title: "The Stubborn Hatch",
			Desc: "The hatch refuses to budge. When you pull harder, a jolt of static arcs across your fingers. " +
				"Something mechanical stirs beneath the sand.",
			Choices: []domain.Choice{
				{ID: "step_back", Desc: "Retreat before anything emerges.", ResultScene: "intro"},
				{ID: "brace_for_emergence", Desc: "Stand ready for whatever is waking beneath the tower.", ResultScene: "guardian_encounter"},
			},
		},
		{
			ID:    "lens",
			Title: "The Focus Lens",
			Desc: "The shattered lens once belonged to the beacon's focusing mechanism. Its edges shimmer with " +
				"residual stormlight. Beneath the fragments, you uncover a tiny metal shard engraved with a spiral rune.",
			Choices: []domain.Choice{
				{
					ID: "take_shard", Desc: "Take the engraved shard.", ResultScene: "forest_path",
					Effects: []domain.Effect{
						{Kind: domain.EffectInventory, Value: "spiral_shard"},
						{Kind: domain.EffectJournal, Value: "Found a spiral-rune shard beneath the lens."},
					},
				},
				{ID: "leave_it", Desc: "Leave the fragment untouched.", ResultScene: "beacon"},
			},
		},
		{
			ID:    "beacon_awakened",
			Title: "Beacon of Echoes",
			Desc: "When sphere meets crystal, a resonant chime rings out. The beacon awakens briefly, projecting a holographic map " +
				"showing a glowing point labeled 'Heartlight'. The image shatters like mist. A whisper follows: 'The isle remembers.'",
			Choices: []domain.Choice{
				{ID: "descend_hatch", Desc: "Try the hatch again now that the beacon is active.", ResultScene: "undercell"},
				{ID: "head_forest", Desc: "Take the clue and head into the glowing forest.", ResultScene: "forest"},
			},
		},
		{
			ID:    "forest",
			Title: "The Luminous Mangroves",
			Desc: "The mangrove forest glows with bioluminescent veins. Strange mechanical insects hum overhead. " +
				"A small stone altar stands in a clearing, holding a brass ring and a sealed note.",
			Choices: []domain.Choice{
				{
					ID: "take_ring", Desc: "Pick up the brass ring.", ResultScene: "ring_scene",
					Effects: []domain.Effect{
						{Kind: domain.EffectInventory, Value: "brass_ring"},
						{Kind: domain.EffectJournal, Value: "Collected a brass ring from the mangrove altar."},
					},
				},
				{
					ID: "read_note", Desc: "Unseal and read the note.", ResultScene: "forest_note",
					Effects: []domain.Effect{
						{Kind: domain.EffectJournal, Value: "Read a note warning: 'Trust not the hollow storm.'"},
					},
				},
				{ID: "return_shore", Desc: "Head back toward the shoreline.", ResultScene: "intro"},
			},
		},
		{
			ID:    "forest_note",
			Title: "Message in Twilight",
			Desc:  "The note speaks in elegant script: 'The Heartlight sleeps beneath the isle. Only resonance awakens truth.'",
			Choices: []domain.Choice{
				{ID: "search_for_path", Desc: "Search around for a hidden path.", ResultScene: "undercell"},
				{ID: "return_forest", Desc: "Return to the altar.", ResultScene: "forest"},
			},
		},
		{
			ID:    "ring_scene",
			Title: "Ring of Recall",
			Desc: "The ring emits a faint glow, revealing footprints of someone who passed recently. They lead downward " +
				"toward a hidden root tunnel.",
			Choices: []domain.Choice{
				{ID: "follow_tunnel", Desc: "Follow the hidden root tunnel.", ResultScene: "undercell"},
				{ID: "step_back", Desc: "Return to the forest clearing.", ResultScene: "forest"},
			},
		},
		{
			ID:    "guardian_encounter",
			Title: "Guardian of the Hatch",
			Desc: "A crystalline guardian rises from the sand, its voice a mix of wind and static. " +
				"'Access restricted. Identify your resonance.' It raises a faceted blade-arm.",
			Choices: []domain.Choice{
				{ID: "attempt_resonance", Desc: "Try to mimic the stormglass hum.", ResultScene: "guardian_pass"},
				{ID: "flee", Desc: "Retreat before the guardian attacks.", ResultScene: "intro"},
			},
		},
		{
			ID:    "guardian_pass",
			Title: "A Harmonic Success",
			Desc: "Your tone matches the faint hum of the stormglass. The guardian freezes, then slowly steps aside. " +
				"The hatch lights up with a spiraling symbol.",
			Choices: []domain.Choice{
				{ID: "descend", Desc: "Enter the hatch and climb below.", ResultScene: "undercell"},
				{ID: "leave_guardian", Desc: "Retreat while the guardian remains dormant.", ResultScene: "intro"},
			},
		},
		{
			ID:    "undercell",
			Title: "The Heartlight Undercell",
			Desc: "You descend into a vast cavern of crystal columns and metallic vines. At the center floats a pulsating core, " +
				"the Heartlight. Its glow brightens as you approach. Beside it rests a pedestal containing a small prism and an engraved locket.",
			Choices: []domain.Choice{
				{
					ID: "take_prism", Desc: "Take the resonance prism.", ResultScene: "ending",
					Effects: []domain.Effect{
						{Kind: domain.EffectInventory, Value: "resonance_prism"},
						{Kind: domain.EffectJournal, Value: "Retrieved the resonance prism, source of Heartlight focus."},
					},
				},
				{
					ID: "take_locket", Desc: "Examine the engraved locket.", ResultScene: "ending",
					Effects: []domain.Effect{
						{Kind: domain.EffectInventory, Value: "engraved_locket"},
						{Kind: domain.EffectJournal, Value: "Collected an ancient locket left by a previous seeker."},
					},
				},
				{ID: "retreat", Desc: "Retreat from the undercell.", ResultScene: "intro"},
			},
		},
		{
			ID:    "ending",
			Title: "A Light Restored",
			Desc: "As you touch the artifact, the Heartlight pulses in agreement. A wave of warmth sweeps outward, " +
				"restoring clarity to the isle. You feel a quiet victory settle around you.",
			Choices: []domain.Choice{
				{ID: "end_session", Desc: "Conclude the session.", ResultScene: "intro"},
				{ID: "continue_exploring", Desc: "Return to the shoreline and continue wandering.", ResultScene: "intro"},
			},
		},
	}
}

// DefaultCatalog is the built-in retail catalog.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID: "mug-001", Name: "Ceramic Coffee Mug - White",
			Desc: "Classic white ceramic mug, 350ml capacity", Price: 299, Currency: "INR",
			Category: "mug", Color: "white", Material: "ceramic", InStock: true,
		},
		{
			ID: "mug-002", Name: "Ceramic Coffee Mug - Black",
			Desc: "Elegant black ceramic mug, 350ml capacity", Price: 299, Currency: "INR",
			Category: "mug", Color: "black", Material: "ceramic", InStock: true,
		},
		{
			ID: "mug-003", Name: "Travel Mug - Stainless Steel",
			Desc: "Insulated travel mug, keeps drinks hot for 6 hours", Price: 599, Currency: "INR",
			Category: "mug", Color: "silver", Material: "stainless steel", InStock: true,
		},
		{
			ID: "hoodie-001", Name: "Cotton Hoodie - Black",
			Desc: "Comfortable cotton hoodie with front pocket", Price: 1299, Currency: "INR",
			Category: "hoodie", Color: "black", Material: "cotton",
			Sizes: []string{"S", "M", "L", "XL"}, InStock: true,
		},
		{
			ID: "hoodie-002", Name: "Cotton Hoodie - Navy Blue",
			Desc: "Premium navy blue hoodie with zipper", Price: 1499, Currency: "INR",
			Category: "hoodie", Color: "navy blue", Material: "cotton",
			Sizes: []string{"S", "M", "L", "XL"}, InStock: true,
		},
		{
			ID: "hoodie-003", Name: "Fleece Hoodie - Grey",
			Desc: "Warm fleece hoodie perfect for winter", Price: 1799, Currency: "INR",
			Category: "hoodie", Color: "grey", Material: "fleece",
			Sizes: []string{"M", "L", "XL", "XXL"}, InStock: true,
		},
		{
			ID: "tshirt-001", Name: "Cotton T-Shirt - White",
			Desc: "Basic white cotton t-shirt", Price: 399, Currency: "INR",
			Category: "tshirt", Color: "white", Material: "cotton",
			Sizes: []string{"S", "M", "L", "XL"}, InStock: true,
		},
		{
			ID: "tshirt-002", Name: "Cotton T-Shirt - Black",
			Desc: "Classic black cotton t-shirt", Price: 399, Currency: "INR",
			Category: "tshirt", Color: "black", Material: "cotton",
			Sizes: []string{"S", "M", "L", "XL"}, InStock: true,
		},
		{
			ID: "tshirt-003", Name: "Graphic T-Shirt - Blue",
			Desc: "Cool graphic print t-shirt", Price: 599, Currency: "INR",
			Category: "tshirt", Color: "blue", Material: "cotton blend",
			Sizes: []string{"M", "L", "XL"}, InStock: true,
		},
		{
			ID: "cap-001", Name: "Baseball Cap - Black",
			Desc: "Adjustable baseball cap", Price: 349, Currency: "INR",
			Category: "cap", Color: "black", Material: "cotton", InStock: true,
		},
		{
			ID: "mobile-001", Name: "Lumia One - Slate Grey",
			Desc: "Compact 6.1 inch smartphone with two-day battery", Price: 18999, Currency: "INR",
			Category: "mobile", Color: "grey", Material: "aluminium", InStock: true,
		},
		{
			ID: "mobile-002", Name: "Lumia One Plus - Midnight Blue",
			Desc: "6.7 inch smartphone with telephoto camera", Price: 27999, Currency: "INR",
			Category: "mobile", Color: "blue", Material: "aluminium", InStock: true,
		},
	}
}
