package world

import "github.com/andsky/talekeeper/pkg/domain"

// fallenTagline opens a Fallen Kingdom session.
const fallenTagline = "The fate of the kingdom rests in your hands. A dark sorcerer has stolen the Crown of Eternity. You must reclaim it and restore the light!"

// FallenKingdomScenes is the second built-in narrative graph: three routes to
// the Shadow Citadel, each with one true path and dead ends looping back to
// the intro.
func FallenKingdomScenes() []domain.Scene {
	return []domain.Scene{
		{
			ID:    "intro",
			Title: "The Fallen Kingdom",
			Desc: "You stand before the ruins of Valdris, once the greatest kingdom in the realm. " +
				"A dark sorcerer has stolen the Crown of Eternity, plunging the land into eternal night. " +
				"Ancient texts speak of three paths to the Shadow Citadel where the crown is held: " +
				"the Crimson Catacombs beneath the old palace, the Whispering Woods to the east, " +
				"or the Frozen Peaks where dragons once nested.",
			Choices: []domain.Choice{
				{ID: "enter_catacombs", Desc: "Descend into the Crimson Catacombs", ResultScene: "catacombs"},
				{ID: "enter_woods", Desc: "Journey through the Whispering Woods", ResultScene: "woods"},
				{ID: "climb_peaks", Desc: "Scale the Frozen Peaks", ResultScene: "peaks"},
			},
		},
		{
			ID:    "catacombs",
			Title: "The Crimson Catacombs",
			Desc: "Ancient bones line the walls, and the air reeks of decay. " +
				"You hear whispers echoing from deeper within. Two passages lie ahead: " +
				"one marked with royal seals, the other carved with warning runes in an old tongue.",
			Choices: []domain.Choice{
				{ID: "royal_passage", Desc: "Take the passage with royal seals", ResultScene: "shadow_gate"},
				{ID: "runed_passage", Desc: "Enter the passage with warning runes", ResultScene: "dead_end"},
			},
		},
		{
			ID:    "woods",
			Title: "The Whispering Woods",
			Desc: "The trees seem alive, their branches reaching toward you like skeletal fingers. " +
				"Ghostly voices call your name from all directions. You spot two trails: " +
				"one illuminated by strange blue fireflies, another shrouded in complete darkness.",
			Choices: []domain.Choice{
				{ID: "firefly_trail", Desc: "Follow the blue fireflies", ResultScene: "shadow_gate"},
				{ID: "dark_trail", Desc: "Brave the pitch-black trail", ResultScene: "dead_end"},
			},
		},
		{
			ID:    "peaks",
			Title: "The Frozen Peaks",
			Desc: "Howling winds cut through you like blades of ice. Ancient dragon bones jut from the snow. " +
				"You discover two paths carved into the mountainside: " +
				"one leading to a collapsed dragon's lair, another to a mysterious ice cave glowing with ethereal light.",
			Choices: []domain.Choice{
				{ID: "ice_cave", Desc: "Enter the glowing ice cave", ResultScene: "shadow_gate"},
				{ID: "dragon_lair", Desc: "Explore the collapsed dragon's lair", ResultScene: "dead_end"},
			},
		},
		{
			ID:    "dead_end",
			Title: "A Fatal Mistake",
			Desc: "The path crumbles beneath your feet. Shadow creatures emerge from the darkness, " +
				"forcing you to retreat. You must find another way.",
			Choices: []domain.Choice{
				{ID: "retreat", Desc: "Retreat and try a different path", ResultScene: "intro"},
			},
		},
		{
			ID:    "shadow_gate",
			Title: "The Shadow Gate",
			Desc: "You emerge before a massive obsidian gate, pulsing with dark energy. " +
				"The Shadow Citadel looms beyond. Two guardian statues flank the entrance. " +
				"One holds a sword, the other a shield. Ancient text reads: 'Only the worthy may pass.'",
			Choices: []domain.Choice{
				{ID: "touch_sword", Desc: "Touch the statue holding the sword", ResultScene: "trial_of_courage"},
				{ID: "touch_shield", Desc: "Touch the statue holding the shield", ResultScene: "dead_end"},
				{ID: "force_gate", Desc: "Try to force the gate open", ResultScene: "dead_end"},
			},
		},
		{
			ID:    "trial_of_courage",
			Title: "Trial of Courage",
			Desc: "The sword statue comes alive! It challenges you to prove your worth. " +
				"A spectral blade materializes in your hand. The guardian attacks with blinding speed. " +
				"You must choose your fighting stance.",
			Choices: []domain.Choice{
				{ID: "defensive_stance", Desc: "Take a defensive stance and wait for an opening", ResultScene: "throne_room"},
				{ID: "aggressive_attack", Desc: "Launch an aggressive assault", ResultScene: "dead_end"},
			},
		},
		{
			ID:    "throne_room",
			Title: "The Dark Throne Room",
			Desc: "You've passed the trial! The gate opens to reveal the sorcerer's throne room. " +
				"The Crown of Eternity sits on a pedestal, radiating pure light in this realm of darkness. " +
				"The sorcerer himself stands before you, dark magic crackling around his hands. " +
				"'You dare challenge me?' he snarls.",
			Choices: []domain.Choice{
				{ID: "grab_crown", Desc: "Ignore him and grab the Crown of Eternity", ResultScene: "victory"},
				{ID: "fight_sorcerer", Desc: "Engage the sorcerer in combat first", ResultScene: "dead_end"},
				{ID: "negotiate", Desc: "Try to negotiate with the sorcerer", ResultScene: "dead_end"},
			},
		},
		{
			ID:    "victory",
			Title: "The Kingdom Restored",
			Desc: "You seize the Crown of Eternity! Brilliant light explodes from it, banishing the darkness. " +
				"The sorcerer screams as his power dissolves into nothingness. " +
				"Dawn breaks over Valdris for the first time in years. The kingdom is saved, " +
				"and you are hailed as the legendary hero who restored the light. " +
				"Your name will echo through history forever!",
			Choices: []domain.Choice{
				{ID: "new_adventure", Desc: "Begin a new adventure", ResultScene: "intro"},
			},
		},
	}
}
