package engine

import (
	"fmt"
	"strings"

	"github.com/andsky/talekeeper/pkg/domain"
	"github.com/andsky/talekeeper/pkg/resolve"
)

// StartAdventure resets the whole session and greets the player. Every field
// reinitializes together; a start is never partial.
func (a *Agent) StartAdventure(playerName string) string {
	if strings.TrimSpace(playerName) == "" {
		playerName = "traveler"
	}

	a.state.Reset(a.newID(), a.registry.StartScene(), a.now())
	a.state.PlayerName = playerName

	a.logger.Info("adventure started", "session_id", a.state.SessionID, "player", playerName)

	return fmt.Sprintf("%s\n\n%s", a.greeting(playerName), a.scenePrompt(a.state.CurrentScene))
}

func (a *Agent) greeting(playerName string) string {
	switch a.persona {
	case PersonaShopkeeper:
		return fmt.Sprintf("Welcome to the shop, %s! Wander around if you like, or ask for the catalog any time.", playerName)
	default:
		tagline := a.registry.Tagline()
		if tagline == "" {
			tagline = "Your adventure begins."
		}
		return fmt.Sprintf("Welcome, %s! %s", playerName, tagline)
	}
}

// GetScene renders the current scene prompt without mutating anything.
func (a *Agent) GetScene() string {
	return a.scenePrompt(a.state.CurrentScene)
}

// PlayerAction resolves free-text input against the current scene's choices
// and applies the transition. It always returns renderable text; an
// unresolvable action re-lists the choices and leaves the state untouched.
func (a *Agent) PlayerAction(action string) string {
	current := a.state.CurrentScene
	scene, ok := a.registry.GetScene(current)
	if !ok {
		return fallbackPrompt
	}

	choice, ok := resolve.Choice(action, scene)
	if !ok {
		return "I didn't understand that action. Try using one of the listed choices.\n\n" +
			a.scenePrompt(current)
	}

	// The whole transition is one atomic state edit: effects, history,
	// choice log, then the scene move.
	a.applyEffects(choice.Effects)
	a.state.History = append(a.state.History, domain.TransitionRecord{
		From:   current,
		Action: choice.ID,
		To:     choice.ResultScene,
		Time:   a.now(),
	})
	a.state.ChoicesMade = append(a.state.ChoicesMade, choice.ID)
	a.state.CurrentScene = choice.ResultScene

	return fmt.Sprintf(
		"The Game Master speaks softly:\n\nYou chose '%s'.\n\n%s",
		choice.ID, a.scenePrompt(choice.ResultScene),
	)
}

// applyEffects mutates the session per each effect, in declaration order.
// Appends are not deduplicated; taking the same choice twice records twice.
func (a *Agent) applyEffects(effects []domain.Effect) {
	for _, e := range effects {
		switch e.Kind {
		case domain.EffectJournal:
			a.state.Journal = append(a.state.Journal, e.Value)
		case domain.EffectInventory:
			a.state.Inventory = append(a.state.Inventory, e.Value)
		default:
			a.logger.Warn("unknown effect kind ignored", "kind", e.Kind)
		}
	}
}

// ShowJournal renders the session header, journal, inventory, and the last
// six history entries.
func (a *Agent) ShowJournal() string {
	s := a.state
	lines := []string{
		fmt.Sprintf("Session: %s | Started: %s", s.SessionID, s.StartedAt.Format("2006-01-02T15:04:05Z")),
	}
	if s.PlayerName != "" {
		lines = append(lines, fmt.Sprintf("Player: %s", s.PlayerName))
	}

	if len(s.Journal) > 0 {
		lines = append(lines, "\nJournal entries:")
		for _, j := range s.Journal {
			lines = append(lines, "- "+j)
		}
	} else {
		lines = append(lines, "\nJournal is empty.")
	}

	if len(s.Inventory) > 0 {
		lines = append(lines, "\nInventory:")
		for _, item := range s.Inventory {
			lines = append(lines, "- "+item)
		}
	} else {
		lines = append(lines, "\nNo items in inventory.")
	}

	lines = append(lines, "\nRecent choices:")
	history := s.History
	if len(history) > 6 {
		history = history[len(history)-6:]
	}
	for _, h := range history {
		lines = append(lines, fmt.Sprintf("- %s | %s -> %s via %s",
			h.Time.Format("2006-01-02T15:04:05Z"), h.From, h.To, h.Action))
	}

	lines = append(lines, "\nWhat do you do?")
	return strings.Join(lines, "\n")
}

// RestartAdventure resets the session. The reset is uniform with
// StartAdventure: player name and named NPCs clear too, so restart and start
// always agree on what a fresh session looks like.
func (a *Agent) RestartAdventure() string {
	a.state.Reset(a.newID(), a.registry.StartScene(), a.now())
	a.logger.Info("adventure restarted", "session_id", a.state.SessionID)

	return "The isle resets around you. A new tide washes the sand.\n\n" +
		a.scenePrompt(a.state.CurrentScene)
}
