package domain

import "time"

// TransitionRecord captures one scene transition for the session history.
type TransitionRecord struct {
	From   string    `json:"from"`
	Action string    `json:"action"`
	To     string    `json:"to"`
	Time   time.Time `json:"time"`
}

// LineItem is one cart entry. Identical lines are never merged; each add
// appends a new entry.
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

// EventRecord is an action-tagged audit entry for the shopping history.
type EventRecord struct {
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
	Time   time.Time `json:"time"`
}

// State is the mutable per-conversation record. A State is owned exclusively
// by one conversation; the driver awaits each tool result before the next
// turn, so tool calls against it are strictly sequential.
type State struct {
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`

	// Adventure fields.
	PlayerName   string             `json:"player_name,omitempty"`
	CurrentScene string             `json:"current_scene"`
	History      []TransitionRecord `json:"history"`
	Journal      []string           `json:"journal"`
	Inventory    []string           `json:"inventory"`
	NamedNPCs    map[string]string  `json:"named_npcs"`
	ChoicesMade  []string           `json:"choices_made"`

	// Shopping fields.
	Cart   []LineItem    `json:"cart"`
	Orders []Order       `json:"orders"`
	Events []EventRecord `json:"events"`
}

// NewState creates a fresh session positioned at the given start scene.
func NewState(sessionID, startScene string, now time.Time) *State {
	return &State{
		SessionID:    sessionID,
		StartedAt:    now,
		CurrentScene: startScene,
		History:      []TransitionRecord{},
		Journal:      []string{},
		Inventory:    []string{},
		NamedNPCs:    map[string]string{},
		ChoicesMade:  []string{},
		Cart:         []LineItem{},
		Orders:       []Order{},
		Events:       []EventRecord{},
	}
}

// Reset reinitializes every field in place. Start and restart both go
// through here so the reset is always atomic, never partial.
func (s *State) Reset(sessionID, startScene string, now time.Time) {
	*s = *NewState(sessionID, startScene, now)
}
