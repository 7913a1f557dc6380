package app

import "github.com/playperu/triviaboard/internal/play"

type EventType string

const (
	EventModeChanged      EventType = "mode_changed"
	EventSetupStarted     EventType = "setup_started"
	EventNamePrompt       EventType = "name_prompt"
	EventGameStarted      EventType = "game_started"
	EventQuestionOpened   EventType = "question_opened"
	EventAnswerRevealed   EventType = "answer_revealed"
	EventAnswerMarked     EventType = "answer_marked"
	EventIndicatorCleared EventType = "indicator_cleared"
	EventGameComplete     EventType = "game_complete"
	EventWinnerRevealed   EventType = "winner_revealed"
	EventBuilderChanged   EventType = "builder_changed"
	EventDocumentImported EventType = "document_imported"
	EventDeletePending    EventType = "delete_pending"
	EventLoadPending      EventType = "load_pending"
)

// Event is published to a session's subscribers after each state change.
type Event struct {
	Type        EventType     `json:"type"`
	Mode        Mode          `json:"mode,omitempty"`
	Key         string        `json:"key,omitempty"`
	Player      string        `json:"player,omitempty"`
	PointChange int           `json:"pointChange,omitempty"`
	Correct     bool          `json:"correct,omitempty"`
	Category    *int          `json:"category,omitempty"`
	PlayerIndex *int          `json:"playerIndex,omitempty"`
	Winners     []play.Player `json:"winners,omitempty"`
	Tie         bool          `json:"tie,omitempty"`
	Message     string        `json:"message,omitempty"`
}

func (m *Machine) emit(e Event) {
	m.pending = append(m.pending, e)
}

// drain takes the queued events. Must be called with m.mu held.
func (m *Machine) drain() []Event {
	events := m.pending
	m.pending = nil
	return events
}

// unlockAndPublish releases m.mu and publishes events. The next change can
// commit meanwhile but cannot publish until these are out. Must be called
// with m.mu held.
func (m *Machine) unlockAndPublish(events []Event) {
	m.pubMu.Lock()
	m.mu.Unlock()
	defer m.pubMu.Unlock()

	if m.publish == nil {
		return
	}
	for _, e := range events {
		m.publish(e)
	}
}

func intPtr(i int) *int { return &i }
