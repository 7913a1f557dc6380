// Package setup collects the player count and then one name per player
// before a game starts.
package setup

import (
	"strings"

	"github.com/playperu/triviaboard/internal/trivia"
)

const (
	MinPlayers         = 1
	MaxPlayers         = 6
	DefaultPlayerCount = 2
)

type Stage string

const (
	StageClosed Stage = "closed"
	StageCount  Stage = "count"
	StageName   Stage = "name"
)

type Wizard struct {
	stage Stage
	count int
	names []string
	index int
}

func New() *Wizard {
	return &Wizard{stage: StageClosed, count: DefaultPlayerCount}
}

// Open shows the count prompt, discarding any earlier input.
func (w *Wizard) Open() {
	w.reset()
	w.stage = StageCount
}

// Cancel closes the wizard and discards partial input.
func (w *Wizard) Cancel() {
	w.reset()
}

func (w *Wizard) reset() {
	w.stage = StageClosed
	w.count = DefaultPlayerCount
	w.names = nil
	w.index = 0
}

// SubmitCount accepts a player count in [MinPlayers, MaxPlayers] and moves
// to the name prompt. A rejected count leaves the wizard at the count prompt.
func (w *Wizard) SubmitCount(n int) error {
	if w.stage != StageCount {
		return trivia.Invalid("stage", "not asking for a player count")
	}
	if n < MinPlayers || n > MaxPlayers {
		return trivia.Invalid("count", "please enter between %d and %d players", MinPlayers, MaxPlayers)
	}
	w.count = n
	w.names = make([]string, 0, n)
	w.index = 0
	w.stage = StageName
	return nil
}

// SubmitName records the next player's name. Once every name is in, done is
// true, names holds them in order and the wizard closes.
func (w *Wizard) SubmitName(text string) (names []string, done bool, err error) {
	if w.stage != StageName {
		return nil, false, trivia.Invalid("stage", "not asking for a player name")
	}
	name := strings.TrimSpace(text)
	if name == "" {
		return nil, false, trivia.Invalid("name", "please enter a player name")
	}

	w.names = append(w.names, name)
	if len(w.names) >= w.count {
		names = w.names
		w.reset()
		return names, true, nil
	}
	w.index++
	return nil, false, nil
}

func (w *Wizard) Stage() Stage { return w.stage }

// Count is the number of players being set up.
func (w *Wizard) Count() int { return w.count }

// Index is the zero-based player whose name is being asked for.
func (w *Wizard) Index() int { return w.index }

// Names returns the names collected so far.
func (w *Wizard) Names() []string {
	return append([]string(nil), w.names...)
}
