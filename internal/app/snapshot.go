package app

import (
	"github.com/playperu/triviaboard/internal/play"
	"github.com/playperu/triviaboard/internal/setup"
	"github.com/playperu/triviaboard/internal/trivia"
)

// Snapshot is everything a client needs to render a session.
type Snapshot struct {
	Mode     Mode            `json:"mode"`
	Tab      Tab             `json:"tab"`
	Document trivia.Document `json:"document"`
	Builder  BuilderView     `json:"builder"`
	Setup    SetupView       `json:"setup"`
	Game     *GameView       `json:"game,omitempty"`
}

type BuilderView struct {
	Document       trivia.Document `json:"document"`
	PendingDelete  *int            `json:"pendingDelete"`
	LoadPending    bool            `json:"loadPending"`
	Expanded       int             `json:"expanded"`
	DuplicateNames []string        `json:"duplicateNames"`
}

type SetupView struct {
	Stage setup.Stage `json:"stage"`
	Count int         `json:"count"`
	Index int         `json:"index"`
	Names []string    `json:"names"`
}

type GameView struct {
	Players        []play.Player  `json:"players"`
	CurrentPlayer  int            `json:"currentPlayer"`
	Answered       []string       `json:"answered"`
	TotalQuestions int            `json:"totalQuestions"`
	Selected       *play.Selected `json:"selected"`
	Revealed       bool           `json:"revealed"`
	Indicator      Indicator      `json:"indicator"`
	Complete       bool           `json:"complete"`
	WinnerRevealed bool           `json:"winnerRevealed"`
	Winners        []play.Player  `json:"winners"`
}

func (m *Machine) snapshot() Snapshot {
	s := Snapshot{
		Mode:     m.mode,
		Tab:      m.tab,
		Document: m.doc.Clone(),
		Builder: BuilderView{
			Document:       m.builder.Document(),
			LoadPending:    m.builder.LoadPending(),
			Expanded:       m.builder.Expanded(),
			DuplicateNames: m.builder.DuplicateNames(),
		},
		Setup: SetupView{
			Stage: m.wizard.Stage(),
			Count: m.wizard.Count(),
			Index: m.wizard.Index(),
			Names: m.wizard.Names(),
		},
	}
	if i, ok := m.builder.PendingDelete(); ok {
		s.Builder.PendingDelete = &i
	}
	if s.Builder.DuplicateNames == nil {
		s.Builder.DuplicateNames = []string{}
	}
	if s.Setup.Names == nil {
		s.Setup.Names = []string{}
	}

	if m.engine == nil {
		return s
	}

	g := &GameView{
		Players:        m.engine.Players(),
		CurrentPlayer:  m.engine.CurrentPlayer(),
		Answered:       m.engine.Answered(),
		TotalQuestions: m.engine.TotalQuestions(),
		Revealed:       m.engine.Revealed(),
		Indicator:      m.indicator,
		Complete:       m.complete,
		WinnerRevealed: m.winnerRevealed,
		Winners:        []play.Player{},
	}
	if g.Answered == nil {
		g.Answered = []string{}
	}
	if sel, ok := m.engine.Selected(); ok {
		if !g.Revealed {
			sel.Answer = ""
		}
		g.Selected = &sel
	}
	if m.winnerRevealed {
		g.Winners = m.engine.Winners()
	}
	s.Game = g
	return s
}
