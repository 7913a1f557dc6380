// Package play keeps score for one game: whose turn it is, which cells have
// been answered and which question is open.
package play

import (
	"maps"
	"slices"

	"github.com/playperu/triviaboard/internal/trivia"
)

type Player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Selected is the open question, captured when it was opened.
type Selected struct {
	Value       int    `json:"value"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category"`
	Key         string `json:"key"`
	PlayerIndex int    `json:"playerIndex"`
}

// Result describes a marked answer.
type Result struct {
	Key         string
	PlayerIndex int
	PointChange int
	Correct     bool
	Complete    bool
}

type Engine struct {
	doc      trivia.Document
	total    int
	players  []Player
	current  int
	answered map[string]bool
	selected *Selected
	revealed bool
}

// NewEngine starts a game on doc with one zero-score player per name.
func NewEngine(doc trivia.Document, names []string) *Engine {
	players := make([]Player, len(names))
	for i, n := range names {
		players[i] = Player{Name: n}
	}
	return &Engine{
		doc:      doc,
		total:    len(doc.Keys()),
		players:  players,
		answered: make(map[string]bool),
	}
}

// OpenQuestion opens q for the current player. It does nothing if another
// question is open or the cell has been answered.
func (e *Engine) OpenQuestion(category string, q trivia.Question) bool {
	if e.selected != nil {
		return false
	}
	key := trivia.Key(category, q.Value)
	if e.answered[key] {
		return false
	}
	e.selected = &Selected{
		Value:       q.Value,
		Question:    q.Question,
		Answer:      q.Answer,
		Image:       q.Image,
		Category:    category,
		Key:         key,
		PlayerIndex: e.current,
	}
	e.revealed = false
	return true
}

// RevealAnswer shows the open question's answer. There is no way to hide it
// again.
func (e *Engine) RevealAnswer() bool {
	if e.selected == nil || e.revealed {
		return false
	}
	e.revealed = true
	return true
}

// MarkAnswer scores the open question for the player it was opened for and
// passes the turn. ok is false when nothing is open or the recorded player
// no longer exists.
func (e *Engine) MarkAnswer(correct bool) (res Result, ok bool) {
	sel := e.selected
	if sel == nil {
		return Result{}, false
	}
	if sel.PlayerIndex < 0 || sel.PlayerIndex >= len(e.players) {
		return Result{}, false
	}

	change := sel.Value
	if !correct {
		change = -change
	}

	e.answered[sel.Key] = true
	e.players[sel.PlayerIndex].Score += change
	e.selected = nil
	e.revealed = false

	if len(e.players) == 0 {
		e.current = 0
	} else {
		e.current = (e.current + 1) % len(e.players)
	}

	return Result{
		Key:         sel.Key,
		PlayerIndex: sel.PlayerIndex,
		PointChange: change,
		Correct:     correct,
		Complete:    e.Complete(),
	}, true
}

// Complete reports whether every distinct cell of the board is answered.
func (e *Engine) Complete() bool {
	return len(e.answered) == e.total
}

// Winners returns every player holding the top score. More than one means a
// tie.
func (e *Engine) Winners() []Player {
	if len(e.players) == 0 {
		return nil
	}
	best := e.players[0].Score
	for _, p := range e.players[1:] {
		best = max(best, p.Score)
	}
	var out []Player
	for _, p := range e.players {
		if p.Score == best {
			out = append(out, p)
		}
	}
	return out
}

func (e *Engine) Players() []Player { return slices.Clone(e.players) }

func (e *Engine) CurrentPlayer() int { return e.current }

func (e *Engine) IsAnswered(key string) bool { return e.answered[key] }

// Answered returns the answered keys in sorted order.
func (e *Engine) Answered() []string {
	return slices.Sorted(maps.Keys(e.answered))
}

// Selected returns a copy of the open question.
func (e *Engine) Selected() (Selected, bool) {
	if e.selected == nil {
		return Selected{}, false
	}
	return *e.selected, true
}

func (e *Engine) Revealed() bool { return e.revealed }

// TotalQuestions is the number of distinct cells that must be answered.
func (e *Engine) TotalQuestions() int { return e.total }
