// Package app is the top-level state machine of a trivia session. It moves
// between the menu, the builder, player setup and play, and owns the live
// board, the builder's board and everything the current game keeps.
//
// All changes go through Dispatch, which applies one Command atomically and
// then publishes the resulting events. Timers started during play belong to
// the play session and are cancelled whenever that session is reset.
package app

import (
	"context"
	"sync"

	"github.com/playperu/triviaboard/internal/builder"
	"github.com/playperu/triviaboard/internal/play"
	"github.com/playperu/triviaboard/internal/setup"
	"github.com/playperu/triviaboard/internal/trivia"
)

type Mode string

const (
	ModeMenu        Mode = "MENU"
	ModeBuilder     Mode = "BUILDER"
	ModePlayerSetup Mode = "PLAYER_SETUP"
	ModePlaying     Mode = "PLAYING"
)

// Tab is the menu tab selection.
type Tab string

const (
	TabPlay    Tab = "play"
	TabBuilder Tab = "builder"
)

type Indicator string

const (
	IndicatorNone    Indicator = ""
	IndicatorCorrect Indicator = "correct"
	IndicatorWrong   Indicator = "wrong"
)

type Machine struct {
	mu sync.Mutex

	mode    Mode
	tab     Tab
	doc     trivia.Document
	builder *builder.Builder
	wizard  *setup.Wizard

	engine         *play.Engine
	indicator      Indicator
	complete       bool
	winnerRevealed bool

	session context.Context
	cancel  context.CancelFunc
	sched   Scheduler
	delays  Delays

	pending []Event
	publish func(Event)
	// pubMu is taken before mu is released so events leave in commit order.
	pubMu sync.Mutex
}

type Option func(*Machine)

// WithScheduler replaces the wall-clock timer source.
func WithScheduler(s Scheduler) Option {
	return func(m *Machine) { m.sched = s }
}

func WithDelays(d Delays) Option {
	return func(m *Machine) { m.delays = d }
}

// WithPublisher receives every event after the change that caused it has
// been committed, in commit order. fn must not call back into the machine.
func WithPublisher(fn func(Event)) Option {
	return func(m *Machine) { m.publish = fn }
}

// WithDocument preloads doc instead of the bundled example.
func WithDocument(doc trivia.Document) Option {
	return func(m *Machine) {
		m.doc = doc.Clone()
		m.builder = builder.New(doc)
	}
}

// New returns a machine at the menu with the example board loaded for both
// play and editing.
func New(opts ...Option) *Machine {
	example := trivia.Example()
	m := &Machine{
		mode:    ModeMenu,
		tab:     TabPlay,
		doc:     example,
		builder: builder.New(example),
		wizard:  setup.New(),
		sched:   wallClock{},
		delays:  DefaultDelays,
	}
	for _, o := range opts {
		o(m)
	}
	m.newSession()
	return m
}

// Dispatch applies cmd. On error nothing has changed.
func (m *Machine) Dispatch(cmd Command) (Snapshot, error) {
	m.mu.Lock()
	err := cmd.apply(m)
	var events []Event
	if err != nil {
		m.pending = nil
	} else {
		events = m.drain()
	}
	snap := m.snapshot()
	m.unlockAndPublish(events)
	return snap, err
}

func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *Machine) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// ExportBuilder returns the builder's board as a download: its filename and
// the indented JSON.
func (m *Machine) ExportBuilder() (string, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.builder.Export()
}

// Close stops all pending timers.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancel()
}

func (m *Machine) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	m.emit(Event{Type: EventModeChanged, Mode: mode})
}

// resetPlay discards the current game and cancels its timers.
func (m *Machine) resetPlay() {
	m.newSession()
	m.engine = nil
	m.indicator = IndicatorNone
	m.complete = false
	m.winnerRevealed = false
}

func (m *Machine) startPlayerSetup() error {
	if m.mode != ModeMenu {
		return trivia.Invalid("mode", "player setup starts from the menu")
	}
	m.enterSetup()
	return nil
}

// loadGame replaces the live board and starts player setup from any mode.
func (m *Machine) loadGame(doc trivia.Document) {
	m.doc = doc
	m.enterSetup()
}

// enterSetup commits the mode change before announcing the count prompt, so
// subscribers never see the prompt ahead of the mode it belongs to.
func (m *Machine) enterSetup() {
	m.resetPlay()
	m.builder.CancelLoad()
	m.setMode(ModePlayerSetup)
	m.wizard.Open()
	m.emit(Event{Type: EventSetupStarted, Mode: m.mode})
}

func (m *Machine) startGame(names []string) {
	m.resetPlay()
	m.engine = play.NewEngine(m.doc.Clone(), names)
	m.setMode(ModePlaying)
	m.emit(Event{Type: EventGameStarted, Mode: m.mode})
	if m.engine.Complete() {
		m.finish()
	}
}

func (m *Machine) returnToMenu() {
	m.resetPlay()
	m.wizard.Cancel()
	m.builder.CancelLoad()
	m.builder.CancelDelete()
	m.tab = TabPlay
	m.setMode(ModeMenu)
}

func (m *Machine) goToBuilder() error {
	if m.mode != ModeMenu && m.mode != ModeBuilder {
		return trivia.Invalid("mode", "the builder opens from the menu")
	}
	m.tab = TabBuilder
	m.setMode(ModeBuilder)
	return nil
}

func (m *Machine) markAnswer(correct bool) {
	if m.mode != ModePlaying || m.engine == nil {
		return
	}
	res, ok := m.engine.MarkAnswer(correct)
	if !ok {
		return
	}

	players := m.engine.Players()
	m.emit(Event{
		Type:        EventAnswerMarked,
		Key:         res.Key,
		Player:      players[res.PlayerIndex].Name,
		PlayerIndex: intPtr(res.PlayerIndex),
		PointChange: res.PointChange,
		Correct:     res.Correct,
	})

	if correct {
		m.indicator = IndicatorCorrect
	} else {
		m.indicator = IndicatorWrong
	}
	m.schedule(m.delays.Celebration, func() {
		m.indicator = IndicatorNone
		m.emit(Event{Type: EventIndicatorCleared})
	})

	if res.Complete {
		m.finish()
	}
}

// finish marks the game complete and reveals the winners after a pause so
// the last score indicator can play out.
func (m *Machine) finish() {
	if m.complete {
		return
	}
	m.complete = true
	m.emit(Event{Type: EventGameComplete})
	m.schedule(m.delays.WinReveal, func() {
		m.winnerRevealed = true
		winners := m.engine.Winners()
		m.emit(Event{
			Type:    EventWinnerRevealed,
			Winners: winners,
			Tie:     len(winners) > 1,
		})
	})
}

func (m *Machine) requireBuilder() error {
	if m.mode != ModeBuilder {
		return trivia.Invalid("mode", "the builder is not open")
	}
	return nil
}

func (m *Machine) builderChanged() {
	m.emit(Event{Type: EventBuilderChanged})
}
