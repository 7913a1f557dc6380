package app

import (
	"context"
	"time"
)

// Scheduler runs f once after d. It exists so tests can drive time by hand.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Delays are the fixed pauses used during play.
type Delays struct {
	// Celebration is how long the correct/wrong indicator stays up.
	Celebration time.Duration
	// WinReveal is the pause between the last answer and the winner reveal.
	WinReveal time.Duration
}

var DefaultDelays = Delays{
	Celebration: 1200 * time.Millisecond,
	WinReveal:   1500 * time.Millisecond,
}

// schedule runs fn under the machine lock after d, unless the play session
// that scheduled it has been reset in the meantime. Must be called with m.mu
// held.
func (m *Machine) schedule(d time.Duration, fn func()) {
	ctx := m.session
	t := m.sched.AfterFunc(d, func() {
		m.mu.Lock()
		if ctx.Err() != nil {
			m.mu.Unlock()
			return
		}
		fn()
		m.unlockAndPublish(m.drain())
	})
	context.AfterFunc(ctx, func() { t.Stop() })
}

// newSession cancels every timer of the previous play session.
func (m *Machine) newSession() {
	if m.cancel != nil {
		m.cancel()
	}
	m.session, m.cancel = context.WithCancel(context.Background())
}
