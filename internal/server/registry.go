package server

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/playperu/triviaboard/internal/app"
)

// Session is one hosted game: a state machine plus the time it was last used.
type Session struct {
	ID      string
	Machine *app.Machine
	Created time.Time

	lastSeen atomic.Int64
}

func (s *Session) touch(now time.Time) { s.lastSeen.Store(now.UnixNano()) }

func (s *Session) LastSeen() time.Time { return time.Unix(0, s.lastSeen.Load()) }

// Registry holds the live sessions and expires the idle ones.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	broker *Broker
	logger *slog.Logger
	ttl    time.Duration
	opts   []app.Option
	now    func() time.Time
}

// NewRegistry returns an empty registry. Sessions publish their events to
// broker and are built with opts.
func NewRegistry(logger *slog.Logger, broker *Broker, ttl time.Duration, opts ...app.Option) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		broker:   broker,
		logger:   logger,
		ttl:      ttl,
		opts:     opts,
		now:      time.Now,
	}
}

// Create starts a session. extra options apply after the registry's own.
func (r *Registry) Create(extra ...app.Option) *Session {
	id := uuid.NewString()
	opts := append(append([]app.Option(nil), r.opts...), extra...)
	opts = append(opts, app.WithPublisher(func(e app.Event) {
		r.broker.Publish(id, e)
	}))

	s := &Session{ID: id, Machine: app.New(opts...), Created: r.now()}
	s.touch(s.Created)

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	r.logger.Info("session created", "session", id)
	return s
}

// Get looks up a session and marks it as active.
func (r *Registry) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch(r.now())
	return s, nil
}

func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Machine.Close()
		r.broker.Drop(id)
	}
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Reap removes every session idle for longer than the TTL and returns how
// many it removed.
func (r *Registry) Reap() int {
	cutoff := r.now().Add(-r.ttl)

	var expired []string
	r.mu.RLock()
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	r.mu.RUnlock()

	n := 0
	for _, id := range expired {
		if r.Remove(id) {
			r.logger.Info("session expired", "session", id)
			n++
		}
	}
	return n
}

// Run reaps idle sessions until ctx is cancelled.
func (r *Registry) Run(ctx context.Context) error {
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Reap(); n > 0 {
				r.logger.Debug("reaped sessions", "count", n, "remaining", r.Len())
			}
		}
	}
}

// Close ends every session.
func (r *Registry) Close() {
	r.mu.Lock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Remove(id)
	}
}
