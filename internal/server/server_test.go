package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/triviaboard/internal/app"
	"github.com/playperu/triviaboard/internal/database"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	ctx := context.Background()

	// Real SQLite in-memory DB, no mocks needed.
	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	boards, err := NewDocStore(ctx, db)
	if err != nil {
		t.Fatalf("init board store: %v", err)
	}

	broker := NewBroker()
	sessions := NewRegistry(discardLogger(), broker, time.Hour,
		app.WithDelays(app.Delays{Celebration: time.Millisecond, WinReveal: time.Millisecond}))
	t.Cleanup(sessions.Close)

	return Deps{
		Sessions:  sessions,
		Broker:    broker,
		Boards:    boards,
		Checks:    map[string]Checker{"sqlite": PingChecker(db)},
		PublicURL: "http://trivia.test",
	}
}

func testRouter(t *testing.T) (*chi.Mux, Deps) {
	t.Helper()
	deps := testDeps(t)
	return newRouter(discardLogger(), deps), deps
}

func do(t *testing.T, h http.Handler, method, path string, body []byte, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v (%s)", err, w.Body.String())
	}
	return v
}

func createSession(t *testing.T, h http.Handler) SessionResponse {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/sessions", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: status = %d, want %d", w.Code, http.StatusCreated)
	}
	return decode[SessionResponse](t, w)
}

// command posts a command and returns the recorder.
func command(t *testing.T, h http.Handler, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, h, http.MethodPost, "/api/sessions/"+id+"/commands", []byte(body))
}

func mustCommand(t *testing.T, h http.Handler, id string, bodies ...string) SessionResponse {
	t.Helper()
	var resp SessionResponse
	for _, b := range bodies {
		w := command(t, h, id, b)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want %d: %s", b, w.Code, http.StatusOK, w.Body.String())
		}
		resp = decode[SessionResponse](t, w)
	}
	return resp
}
