package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/playperu/triviaboard/internal/app"
)

// maxBodyBytes bounds command bodies and uploaded game files.
const maxBodyBytes = 1 << 20

// SessionResponse is a session's ID alongside its current state.
type SessionResponse struct {
	ID string `json:"id"`
	app.Snapshot
}

// handleCreateSession starts a session at the menu. With ?board=<id> the
// saved board replaces the example for both play and editing.
func handleCreateSession(logger *slog.Logger, sessions *Registry, boards BoardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opts []app.Option
		if id := r.URL.Query().Get("board"); id != "" {
			doc, err := boards.GetBoard(r.Context(), id)
			if err != nil {
				writeDomainError(w, logger, err)
				return
			}
			opts = append(opts, app.WithDocument(doc))
		}

		sess := sessions.Create(opts...)
		w.Header().Set("Location", "/api/sessions/"+sess.ID)
		writeJSON(w, http.StatusCreated, SessionResponse{ID: sess.ID, Snapshot: sess.Machine.Snapshot()})
	}
}

func handleGetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		writeJSON(w, http.StatusOK, SessionResponse{ID: sess.ID, Snapshot: sess.Machine.Snapshot()})
	}
}

func handleDeleteSession(sessions *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Remove(sessionFrom(r).ID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleCommand applies one tagged command, e.g.
// {"type":"open_question","category":0,"question":2}.
func handleCommand(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}

		cmd, err := app.DecodeCommand(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		dispatch(w, logger, sess, cmd)
	}
}

// dispatch applies cmd and answers with the resulting snapshot.
func dispatch(w http.ResponseWriter, logger *slog.Logger, sess *Session, cmd app.Command) {
	snap, err := sess.Machine.Dispatch(cmd)
	if err != nil {
		logger.Debug("command rejected", "session", sess.ID, "command", cmd.Type(), "error", err)
		writeDomainError(w, logger, err)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{ID: sess.ID, Snapshot: snap})
}
