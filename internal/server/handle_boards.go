package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/triviaboard/internal/app"
	"github.com/playperu/triviaboard/internal/trivia"
)

func handleListBoards(logger *slog.Logger, boards BoardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := boards.ListBoards(r.Context())
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// handleSaveBoard shelves an uploaded game file after the same checks an
// import gets.
func handleSaveBoard(logger *slog.Logger, boards BoardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := readGameFile(w, r)
		if !ok {
			return
		}
		doc, err := trivia.Parse(data)
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}

		summary, err := boards.SaveBoard(r.Context(), doc)
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		w.Header().Set("Location", "/api/boards/"+summary.ID)
		writeJSON(w, http.StatusCreated, summary)
	}
}

func handleGetBoard(logger *slog.Logger, boards BoardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := boards.GetBoard(r.Context(), chi.URLParam(r, "boardID"))
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		data, err := trivia.Encode(doc)
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		writeGameFile(w, r, doc.Filename(), data)
	}
}

func handleDeleteBoard(logger *slog.Logger, boards BoardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := boards.DeleteBoard(r.Context(), chi.URLParam(r, "boardID")); err != nil {
			writeDomainError(w, logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// handlePlayBoard loads a saved board into the session and starts player
// setup.
func handlePlayBoard(logger *slog.Logger, boards BoardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := boards.GetBoard(r.Context(), chi.URLParam(r, "boardID"))
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		dispatch(w, logger, sessionFrom(r), app.LoadGame{Document: doc})
	}
}

func handleEditBoard(logger *slog.Logger, boards BoardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := boards.GetBoard(r.Context(), chi.URLParam(r, "boardID"))
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		dispatch(w, logger, sessionFrom(r), app.EditDocument{Document: doc})
	}
}
