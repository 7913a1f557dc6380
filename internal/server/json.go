package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/playperu/triviaboard/internal/app"
	"github.com/playperu/triviaboard/internal/trivia"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. Anything it
// does not recognise is logged and reported as a 500.
func writeDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var formatErr *trivia.InvalidFormatError
	var validationErr *trivia.ValidationError

	switch {
	case errors.As(err, &formatErr):
		writeError(w, http.StatusUnprocessableEntity, formatErr.Error())
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, app.ErrUnknownCommand):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
