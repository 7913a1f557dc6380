package server

import (
	"context"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"

	"github.com/playperu/triviaboard/internal/trivia"
)

var ErrNotFound = errors.New("not found")

// BoardSummary describes a saved board without its questions.
type BoardSummary struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	CategoryCount int    `json:"categoryCount"`
	QuestionCount int    `json:"questionCount"`
	CreatedAt     string `json:"createdAt"`
}

// BoardStore is the shelf of saved boards.
type BoardStore interface {
	SaveBoard(ctx context.Context, doc trivia.Document) (BoardSummary, error)
	ListBoards(ctx context.Context) ([]BoardSummary, error)
	GetBoard(ctx context.Context, id string) (trivia.Document, error)
	DeleteBoard(ctx context.Context, id string) error
}

// BoardID is the content address of an exported board: the first 16 hex
// characters of its BLAKE2b-256 digest.
func BoardID(exported []byte) string {
	sum := blake2b.Sum256(exported)
	return hex.EncodeToString(sum[:])[:16]
}
