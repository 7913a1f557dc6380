package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/playperu/triviaboard/internal/trivia"
)

// DocStore implements BoardStore on a boards table with a JSONB data column.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(ctx context.Context, db *sql.DB) (*DocStore, error) {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS boards (
			id         TEXT PRIMARY KEY,
			slug       TEXT NOT NULL,
			title      TEXT NOT NULL,
			data       JSONB NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS boards_created_at ON boards (created_at)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}

	return &DocStore{db: db}, nil
}

// SaveBoard stores doc under its content ID. Saving the same board twice
// keeps the first copy and its creation time.
func (s *DocStore) SaveBoard(ctx context.Context, doc trivia.Document) (BoardSummary, error) {
	doc = doc.Clone()
	data, err := trivia.Encode(doc)
	if err != nil {
		return BoardSummary{}, fmt.Errorf("encoding board: %w", err)
	}
	id := BoardID(data)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO boards (id, slug, title, data, created_at) VALUES (?, ?, ?, jsonb(?), ?)
		 ON CONFLICT (id) DO NOTHING`,
		id, trivia.Slugify(doc.Title), doc.Title, string(data), now(),
	)
	if err != nil {
		return BoardSummary{}, fmt.Errorf("inserting board: %w", err)
	}

	var createdAt string
	if err := s.db.QueryRowContext(ctx, `SELECT created_at FROM boards WHERE id = ?`, id).Scan(&createdAt); err != nil {
		return BoardSummary{}, fmt.Errorf("reading board: %w", err)
	}
	return summarize(id, createdAt, doc), nil
}

func (s *DocStore) ListBoards(ctx context.Context) ([]BoardSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, json(data), created_at FROM boards ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boards := []BoardSummary{}
	for rows.Next() {
		var id, data, createdAt string
		if err := rows.Scan(&id, &data, &createdAt); err != nil {
			return nil, err
		}
		doc, err := trivia.Parse([]byte(data))
		if err != nil {
			return nil, fmt.Errorf("board %s: %w", id, err)
		}
		boards = append(boards, summarize(id, createdAt, doc))
	}
	return boards, rows.Err()
}

func (s *DocStore) GetBoard(ctx context.Context, id string) (trivia.Document, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT json(data) FROM boards WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return trivia.Document{}, ErrNotFound
	}
	if err != nil {
		return trivia.Document{}, err
	}

	doc, err := trivia.Parse([]byte(data))
	if err != nil {
		return trivia.Document{}, fmt.Errorf("board %s: %w", id, err)
	}
	return doc.Clone(), nil
}

func (s *DocStore) DeleteBoard(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func summarize(id, createdAt string, doc trivia.Document) BoardSummary {
	return BoardSummary{
		ID:            id,
		Slug:          trivia.Slugify(doc.Title),
		Title:         doc.Title,
		CategoryCount: len(doc.Categories),
		QuestionCount: doc.QuestionCount(),
		CreatedAt:     createdAt,
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
