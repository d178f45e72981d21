package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ideashare/backend/internal/domain"
)

// Execer is satisfied by pgx.Tx and *pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IdeaSeed describes a row for SeedIdea. Zero fields get sensible defaults:
// author "user-1", description "Build a robot", no title, tags or likes.
type IdeaSeed struct {
	AuthorID    string
	Title       string
	Description string
	Tags        []string
	Likes       []string
}

// SeedAuthor writes an author row directly, bypassing the repo under test.
func SeedAuthor(t *testing.T, db Execer, a domain.Author) domain.Author {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO authors (id, display_name, contact) VALUES ($1, $2, $3)`,
		a.ID, a.DisplayName, a.Contact)
	if err != nil {
		t.Fatalf("testutil.SeedAuthor(%q): %v", a.ID, err)
	}
	return a
}

// SeedIdea writes an idea row directly and returns its generated ID.
func SeedIdea(t *testing.T, db Execer, s IdeaSeed) uuid.UUID {
	t.Helper()

	if s.AuthorID == "" {
		s.AuthorID = "user-1"
	}
	if s.Description == "" {
		s.Description = "Build a robot"
	}
	var title *string
	if s.Title != "" {
		title = &s.Title
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO ideas (author_id, title, description, tags, likes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.AuthorID, title, s.Description, orEmpty(s.Tags), orEmpty(s.Likes),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.SeedIdea: %v", err)
	}
	return id
}

// DeleteIdeaOnCleanup removes a committed idea when t finishes. Pool-backed
// tests need it; NewTx rolls back on its own.
func DeleteIdeaOnCleanup(t *testing.T, db Execer, id uuid.UUID) {
	t.Helper()
	t.Cleanup(func() {
		_, _ = db.Exec(context.Background(), `DELETE FROM ideas WHERE id = $1`, id)
	})
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
