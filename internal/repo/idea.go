// Package repo contains all database access logic for the idea board.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ideashare/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IdeaRepo defines the persistence operations for Ideas.
// The service layer depends on this interface, not the Postgres implementation.
type IdeaRepo interface {
	// Create inserts a new idea and returns the persisted record with the
	// DB-generated id, created_at and updated_at populated.
	Create(ctx context.Context, idea domain.Idea) (domain.Idea, error)

	// GetByID retrieves a single idea by primary key.
	// Returns domain.ErrNotFound if no idea with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Idea, error)

	// List returns all ideas ordered by created_at descending.
	List(ctx context.Context) ([]domain.Idea, error)

	// Update overwrites title, description and tags of the idea with the given
	// ID and author. Returns domain.ErrNotFound if no such row exists, which
	// includes the row having been deleted since it was read.
	Update(ctx context.Context, idea domain.Idea) (domain.Idea, error)

	// Delete removes an idea by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ToggleLike atomically adds principalID to the idea's likes if absent, or
	// removes it if present, and returns the updated idea.
	// Returns domain.ErrNotFound if no idea with that ID exists.
	ToggleLike(ctx context.Context, id uuid.UUID, principalID string) (domain.Idea, error)
}

// pgIdeaRepo is the Postgres implementation of IdeaRepo.
type pgIdeaRepo struct {
	db db
}

// NewIdeaRepo constructs an IdeaRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewIdeaRepo(db db) IdeaRepo {
	return &pgIdeaRepo{db: db}
}

const ideaColumns = `id, author_id, title, description, tags, likes, created_at, updated_at`

// Create inserts a new idea row and returns the full persisted record.
func (r *pgIdeaRepo) Create(ctx context.Context, idea domain.Idea) (domain.Idea, error) {
	const q = `
		INSERT INTO ideas (author_id, title, description, tags)
		VALUES (@author_id, @title, @description, @tags)
		RETURNING ` + ideaColumns

	args := pgx.NamedArgs{
		"author_id":   idea.AuthorID,
		"title":       nullableText(idea.Title),
		"description": idea.Description,
		"tags":        nonNil(idea.Tags),
	}

	result, err := scanIdea(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Idea{}, fmt.Errorf("repo.IdeaRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an idea by primary key.
func (r *pgIdeaRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Idea, error) {
	const q = `SELECT ` + ideaColumns + ` FROM ideas WHERE id = @id`

	result, err := scanIdea(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Idea{}, fmt.Errorf("repo.IdeaRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all ideas, newest first. The id tiebreak keeps the order
// stable for rows created in the same transaction.
func (r *pgIdeaRepo) List(ctx context.Context) ([]domain.Idea, error) {
	const q = `SELECT ` + ideaColumns + ` FROM ideas ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.IdeaRepo.List: %w", err)
	}
	defer rows.Close()

	ideas := []domain.Idea{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.IdeaRepo.List: scan: %w", err)
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.IdeaRepo.List: rows: %w", err)
	}
	return ideas, nil
}

// Update overwrites the mutable fields of an idea owned by idea.AuthorID.
func (r *pgIdeaRepo) Update(ctx context.Context, idea domain.Idea) (domain.Idea, error) {
	const q = `
		UPDATE ideas
		SET title       = @title,
		    description = @description,
		    tags        = @tags,
		    updated_at  = now()
		WHERE id = @id AND author_id = @author_id
		RETURNING ` + ideaColumns

	args := pgx.NamedArgs{
		"id":          idea.ID,
		"author_id":   idea.AuthorID,
		"title":       nullableText(idea.Title),
		"description": idea.Description,
		"tags":        nonNil(idea.Tags),
	}

	result, err := scanIdea(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Idea{}, fmt.Errorf("repo.IdeaRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an idea by primary key.
func (r *pgIdeaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM ideas WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.IdeaRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.IdeaRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// ToggleLike flips principalID's membership in likes with a single UPDATE.
// The CASE is evaluated against the locked row, so concurrent toggles from
// different principals on the same idea cannot overwrite each other.
func (r *pgIdeaRepo) ToggleLike(ctx context.Context, id uuid.UUID, principalID string) (domain.Idea, error) {
	const q = `
		UPDATE ideas
		SET likes = CASE
		        WHEN @principal_id::text = ANY(likes) THEN array_remove(likes, @principal_id::text)
		        ELSE array_append(likes, @principal_id::text)
		    END,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + ideaColumns

	args := pgx.NamedArgs{"id": id, "principal_id": principalID}

	result, err := scanIdea(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Idea{}, fmt.Errorf("repo.IdeaRepo.ToggleLike: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanIdea maps a single database row into a domain.Idea.
func scanIdea(s scanner) (domain.Idea, error) {
	var (
		i     domain.Idea
		id    pgtype.UUID
		title pgtype.Text
	)

	err := s.Scan(&id, &i.AuthorID, &title, &i.Description, &i.Tags, &i.Likes, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Idea{}, domain.ErrNotFound
		}
		return domain.Idea{}, err
	}

	i.ID = uuid.UUID(id.Bytes)
	i.Title = title.String
	i.Tags = nonNil(i.Tags)
	i.Likes = nonNil(i.Likes)
	return i, nil
}

// nullableText stores an absent title as NULL rather than ''.
func nullableText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// nonNil avoids pgx encoding a nil slice as NULL for NOT NULL array columns.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
