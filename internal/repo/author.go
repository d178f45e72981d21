package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ideashare/backend/internal/domain"
)

// AuthorRepo is the author directory used to denormalize author details
// into idea responses.
type AuthorRepo interface {
	// Upsert records the author's current display name and contact, creating
	// the row on first sight.
	Upsert(ctx context.Context, author domain.Author) (domain.Author, error)

	// Resolve returns the author with the given ID. An unknown author is not
	// an error: the anonymous placeholder is returned instead.
	Resolve(ctx context.Context, id string) (domain.Author, error)
}

// pgAuthorRepo is the Postgres implementation of AuthorRepo.
type pgAuthorRepo struct {
	db db
}

// NewAuthorRepo constructs an AuthorRepo backed by the provided db connection.
func NewAuthorRepo(db db) AuthorRepo {
	return &pgAuthorRepo{db: db}
}

// Upsert inserts the author or refreshes display_name and contact on conflict.
func (r *pgAuthorRepo) Upsert(ctx context.Context, author domain.Author) (domain.Author, error) {
	const q = `
		INSERT INTO authors (id, display_name, contact)
		VALUES (@id, @display_name, @contact)
		ON CONFLICT (id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    contact      = EXCLUDED.contact,
		    updated_at   = now()
		RETURNING id, display_name, contact`

	args := pgx.NamedArgs{
		"id":           author.ID,
		"display_name": author.DisplayName,
		"contact":      author.Contact,
	}

	result, err := scanAuthor(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Author{}, fmt.Errorf("repo.AuthorRepo.Upsert: %w", err)
	}
	return result.OrAnonymous(), nil
}

// Resolve looks up an author by ID, falling back to the anonymous placeholder.
func (r *pgAuthorRepo) Resolve(ctx context.Context, id string) (domain.Author, error) {
	const q = `SELECT id, display_name, contact FROM authors WHERE id = @id`

	result, err := scanAuthor(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.AnonymousAuthor(id), nil
	}
	if err != nil {
		return domain.Author{}, fmt.Errorf("repo.AuthorRepo.Resolve: %w", err)
	}
	return result.OrAnonymous(), nil
}

// scanAuthor maps a single database row into a domain.Author.
func scanAuthor(s scanner) (domain.Author, error) {
	var a domain.Author
	if err := s.Scan(&a.ID, &a.DisplayName, &a.Contact); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Author{}, domain.ErrNotFound
		}
		return domain.Author{}, err
	}
	return a, nil
}
