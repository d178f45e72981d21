// Package service contains the business logic for the idea board.
// Services validate inputs, enforce ownership, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ideashare/backend/internal/domain"
	"github.com/ideashare/backend/internal/events"
	"github.com/ideashare/backend/internal/repo"
)

// IdeaService implements business logic for Idea operations.
// It is stateless between calls; all shared state lives in the repos.
type IdeaService struct {
	ideas   repo.IdeaRepo
	authors repo.AuthorRepo
	events  events.Publisher
}

// NewIdeaService constructs an IdeaService. A nil publisher disables events.
func NewIdeaService(ideas repo.IdeaRepo, authors repo.AuthorRepo, pub events.Publisher) *IdeaService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &IdeaService{ideas: ideas, authors: authors, events: pub}
}

// Create validates in and persists a new idea owned by p.
// Returns domain.ErrUnauthenticated if p is nil and domain.ErrValidation
// (as *domain.ValidationError) if in violates any field constraint.
func (s *IdeaService) Create(ctx context.Context, p *domain.Principal, in domain.IdeaInput) (domain.Idea, error) {
	if err := requirePrincipal(p); err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Create: %w", err)
	}

	idea := domain.NewIdea(p.ID, in)
	if err := idea.Validate(); err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Create: %w", err)
	}

	author, err := s.authors.Upsert(ctx, p.Author())
	if err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Create: %w", err)
	}

	created, err := s.ideas.Create(ctx, idea)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Create: %w", err)
	}
	created.Author = author.OrAnonymous()

	s.publish(ctx, events.Created, created, p.ID)
	return created, nil
}

// GetByID returns a single idea with its author attached.
// Malformed and unknown IDs both return domain.ErrNotFound.
func (s *IdeaService) GetByID(ctx context.Context, id string) (domain.Idea, error) {
	idea, err := s.load(ctx, id)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.GetByID: %w", err)
	}
	if idea.Author, err = s.authors.Resolve(ctx, idea.AuthorID); err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.GetByID: %w", err)
	}
	return idea, nil
}

// List returns every idea, newest first, each with its author attached.
// Always returns a non-nil slice so callers can safely range over it.
func (s *IdeaService) List(ctx context.Context) ([]domain.Idea, error) {
	ideas, err := s.ideas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.IdeaService.List: %w", err)
	}
	if ideas == nil {
		return []domain.Idea{}, nil
	}

	// Authors usually own several ideas; resolve each one once per call.
	resolved := make(map[string]domain.Author)
	for i := range ideas {
		author, ok := resolved[ideas[i].AuthorID]
		if !ok {
			if author, err = s.authors.Resolve(ctx, ideas[i].AuthorID); err != nil {
				return nil, fmt.Errorf("service.IdeaService.List: %w", err)
			}
			resolved[ideas[i].AuthorID] = author
		}
		ideas[i].Author = author
	}
	return ideas, nil
}

// Update applies the non-empty fields of patch to an idea owned by p.
// Returns domain.ErrUnauthenticated, domain.ErrNotFound, domain.ErrForbidden
// or domain.ErrValidation, checked in that order.
func (s *IdeaService) Update(ctx context.Context, p *domain.Principal, id string, patch domain.IdeaPatch) (domain.Idea, error) {
	if err := requirePrincipal(p); err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Update: %w", err)
	}

	current, err := s.load(ctx, id)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Update: %w", err)
	}
	if !isOwner(p, current) {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Update: %w", domain.ErrForbidden)
	}

	merged := current.Apply(patch)
	if err := merged.Validate(); err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Update: %w", err)
	}

	updated, err := s.ideas.Update(ctx, merged)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Update: %w", err)
	}
	if updated.Author, err = s.authors.Resolve(ctx, updated.AuthorID); err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.Update: %w", err)
	}

	s.publish(ctx, events.Updated, updated, p.ID)
	return updated, nil
}

// Delete permanently removes an idea owned by p.
// Returns domain.ErrUnauthenticated, domain.ErrNotFound or domain.ErrForbidden.
func (s *IdeaService) Delete(ctx context.Context, p *domain.Principal, id string) error {
	if err := requirePrincipal(p); err != nil {
		return fmt.Errorf("service.IdeaService.Delete: %w", err)
	}

	current, err := s.load(ctx, id)
	if err != nil {
		return fmt.Errorf("service.IdeaService.Delete: %w", err)
	}
	if !isOwner(p, current) {
		return fmt.Errorf("service.IdeaService.Delete: %w", domain.ErrForbidden)
	}

	if err := s.ideas.Delete(ctx, current.ID); err != nil {
		return fmt.Errorf("service.IdeaService.Delete: %w", err)
	}

	s.publish(ctx, events.Deleted, current, p.ID)
	return nil
}

// ToggleLike flips p's membership in the idea's likes: a like if absent, an
// unlike if present. Any authenticated principal may like any idea,
// including their own. The full updated idea is returned.
func (s *IdeaService) ToggleLike(ctx context.Context, p *domain.Principal, id string) (domain.Idea, error) {
	if err := requirePrincipal(p); err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.ToggleLike: %w", err)
	}

	ideaID, err := parseID(id)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.ToggleLike: %w", err)
	}

	// The repo performs the read-modify-write atomically; a prior read here
	// would only reintroduce the race.
	updated, err := s.ideas.ToggleLike(ctx, ideaID, p.ID)
	if err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.ToggleLike: %w", err)
	}
	if updated.Author, err = s.authors.Resolve(ctx, updated.AuthorID); err != nil {
		return domain.Idea{}, fmt.Errorf("service.IdeaService.ToggleLike: %w", err)
	}

	kind := events.Unliked
	if updated.LikedBy(p.ID) {
		kind = events.Liked
	}
	s.publish(ctx, kind, updated, p.ID)
	return updated, nil
}

// isOwner is the single authorization predicate for mutating an idea.
func isOwner(p *domain.Principal, idea domain.Idea) bool {
	return p != nil && p.ID != "" && p.ID == idea.AuthorID
}

func requirePrincipal(p *domain.Principal) error {
	if p == nil || p.ID == "" {
		return domain.ErrUnauthenticated
	}
	return nil
}

// load parses id and fetches the idea.
func (s *IdeaService) load(ctx context.Context, id string) (domain.Idea, error) {
	ideaID, err := parseID(id)
	if err != nil {
		return domain.Idea{}, err
	}
	return s.ideas.GetByID(ctx, ideaID)
}

// parseID treats a malformed identifier exactly like an unknown one.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return parsed, nil
}

// publish emits a lifecycle event. Failures are logged and never surface to
// the caller: the write has already been committed.
func (s *IdeaService) publish(ctx context.Context, kind events.Type, idea domain.Idea, principalID string) {
	err := s.events.Publish(ctx, events.Event{
		Type:        kind,
		IdeaID:      idea.ID.String(),
		PrincipalID: principalID,
		LikeCount:   idea.LikeCount(),
		At:          time.Now().UTC(),
	})
	if err != nil {
		slog.WarnContext(ctx, "idea event not published", "type", kind, "idea_id", idea.ID, "error", err)
	}
}
