// Package handler implements the HTTP handlers for the idea board API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, idea.go) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/ideashare/backend/internal/domain"
)

// IdeaServicer defines the business operations the idea handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
//
// A nil principal means the request is anonymous.
type IdeaServicer interface {
	Create(ctx context.Context, p *domain.Principal, in domain.IdeaInput) (domain.Idea, error)
	GetByID(ctx context.Context, id string) (domain.Idea, error)
	List(ctx context.Context) ([]domain.Idea, error)
	Update(ctx context.Context, p *domain.Principal, id string, patch domain.IdeaPatch) (domain.Idea, error)
	Delete(ctx context.Context, p *domain.Principal, id string) error
	ToggleLike(ctx context.Context, p *domain.Principal, id string) (domain.Idea, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it through NewRouter rather than directly.
type Server struct {
	ideas IdeaServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(ideas IdeaServicer) *Server {
	return &Server{ideas: ideas}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil)
}
