package handler

import (
	"context"
	"errors"

	"github.com/ideashare/backend/internal/auth"
	"github.com/ideashare/backend/internal/domain"
	"github.com/ideashare/backend/internal/handler/gen"
)

// deletedMessage is the body returned after a successful delete.
const deletedMessage = "Idea removed successfully"

// ListIdeas handles GET /ideas. Newest first, no pagination.
func (s *Server) ListIdeas(ctx context.Context, _ gen.ListIdeasRequestObject) (gen.ListIdeasResponseObject, error) {
	ideas, err := s.ideas.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make(gen.ListIdeas200JSONResponse, len(ideas))
	for i, idea := range ideas {
		resp[i] = ideaToResponse(idea)
	}
	return resp, nil
}

// CreateIdea handles POST /ideas.
func (s *Server) CreateIdea(ctx context.Context, req gen.CreateIdeaRequestObject) (gen.CreateIdeaResponseObject, error) {
	created, err := s.ideas.Create(ctx, auth.PrincipalFrom(ctx), requestToInput(req.Body))
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return gen.CreateIdea401JSONResponse{UnauthenticatedJSONResponse: gen.UnauthenticatedJSONResponse(unauthenticatedBody())}, nil
	case errors.Is(err, domain.ErrValidation):
		return gen.CreateIdea400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(validationBody(err))}, nil
	case err != nil:
		return nil, err
	}

	return gen.CreateIdea201JSONResponse(ideaToResponse(created)), nil
}

// GetIdea handles GET /ideas/{id}.
func (s *Server) GetIdea(ctx context.Context, req gen.GetIdeaRequestObject) (gen.GetIdeaResponseObject, error) {
	idea, err := s.ideas.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetIdea404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody())}, nil
		}
		return nil, err
	}

	return gen.GetIdea200JSONResponse(ideaToResponse(idea)), nil
}

// UpdateIdea handles PUT /ideas/{id}.
func (s *Server) UpdateIdea(ctx context.Context, req gen.UpdateIdeaRequestObject) (gen.UpdateIdeaResponseObject, error) {
	updated, err := s.ideas.Update(ctx, auth.PrincipalFrom(ctx), req.Id, requestToPatch(req.Body))
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return gen.UpdateIdea401JSONResponse{UnauthenticatedJSONResponse: gen.UnauthenticatedJSONResponse(unauthenticatedBody())}, nil
	case errors.Is(err, domain.ErrNotFound):
		return gen.UpdateIdea404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody())}, nil
	case errors.Is(err, domain.ErrForbidden):
		return gen.UpdateIdea403JSONResponse{ForbiddenJSONResponse: gen.ForbiddenJSONResponse(forbiddenBody())}, nil
	case errors.Is(err, domain.ErrValidation):
		return gen.UpdateIdea400JSONResponse{BadRequestJSONResponse: gen.BadRequestJSONResponse(validationBody(err))}, nil
	case err != nil:
		return nil, err
	}

	return gen.UpdateIdea200JSONResponse(ideaToResponse(updated)), nil
}

// DeleteIdea handles DELETE /ideas/{id}.
func (s *Server) DeleteIdea(ctx context.Context, req gen.DeleteIdeaRequestObject) (gen.DeleteIdeaResponseObject, error) {
	err := s.ideas.Delete(ctx, auth.PrincipalFrom(ctx), req.Id)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return gen.DeleteIdea401JSONResponse{UnauthenticatedJSONResponse: gen.UnauthenticatedJSONResponse(unauthenticatedBody())}, nil
	case errors.Is(err, domain.ErrNotFound):
		return gen.DeleteIdea404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody())}, nil
	case errors.Is(err, domain.ErrForbidden):
		return gen.DeleteIdea403JSONResponse{ForbiddenJSONResponse: gen.ForbiddenJSONResponse(forbiddenBody())}, nil
	case err != nil:
		return nil, err
	}

	return gen.DeleteIdea200JSONResponse{Message: deletedMessage}, nil
}

// ToggleIdeaLike handles PUT /ideas/{id}/like.
func (s *Server) ToggleIdeaLike(ctx context.Context, req gen.ToggleIdeaLikeRequestObject) (gen.ToggleIdeaLikeResponseObject, error) {
	idea, err := s.ideas.ToggleLike(ctx, auth.PrincipalFrom(ctx), req.Id)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return gen.ToggleIdeaLike401JSONResponse{UnauthenticatedJSONResponse: gen.UnauthenticatedJSONResponse(unauthenticatedBody())}, nil
	case errors.Is(err, domain.ErrNotFound):
		return gen.ToggleIdeaLike404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody())}, nil
	case err != nil:
		return nil, err
	}

	return gen.ToggleIdeaLike200JSONResponse(ideaToResponse(idea)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToInput converts a CreateIdeaRequest body into a domain.IdeaInput.
// Older clients send the description as "text"; "description" wins when both
// are present.
func requestToInput(body *gen.CreateIdeaRequest) domain.IdeaInput {
	if body == nil {
		return domain.IdeaInput{}
	}
	in := domain.IdeaInput{
		Title:       deref(body.Title),
		Description: deref(body.Description),
	}
	if in.Description == "" {
		in.Description = deref(body.Text)
	}
	if body.Tags != nil {
		in.Tags = *body.Tags
	}
	return in
}

// requestToPatch converts an UpdateIdeaRequest body into a domain.IdeaPatch.
// Absent fields stay zero, which the patch treats as "unchanged".
func requestToPatch(body *gen.UpdateIdeaRequest) domain.IdeaPatch {
	if body == nil {
		return domain.IdeaPatch{}
	}
	p := domain.IdeaPatch{
		Title:       deref(body.Title),
		Description: deref(body.Description),
	}
	if body.Tags != nil {
		p.Tags = *body.Tags
	}
	return p
}

// ideaToResponse converts a domain.Idea into the gen.Idea response type.
// Tags and likes are always arrays, never null.
func ideaToResponse(i domain.Idea) gen.Idea {
	resp := gen.Idea{
		Id: i.ID,
		Author: gen.Author{
			Id:          i.Author.ID,
			DisplayName: i.Author.DisplayName,
			Contact:     i.Author.Contact,
		},
		Description: i.Description,
		Tags:        nonNil(i.Tags),
		Likes:       nonNil(i.Likes),
		LikeCount:   i.LikeCount(),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
	if i.Title != "" {
		title := i.Title
		resp.Title = &title
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
