package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/ideashare/backend/internal/domain"
)

type ctxKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, or nil for anonymous
// requests.
func PrincipalFrom(ctx context.Context) *domain.Principal {
	p, ok := ctx.Value(ctxKey{}).(domain.Principal)
	if !ok {
		return nil
	}
	return &p
}

// BearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. The scheme is case-insensitive. Returns "" when absent.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
