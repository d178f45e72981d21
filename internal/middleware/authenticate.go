package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ideashare/backend/internal/auth"
	"github.com/ideashare/backend/internal/domain"
)

// TokenVerifier resolves a bearer credential to a principal.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// NewAuthenticator returns a middleware that attaches the principal named by
// a valid bearer token to the request context.
//
// It never rejects a request. A missing, malformed or expired token leaves the
// request anonymous and the service decides whether the operation needs a
// principal. Invalid tokens are logged at debug level.
func NewAuthenticator(v TokenVerifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := v.Verify(token)
			if err != nil {
				log.DebugContext(r.Context(), "bearer token rejected", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
		})
	}
}
