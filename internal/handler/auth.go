package handler

import (
	"net/http"

	"github.com/ideashare/backend/internal/auth"
	"github.com/ideashare/backend/internal/handler/gen"
)

// RequireBearer rejects anonymous calls to operations the contract marks
// with bearerAuth, before the strict handler decodes the request body. An
// anonymous POST /ideas with a malformed body therefore gets 401, not 400.
//
// The generated wrapper tags secured operations by setting
// gen.BearerAuthScopes on the request context; unsecured ones pass through.
func RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(gen.BearerAuthScopes) != nil && auth.PrincipalFrom(r.Context()) == nil {
			writeError(w, http.StatusUnauthorized, unauthenticatedBody())
			return
		}
		next.ServeHTTP(w, r)
	})
}
