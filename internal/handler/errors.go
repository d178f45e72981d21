package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ideashare/backend/internal/domain"
	"github.com/ideashare/backend/internal/handler/gen"
)

const (
	msgUnauthenticated = "authentication required"
	msgForbidden       = "only the author can change this idea"
	msgNotFound        = "idea not found"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

func unauthenticatedBody() gen.ErrorResponse { return errorBody("unauthenticated", msgUnauthenticated) }
func forbiddenBody() gen.ErrorResponse       { return errorBody("forbidden", msgForbidden) }
func notFoundBody() gen.ErrorResponse        { return errorBody("not_found", msgNotFound) }

// validationBody returns an ErrorResponse for a domain validation failure.
// Every violated constraint is listed, e.g.
// "description required, title cannot be more than 100 characters".
func validationBody(err error) gen.ErrorResponse {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return errorBody("validation_error", strings.Join(verr.Problems, ", "))
	}
	return errorBody("validation_error", err.Error())
}

// RequestErrorHandler answers requests the generated code could not decode:
// a malformed JSON body, a body over the size limit, or a bad path parameter.
func RequestErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, errorBody("payload_too_large", "request body too large"))
		return
	}
	writeError(w, http.StatusBadRequest, errorBody("bad_request", err.Error()))
}

// NewResponseErrorHandler returns the handler for errors a Server method
// returned instead of a typed response. Those are unexpected by definition:
// the cause is logged and the client gets an opaque 500.
func NewResponseErrorHandler(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
