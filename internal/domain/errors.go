package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// idea does not exist. Malformed identifiers are reported the same way.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. blank description, title too long).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrUnauthenticated is returned when a protected operation is invoked
// without a resolved principal.
// Handlers should map this to HTTP 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrForbidden is returned when the principal is authenticated but does not
// own the idea it is trying to change.
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ValidationError lists every constraint an idea violates, not just the first.
// It matches ErrValidation via errors.Is so callers can branch on the sentinel
// and still recover the full list with errors.As.
type ValidationError struct {
	Problems []string
}

// Error joins the problems for display, e.g. "description required, title cannot be more than 100 characters".
func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
