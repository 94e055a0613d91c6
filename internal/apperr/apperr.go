// Package apperr defines the error taxonomy shared by the authenticator,
// the password store and the HTTP layer. Callers match with errors.Is.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredential means the identity token failed signature, issuer,
	// audience or expiry validation.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrIncompleteIdentity means the provider did not supply email or name.
	ErrIncompleteIdentity = errors.New("incomplete identity")
	// ErrUnauthenticated means the request carries no live session.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNotFound covers both a missing resource and one owned by someone else.
	ErrNotFound = errors.New("not found")
	// ErrValidation means the request body failed its schema.
	ErrValidation = errors.New("validation failed")
	// ErrInternal means a store or provider was unavailable.
	ErrInternal = errors.New("internal failure")
)

// Status maps an error to the HTTP status the API responds with.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidCredential),
		errors.Is(err, ErrIncompleteIdentity),
		errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err. Internal details are never
// exposed; anything outside the taxonomy reads as a generic failure.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredential):
		return "Invalid Google credential"
	case errors.Is(err, ErrIncompleteIdentity):
		return "Email and name required from Google"
	case errors.Is(err, ErrUnauthenticated):
		return "Authentication required"
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrValidation):
		return err.Error()
	default:
		return "Internal server error"
	}
}
