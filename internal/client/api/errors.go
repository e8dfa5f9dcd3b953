package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the backend rejected the bearer token. By the
	// time a caller sees it the local session has already been invalidated.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable covers timeouts and transport failures. These are never
	// treated as authorization failures and never touch the session.
	ErrUnavailable = errors.New("server unavailable")

	// ErrMalformedResponse means a 2xx response was missing required fields.
	ErrMalformedResponse = errors.New("malformed server response")
)

// APIError is a backend-reported business failure (4xx/5xx with a JSON error
// body). Message carries the server text verbatim for display.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}
