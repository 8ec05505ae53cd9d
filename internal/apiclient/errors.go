package apiclient

import "errors"

// Sentinel errors mapped from HTTP response status codes. Callers can match
// against them with [errors.Is] to react to specific API failures.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrLocalSessionNotFound is returned by a [SessionStore] when no
	// session has been saved yet.
	ErrLocalSessionNotFound = errors.New("local session not found")
)
