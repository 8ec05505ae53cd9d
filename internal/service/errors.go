package service

import "errors"

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// The two cases are deliberately indistinguishable so that callers
	// cannot enumerate registered identifiers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for any token verification failure:
	// bad signature, malformed structure, wrong issuer, or expiry.
	ErrInvalidToken = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps signing failures during token issuance.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrInvalidDataProvided is returned when a request payload is missing
	// required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
