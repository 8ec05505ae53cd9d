// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Malformed non-empty headers are reported by [utils.ParseBearerToken].
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

// User-facing message bodies, kept identical to what the public frontend
// already expects.
const (
	msgInvalidCredentials = "Invalid credentials"
	msgServerError        = "Server error"
)
