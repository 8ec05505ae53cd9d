// Package config loads, merges and validates the server configuration.
//
// Settings are assembled from environment variables, command-line flags
// and an optional JSON file, in that order of precedence: a field set by
// an earlier source is never overwritten by a later one.
//
// The main entry point is [GetStructuredConfig].
package config
