// Package server runs the catalog API's HTTP server: startup, stop-signal
// handling and graceful shutdown.
package server
