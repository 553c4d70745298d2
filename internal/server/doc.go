// Package server runs the vault storage HTTP server: it listens, waits for a
// stop signal or context cancellation and shuts down within the configured
// timeout.
package server
