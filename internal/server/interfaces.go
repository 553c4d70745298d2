package server

import "context"

// Server defines the lifecycle of the transport server.
type Server interface {
	// RunServer serves requests until ctx is canceled or a stop signal
	// arrives, then shuts down gracefully. It returns early if the listener
	// fails.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for active requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
