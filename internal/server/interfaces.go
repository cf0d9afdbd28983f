package server

import "context"

// Server defines the lifecycle contract of the reference server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT is
	// received, then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done. It returns nil after a clean
	// shutdown.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
