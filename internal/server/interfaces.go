package server

import (
	"context"
	"net"
)

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives or a transport fails.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is a single listener-backed server.
type transport interface {
	name() string
	address() string
	serve(lis net.Listener) error
	shutdown(ctx context.Context) error
}
