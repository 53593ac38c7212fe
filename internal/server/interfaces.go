package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is done and the
	// server has shut down.
	RunServer(ctx context.Context) error
}

// transport is a single listener managed by the server.
type transport interface {
	// serve blocks until the transport stops. A graceful stop is not an
	// error.
	serve() error

	// shutdown stops accepting new requests and waits for in-flight ones
	// until ctx expires.
	shutdown(ctx context.Context) error
}
