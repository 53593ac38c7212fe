// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done or the worker has nothing to do. A worker that
// is disabled by configuration returns nil immediately.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// StatusUpdater re-evaluates and publishes a health status.
// It is implemented by the gRPC health handler.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus
}
