package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/store"
)

// ServiceName is the name under which the API reports its health in addition
// to the server-wide "" entry.
const ServiceName = "goflix.API"

// pingTimeout bounds a single Credential Store health check.
const pingTimeout = 3 * time.Second

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1.Health service. The reported status
// follows the reachability of the Credential Store and is refreshed by
// [Handler.UpdateStatus].
type Handler struct {
	health      *health.Server
	storeHealth store.HealthChecker

	traceIDs traceIDGenerator

	logger *logger.Logger
}

type traceIDGenerator interface {
	Generate() string
}

// NewHandler constructs a [Handler]. The service starts as SERVING: storages
// are opened and migrated before the transport is created.
func NewHandler(storeHealth store.HealthChecker, traceIDs traceIDGenerator, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health:      health.NewServer(),
		storeHealth: storeHealth,
		traceIDs:    traceIDs,
		logger:      logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// UpdateStatus pings the Credential Store and publishes the result to
// Check callers and Watch streams.
func (h *Handler) UpdateStatus(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.storeHealth.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("credential store is unreachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Shutdown switches every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
