package handler

import (
	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/handler/grpc"
	"github.com/MKhiriev/go-flix/internal/handler/http"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/service"
	"github.com/MKhiriev/go-flix/internal/store"
	"github.com/MKhiriev/go-flix/internal/utils"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, storeHealth store.HealthChecker, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(storeHealth, utils.NewUUIDGenerator(), logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransportConfigured
	}

	return handlers, nil
}
