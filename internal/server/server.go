package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/handler"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/workers"
)

// shutdownTimeout bounds the graceful stop of all transports.
const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	workers    workers.Worker
	logger     *logger.Logger
}

// NewServer creates the transports enabled in cfg. bg runs next to them for
// the lifetime of the server and may be nil.
func NewServer(handlers *handler.Handlers, bg workers.Worker, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{workers: bg, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, g)
	}

	if len(s.transports) == 0 {
		return nil, errNoTransports
	}

	return s, nil
}

// RunServer serves until ctx is done or a transport fails, then shuts all
// transports down gracefully. Workers receive the same cancellation.
func (s *server) RunServer(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		g.Go(t.serve)
	}
	if s.workers != nil {
		g.Go(func() error {
			return s.workers.Run(ctx)
		})
	}

	// listen for stop
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, t := range s.transports {
			errs = append(errs, t.shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

// SignalContext returns a context cancelled on SIGTERM, SIGINT or SIGQUIT.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
}
