package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-flix/internal/config"
	myGRPC "github.com/MKhiriev/go-flix/internal/handler/grpc"
	"github.com/MKhiriev/go-flix/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(handler.UnaryInterceptor()),
		grpc.ChainStreamInterceptor(handler.StreamInterceptor()),
	)
	handler.Register(server)

	return &grpcServer{
		handler:  handler,
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("launching gRPC server")

	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown flips the health status first so that Watch clients see
// NOT_SERVING, then drains the server. Streams still open when ctx expires
// are closed forcibly.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("gRPC server shutdown: %w", ctx.Err())
	}
}
