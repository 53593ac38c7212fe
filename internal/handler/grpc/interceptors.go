package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-flix/internal/logger"
)

// traceIDMetadataKey mirrors the X-Trace-ID HTTP header.
const traceIDMetadataKey = "x-trace-id"

// UnaryInterceptor attaches a trace-scoped logger to the call context and
// writes one access-log line per unary call.
func (h *Handler) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, traceID := h.withTraceID(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

		start := time.Now()
		resp, err := handler(ctx, req)

		logger.FromContext(ctx).Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}

// StreamInterceptor logs the start and the end of streaming calls such as
// Health/Watch.
func (h *Handler) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, _ := h.withTraceID(ss.Context())
		log := logger.FromContext(ctx)

		start := time.Now()
		log.Debug().Str("method", info.FullMethod).Msg("stream opened")

		err := handler(srv, &tracedStream{ServerStream: ss, ctx: ctx})

		log.Info().
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return err
	}
}

func (h *Handler) withTraceID(ctx context.Context) (context.Context, string) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	return l.WithContext(ctx), traceID
}

type tracedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *tracedStream) Context() context.Context {
	return s.ctx
}
