package grpc

import (
	"context"
	"runtime/debug"
	"strings"
	"time"

	"github.com/MKhiriev/slot-validation-service/internal/app"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var traceIDMetadataKey = strings.ToLower(utils.TraceIDHeader)

var traceIDs = utils.NewUUIDGenerator()

func (h *Handler) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error().
				Interface("panic", r).
				Str("method", info.FullMethod).
				Bytes("stack", debug.Stack()).
				Msg("gRPC panic recovered")
			err = status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()
	return handler(ctx, req)
}

// traceIDInterceptor attaches a request-scoped logger with a trace id taken
// from incoming metadata or freshly generated, and echoes the id back in
// the response header.
func (h *Handler) traceIDInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))
	return handler(ctx, req)
}

func (h *Handler) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
