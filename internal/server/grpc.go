package server

import (
	"context"
	"fmt"
	"net"

	slotvalidationpb "github.com/MKhiriev/slot-validation-service/api/slotvalidation"
	"github.com/MKhiriev/slot-validation-service/internal/config"
	myGRPC "github.com/MKhiriev/slot-validation-service/internal/handler/grpc"
	"github.com/MKhiriev/slot-validation-service/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type grpcServer struct {
	addr string

	server *grpc.Server
	health *health.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(s)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(slotvalidationpb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &grpcServer{
		addr:   cfg.GRPCAddress,
		server: s,
		health: healthServer,
		logger: logger,
	}
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) address() string { return g.addr }

func (g *grpcServer) serve(lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown marks the service as not serving and waits for in-flight calls.
// When ctx expires first the remaining calls are cut off.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.health.Shutdown()

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
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}
