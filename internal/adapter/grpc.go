package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	slotvalidationpb "github.com/MKhiriev/slot-validation-service/api/slotvalidation"
	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type grpcSlotValidationAdapter struct {
	conn    *grpc.ClientConn
	client  slotvalidationpb.SlotValidationClient
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCSlotValidationAdapter constructs a gRPC implementation of
// [SlotValidationAdapter] dialing cfg.GRPCAddress without TLS. Extra dial
// options are appended, which lets tests dial an in-memory listener.
//
// The connection is established lazily on the first call.
func NewGRPCSlotValidationAdapter(cfg config.Adapter, logger *logger.Logger, opts ...grpc.DialOption) (SlotValidationAdapter, error) {
	addr := strings.TrimSpace(cfg.GRPCAddress)
	if addr == "" {
		return nil, fmt.Errorf("%w: empty gRPC address", ErrInvalidAddress)
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(traceIDClientInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &grpcSlotValidationAdapter{
		conn:    conn,
		client:  slotvalidationpb.NewSlotValidationClient(conn),
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}, nil
}

// ValidateFinite implements [SlotValidationAdapter].
func (g *grpcSlotValidationAdapter) ValidateFinite(ctx context.Context, req models.FiniteValuesRequest) (models.ValidationResult, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	res, err := g.client.ValidateFinite(ctx, &req)
	if err != nil {
		return models.ValidationResult{}, mapGRPCError(err)
	}
	return *res, nil
}

// ValidateNumeric implements [SlotValidationAdapter].
func (g *grpcSlotValidationAdapter) ValidateNumeric(ctx context.Context, req models.NumericValuesRequest) (models.ValidationResult, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	res, err := g.client.ValidateNumeric(ctx, &req)
	if err != nil {
		return models.ValidationResult{}, mapGRPCError(err)
	}
	return *res, nil
}

// GetServerVersion implements [SlotValidationAdapter].
func (g *grpcSlotValidationAdapter) GetServerVersion(ctx context.Context) (string, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	res, err := g.client.GetVersion(ctx, &models.VersionRequest{})
	if err != nil {
		return "", mapGRPCError(err)
	}
	return res.Version, nil
}

// Close implements [SlotValidationAdapter].
func (g *grpcSlotValidationAdapter) Close() error {
	return g.conn.Close()
}

func (g *grpcSlotValidationAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func traceIDClientInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, strings.ToLower(utils.TraceIDHeader), traceID)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}
