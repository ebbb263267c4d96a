// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the slot validation service.
//
// Messages are the plain request and result models, carried by the JSON
// codec registered in package utils, so no generated code is needed. The
// service description lives in api/slotvalidation; [Handler] implements the
// server side on top of the service layer.
package grpc

import (
	"context"

	slotvalidationpb "github.com/MKhiriev/slot-validation-service/api/slotvalidation"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/service"
	"github.com/MKhiriev/slot-validation-service/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the slot validation service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	slotvalidationpb.RegisterSlotValidationServer(s, h)
}

// ServerOptions returns the interceptor chain the server must be built with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			h.recoveryInterceptor,
			h.traceIDInterceptor,
			h.loggingInterceptor,
		),
	}
}

func (h *Handler) ValidateFinite(ctx context.Context, req *models.FiniteValuesRequest) (*models.ValidationResult, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	res, err := h.services.SlotValidationService.ValidateFinite(ctx, *req)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &res, nil
}

func (h *Handler) ValidateNumeric(ctx context.Context, req *models.NumericValuesRequest) (*models.ValidationResult, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	res, err := h.services.SlotValidationService.ValidateNumeric(ctx, *req)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &res, nil
}

func (h *Handler) GetVersion(ctx context.Context, _ *models.VersionRequest) (*models.VersionResponse, error) {
	return &models.VersionResponse{Version: h.services.AppInfoService.GetAppVersion(ctx)}, nil
}
