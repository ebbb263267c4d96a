// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package slotvalidation holds the wire contract of the slot validation gRPC
// service: its name, method paths, service description and a typed client.
// Messages are plain models encoded with the JSON codec from internal/utils.
package slotvalidation

import (
	"context"

	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/models"
	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified name of the slot validation gRPC service.
const ServiceName = "slotvalidation.v1.SlotValidation"

const (
	ValidateFiniteFullMethodName  = "/" + ServiceName + "/ValidateFinite"
	ValidateNumericFullMethodName = "/" + ServiceName + "/ValidateNumeric"
	GetVersionFullMethodName      = "/" + ServiceName + "/GetVersion"
)

// SlotValidationServer is the server API of the slot validation service.
// Messages are plain models encoded with the JSON codec.
type SlotValidationServer interface {
	ValidateFinite(context.Context, *models.FiniteValuesRequest) (*models.ValidationResult, error)
	ValidateNumeric(context.Context, *models.NumericValuesRequest) (*models.ValidationResult, error)
	GetVersion(context.Context, *models.VersionRequest) (*models.VersionResponse, error)
}

// RegisterSlotValidationServer registers srv on s.
func RegisterSlotValidationServer(s grpc.ServiceRegistrar, srv SlotValidationServer) {
	s.RegisterService(&SlotValidationServiceDesc, srv)
}

// SlotValidationServiceDesc describes the service for grpc.Server.
var SlotValidationServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SlotValidationServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ValidateFinite", Handler: validateFiniteHandler},
		{MethodName: "ValidateNumeric", Handler: validateNumericHandler},
		{MethodName: "GetVersion", Handler: getVersionHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "slotvalidation/v1/slot_validation.json",
}

func validateFiniteHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.FiniteValuesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlotValidationServer).ValidateFinite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ValidateFiniteFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SlotValidationServer).ValidateFinite(ctx, req.(*models.FiniteValuesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func validateNumericHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.NumericValuesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlotValidationServer).ValidateNumeric(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ValidateNumericFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SlotValidationServer).ValidateNumeric(ctx, req.(*models.NumericValuesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getVersionHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.VersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SlotValidationServer).GetVersion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetVersionFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SlotValidationServer).GetVersion(ctx, req.(*models.VersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SlotValidationClient is the client API of the slot validation service.
type SlotValidationClient interface {
	ValidateFinite(ctx context.Context, in *models.FiniteValuesRequest, opts ...grpc.CallOption) (*models.ValidationResult, error)
	ValidateNumeric(ctx context.Context, in *models.NumericValuesRequest, opts ...grpc.CallOption) (*models.ValidationResult, error)
	GetVersion(ctx context.Context, in *models.VersionRequest, opts ...grpc.CallOption) (*models.VersionResponse, error)
}

type slotValidationClient struct {
	cc grpc.ClientConnInterface
}

// NewSlotValidationClient returns a client that sends every call with the
// JSON content-subtype.
func NewSlotValidationClient(cc grpc.ClientConnInterface) SlotValidationClient {
	return &slotValidationClient{cc: cc}
}

func (c *slotValidationClient) ValidateFinite(ctx context.Context, in *models.FiniteValuesRequest, opts ...grpc.CallOption) (*models.ValidationResult, error) {
	out := new(models.ValidationResult)
	if err := c.cc.Invoke(ctx, ValidateFiniteFullMethodName, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *slotValidationClient) ValidateNumeric(ctx context.Context, in *models.NumericValuesRequest, opts ...grpc.CallOption) (*models.ValidationResult, error) {
	out := new(models.ValidationResult)
	if err := c.cc.Invoke(ctx, ValidateNumericFullMethodName, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *slotValidationClient) GetVersion(ctx context.Context, in *models.VersionRequest, opts ...grpc.CallOption) (*models.VersionResponse, error) {
	out := new(models.VersionResponse)
	if err := c.cc.Invoke(ctx, GetVersionFullMethodName, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withJSON(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(utils.JSONCodecName)}, opts...)
}
