// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// a running slot validation server.
//
// The primary abstraction is [SlotValidationAdapter], which decouples the
// client services from the underlying protocol. Two implementations ship:
// HTTP/REST over resty ([NewHTTPSlotValidationAdapter]) and gRPC with the
// JSON codec ([NewGRPCSlotValidationAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// gRPC status codes so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrBadRequest] for a rejected
// payload). The server's message is kept after the sentinel.
package adapter

import (
	"context"

	"github.com/MKhiriev/slot-validation-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SlotValidationAdapter defines transport-agnostic communication with the
// slot validation server.
type SlotValidationAdapter interface {
	// ValidateFinite sends a finite-values request and returns the server's result.
	ValidateFinite(ctx context.Context, req models.FiniteValuesRequest) (models.ValidationResult, error)

	// ValidateNumeric sends a numeric-constraint request and returns the server's result.
	ValidateNumeric(ctx context.Context, req models.NumericValuesRequest) (models.ValidationResult, error)

	// GetServerVersion returns the version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)

	// Close releases the underlying connection.
	Close() error
}
