// Package service holds the business layer between transports and the slot
// validation engine.
//
// The core [SlotValidationService] is decorated with wrappers
// ([SlotValidationServiceWrapper]) that add request validation and logging;
// [NewServices] composes the chain used by the server. The client-side
// services in client_*.go drive a remote server through an adapter.
package service

import (
	"context"

	"github.com/MKhiriev/slot-validation-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SlotValidationService validates NLU-extracted slot values.
type SlotValidationService interface {
	// ValidateFinite checks every value against the allow-list of req.
	ValidateFinite(ctx context.Context, req models.FiniteValuesRequest) (models.ValidationResult, error)

	// ValidateNumeric checks every value against the constraint of req.
	ValidateNumeric(ctx context.Context, req models.NumericValuesRequest) (models.ValidationResult, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
