package service

import (
	"context"

	"github.com/MKhiriev/slot-validation-service/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSlotValidationService defines the client-side contract for validating
// payloads against a remote server. Transport errors are translated back to
// the server's sentinel errors where the server named one.
type ClientSlotValidationService interface {
	// Validate sends a single payload to the validator named by its parser.
	Validate(ctx context.Context, payload models.SlotPayload) (models.ValidationResult, error)

	// ValidateBatch validates every payload concurrently. Per-payload
	// failures are reported in the matching BatchItemResult; the returned
	// error is non-nil only when the batch itself could not run.
	// Results are ordered like payloads.
	ValidateBatch(ctx context.Context, payloads []models.SlotPayload) ([]models.BatchItemResult, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
