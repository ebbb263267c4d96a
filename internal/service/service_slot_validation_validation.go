package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/slot-validation-service/internal/validators"
	"github.com/MKhiriev/slot-validation-service/models"
)

// SlotValidationValidationService rejects requests that break the
// request-level rules before they reach the engine.
type SlotValidationValidationService struct {
	inner     SlotValidationService
	validator validators.Validator
}

func NewSlotValidationValidationService() SlotValidationServiceWrapper {
	return &SlotValidationValidationService{
		validator: validators.NewSlotRequestValidator(),
	}
}

func (v *SlotValidationValidationService) ValidateFinite(ctx context.Context, req models.FiniteValuesRequest) (models.ValidationResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ValidationResult{}, fmt.Errorf("error during finite request validation: %w", err)
	}

	return v.inner.ValidateFinite(ctx, req)
}

func (v *SlotValidationValidationService) ValidateNumeric(ctx context.Context, req models.NumericValuesRequest) (models.ValidationResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ValidationResult{}, fmt.Errorf("error during numeric request validation: %w", err)
	}

	return v.inner.ValidateNumeric(ctx, req)
}

func (v *SlotValidationValidationService) Wrap(wrapper SlotValidationService) SlotValidationService {
	v.inner = wrapper
	return v
}
