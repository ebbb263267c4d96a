// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/slots"
	"github.com/MKhiriev/slot-validation-service/models"
)

type slotValidationService struct {
	engine *slots.Engine

	logger *logger.Logger
}

// NewSlotValidationService returns the undecorated service backed by engine.
func NewSlotValidationService(engine *slots.Engine, logger *logger.Logger) SlotValidationService {
	return &slotValidationService{engine: engine, logger: logger}
}

func (s *slotValidationService) ValidateFinite(ctx context.Context, req models.FiniteValuesRequest) (models.ValidationResult, error) {
	if err := s.alive(ctx, "*slotValidationService.ValidateFinite"); err != nil {
		return models.ValidationResult{}, err
	}
	return s.engine.ValidateFinite(slots.FiniteParamsFromRequest(req))
}

func (s *slotValidationService) ValidateNumeric(ctx context.Context, req models.NumericValuesRequest) (models.ValidationResult, error) {
	if err := s.alive(ctx, "*slotValidationService.ValidateNumeric"); err != nil {
		return models.ValidationResult{}, err
	}
	return s.engine.ValidateNumeric(slots.NumericParamsFromRequest(req))
}

// alive reports ctx's error when the caller gave up before the engine ran.
func (s *slotValidationService) alive(ctx context.Context, fn string) error {
	err := ctx.Err()
	if err != nil {
		s.logger.Debug().Err(err).Str("func", fn).Msg("request abandoned before validation")
	}
	return err
}

// ValidatePayload routes p to the validator its parser names.
func ValidatePayload(ctx context.Context, svc SlotValidationService, p models.SlotPayload) (models.ValidationResult, error) {
	switch {
	case p.Finite != nil:
		return svc.ValidateFinite(ctx, *p.Finite)
	case p.Numeric != nil:
		return svc.ValidateNumeric(ctx, *p.Numeric)
	default:
		return models.ValidationResult{}, ErrEmptyPayload
	}
}
