package service

import (
	"fmt"

	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/expression"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/slots"
)

type Services struct {
	SlotValidationService SlotValidationService
	AppInfoService        AppInfoService
}

// NewServices builds the engine from cfg and composes the service chain:
// logging → request validation → engine.
func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	svc := NewSlotValidationService(NewEngine(cfg.Engine), logger)
	svc = NewSlotValidationValidationService().Wrap(svc)
	svc = NewSlotValidationLoggingService(logger).Wrap(svc)

	return &Services{
		SlotValidationService: svc,
		AppInfoService:        appInfo,
	}, nil
}

// NewEngine maps the engine config onto engine options.
func NewEngine(cfg config.Engine) *slots.Engine {
	return slots.NewEngine(slots.Options{
		Limits: expression.Limits{
			MaxLength: cfg.MaxConstraintLength,
			MaxDepth:  cfg.MaxConstraintDepth,
			MaxNodes:  cfg.MaxConstraintNodes,
		},
		UppercasePickFirstNumeric: cfg.UppercasePickFirstNumeric,
	})
}
