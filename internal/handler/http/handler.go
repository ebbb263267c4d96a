package http

import (
	"fmt"

	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/service"
	"github.com/MKhiriev/slot-validation-service/internal/utils"
	"github.com/MKhiriev/slot-validation-service/internal/validators"
)

// maxBodyBytes caps request bodies read by the validation endpoints.
const maxBodyBytes = 1 << 20

type Handler struct {
	services        *service.Services
	schemaValidator validators.SchemaValidator
	traceIDs        *utils.UUIDGenerator

	cfg    config.Server
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	schemaValidator, err := validators.NewPayloadSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf("error creating schema validator: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		schemaValidator: schemaValidator,
		traceIDs:        utils.NewUUIDGenerator(),
		cfg:             cfg,
		logger:          logger,
	}, nil
}
