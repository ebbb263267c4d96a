// Package handler builds the transport handlers the server exposes.
package handler

import (
	"fmt"

	"github.com/MKhiriev/slot-validation-service/internal/config"
	"github.com/MKhiriev/slot-validation-service/internal/handler/grpc"
	"github.com/MKhiriev/slot-validation-service/internal/handler/http"
	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport that has an address in cfg.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		httpHandler, err := http.NewHandler(services, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating http handler: %w", err)
		}
		handlers.HTTP = httpHandler
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
