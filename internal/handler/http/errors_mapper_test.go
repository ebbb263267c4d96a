package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/slot-validation-service/internal/service"
	"github.com/MKhiriev/slot-validation-service/internal/slots"
	"github.com/MKhiriev/slot-validation-service/internal/validators"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing trigger", slots.ErrMissingTrigger, http.StatusBadRequest, "invalid_trigger is required"},
		{"wrapped missing key", fmt.Errorf("finite: %w", slots.ErrMissingKey), http.StatusBadRequest, "key is required"},
		{"binding", slots.ErrConstraintBinding, http.StatusBadRequest, slots.ErrConstraintBinding.Error()},
		{"not boolean", slots.ErrConstraintNotBoolean, http.StatusBadRequest, slots.ErrConstraintNotBoolean.Error()},
		{"parser mismatch", fmt.Errorf("error during finite request validation: %w", validators.ErrParserMismatch), http.StatusBadRequest, validators.ErrParserMismatch.Error()},
		{"pick first conflict", validators.ErrPickFirstConflict, http.StatusBadRequest, validators.ErrPickFirstConflict.Error()},
		{"schema", validators.ErrSchemaViolation, http.StatusBadRequest, "JSON validation failed. Check logs..."},
		{"unknown parser", fmt.Errorf("%w: %q", models.ErrUnknownValidationParser, "x"), http.StatusBadRequest, "unknown validation_parser"},
		{"empty payload", service.ErrEmptyPayload, http.StatusBadRequest, service.ErrEmptyPayload.Error()},
		{"too large", ErrBodyTooLarge, http.StatusRequestEntityTooLarge, "request body too large"},
		{"deadline", fmt.Errorf("engine: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "request timed out"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
