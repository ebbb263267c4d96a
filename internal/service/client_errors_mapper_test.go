package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/slot-validation-service/internal/adapter"
	"github.com/MKhiriev/slot-validation-service/internal/app"
	"github.com/MKhiriev/slot-validation-service/internal/slots"
	"github.com/MKhiriev/slot-validation-service/internal/validators"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	badRequest := func(msg string) error { return fmt.Errorf("%w: %s", adapter.ErrBadRequest, msg) }

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"missing trigger", badRequest(slots.ErrMissingTrigger.Error()), slots.ErrMissingTrigger},
		{"not boolean", badRequest(slots.ErrConstraintNotBoolean.Error()), slots.ErrConstraintNotBoolean},
		{"schema", badRequest(validators.ErrSchemaViolation.Error()), validators.ErrSchemaViolation},
		{"unknown parser", badRequest(models.ErrUnknownValidationParser.Error()), models.ErrUnknownValidationParser},
		{"invalid data", badRequest(app.MsgInvalidDataProvided), ErrInvalidDataProvided},
		{"unavailable", fmt.Errorf("%w: refused", adapter.ErrUnavailable), ErrServerUnavailable},
		{"timeout", fmt.Errorf("%w: slow", adapter.ErrTimeout), ErrServerUnavailable},
		{"internal", fmt.Errorf("%w: x", adapter.ErrInternalServerError), ErrServerFailure},
		{"unknown bad request keeps adapter error", badRequest("something new"), adapter.ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
	plain := errors.New("plain")
	assert.Equal(t, plain, mapAdapterError(plain))
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "key is required", extractBody(errors.New("bad request: key is required")))
	assert.Equal(t, "no separator", extractBody(errors.New("no separator")))
}
