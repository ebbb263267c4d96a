package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/slot-validation-service/internal/app"
	"github.com/MKhiriev/slot-validation-service/internal/service"
	"github.com/MKhiriev/slot-validation-service/internal/slots"
	"github.com/MKhiriev/slot-validation-service/internal/validators"
	"github.com/MKhiriev/slot-validation-service/models"
)

var errorStatusMap = map[error]int{
	slots.ErrMissingTrigger:       http.StatusBadRequest,
	slots.ErrMissingKey:           http.StatusBadRequest,
	slots.ErrMalformedValueRecord: http.StatusBadRequest,
	slots.ErrConstraintBinding:    http.StatusBadRequest,
	slots.ErrConstraintParse:      http.StatusBadRequest,
	slots.ErrConstraintNotBoolean: http.StatusBadRequest,
	slots.ErrConstraintEvaluation: http.StatusBadRequest,

	validators.ErrUnknownParser:     http.StatusBadRequest,
	validators.ErrParserMismatch:    http.StatusBadRequest,
	validators.ErrPickFirstConflict: http.StatusBadRequest,
	validators.ErrSchemaViolation:   http.StatusBadRequest,
	validators.ErrMalformedJSON:     http.StatusBadRequest,

	models.ErrUnknownValidationParser: http.StatusBadRequest,
	service.ErrEmptyPayload:           http.StatusBadRequest,
	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	ErrBodyTooLarge:                   http.StatusRequestEntityTooLarge,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// statusFromError returns the status for err together with the message that
// is safe to send to the caller: the matched sentinel's text, or a generic
// message for anything unexpected.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if target == context.DeadlineExceeded {
				return status, app.MsgRequestTimeout
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
