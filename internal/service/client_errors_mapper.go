// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/slot-validation-service/internal/adapter"
	"github.com/MKhiriev/slot-validation-service/internal/app"
	"github.com/MKhiriev/slot-validation-service/internal/slots"
	"github.com/MKhiriev/slot-validation-service/internal/validators"
	"github.com/MKhiriev/slot-validation-service/models"
)

// badRequestErrors are the sentinels a server may name in a 400 response.
var badRequestErrors = []error{
	slots.ErrMissingTrigger,
	slots.ErrMissingKey,
	slots.ErrMalformedValueRecord,
	slots.ErrConstraintBinding,
	slots.ErrConstraintParse,
	slots.ErrConstraintNotBoolean,
	slots.ErrConstraintEvaluation,

	validators.ErrParserMismatch,
	validators.ErrPickFirstConflict,
	validators.ErrSchemaViolation,
	validators.ErrMalformedJSON,
	validators.ErrUnknownParser,

	models.ErrUnknownValidationParser,
}

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		for _, target := range badRequestErrors {
			if msg == target.Error() {
				return target
			}
		}
		if msg == app.MsgInvalidDataProvided {
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnavailable), errors.Is(err, adapter.ErrTimeout):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerFailure
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
