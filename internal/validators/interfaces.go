// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming slot payloads before they reach the
// validation engine.
//
// Two layers are provided:
//   - SchemaValidator: structural check of the raw JSON body against the
//     embedded JSON Schemas (required fields, types, no extra fields).
//   - Validator: request-level rules on decoded payloads, with optional
//     field-level scoping.
//
// Both are injected into transports and services so validation stays
// out of the engine and out of the handlers.
package validators

import (
	"context"

	"github.com/MKhiriev/slot-validation-service/models"
)

// Validator defines a generic validation interface for decoded payloads.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// SchemaValidator validates a raw request body against the schema of a parser.
type SchemaValidator interface {
	ValidateSchema(ctx context.Context, parser models.ValidationParser, body []byte) error
}
