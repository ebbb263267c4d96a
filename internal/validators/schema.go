// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/slot-validation-service/internal/logger"
	"github.com/MKhiriev/slot-validation-service/models"
	"github.com/google/jsonschema-go/jsonschema"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

var schemaFileByParser = map[models.ValidationParser]string{
	models.FiniteValuesEntity:  "schemas/finite_values.json",
	models.NumericValuesEntity: "schemas/numeric_values.json",
}

// PayloadSchemaValidator validates raw slot payloads against the embedded
// JSON Schemas. Schemas are resolved once at construction.
type PayloadSchemaValidator struct {
	resolved map[models.ValidationParser]*jsonschema.Resolved
}

// NewPayloadSchemaValidator loads and resolves the embedded schemas.
func NewPayloadSchemaValidator() (*PayloadSchemaValidator, error) {
	v := &PayloadSchemaValidator{resolved: make(map[models.ValidationParser]*jsonschema.Resolved, len(schemaFileByParser))}
	for parser, file := range schemaFileByParser {
		raw, err := schemaFiles.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", file, err)
		}

		var schema jsonschema.Schema
		if err = json.Unmarshal(raw, &schema); err != nil {
			return nil, fmt.Errorf("decode schema %s: %w", file, err)
		}

		resolved, err := schema.Resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("resolve schema %s: %w", file, err)
		}
		v.resolved[parser] = resolved
	}
	return v, nil
}

// ValidateSchema checks body against the schema registered for parser.
// Violations are logged in full; the returned error only says that the
// payload was rejected.
func (v *PayloadSchemaValidator) ValidateSchema(ctx context.Context, parser models.ValidationParser, body []byte) error {
	resolved, ok := v.resolved[parser]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParser, parser)
	}

	var instance any
	if err := json.Unmarshal(body, &instance); err != nil {
		logger.FromContext(ctx).Err(err).Str("parser", string(parser)).Msg("request body is not valid JSON")
		return ErrMalformedJSON
	}

	if err := resolved.Validate(instance); err != nil {
		logger.FromContext(ctx).Err(err).Str("parser", string(parser)).Msg("request body violates schema")
		return ErrSchemaViolation
	}
	return nil
}
