package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/slot-validation-service/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldValidationParser checks that validation_parser, when present,
	// names the validator the request is sent to.
	FieldValidationParser = "validation_parser"

	// FieldPickFirst checks that pick_first and support_multiple are not
	// both set to the same value.
	FieldPickFirst = "pick_first"
)

// SlotRequestValidator implements Validator for FiniteValuesRequest and
// NumericValuesRequest. Value and pointer forms are both accepted.
//
// Trigger and key presence are left to the engine, which reports them as
// configuration errors.
type SlotRequestValidator struct {
}

// NewSlotRequestValidator returns a SlotRequestValidator as a Validator.
func NewSlotRequestValidator() Validator {
	return &SlotRequestValidator{}
}

// Validate dispatches to the type-specific rules.
func (v *SlotRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FiniteValuesRequest:
		return v.validateFinite(ctx, value, fields...)
	case *models.FiniteValuesRequest:
		return v.validateFinite(ctx, *value, fields...)

	case models.NumericValuesRequest:
		return v.validateNumeric(ctx, value, fields...)
	case *models.NumericValuesRequest:
		return v.validateNumeric(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SlotRequestValidator) validateFinite(_ context.Context, req models.FiniteValuesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldValidationParser, FieldPickFirst}
	}

	for _, f := range fields {
		switch f {
		case FieldValidationParser:
			if err := checkParser(req.ValidationParser, models.FiniteValuesEntity); err != nil {
				return err
			}
		case FieldPickFirst:
			if req.SupportMultiple != nil && *req.SupportMultiple == req.PickFirst {
				return ErrPickFirstConflict
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SlotRequestValidator) validateNumeric(_ context.Context, req models.NumericValuesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldValidationParser}
	}

	for _, f := range fields {
		switch f {
		case FieldValidationParser:
			if err := checkParser(req.ValidationParser, models.NumericValuesEntity); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkParser(got, want models.ValidationParser) error {
	if got == "" || got == want {
		return nil
	}
	return fmt.Errorf("%w: got %q, want %q", ErrParserMismatch, got, want)
}
