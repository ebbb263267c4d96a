package slots

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/slot-validation-service/internal/expression"
	"github.com/MKhiriev/slot-validation-service/models"
)

// ValidateNumeric checks every value against the constraint.
//
// The constraint is compiled before the values are looked at, so a broken
// constraint fails even for an empty list. An empty constraint accepts every
// value. The slot is filled only when every value satisfies the constraint;
// the satisfying values are carried forward either way.
func (e *Engine) ValidateNumeric(p NumericParams) (models.ValidationResult, error) {
	if err := checkOutputConfig(p.InvalidTrigger, p.Key); err != nil {
		return models.ValidationResult{}, err
	}

	pred, err := e.compile(p.Constraint, p.VarName)
	if err != nil {
		return models.ValidationResult{}, err
	}
	if len(p.Values) == 0 {
		return noCandidates(p.InvalidTrigger), nil
	}

	accepted := make([]models.SlotValue, 0, len(p.Values))
	for i, rec := range p.Values {
		if !rec.HasValue() {
			return models.ValidationResult{}, fmt.Errorf("values[%d]: %w", i, ErrMalformedValueRecord)
		}
		ok, err := pred(*rec.Value)
		if err != nil {
			return models.ValidationResult{}, fmt.Errorf("values[%d]: %w", i, err)
		}
		if ok {
			accepted = append(accepted, *rec.Value)
		}
	}

	filled := len(accepted) == len(p.Values)
	params := shapeParameters(p.Key, accepted, p.PickFirst, e.opts.UppercasePickFirstNumeric)
	return outcome(filled, p.InvalidTrigger, params), nil
}

type predicate func(models.SlotValue) (bool, error)

func acceptAll(models.SlotValue) (bool, error) { return true, nil }

func (e *Engine) compile(constraint, varName string) (predicate, error) {
	if constraint == "" {
		return acceptAll, nil
	}
	if !expression.IsIdentifier(varName) {
		return nil, fmt.Errorf("%w: %q is not a valid variable name", ErrConstraintBinding, varName)
	}

	expr, err := expression.Compile(constraint, expression.Options{
		Variables: []string{varName},
		Limits:    e.opts.Limits,
	})
	if err != nil {
		return nil, classify(err)
	}

	return func(v models.SlotValue) (bool, error) {
		bound, err := bind(v)
		if err != nil {
			return false, err
		}
		ok, err := expr.EvaluateBool(map[string]expression.Value{varName: bound})
		if err != nil {
			return false, classify(err)
		}
		return ok, nil
	}, nil
}

// bind converts a slot value to an interpreter value. Text stays text, so
// a value such as "x" is compared as a string and never read as a name.
func bind(v models.SlotValue) (expression.Value, error) {
	if text, ok := v.Text(); ok {
		return expression.String(text), nil
	}
	f, err := v.Float()
	if err != nil {
		return expression.Value{}, fmt.Errorf("%w: %w", ErrConstraintBinding, err)
	}
	return expression.Number(f), nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, expression.ErrSyntax),
		errors.Is(err, expression.ErrForbidden),
		errors.Is(err, expression.ErrTooComplex):
		return fmt.Errorf("%w: %w", ErrConstraintParse, err)
	case errors.Is(err, expression.ErrUnknownIdentifier),
		errors.Is(err, expression.ErrUnbound):
		return fmt.Errorf("%w: %w", ErrConstraintBinding, err)
	case errors.Is(err, expression.ErrNotBoolean):
		return fmt.Errorf("%w: %w", ErrConstraintNotBoolean, err)
	default:
		return fmt.Errorf("%w: %w", ErrConstraintEvaluation, err)
	}
}
