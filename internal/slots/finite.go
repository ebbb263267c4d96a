package slots

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/slot-validation-service/models"
)

// ValidateFinite checks every value against the allow-list.
//
// An empty list of values yields (false, false, trigger, {}); an empty
// allow-list yields (false, true, trigger, {}). Matching is exact and
// case-sensitive, and only textual values can match. The first value that
// does not match makes the slot partially filled.
func (e *Engine) ValidateFinite(p FiniteParams) (models.ValidationResult, error) {
	if err := checkOutputConfig(p.InvalidTrigger, p.Key); err != nil {
		return models.ValidationResult{}, err
	}
	if len(p.Values) == 0 {
		return noCandidates(p.InvalidTrigger), nil
	}
	if len(p.SupportedValues) == 0 {
		return outcome(false, p.InvalidTrigger, map[string]any{}), nil
	}

	accepted := make([]models.SlotValue, 0, len(p.Values))
	for i, rec := range p.Values {
		ok, err := isSupported(rec, p.SupportedValues)
		if err != nil {
			return models.ValidationResult{}, fmt.Errorf("values[%d]: %w", i, err)
		}
		if !ok {
			return outcome(false, p.InvalidTrigger, map[string]any{}), nil
		}
		accepted = append(accepted, *rec.Value)
	}

	return outcome(true, p.InvalidTrigger, shapeParameters(p.Key, accepted, p.PickFirst, true)), nil
}

func isSupported(rec models.ValueRecord, supported []string) (bool, error) {
	if !rec.HasValue() {
		return false, ErrMalformedValueRecord
	}
	text, ok := rec.Value.Text()
	if !ok {
		return false, nil
	}
	return slices.Contains(supported, text), nil
}
