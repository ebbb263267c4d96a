package slots

import "github.com/MKhiriev/slot-validation-service/models"

// noCandidates is the result for an empty list of values.
func noCandidates(trigger string) models.ValidationResult {
	return models.ValidationResult{
		Filled:          false,
		PartiallyFilled: false,
		Trigger:         trigger,
		Parameters:      map[string]any{},
	}
}

// outcome builds a result from the accepted values.
// Trigger is set only when the slot is not filled.
func outcome(filled bool, trigger string, params map[string]any) models.ValidationResult {
	res := models.ValidationResult{
		Filled:          filled,
		PartiallyFilled: !filled,
		Parameters:      params,
	}
	if !filled {
		res.Trigger = trigger
	}
	return res
}

// shapeParameters maps key to the accepted values. With pickFirst only the
// first value is kept, upper-cased when upperFirst is set; otherwise every
// textual value is upper-cased and input order is preserved.
func shapeParameters(key string, accepted []models.SlotValue, pickFirst, upperFirst bool) map[string]any {
	if len(accepted) == 0 {
		return map[string]any{}
	}
	if pickFirst {
		first := accepted[0]
		if upperFirst {
			first = first.Upper()
		}
		return map[string]any{key: first}
	}

	list := make([]models.SlotValue, 0, len(accepted))
	for _, v := range accepted {
		list = append(list, v.Upper())
	}
	return map[string]any{key: list}
}
