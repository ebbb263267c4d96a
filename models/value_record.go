package models

// ValueRecord is one NLU-extracted candidate for a slot.
type ValueRecord struct {
	// EntityType is the entity label assigned by the NLU pipeline.
	// It is carried along for the caller and never used in a decision.
	EntityType string `json:"entity_type"`

	// Value is the extracted value. A nil Value means the upstream payload
	// did not contain the "value" key at all.
	Value *SlotValue `json:"value"`
}

// NewValueRecord builds a ValueRecord holding v.
func NewValueRecord(entityType string, v SlotValue) ValueRecord {
	return ValueRecord{EntityType: entityType, Value: &v}
}

// HasValue reports whether the record carries a value.
func (r ValueRecord) HasValue() bool {
	return r.Value != nil && r.Value.Kind() != KindUnset
}
