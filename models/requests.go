package models

// ValidationParser names the validator a payload is meant for.
type ValidationParser string

const (
	// FiniteValuesEntity selects membership validation against an allow-list.
	FiniteValuesEntity ValidationParser = "finite_values_entity"
	// NumericValuesEntity selects validation against a numeric constraint.
	NumericValuesEntity ValidationParser = "numeric_values_entity"
)

// SlotInfo holds the descriptive fields every slot payload carries.
// None of them influence a validation decision.
type SlotInfo struct {
	// Name is the slot name (e.g. "govt_id", "age").
	Name string `json:"name,omitempty"`

	// Reuse tells the dialogue engine whether a previously filled value may be reused.
	Reuse bool `json:"reuse,omitempty"`

	// Type lists the entity types the slot accepts.
	Type []string `json:"type,omitempty"`

	// ValidationParser names the validator the payload targets.
	ValidationParser ValidationParser `json:"validation_parser,omitempty"`
}

// FiniteValuesRequest is the payload for finite-set membership validation.
type FiniteValuesRequest struct {
	SlotInfo

	// Values are the candidates extracted by the NLU pipeline.
	Values []ValueRecord `json:"values"`

	// SupportedValues is the allow-list. An empty list makes every value unsupported.
	SupportedValues []string `json:"supported_values"`

	// InvalidTrigger is the follow-up to invoke when validation fails. Required.
	InvalidTrigger string `json:"invalid_trigger"`

	// Key is the name of the output parameter. Required.
	Key string `json:"key"`

	// PickFirst keeps only the first candidate in the output parameters.
	PickFirst bool `json:"pick_first"`

	// SupportMultiple is the complement of PickFirst in upstream payloads.
	// Nil when the caller omitted it.
	SupportMultiple *bool `json:"support_multiple,omitempty"`
}

// NumericValuesRequest is the payload for numeric-constraint validation.
type NumericValuesRequest struct {
	SlotInfo

	// Values are the candidates extracted by the NLU pipeline.
	Values []ValueRecord `json:"values"`

	// InvalidTrigger is the follow-up to invoke when validation fails. Required.
	InvalidTrigger string `json:"invalid_trigger"`

	// Key is the name of the output parameter. Required.
	Key string `json:"key"`

	// PickFirst keeps only the first satisfying candidate in the output parameters.
	PickFirst bool `json:"pick_first"`

	// Constraint is a boolean expression over VarName, e.g. "x>=18 and x<=30".
	// Empty means always satisfied.
	Constraint string `json:"constraint,omitempty"`

	// VarName is the free variable of Constraint.
	VarName string `json:"var_name,omitempty"`
}
