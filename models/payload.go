package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownValidationParser is returned when a payload names no known validator.
	ErrUnknownValidationParser = errors.New("unknown validation_parser")
)

// SlotPayload is a request of either kind, tagged by its validation parser.
// Exactly one of Finite and Numeric is set.
type SlotPayload struct {
	Parser  ValidationParser
	Finite  *FiniteValuesRequest
	Numeric *NumericValuesRequest
}

// DecodeSlotPayload decodes a JSON payload, choosing the request type by its
// "validation_parser" field.
func DecodeSlotPayload(data []byte) (SlotPayload, error) {
	parser, err := PeekValidationParser(data)
	if err != nil {
		return SlotPayload{}, err
	}
	return DecodeSlotPayloadAs(parser, data)
}

// PeekValidationParser reads only the "validation_parser" field of data and
// checks that it names a known validator. The rest of the payload is not
// decoded.
func PeekValidationParser(data []byte) (ValidationParser, error) {
	var head struct {
		ValidationParser ValidationParser `json:"validation_parser"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}

	switch head.ValidationParser {
	case FiniteValuesEntity, NumericValuesEntity:
		return head.ValidationParser, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownValidationParser, head.ValidationParser)
	}
}

// DecodeSlotPayloadAs decodes data into the request type of parser.
func DecodeSlotPayloadAs(parser ValidationParser, data []byte) (SlotPayload, error) {
	p := SlotPayload{Parser: parser}
	switch parser {
	case FiniteValuesEntity:
		p.Finite = new(FiniteValuesRequest)
		if err := json.Unmarshal(data, p.Finite); err != nil {
			return SlotPayload{}, fmt.Errorf("decode finite payload: %w", err)
		}
	case NumericValuesEntity:
		p.Numeric = new(NumericValuesRequest)
		if err := json.Unmarshal(data, p.Numeric); err != nil {
			return SlotPayload{}, fmt.Errorf("decode numeric payload: %w", err)
		}
	default:
		return SlotPayload{}, fmt.Errorf("%w: %q", ErrUnknownValidationParser, parser)
	}
	return p, nil
}

// MarshalJSON encodes the wrapped request.
func (p SlotPayload) MarshalJSON() ([]byte, error) {
	switch {
	case p.Finite != nil:
		return json.Marshal(p.Finite)
	case p.Numeric != nil:
		return json.Marshal(p.Numeric)
	default:
		return nil, fmt.Errorf("%w: empty payload", ErrUnknownValidationParser)
	}
}

// BatchItemResult is the outcome of one payload of a batch.
type BatchItemResult struct {
	Index  int               `json:"index"`
	Result *ValidationResult `json:"result,omitempty"`
	Error  string            `json:"error,omitempty"`
}
