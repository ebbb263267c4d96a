// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidSlotValue is returned when a JSON value is neither a string nor a number.
var ErrInvalidSlotValue = errors.New("slot value must be a string or a number")

// ValueKind tells which variant a [SlotValue] holds.
type ValueKind int

const (
	// KindUnset is the zero kind of an uninitialised SlotValue.
	KindUnset ValueKind = iota
	// KindText marks a textual value.
	KindText
	// KindNumber marks a numeric value.
	KindNumber
)

// SlotValue is the payload of a single NLU-extracted candidate.
//
// It holds either text or a JSON number. Numbers keep their original textual
// representation so that an integer such as 23 is echoed back as 23 and not
// as 23.0.
type SlotValue struct {
	kind ValueKind
	text string
	num  json.Number
}

// StringValue returns a textual SlotValue.
func StringValue(s string) SlotValue {
	return SlotValue{kind: KindText, text: s}
}

// NumberValue returns a numeric SlotValue from its JSON representation.
func NumberValue(n json.Number) SlotValue {
	return SlotValue{kind: KindNumber, num: n}
}

// IntValue returns a numeric SlotValue holding i.
func IntValue(i int64) SlotValue {
	return NumberValue(json.Number(strconv.FormatInt(i, 10)))
}

// FloatValue returns a numeric SlotValue holding f.
func FloatValue(f float64) SlotValue {
	return NumberValue(json.Number(strconv.FormatFloat(f, 'f', -1, 64)))
}

// Kind reports which variant v holds.
func (v SlotValue) Kind() ValueKind {
	return v.kind
}

// IsText reports whether v holds text.
func (v SlotValue) IsText() bool {
	return v.kind == KindText
}

// IsNumber reports whether v holds a number.
func (v SlotValue) IsNumber() bool {
	return v.kind == KindNumber
}

// Text returns the textual content and whether v is textual.
func (v SlotValue) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Float returns the numeric content of v as float64.
func (v SlotValue) Float() (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("value %s is not a number", v)
	}
	return v.num.Float64()
}

// Upper returns a copy of v with textual content upper-cased using full
// Unicode case mapping, so "ß" becomes "SS". Numbers are returned unchanged.
func (v SlotValue) Upper() SlotValue {
	if v.kind != KindText {
		return v
	}
	return StringValue(cases.Upper(language.Und).String(v.text))
}

// String implements fmt.Stringer.
func (v SlotValue) String() string {
	switch v.kind {
	case KindText:
		return strconv.Quote(v.text)
	case KindNumber:
		return v.num.String()
	default:
		return "<unset>"
	}
}

// MarshalJSON encodes text as a JSON string and numbers verbatim.
func (v SlotValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		return []byte(v.num.String()), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a JSON string or a JSON number.
func (v *SlotValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode slot value: %w", err)
	}

	parsed, err := SlotValueFromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// SlotValueFromAny converts a decoded JSON or YAML scalar to a SlotValue.
func SlotValueFromAny(raw any) (SlotValue, error) {
	switch value := raw.(type) {
	case string:
		return StringValue(value), nil
	case json.Number:
		return NumberValue(value), nil
	case float64:
		return FloatValue(value), nil
	case float32:
		return FloatValue(float64(value)), nil
	case int:
		return IntValue(int64(value)), nil
	case int64:
		return IntValue(value), nil
	case int32:
		return IntValue(int64(value)), nil
	default:
		return SlotValue{}, fmt.Errorf("%w: got %T", ErrInvalidSlotValue, raw)
	}
}
