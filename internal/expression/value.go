package expression

import (
	"strconv"
)

// Kind is the dynamic type of a [Value].
type Kind int

const (
	KindNumber Kind = iota + 1
	KindString
	KindBool
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a runtime value of the interpreter.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean content and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric content and whether v is a number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsString returns the string content and whether v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// Truthy follows the usual rules: zero, "" and false are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNumber:
		return v.num != 0
	case KindString:
		return v.str != ""
	case KindBool:
		return v.b
	default:
		return false
	}
}

// numeric returns v as a number, treating booleans as 0 and 1.
func (v Value) numeric() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	default:
		return "<invalid>"
	}
}
