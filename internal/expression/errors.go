package expression

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned when the source is not a valid expression.
	ErrSyntax = errors.New("syntax error")
	// ErrForbidden is returned for constructs outside the grammar that look
	// like code: calls, attribute or index access, assignments.
	ErrForbidden = errors.New("forbidden construct")
	// ErrTooComplex is returned when the source exceeds the configured limits.
	ErrTooComplex = errors.New("expression too complex")
	// ErrUnknownIdentifier is returned when the source refers to a name that
	// is not a declared variable.
	ErrUnknownIdentifier = errors.New("unknown identifier")
	// ErrUnbound is returned when a declared variable has no binding at
	// evaluation time.
	ErrUnbound = errors.New("unbound variable")
	// ErrType is returned when an operator is applied to unsupported operands.
	ErrType = errors.New("type error")
	// ErrArithmetic is returned on division by zero, overflow or a
	// non-real result.
	ErrArithmetic = errors.New("arithmetic error")
	// ErrNotBoolean is returned by EvaluateBool when the result is not a boolean.
	ErrNotBoolean = errors.New("expression did not evaluate to a boolean")
)

// PositionError attaches a source position to one of the package sentinels.
type PositionError struct {
	Err    error
	Pos    int
	Detail string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Err, e.Pos, e.Detail)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

func errorAt(err error, pos int, format string, args ...any) error {
	return &PositionError{Err: err, Pos: pos, Detail: fmt.Sprintf(format, args...)}
}
