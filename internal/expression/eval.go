package expression

import (
	"math"
	"strings"
)

// Evaluate computes the value of e with the given variable bindings.
// Every variable referenced by e must be bound.
func (e *Expression) Evaluate(bindings map[string]Value) (Value, error) {
	return eval(e.root, bindings)
}

// EvaluateBool is Evaluate followed by a check that the result is a boolean.
func (e *Expression) EvaluateBool(bindings map[string]Value) (bool, error) {
	v, err := e.Evaluate(bindings)
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, errorAt(ErrNotBoolean, e.root.Pos(), "got %s %s", v.Kind(), v)
	}
	return b, nil
}

func eval(n Node, bindings map[string]Value) (Value, error) {
	switch n := n.(type) {
	case *Literal:
		return n.Value, nil
	case *Ident:
		v, ok := bindings[n.Name]
		if !ok || v.kind == 0 {
			return Value{}, errorAt(ErrUnbound, n.Offset, "%q", n.Name)
		}
		return v, nil
	case *Unary:
		return evalUnary(n, bindings)
	case *Binary:
		left, err := eval(n.Left, bindings)
		if err != nil {
			return Value{}, err
		}
		right, err := eval(n.Right, bindings)
		if err != nil {
			return Value{}, err
		}
		return binaryOp(n.Op, left, right, n.Offset)
	case *Logical:
		left, err := eval(n.Left, bindings)
		if err != nil {
			return Value{}, err
		}
		if n.Op == TokenAnd && !left.Truthy() || n.Op == TokenOr && left.Truthy() {
			return left, nil
		}
		return eval(n.Right, bindings)
	case *Compare:
		return evalCompare(n, bindings)
	default:
		return Value{}, errorAt(ErrSyntax, n.Pos(), "unknown node %T", n)
	}
}

func evalUnary(n *Unary, bindings map[string]Value) (Value, error) {
	v, err := eval(n.Operand, bindings)
	if err != nil {
		return Value{}, err
	}
	if n.Op == TokenNot {
		return Bool(!v.Truthy()), nil
	}
	f, ok := v.numeric()
	if !ok {
		return Value{}, errorAt(ErrType, n.Offset, "bad operand type for unary %s: %s", n.Op, v.Kind())
	}
	if n.Op == TokenMinus {
		f = -f
	}
	return Number(f), nil
}

func binaryOp(op TokenType, left, right Value, pos int) (Value, error) {
	if op == TokenPlus && left.kind == KindString && right.kind == KindString {
		return String(left.str + right.str), nil
	}

	a, okA := left.numeric()
	b, okB := right.numeric()
	if !okA || !okB {
		return Value{}, errorAt(ErrType, pos, "unsupported operand types for %s: %s and %s", op, left.Kind(), right.Kind())
	}

	var r float64
	switch op {
	case TokenPlus:
		r = a + b
	case TokenMinus:
		r = a - b
	case TokenStar:
		r = a * b
	case TokenSlash:
		if b == 0 {
			return Value{}, errorAt(ErrArithmetic, pos, "division by zero")
		}
		r = a / b
	case TokenFloorDiv:
		if b == 0 {
			return Value{}, errorAt(ErrArithmetic, pos, "integer division by zero")
		}
		r = math.Floor(a / b)
	case TokenPercent:
		if b == 0 {
			return Value{}, errorAt(ErrArithmetic, pos, "modulo by zero")
		}
		r = math.Mod(a, b)
		// result takes the sign of the divisor
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
	case TokenPower:
		if a == 0 && b < 0 {
			return Value{}, errorAt(ErrArithmetic, pos, "zero to a negative power")
		}
		r = math.Pow(a, b)
	default:
		return Value{}, errorAt(ErrSyntax, pos, "unknown operator %s", op)
	}

	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Value{}, errorAt(ErrArithmetic, pos, "result of %s is not a finite number", op)
	}
	return Number(r), nil
}

func evalCompare(n *Compare, bindings map[string]Value) (Value, error) {
	left, err := eval(n.Operands[0], bindings)
	if err != nil {
		return Value{}, err
	}
	for i, op := range n.Ops {
		right, err := eval(n.Operands[i+1], bindings)
		if err != nil {
			return Value{}, err
		}
		ok, err := compare(op, left, right, n.Operands[i+1].Pos())
		if err != nil {
			return Value{}, err
		}
		if !ok {
			return Bool(false), nil
		}
		left = right
	}
	return Bool(true), nil
}

func compare(op TokenType, left, right Value, pos int) (bool, error) {
	if left.kind == KindString && right.kind == KindString {
		c := strings.Compare(left.str, right.str)
		return ordered(op, c), nil
	}

	a, okA := left.numeric()
	b, okB := right.numeric()
	if okA && okB {
		switch {
		case a < b:
			return ordered(op, -1), nil
		case a > b:
			return ordered(op, 1), nil
		default:
			return ordered(op, 0), nil
		}
	}

	// mixed string and number
	switch op {
	case TokenEquals:
		return false, nil
	case TokenNotEquals:
		return true, nil
	default:
		return false, errorAt(ErrType, pos, "%s not supported between %s and %s", op, left.Kind(), right.Kind())
	}
}

func ordered(op TokenType, c int) bool {
	switch op {
	case TokenEquals:
		return c == 0
	case TokenNotEquals:
		return c != 0
	case TokenLess:
		return c < 0
	case TokenLessEq:
		return c <= 0
	case TokenGreater:
		return c > 0
	case TokenGreaterEq:
		return c >= 0
	default:
		return false
	}
}
