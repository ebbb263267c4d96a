package expression

import (
	"fmt"
	"strings"
)

// Node is an AST node.
type Node interface {
	// Pos returns the byte offset of the node in the source.
	Pos() int
	String() string
}

// Literal is a constant operand.
type Literal struct {
	Value  Value
	Offset int
}

// Ident refers to a declared variable.
type Ident struct {
	Name   string
	Offset int
}

// Unary is a prefix operator: -x, +x, not x.
type Unary struct {
	Op      TokenType
	Operand Node
	Offset  int
}

// Binary is an arithmetic operator.
type Binary struct {
	Op          TokenType
	Left, Right Node
	Offset      int
}

// Logical is a short-circuit connective (and / or).
type Logical struct {
	Op          TokenType
	Left, Right Node
	Offset      int
}

// Compare is a comparison chain: a < b <= c means a < b and b <= c,
// with every operand evaluated at most once.
type Compare struct {
	Ops      []TokenType
	Operands []Node
	Offset   int
}

func (n *Literal) Pos() int { return n.Offset }
func (n *Ident) Pos() int   { return n.Offset }
func (n *Unary) Pos() int   { return n.Offset }
func (n *Binary) Pos() int  { return n.Offset }
func (n *Logical) Pos() int { return n.Offset }
func (n *Compare) Pos() int { return n.Offset }

func (n *Literal) String() string { return n.Value.String() }
func (n *Ident) String() string   { return n.Name }

func (n *Unary) String() string {
	if n.Op == TokenNot {
		return fmt.Sprintf("(not %s)", n.Operand)
	}
	return fmt.Sprintf("(%s%s)", n.Op, n.Operand)
}

func (n *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

func (n *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

func (n *Compare) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(n.Operands[0].String())
	for i, op := range n.Ops {
		sb.WriteString(" ")
		sb.WriteString(op.String())
		sb.WriteString(" ")
		sb.WriteString(n.Operands[i+1].String())
	}
	sb.WriteString(")")
	return sb.String()
}
