package expression

import (
	"strconv"
)

const (
	DefaultMaxLength = 1024
	DefaultMaxDepth  = 32
	DefaultMaxNodes  = 256
)

// Limits bound the work Compile does on caller-supplied text.
// Zero fields fall back to the defaults.
type Limits struct {
	MaxLength int // bytes of source
	MaxDepth  int // nesting of sub-expressions
	MaxNodes  int // AST nodes
}

func (l Limits) withDefaults() Limits {
	if l.MaxLength <= 0 {
		l.MaxLength = DefaultMaxLength
	}
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultMaxDepth
	}
	if l.MaxNodes <= 0 {
		l.MaxNodes = DefaultMaxNodes
	}
	return l
}

// Options configure Compile.
type Options struct {
	// Variables lists the identifiers the expression may refer to.
	Variables []string
	Limits    Limits
}

// Expression is a compiled constraint.
type Expression struct {
	source    string
	root      Node
	variables map[string]struct{}
}

// Source returns the text the expression was compiled from.
func (e *Expression) Source() string { return e.source }

// Root returns the parsed tree.
func (e *Expression) Root() Node { return e.root }

// Compile parses src into an Expression.
func Compile(src string, opts Options) (*Expression, error) {
	limits := opts.Limits.withDefaults()
	if len(src) > limits.MaxLength {
		return nil, errorAt(ErrTooComplex, limits.MaxLength, "source is %d bytes, limit is %d", len(src), limits.MaxLength)
	}

	vars := make(map[string]struct{}, len(opts.Variables))
	for _, v := range opts.Variables {
		vars[v] = struct{}{}
	}

	p := &parser{lexer: NewLexer(src), limits: limits, vars: vars}
	p.next()
	p.next()

	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenEOF {
		return nil, p.unexpected()
	}
	return &Expression{source: src, root: root, variables: vars}, nil
}

type parser struct {
	lexer  *Lexer
	cur    Token
	peek   Token
	limits Limits
	vars   map[string]struct{}
	depth  int
	nodes  int
}

func (p *parser) next() {
	p.cur = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.limits.MaxDepth {
		return errorAt(ErrTooComplex, p.cur.Pos, "nesting deeper than %d", p.limits.MaxDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

func (p *parser) node(n Node) (Node, error) {
	p.nodes++
	if p.nodes > p.limits.MaxNodes {
		return nil, errorAt(ErrTooComplex, n.Pos(), "more than %d nodes", p.limits.MaxNodes)
	}
	return n, nil
}

// unexpected classifies the current token as forbidden or a plain syntax error.
func (p *parser) unexpected() error {
	tok := p.cur
	switch {
	case tok.Type == TokenReserved:
		return errorAt(ErrForbidden, tok.Pos, "reserved word %q", tok.Value)
	case tok.Type == TokenIllegal && tok.Value == "=":
		return errorAt(ErrForbidden, tok.Pos, "assignment")
	case tok.Type == TokenIllegal && tok.Value == ".":
		return errorAt(ErrForbidden, tok.Pos, "attribute access")
	case tok.Type == TokenIllegal && tok.Value == "[":
		return errorAt(ErrForbidden, tok.Pos, "index access")
	case tok.Type == TokenLeftParen:
		return errorAt(ErrForbidden, tok.Pos, "call")
	case tok.Type == TokenEOF:
		return errorAt(ErrSyntax, tok.Pos, "unexpected end of input")
	default:
		return errorAt(ErrSyntax, tok.Pos, "unexpected %s", tok)
	}
}

// expression := or
func (p *parser) parseExpression() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.parseOr()
}

// or := and ("or" and)*
func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenOr {
		pos := p.cur.Pos
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		if left, err = p.node(&Logical{Op: TokenOr, Left: left, Right: right, Offset: pos}); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// and := not ("and" not)*
func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenAnd {
		pos := p.cur.Pos
		p.next()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		if left, err = p.node(&Logical{Op: TokenAnd, Left: left, Right: right, Offset: pos}); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// not := "not" not | comparison
func (p *parser) parseNot() (Node, error) {
	if p.cur.Type != TokenNot {
		return p.parseComparison()
	}
	pos := p.cur.Pos
	p.next()
	if err := p.enter(); err != nil {
		return nil, err
	}
	operand, err := p.parseNot()
	p.leave()
	if err != nil {
		return nil, err
	}
	return p.node(&Unary{Op: TokenNot, Operand: operand, Offset: pos})
}

func isComparison(tt TokenType) bool {
	switch tt {
	case TokenEquals, TokenNotEquals, TokenLess, TokenLessEq, TokenGreater, TokenGreaterEq:
		return true
	}
	return false
}

// comparison := sum (cmp sum)*
func (p *parser) parseComparison() (Node, error) {
	first, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if !isComparison(p.cur.Type) {
		return first, nil
	}

	cmp := &Compare{Operands: []Node{first}, Offset: first.Pos()}
	for isComparison(p.cur.Type) {
		cmp.Ops = append(cmp.Ops, p.cur.Type)
		p.next()
		operand, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		cmp.Operands = append(cmp.Operands, operand)
	}
	return p.node(cmp)
}

// sum := term (("+" | "-") term)*
func (p *parser) parseSum() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenPlus || p.cur.Type == TokenMinus {
		op, pos := p.cur.Type, p.cur.Pos
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if left, err = p.node(&Binary{Op: op, Left: left, Right: right, Offset: pos}); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// term := factor (("*" | "/" | "//" | "%") factor)*
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenStar || p.cur.Type == TokenSlash || p.cur.Type == TokenFloorDiv || p.cur.Type == TokenPercent {
		op, pos := p.cur.Type, p.cur.Pos
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if left, err = p.node(&Binary{Op: op, Left: left, Right: right, Offset: pos}); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// factor := ("+" | "-") factor | power
func (p *parser) parseFactor() (Node, error) {
	if p.cur.Type != TokenPlus && p.cur.Type != TokenMinus {
		return p.parsePower()
	}
	op, pos := p.cur.Type, p.cur.Pos
	p.next()
	if err := p.enter(); err != nil {
		return nil, err
	}
	operand, err := p.parseFactor()
	p.leave()
	if err != nil {
		return nil, err
	}
	return p.node(&Unary{Op: op, Operand: operand, Offset: pos})
}

// power := primary ("**" factor)?
func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenPower {
		return base, nil
	}
	pos := p.cur.Pos
	p.next()
	if err := p.enter(); err != nil {
		return nil, err
	}
	exp, err := p.parseFactor()
	p.leave()
	if err != nil {
		return nil, err
	}
	return p.node(&Binary{Op: TokenPower, Left: base, Right: exp, Offset: pos})
}

// primary := NUMBER | STRING | TRUE | FALSE | IDENTIFIER | "(" expression ")"
func (p *parser) parsePrimary() (Node, error) {
	tok := p.cur
	var (
		n   Node
		err error
	)

	switch tok.Type {
	case TokenNumber:
		f, perr := strconv.ParseFloat(tok.Value, 64)
		if perr != nil {
			return nil, errorAt(ErrSyntax, tok.Pos, "invalid number %q", tok.Value)
		}
		n = &Literal{Value: Number(f), Offset: tok.Pos}
		p.next()
	case TokenString:
		n = &Literal{Value: String(tok.Value), Offset: tok.Pos}
		p.next()
	case TokenTrue, TokenFalse:
		n = &Literal{Value: Bool(tok.Type == TokenTrue), Offset: tok.Pos}
		p.next()
	case TokenIdentifier:
		if p.peek.Type == TokenLeftParen {
			return nil, errorAt(ErrForbidden, p.peek.Pos, "call of %q", tok.Value)
		}
		if _, ok := p.vars[tok.Value]; !ok {
			return nil, errorAt(ErrUnknownIdentifier, tok.Pos, "%q", tok.Value)
		}
		n = &Ident{Name: tok.Value, Offset: tok.Pos}
		p.next()
	case TokenLeftParen:
		p.next()
		inner, perr := p.parseExpression()
		if perr != nil {
			return nil, perr
		}
		if p.cur.Type != TokenRightParen {
			if p.cur.Type == TokenEOF {
				return nil, errorAt(ErrSyntax, p.cur.Pos, "missing closing parenthesis")
			}
			return nil, p.unexpected()
		}
		p.next()
		n = inner
	default:
		return nil, p.unexpected()
	}

	// a parenthesised expression was already counted
	if tok.Type != TokenLeftParen {
		if n, err = p.node(n); err != nil {
			return nil, err
		}
	}
	// x.y, x[0], (x)(1)
	switch {
	case p.cur.Type == TokenIllegal && (p.cur.Value == "." || p.cur.Value == "["):
		return nil, p.unexpected()
	case p.cur.Type == TokenLeftParen:
		return nil, errorAt(ErrForbidden, p.cur.Pos, "call")
	}
	return n, nil
}
