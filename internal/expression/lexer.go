package expression

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal

	TokenIdentifier // x, age
	TokenNumber     // 18, 2.5, 1e3
	TokenString     // 'abc', "abc"
	TokenTrue       // True, true
	TokenFalse      // False, false

	TokenAnd // and
	TokenOr  // or
	TokenNot // not

	TokenPlus       // +
	TokenMinus      // -
	TokenStar       // *
	TokenSlash      // /
	TokenFloorDiv   // //
	TokenPercent    // %
	TokenPower      // **
	TokenEquals     // ==
	TokenNotEquals  // !=
	TokenLess       // <
	TokenLessEq     // <=
	TokenGreater    // >
	TokenGreaterEq  // >=
	TokenLeftParen  // (
	TokenRightParen // )

	// TokenReserved marks words that belong to a programming language
	// rather than to a constraint (import, lambda, if, ...).
	TokenReserved
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenIllegal:    "ILLEGAL",
	TokenIdentifier: "IDENTIFIER",
	TokenNumber:     "NUMBER",
	TokenString:     "STRING",
	TokenTrue:       "TRUE",
	TokenFalse:      "FALSE",
	TokenAnd:        "and",
	TokenOr:         "or",
	TokenNot:        "not",
	TokenPlus:       "+",
	TokenMinus:      "-",
	TokenStar:       "*",
	TokenSlash:      "/",
	TokenFloorDiv:   "//",
	TokenPercent:    "%",
	TokenPower:      "**",
	TokenEquals:     "==",
	TokenNotEquals:  "!=",
	TokenLess:       "<",
	TokenLessEq:     "<=",
	TokenGreater:    ">",
	TokenGreaterEq:  ">=",
	TokenLeftParen:  "(",
	TokenRightParen: ")",
	TokenReserved:   "RESERVED",
}

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

var keywords = map[string]TokenType{
	"and":   TokenAnd,
	"or":    TokenOr,
	"not":   TokenNot,
	"True":  TokenTrue,
	"False": TokenFalse,
	"true":  TokenTrue,
	"false": TokenFalse,
}

var reservedWords = map[string]struct{}{
	"import": {}, "from": {}, "lambda": {}, "def": {}, "class": {},
	"if": {}, "else": {}, "for": {}, "while": {}, "in": {}, "is": {},
	"return": {}, "yield": {}, "with": {}, "as": {}, "del": {},
	"global": {}, "nonlocal": {}, "exec": {}, "eval": {}, "None": {},
}

// Token is a lexical token with its byte offset in the source.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// String returns a string representation of the token.
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// Lexer splits constraint source into tokens.
type Lexer struct {
	input   string
	pos     int  // offset of ch
	readPos int  // offset after ch
	ch      byte // current char, 0 at end of input
}

// NewLexer creates a lexer positioned at the first character of input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token. At the end of input it keeps returning TokenEOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.pos
	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Pos: pos}
	case '+':
		return l.single(TokenPlus)
	case '-':
		return l.single(TokenMinus)
	case '%':
		return l.single(TokenPercent)
	case '(':
		return l.single(TokenLeftParen)
	case ')':
		return l.single(TokenRightParen)
	case '*':
		return l.oneOrTwo('*', TokenStar, TokenPower)
	case '/':
		return l.oneOrTwo('/', TokenSlash, TokenFloorDiv)
	case '<':
		return l.oneOrTwo('=', TokenLess, TokenLessEq)
	case '>':
		return l.oneOrTwo('=', TokenGreater, TokenGreaterEq)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenEquals, Value: "==", Pos: pos}
		}
		return l.single(TokenIllegal)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenNotEquals, Value: "!=", Pos: pos}
		}
		return l.single(TokenIllegal)
	case '\'', '"':
		return l.readString()
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		return l.single(TokenIllegal)
	}

	if isLetter(l.ch) {
		word := l.readIdentifier()
		if tt, ok := keywords[word]; ok {
			return Token{Type: tt, Value: word, Pos: pos}
		}
		if _, ok := reservedWords[word]; ok {
			return Token{Type: TokenReserved, Value: word, Pos: pos}
		}
		return Token{Type: TokenIdentifier, Value: word, Pos: pos}
	}
	if isDigit(l.ch) {
		return l.readNumber()
	}

	return l.single(TokenIllegal)
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) single(tt TokenType) Token {
	tok := Token{Type: tt, Value: string(l.ch), Pos: l.pos}
	l.readChar()
	return tok
}

// oneOrTwo emits long when the current char is followed by next, short otherwise.
func (l *Lexer) oneOrTwo(next byte, short, long TokenType) Token {
	pos := l.pos
	first := l.ch
	if l.peekChar() == next {
		l.readChar()
		l.readChar()
		return Token{Type: long, Value: string([]byte{first, next}), Pos: pos}
	}
	l.readChar()
	return Token{Type: short, Value: string(first), Pos: pos}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readNumber() Token {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		save, saveRead := l.pos, l.readPos
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if !isDigit(l.ch) {
			// not an exponent after all; let the parser complain about the letter
			l.pos, l.readPos = save, saveRead
			l.ch = l.input[l.pos]
			return Token{Type: TokenNumber, Value: l.input[start:l.pos], Pos: start}
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return Token{Type: TokenNumber, Value: l.input[start:l.pos], Pos: start}
}

func (l *Lexer) readString() Token {
	start := l.pos
	quote := l.ch
	l.readChar()

	var sb strings.Builder
	for {
		switch l.ch {
		case 0, '\n':
			return Token{Type: TokenIllegal, Value: l.input[start:l.pos], Pos: start}
		case quote:
			l.readChar()
			return Token{Type: TokenString, Value: sb.String(), Pos: start}
		case '\\':
			l.readChar()
			switch l.ch {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case '\\', '\'', '"':
				sb.WriteByte(l.ch)
			case 0:
				return Token{Type: TokenIllegal, Value: l.input[start:l.pos], Pos: start}
			default:
				sb.WriteByte('\\')
				sb.WriteByte(l.ch)
			}
			l.readChar()
		default:
			sb.WriteByte(l.ch)
			l.readChar()
		}
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// IsIdentifier reports whether name can be used as a variable: a letter or
// underscore followed by letters, digits or underscores, and not a keyword.
func IsIdentifier(name string) bool {
	if name == "" || !isLetter(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isLetter(name[i]) && !isDigit(name[i]) {
			return false
		}
	}
	if _, ok := keywords[name]; ok {
		return false
	}
	_, reserved := reservedWords[name]
	return !reserved
}
