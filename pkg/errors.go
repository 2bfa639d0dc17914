package arith

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber         = errors.New("invalid number")
	ErrUnrecognizedCharacter = errors.New("unrecognized character")

	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrNestingTooDeep       = errors.New("nesting too deep")

	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidOperator = errors.New("invalid operator")
	ErrOverflow        = errors.New("integer overflow")
)

// Location points at a byte in the source text. Line and Column are 1-based.
type Location struct {
	Offset int
	Line   int
	Column int
}

func (l *Location) String() string {
	if l == nil {
		return "?"
	}

	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LexError is returned when the source text can't be split into tokens.
type LexError struct {
	Kind error
	Loc  *Location
	Text string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s %s: %q", e.Loc, e.Kind, e.Text)
}

func (e *LexError) Unwrap() error {
	return e.Kind
}

// ParseError is returned when a token sequence doesn't form an expression.
// Token is nil when the input ended early.
type ParseError struct {
	Kind  error
	Token *Token
}

func (e *ParseError) Error() string {
	if e.Token == nil {
		return e.Kind.Error()
	}

	return fmt.Sprintf("%s %s: '%s'", e.Token.Loc, e.Kind, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// Longer expressions are cut short in EvalError messages.
const maxErrorExprLen = 80

// EvalError is returned when a tree can't be reduced to an integer.
type EvalError struct {
	Kind error
	Node Node
}

func (e *EvalError) Error() string {
	if e.Node == nil {
		return e.Kind.Error()
	}

	expr := e.Node.String()
	if len(expr) > maxErrorExprLen {
		expr = expr[:maxErrorExprLen] + "..."
	}

	return fmt.Sprintf("%s in %s", e.Kind, expr)
}

func (e *EvalError) Unwrap() error {
	return e.Kind
}
