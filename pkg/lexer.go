package arith

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

type TokenType uint64

const (
	TokenNumber TokenType = iota
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenOpenParentheses
	TokenCloseParentheses
)

var tokenNames = map[TokenType]string{
	TokenNumber:           "Number",
	TokenPlus:             "Plus",
	TokenMinus:            "Minus",
	TokenMultiply:         "Multiply",
	TokenDivide:           "Divide",
	TokenOpenParentheses:  "LParen",
	TokenCloseParentheses: "RParen",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "TokenType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

var operatorTable = map[string]TokenType{
	"+": TokenPlus,
	"-": TokenMinus,
	"*": TokenMultiply,
	"/": TokenDivide,
	"(": TokenOpenParentheses,
	")": TokenCloseParentheses,
}

var definition = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Operator", Pattern: `[-+*/()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	symNumber     = definition.Symbols()["Number"]
	symOperator   = definition.Symbols()["Operator"]
	symWhitespace = definition.Symbols()["Whitespace"]
)

// Token is a single lexical unit. Num holds the value of TokenNumber tokens.
type Token struct {
	Typ   TokenType
	Value string
	Num   int64
	Loc   *Location
}

// Equals compares two tokens by kind and value, ignoring where they were read.
func (t Token) Equals(t2 Token) bool {
	if t.Typ != t2.Typ {
		return false
	}

	return t.Typ != TokenNumber || t.Num == t2.Num
}

func (t Token) String() string {
	if t.Value != "" {
		return t.Value
	}

	if t.Typ == TokenNumber {
		return strconv.FormatInt(t.Num, 10)
	}

	for op, typ := range operatorTable {
		if typ == t.Typ {
			return op
		}
	}

	return t.Typ.String()
}

type Lexer struct {
	reader io.Reader
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		reader: reader,
	}
}

// Tokenize splits input into tokens. Whitespace is skipped; any other
// character outside the token alphabet is rejected.
func Tokenize(input string) ([]Token, error) {
	return NewLexer(strings.NewReader(input)).Run()
}

func (l *Lexer) Run() ([]Token, error) {
	data, err := io.ReadAll(l.reader)
	if err != nil {
		return nil, err
	}

	src := string(data)
	lex, err := definition.LexString("", src)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, unrecognized(src, err)
		}

		if t.EOF() {
			return tokens, nil
		}

		switch t.Type {
		case symWhitespace:
			continue
		case symNumber:
			tok, err := numberToken(t)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, tok)
		case symOperator:
			tokens = append(tokens, Token{
				Typ:   operatorTable[t.Value],
				Value: t.Value,
				Loc:   location(t.Pos),
			})
		}
	}
}

func numberToken(t lexer.Token) (Token, error) {
	v, err := strconv.ParseInt(t.Value, 10, 64)
	if err != nil {
		return Token{}, &LexError{
			Kind: ErrInvalidNumber,
			Loc:  location(t.Pos),
			Text: t.Value,
		}
	}

	return Token{
		Typ:   TokenNumber,
		Value: t.Value,
		Num:   v,
		Loc:   location(t.Pos),
	}, nil
}

func unrecognized(src string, err error) error {
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		return err
	}

	text := ""
	if off := lexErr.Pos.Offset; off >= 0 && off < len(src) {
		r, _ := utf8.DecodeRuneInString(src[off:])
		text = string(r)
	}

	return &LexError{
		Kind: ErrUnrecognizedCharacter,
		Loc:  location(lexErr.Pos),
		Text: text,
	}
}

func location(pos lexer.Position) *Location {
	return &Location{
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
	}
}
