package arith

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.arith.dev/internal/test"
)

func num(v int64) Token {
	return Token{Typ: TokenNumber, Num: v}
}

func op(typ TokenType) Token {
	return Token{Typ: typ}
}

func assertTokens(t *testing.T, expect, got []Token) {
	t.Helper()

	if !assert.Len(t, got, len(expect)) {
		return
	}

	for i := range expect {
		assert.True(t, expect[i].Equals(got[i]), "token %d: expected %s, got %s", i, expect[i], got[i])
	}
}

func TestLexer(t *testing.T) {
	cases := []struct {
		data   string
		fail   error
		expect []Token
	}{
		{
			"3 + 5 * (10 - 4)",
			nil,
			[]Token{
				num(3), op(TokenPlus), num(5), op(TokenMultiply), op(TokenOpenParentheses),
				num(10), op(TokenMinus), num(4), op(TokenCloseParentheses),
			},
		},
		{
			"--5",
			nil,
			[]Token{op(TokenMinus), op(TokenMinus), num(5)},
		},
		{
			"7/2",
			nil,
			[]Token{num(7), op(TokenDivide), num(2)},
		},
		{
			" \t12\n  ",
			nil,
			[]Token{num(12)},
		},
		{
			"",
			nil,
			nil,
		},
		{
			"9223372036854775807",
			nil,
			[]Token{num(9223372036854775807)},
		},
		{
			"9223372036854775808",
			ErrInvalidNumber,
			nil,
		},
		{
			"1 @ 2",
			ErrUnrecognizedCharacter,
			nil,
		},
		{
			"x + 1",
			ErrUnrecognizedCharacter,
			nil,
		},
		{
			"1.5",
			ErrUnrecognizedCharacter,
			nil,
		},
	}

	for _, c := range cases {
		l := NewLexer(strings.NewReader(c.data))

		toks, err := l.Run()
		if c.fail != nil {
			assert.ErrorIs(t, err, c.fail, c.data)
			assert.Nil(t, toks)
			continue
		}

		require.NoError(t, err, c.data)
		assertTokens(t, c.expect, toks)
	}
}

func TestLexerLocations(t *testing.T) {
	toks, err := Tokenize("1 +\n (22)")
	require.NoError(t, err)
	require.Len(t, toks, 5)

	assert.Equal(t, &Location{Offset: 0, Line: 1, Column: 1}, toks[0].Loc)
	assert.Equal(t, &Location{Offset: 2, Line: 1, Column: 3}, toks[1].Loc)
	assert.Equal(t, &Location{Offset: 5, Line: 2, Column: 2}, toks[2].Loc)
	assert.Equal(t, "22", toks[3].Value)
	assert.Equal(t, int64(22), toks[3].Num)
}

func TestLexerUnrecognizedCharacter(t *testing.T) {
	_, err := Tokenize("12 + é")

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, ErrUnrecognizedCharacter, lexErr.Kind)
	assert.Equal(t, "é", lexErr.Text)
	assert.Equal(t, 5, lexErr.Loc.Offset)
}

func TestTokenEquals(t *testing.T) {
	assert.True(t, num(3).Equals(Token{Typ: TokenNumber, Value: "3", Num: 3, Loc: &Location{Line: 4}}))
	assert.False(t, num(3).Equals(num(4)))
	assert.True(t, op(TokenPlus).Equals(Token{Typ: TokenPlus, Value: "+"}))
	assert.False(t, op(TokenPlus).Equals(op(TokenMinus)))
}

// Use a package-level variable to avoid compiler optimisation
var benchResult []Token

func benchmarkLexer(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		// Setup
		b.StopTimer()
		data := test.GetRandomTokens(size)
		l := NewLexer(strings.NewReader(data))

		var err error
		b.StartTimer()

		benchResult, err = l.Run()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer100(b *testing.B) {
	benchmarkLexer(100, b)
}

func BenchmarkLexer1000(b *testing.B) {
	benchmarkLexer(1000, b)
}

func BenchmarkLexer10000(b *testing.B) {
	benchmarkLexer(10000, b)
}

func BenchmarkLexer100000(b *testing.B) {
	benchmarkLexer(100000, b)
}
