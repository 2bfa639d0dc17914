package arith

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLVMGenerator(t *testing.T) {
	cases := []struct {
		data   string
		expect []string
	}{
		{
			"1 + 2",
			[]string{"define i32 @main()", "add i64 1, 2", "call void @print(", "ret i32 0"},
		},
		{
			"-5",
			[]string{"sub i64 0, 5"},
		},
		{
			"7 / 2",
			[]string{"icmp eq i64 2, 0", "label %div.zero", "div.ok.1:", "sdiv i64 7, 2", "ret i32 1"},
		},
		{
			"6 * 7",
			[]string{"mul i64 6, 7", "@printf(i8*"},
		},
	}

	for _, c := range cases {
		mod, err := NewInterpreter(DefaultConfig()).Compile(c.data)
		require.NoError(t, err, c.data)

		out := mod.String()
		for _, e := range c.expect {
			assert.Contains(t, out, e, c.data)
		}
	}
}

func TestLLVMGeneratorSharesDivisionByZeroBlock(t *testing.T) {
	mod, err := NewInterpreter(DefaultConfig()).Compile("8 / 2 / 2")
	require.NoError(t, err)

	out := mod.String()
	assert.Contains(t, out, "div.ok.2:")
	assert.Equal(t, 1, strings.Count(out, "div.zero:"))
}

func TestLLVMGeneratorInvalidOperator(t *testing.T) {
	_, err := Compile(&BinaryExpr{Operation: "%", Left: &NumberExpr{1}, Right: &NumberExpr{2}})
	assert.ErrorIs(t, err, ErrInvalidOperator)
}

func TestBuiltinPrint(t *testing.T) {
	b := NewLLVMIRBuilder()
	require.Contains(t, b.builtins, "print")

	externPrintf(b.mod)

	out := b.mod.String()
	assert.Equal(t, 1, strings.Count(out, "declare i32 @printf("))
	assert.Contains(t, out, `@print.fmt = global [6 x i8] c"%lld\0A\00"`)
	assert.Contains(t, out, "define void @print(i64 %v)")
}
