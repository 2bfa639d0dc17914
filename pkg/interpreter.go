package arith

import (
	"io"
	"strings"

	"github.com/llir/llvm/ir"
)

const DefaultMaxDepth = 1000

// Config bounds how deeply parentheses and unary operators may nest.
type Config struct {
	MaxDepth int
}

func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
	}
}

func (c Config) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return c.MaxDepth
}

// Interpreter runs the lex, parse and evaluate stages over one expression.
type Interpreter struct {
	cfg Config
}

func NewInterpreter(cfg Config) *Interpreter {
	return &Interpreter{
		cfg: cfg,
	}
}

// Eval evaluates src with the default configuration.
func Eval(src string) (int64, error) {
	return NewInterpreter(DefaultConfig()).Eval(src)
}

func (i *Interpreter) Eval(src string) (int64, error) {
	return i.EvalReader(strings.NewReader(src))
}

func (i *Interpreter) EvalReader(reader io.Reader) (int64, error) {
	node, err := i.parse(NewLexer(reader))
	if err != nil {
		return 0, err
	}

	return NewEvaluator(i.cfg).Evaluate(node)
}

func (i *Interpreter) Parse(src string) (Node, error) {
	return i.parse(NewLexer(strings.NewReader(src)))
}

// Compile lowers src to an LLVM module whose main prints the result.
func (i *Interpreter) Compile(src string) (*ir.Module, error) {
	node, err := i.Parse(src)
	if err != nil {
		return nil, err
	}

	return NewLLVMGenerator(node).Do()
}

func (i *Interpreter) parse(l *Lexer) (Node, error) {
	tokens, err := l.Run()
	if err != nil {
		return nil, err
	}

	return NewParserWithConfig(tokens, i.cfg).Parse()
}
