package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"go.arith.dev/pkg"
)

var cli struct {
	AST      bool     `short:"a" help:"Print the syntax tree before the result."`
	EmitLLVM bool     `name:"emit-llvm" help:"Print LLVM IR instead of evaluating."`
	MaxDepth int      `default:"${max_depth}" help:"Maximum nesting of parentheses and unary operators."`
	Exprs    []string `arg:"" optional:"" name:"expr" help:"Expressions to evaluate. Read one per line from stdin when omitted."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("arith"),
		kong.Description("Evaluate integer arithmetic expressions."),
		kong.Vars{"max_depth": strconv.Itoa(arith.DefaultMaxDepth)},
	)

	exprs := cli.Exprs
	if len(exprs) == 0 {
		var err error
		exprs, err = readLines(os.Stdin)
		ctx.FatalIfErrorf(err)
	}

	cfg := arith.Config{MaxDepth: cli.MaxDepth}

	failed := false
	for _, expr := range exprs {
		if err := run(cfg, expr); err != nil {
			printError(expr, err)
			failed = true
		}
	}

	if failed {
		ctx.Exit(1)
	}
}

func run(cfg arith.Config, expr string) error {
	i := arith.NewInterpreter(cfg)
	if cli.EmitLLVM {
		mod, err := i.Compile(expr)
		if err != nil {
			return err
		}

		fmt.Println(mod)
		return nil
	}

	node, err := i.Parse(expr)
	if err != nil {
		return err
	}

	if cli.AST {
		fmt.Println(arith.Dump(node))
	}

	v, err := arith.NewEvaluator(cfg).Evaluate(node)
	if err != nil {
		return err
	}

	fmt.Println(v)
	return nil
}

func readLines(f *os.File) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, scanner.Err()
}

func printError(expr string, err error) {
	var (
		lexErr   *arith.LexError
		parseErr *arith.ParseError
		evalErr  *arith.EvalError
	)

	switch {
	case errors.As(err, &lexErr):
		fmt.Fprintln(os.Stderr, "Bad input:", lexErr.Kind, lexErr.Text, "at", lexErr.Loc, "in", expr)
	case errors.As(err, &parseErr):
		if parseErr.Token == nil {
			fmt.Fprintln(os.Stderr, "Syntax error:", parseErr.Kind, "in", expr)
			return
		}

		fmt.Fprintln(os.Stderr, "Syntax error:", parseErr.Kind, parseErr.Token, "at", parseErr.Token.Loc, "in", expr)
	case errors.As(err, &evalErr):
		fmt.Fprintln(os.Stderr, "Evaluation error:", evalErr.Kind, "in", expr)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
}
