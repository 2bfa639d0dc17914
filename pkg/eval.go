package arith

import "math"

// Evaluator reduces a tree to an integer. Division truncates toward zero,
// so 7 / -2 is -3. Results that don't fit an int64 fail with ErrOverflow.
//
// Only right operands and unary operands count as nesting. Left-deep chains
// such as 1 + 1 + ... + 1 are walked iteratively and never hit the limit.
type Evaluator struct {
	depth    int
	maxDepth int
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{
		// Each parenthesised level can hold a term inside an expression,
		// so a tree the parser accepts nests at most twice MaxDepth.
		maxDepth: 2 * cfg.maxDepth(),
	}
}

// Evaluate evaluates n with the default configuration.
func Evaluate(n Node) (int64, error) {
	return NewEvaluator(DefaultConfig()).Evaluate(n)
}

func (e *Evaluator) Evaluate(n Node) (int64, error) {
	switch node := n.(type) {
	case *NumberExpr:
		return node.Value, nil
	case *UnaryExpr:
		return e.unary(node)
	case *BinaryExpr:
		return e.binary(node)
	}

	return 0, &EvalError{Kind: ErrInvalidOperator, Node: n}
}

func (e *Evaluator) nested(n Node) (int64, error) {
	e.depth++
	defer func() { e.depth-- }()

	if e.depth > e.maxDepth {
		return 0, &EvalError{Kind: ErrNestingTooDeep, Node: n}
	}

	return e.Evaluate(n)
}

func (e *Evaluator) unary(n *UnaryExpr) (int64, error) {
	v, err := e.nested(n.Operand)
	if err != nil {
		return 0, err
	}

	switch n.Operation {
	case UnaryPositive:
		return v, nil
	case UnaryNegative:
		if v == math.MinInt64 {
			return 0, &EvalError{Kind: ErrOverflow, Node: n}
		}

		return -v, nil
	default:
		return 0, &EvalError{Kind: ErrInvalidOperator, Node: n}
	}
}

func (e *Evaluator) binary(n *BinaryExpr) (int64, error) {
	spine := []*BinaryExpr{n}
	for {
		left, ok := spine[len(spine)-1].Left.(*BinaryExpr)
		if !ok {
			break
		}

		spine = append(spine, left)
	}

	// Left before right, innermost operation first
	acc, err := e.Evaluate(spine[len(spine)-1].Left)
	if err != nil {
		return 0, err
	}

	for i := len(spine) - 1; i >= 0; i-- {
		b, err := e.nested(spine[i].Right)
		if err != nil {
			return 0, err
		}

		acc, err = apply(spine[i], acc, b)
		if err != nil {
			return 0, err
		}
	}

	return acc, nil
}

func apply(n *BinaryExpr, a, b int64) (int64, error) {
	var (
		r  int64
		ok bool
	)

	switch n.Operation {
	case BinaryAddition:
		r, ok = add(a, b)
	case BinarySubtraction:
		r, ok = sub(a, b)
	case BinaryMultiplication:
		r, ok = mul(a, b)
	case BinaryDivision:
		if b == 0 {
			return 0, &EvalError{Kind: ErrDivisionByZero, Node: n}
		}

		r, ok = div(a, b)
	default:
		return 0, &EvalError{Kind: ErrInvalidOperator, Node: n}
	}

	if !ok {
		return 0, &EvalError{Kind: ErrOverflow, Node: n}
	}

	return r, nil
}

func add(a, b int64) (int64, bool) {
	r := a + b
	return r, (r > a) == (b > 0)
}

func sub(a, b int64) (int64, bool) {
	r := a - b
	return r, (r < a) == (b > 0)
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	r := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || r/b != a {
		return 0, false
	}

	return r, true
}

func div(a, b int64) (int64, bool) {
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}

	return a / b, true
}
