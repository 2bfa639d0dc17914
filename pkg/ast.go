package arith

import (
	"strconv"

	"github.com/alecthomas/repr"
)

// Node is one of *NumberExpr, *UnaryExpr or *BinaryExpr. Children are owned
// by their parent and never shared, so a Node is always a finite tree.
type Node interface {
	String() string
}

type NumberExpr struct {
	Value int64
}

type UnaryOp string

const (
	UnaryPositive UnaryOp = "+"
	UnaryNegative UnaryOp = "-"
)

type UnaryExpr struct {
	Operation UnaryOp
	Operand   Node
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
)

type BinaryExpr struct {
	Operation BinaryOp
	Left      Node
	Right     Node
}

func (n *NumberExpr) String() string {
	return strconv.FormatInt(n.Value, 10)
}

// String renders the operand fully parenthesised, e.g. "(-5)".
func (n *UnaryExpr) String() string {
	return "(" + string(n.Operation) + n.Operand.String() + ")"
}

// String renders both operands fully parenthesised, e.g. "(3 + (5 * 2))".
// The output tokenizes and parses back into an equal tree.
func (n *BinaryExpr) String() string {
	return "(" + n.Left.String() + " " + string(n.Operation) + " " + n.Right.String() + ")"
}

// Dump renders the structure of a tree for diagnostics.
func Dump(n Node) string {
	return repr.String(n, repr.Indent("  "))
}
