package arith

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// LLVMIRBuilder emits instructions into the current block of a single
// function. Divisions split the block so the divisor can be checked first.
type LLVMIRBuilder struct {
	mod      *ir.Module
	fn       *ir.Func
	block    *ir.Block
	divZero  *ir.Block
	divs     int
	builtins map[string]*ir.Func
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:      ir.NewModule(),
		builtins: make(map[string]*ir.Func),
	}

	defineBuiltins(builder)
	return builder
}

func (b *LLVMIRBuilder) main(expr Node) error {
	b.fn = b.mod.NewFunc("main", types.I32)
	b.block = b.fn.NewBlock("entry")

	v, err := b.recursiveLoad(expr)
	if err != nil {
		return err
	}

	b.block.NewCall(b.builtins["print"], v)
	b.block.NewRet(constant.NewInt(types.I32, 0))

	return nil
}

func (b *LLVMIRBuilder) recursiveLoad(expr Node) (value.Value, error) {
	switch e := expr.(type) {
	case *NumberExpr:
		return constant.NewInt(types.I64, e.Value), nil
	case *BinaryExpr:
		return b.binaryExpression(e)
	case *UnaryExpr:
		return b.unaryExpression(e)
	}

	return nil, &EvalError{Kind: ErrInvalidOperator, Node: expr}
}

func (b *LLVMIRBuilder) binaryExpression(expr *BinaryExpr) (value.Value, error) {
	v1, err := b.recursiveLoad(expr.Left)
	if err != nil {
		return nil, err
	}

	v2, err := b.recursiveLoad(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operation {
	case BinaryAddition:
		return b.block.NewAdd(v1, v2), nil
	case BinarySubtraction:
		return b.block.NewSub(v1, v2), nil
	case BinaryMultiplication:
		return b.block.NewMul(v1, v2), nil
	case BinaryDivision:
		return b.checkedDivision(v1, v2), nil
	default:
		return nil, &EvalError{Kind: ErrInvalidOperator, Node: expr}
	}
}

func (b *LLVMIRBuilder) unaryExpression(expr *UnaryExpr) (value.Value, error) {
	v, err := b.recursiveLoad(expr.Operand)
	if err != nil {
		return nil, err
	}

	switch expr.Operation {
	case UnaryPositive:
		return v, nil
	case UnaryNegative:
		return b.block.NewSub(constant.NewInt(types.I64, 0), v), nil
	default:
		return nil, &EvalError{Kind: ErrInvalidOperator, Node: expr}
	}
}

func (b *LLVMIRBuilder) checkedDivision(x, y value.Value) value.Value {
	b.divs++

	cond := b.block.NewICmp(enum.IPredEQ, y, constant.NewInt(types.I64, 0))
	ok := b.fn.NewBlock(fmt.Sprintf("div.ok.%d", b.divs))
	b.block.NewCondBr(cond, b.divisionByZero(), ok)

	b.block = ok
	return b.block.NewSDiv(x, y)
}

// divisionByZero returns the shared block that exits main with status 1.
func (b *LLVMIRBuilder) divisionByZero() *ir.Block {
	if b.divZero == nil {
		b.divZero = b.fn.NewBlock("div.zero")
		b.divZero.NewRet(constant.NewInt(types.I32, 1))
	}

	return b.divZero
}

type LLVMGenerator struct {
	node Node
}

func NewLLVMGenerator(node Node) *LLVMGenerator {
	return &LLVMGenerator{
		node: node,
	}
}

func (g LLVMGenerator) Do() (*ir.Module, error) {
	builder := NewLLVMIRBuilder()
	if err := builder.main(g.node); err != nil {
		return nil, err
	}

	return builder.mod, nil
}

// Compile lowers n to an LLVM module.
func Compile(n Node) (*ir.Module, error) {
	return NewLLVMGenerator(n).Do()
}
