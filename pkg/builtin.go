package arith

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

func defineBuiltins(b *LLVMIRBuilder) {
	defineBuiltinFunc(b, "print", builtinPrint)
}

type funcDefinition = func(mod *ir.Module) *ir.Func

func defineBuiltinFunc(b *LLVMIRBuilder, name string, definition funcDefinition) {
	f := definition(b.mod)
	f.SetName(name)
	b.builtins[name] = f
}

// builtinPrint writes v and a newline to stdout.
func builtinPrint(mod *ir.Module) *ir.Func {
	v := ir.NewParam("v", types.I64)
	f := mod.NewFunc("", types.Void, v)

	entry := f.NewBlock("entry")
	entry.NewCall(externPrintf(mod), cString(mod, "print.fmt", "%lld\n"), v)
	entry.NewRet(nil)

	return f
}

// externPrintf declares the C printf once per module.
func externPrintf(mod *ir.Module) *ir.Func {
	for _, f := range mod.Funcs {
		if f.Name() == "printf" {
			return f
		}
	}

	printf := mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	return printf
}

// cString defines a NUL terminated global and returns a pointer to its first byte.
func cString(mod *ir.Module, name, s string) constant.Constant {
	data := constant.NewCharArrayFromString(s + "\x00")
	glob := mod.NewGlobalDef(name, data)

	zero := constant.NewInt(types.I64, 0)
	return constant.NewGetElementPtr(data.Typ, glob, zero, zero)
}
