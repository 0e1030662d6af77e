// Package crosscall locates call sites of a CompileTimeAttribute-declared
// logging method across a project graph (C5), the piece spec §9 calls out
// as needing symbol equivalence across independently type-checked
// compilations rather than pointer identity.
package crosscall

import "go/types"

// Symbol is the qualified identity of a declared method: its declaring
// type's package path and name, plus the method name itself. Two *types.Func
// values from different go/packages.Load results are never the same Go
// value even when they denote the same declaration, so equivalence here is
// established by this qualified name instead of by reference equality
// (spec §9's "symbol equivalence across compilations" note).
type Symbol struct {
	PackagePath    string
	DeclaringType  string
	MethodName     string
}

// SymbolOf derives the qualified Symbol for fn, a method with a receiver.
// ok is false for a function with no receiver, since CompileTimeAttribute
// findings are always methods.
func SymbolOf(fn *types.Func) (Symbol, bool) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return Symbol{}, false
	}

	recvType := sig.Recv().Type()
	if ptr, ok := recvType.(*types.Pointer); ok {
		recvType = ptr.Elem()
	}
	named, ok := recvType.(*types.Named)
	if !ok {
		return Symbol{}, false
	}

	pkgPath := ""
	if pkg := named.Obj().Pkg(); pkg != nil {
		pkgPath = pkg.Path()
	}

	return Symbol{
		PackagePath:   pkgPath,
		DeclaringType: named.Obj().Name(),
		MethodName:    fn.Name(),
	}, true
}

// Matches reports whether fn, a selector expression's resolved method,
// denotes the same declaration as s.
func (s Symbol) Matches(fn *types.Func) bool {
	other, ok := SymbolOf(fn)
	return ok && other == s
}
