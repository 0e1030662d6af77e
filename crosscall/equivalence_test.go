package crosscall

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

func checkMethod(t *testing.T, src, methodName string) *types.Func {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "test.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	info := &types.Info{Defs: make(map[*ast.Ident]types.Object)}
	conf := types.Config{Importer: importer.Default()}
	if _, err := conf.Check("test", fset, []*ast.File{f}, info); err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Name.Name != methodName {
			continue
		}
		fn, ok := info.Defs[fd.Name].(*types.Func)
		if !ok {
			t.Fatalf("%q did not resolve to a *types.Func", methodName)
		}
		return fn
	}
	t.Fatalf("method %q not found", methodName)
	return nil
}

const eventsSrc = `
package test

type OrderEvents struct{}

func (OrderEvents) LogOrderProcessed(orderId int) {}

func freeFunc() {}
`

func TestSymbolOfMethod(t *testing.T) {
	fn := checkMethod(t, eventsSrc, "LogOrderProcessed")

	sym, ok := SymbolOf(fn)
	if !ok {
		t.Fatalf("expected SymbolOf to succeed for a method")
	}
	if sym.DeclaringType != "OrderEvents" || sym.MethodName != "LogOrderProcessed" {
		t.Fatalf("sym = %+v, want OrderEvents.LogOrderProcessed", sym)
	}
	if sym.PackagePath != "test" {
		t.Fatalf("PackagePath = %q, want test", sym.PackagePath)
	}
}

func TestSymbolOfRejectsFreeFunction(t *testing.T) {
	fn := checkMethod(t, eventsSrc, "freeFunc")

	if _, ok := SymbolOf(fn); ok {
		t.Fatalf("did not expect SymbolOf to succeed for a receiverless function")
	}
}

func TestSymbolMatches(t *testing.T) {
	fn := checkMethod(t, eventsSrc, "LogOrderProcessed")
	sym, ok := SymbolOf(fn)
	if !ok {
		t.Fatalf("SymbolOf failed")
	}
	if !sym.Matches(fn) {
		t.Fatalf("expected sym to match its own originating func")
	}

	other := checkMethod(t, eventsSrc, "freeFunc")
	if sym.Matches(other) {
		t.Fatalf("did not expect sym to match an unrelated function")
	}
}
