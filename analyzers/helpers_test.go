package analyzers

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	logtypes "github.com/loginsight/logusage/types"
)

// checkSource type-checks src as a standalone package and returns its
// syntax tree alongside a ready-to-use Context, with LoggingTypes resolved
// leniently (no strict package-path requirement) so a plain Logger
// interface declared in the test source itself is recognized.
func checkSource(t *testing.T, src string) (*ast.File, *Context) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("test", fset, []*ast.File{f}, info)
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	lt, ok := logtypes.Resolve(pkg, false)
	if !ok {
		t.Fatalf("Resolve: no Logger interface found in test source")
	}

	return f, &Context{
		Fset:         fset,
		Info:         info,
		LoggingTypes: lt,
		Config:       &Config{DisabledAnalyzers: map[string]bool{}},
		Cache:        NewTemplateCache(),
	}
}

// findCall returns the first call expression in f whose selector or ident
// name equals name.
func findCall(f *ast.File, name string) *ast.CallExpr {
	var found *ast.CallExpr
	ast.Inspect(f, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		switch fun := call.Fun.(type) {
		case *ast.SelectorExpr:
			if fun.Sel.Name == name {
				found = call
			}
		case *ast.Ident:
			if fun.Name == name {
				found = call
			}
		case *ast.IndexExpr:
			if ident, ok := fun.X.(*ast.Ident); ok && ident.Name == name {
				found = call
			}
		case *ast.IndexListExpr:
			if ident, ok := fun.X.(*ast.Ident); ok && ident.Name == name {
				found = call
			}
		}
		return true
	})
	return found
}

// findFuncDecl returns the first function declaration in f named name.
func findFuncDecl(f *ast.File, name string) *ast.FuncDecl {
	for _, decl := range f.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Name.Name == name {
			return fd
		}
	}
	return nil
}
