// Package compilation adapts golang.org/x/tools/go/packages' loaded result
// into the read-only "compilation" view the rest of this module consumes:
// syntax trees, a semantic model (go/types.Info), and a symbol table,
// without callers needing to know the module was loaded via go/packages at
// all.
package compilation

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Compilation is one type-checked package, the unit C1's registry resolves
// symbols against and C6 walks every syntax tree of.
type Compilation struct {
	Fset    *token.FileSet
	Pkg     *packages.Package
	Name    string
	Files   []*ast.File
	Info    *types.Info
	Types   *types.Package
}

// Load type-checks every Go package under the given patterns (directories,
// import paths, or `./...`-style patterns) rooted at dir, returning one
// Compilation per loaded package. Load errors on individual files are
// reported on the returned Compilations' Pkg.Errors rather than failing
// the whole load, matching how a real build tolerates some files failing
// to parse while still analyzing the rest.
func Load(dir string, patterns ...string) ([]*Compilation, error) {
	cfg := &packages.Config{
		Dir: dir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports |
			packages.NeedModule,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("compilation: load %v: %w", patterns, err)
	}

	out := make([]*Compilation, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, &Compilation{
			Fset:  p.Fset,
			Pkg:   p,
			Name:  p.PkgPath,
			Files: p.Syntax,
			Info:  p.TypesInfo,
			Types: p.Types,
		})
	}
	return out, nil
}

// Position returns the 1-based source position of node within this
// compilation's file set.
func (c *Compilation) Position(node ast.Node) token.Position {
	return c.Fset.Position(node.Pos())
}

// EndPosition returns the 1-based source position of node's end.
func (c *Compilation) EndPosition(node ast.Node) token.Position {
	return c.Fset.Position(node.End())
}
