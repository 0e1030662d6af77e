package compilation

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"
)

func buildTestCompilation(t *testing.T, dir, src string) *Compilation {
	t.Helper()
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check("example", fset, []*ast.File{f}, nil)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	return &Compilation{Fset: fset, Name: "example", Files: []*ast.File{f}, Types: pkg}
}

func TestNewProjectGraphResolvesModuleFromGoMod(t *testing.T) {
	dir := t.TempDir()
	gomod := "module example.com/widgets\n\ngo 1.22\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}

	c := buildTestCompilation(t, dir, "package example\n")
	g := NewProjectGraph([]*Compilation{c})

	if len(g.Projects) != 1 || g.Projects[0].Name != "example.com/widgets" {
		t.Fatalf("Projects = %+v, want one project named example.com/widgets", g.Projects)
	}
}

func TestNewProjectGraphFallsBackToPackagePath(t *testing.T) {
	dir := t.TempDir()
	c := buildTestCompilation(t, dir, "package example\n")

	g := NewProjectGraph([]*Compilation{c})
	if len(g.Projects) != 1 || g.Projects[0].Name != "example" {
		t.Fatalf("Projects = %+v, want fallback name \"example\" with no go.mod present", g.Projects)
	}
}

func TestProjectByNameNotFound(t *testing.T) {
	g := &ProjectGraph{}
	if _, err := g.ProjectByName("missing"); err == nil {
		t.Fatalf("expected an error for a project graph with no matching project")
	}
}

func TestFindersForSymbolReturnsAllProjects(t *testing.T) {
	g := &ProjectGraph{Projects: []*Project{{Name: "a"}, {Name: "b"}}}
	if got := g.FindersForSymbol("pkg.Type.Method"); len(got) != 2 {
		t.Fatalf("FindersForSymbol = %+v, want both projects", got)
	}
	if got := g.FindersForSymbol(""); got != nil {
		t.Fatalf("FindersForSymbol(\"\") = %+v, want nil", got)
	}
}
