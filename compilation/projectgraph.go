package compilation

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ProjectGraph is the optional "project graph" view spec §4.5/§9 describes:
// a set of compilations plus enough module information to sort cross-
// project invocation sites by the name of the project they were found in.
// Building one is optional; callers that only need a single compilation's
// findings never construct a ProjectGraph at all.
type ProjectGraph struct {
	Projects []*Project
}

// Project is one compilation plus the module name that owns it, resolved
// from the nearest go.mod so cross-project sort keys are stable even when
// the compilations were loaded from unrelated module roots.
type Project struct {
	Name        string
	Compilation *Compilation
}

// NewProjectGraph resolves each compilation's owning module name (falling
// back to its package path when no go.mod can be found, e.g. a GOPATH-mode
// load) and returns the resulting graph.
func NewProjectGraph(compilations []*Compilation) *ProjectGraph {
	g := &ProjectGraph{Projects: make([]*Project, 0, len(compilations))}
	for _, c := range compilations {
		g.Projects = append(g.Projects, &Project{
			Name:        projectName(c),
			Compilation: c,
		})
	}
	return g
}

func projectName(c *Compilation) string {
	if c.Pkg != nil && c.Pkg.Module != nil && c.Pkg.Module.Path != "" {
		return c.Pkg.Module.Path
	}
	if name, ok := resolveModuleName(c); ok {
		return name
	}
	return c.Name
}

// resolveModuleName walks up from the compilation's first source file
// looking for a go.mod, the fallback path used when go/packages didn't
// populate Pkg.Module (e.g. an older packages.Config.Mode).
func resolveModuleName(c *Compilation) (string, bool) {
	if len(c.Files) == 0 {
		return "", false
	}
	pos := c.Position(c.Files[0])
	dir := filepath.Dir(pos.Filename)

	for {
		candidate := filepath.Join(dir, "go.mod")
		if data, err := os.ReadFile(candidate); err == nil {
			mf, err := modfile.Parse(candidate, data, nil)
			if err == nil && mf.Module != nil {
				return mf.Module.Mod.Path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// FindersForSymbol returns every Project whose compilation might contain a
// call to the given fully-qualified symbol name, i.e. every project in the
// graph: the cross-project caller finder (C5) still has to walk each one's
// syntax trees to find actual call sites.
func (g *ProjectGraph) FindersForSymbol(qualifiedName string) []*Project {
	if qualifiedName == "" {
		return nil
	}
	return g.Projects
}

// ProjectByName looks up a project by its resolved module/package name.
func (g *ProjectGraph) ProjectByName(name string) (*Project, error) {
	for _, p := range g.Projects {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("compilation: no project named %q in graph", name)
}
