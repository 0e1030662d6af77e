package crosscall

import (
	"go/ast"
	"go/types"
	"sort"

	"github.com/loginsight/logusage/compilation"
	"github.com/loginsight/logusage/model"
	"github.com/loginsight/logusage/opref"
)

// Find locates every invocation of the method identified by sym across
// every project in graph, mining each call site's arguments the same way
// the extension-call analyzer does (spec §4.5). Results are sorted by
// (project name, file path, start line, start column). A nil graph yields
// an empty (not nil-panicking) result: the absence of cross-project
// enumeration is intentional, not an error.
func Find(graph *compilation.ProjectGraph, sym Symbol) []model.InvocationSite {
	if graph == nil {
		return nil
	}

	var sites []model.InvocationSite
	for _, project := range graph.Projects {
		sites = append(sites, findInCompilation(project, sym)...)
	}

	sort.Slice(sites, func(i, j int) bool {
		a, b := sites[i], sites[j]
		if a.ProjectName != b.ProjectName {
			return a.ProjectName < b.ProjectName
		}
		return a.Location.Less(b.Location)
	})

	return sites
}

func findInCompilation(project *compilation.Project, sym Symbol) []model.InvocationSite {
	c := project.Compilation
	var sites []model.InvocationSite

	for _, file := range c.Files {
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			obj := c.Info.Uses[sel.Sel]
			fn, ok := obj.(*types.Func)
			if !ok || !sym.Matches(fn) {
				return true
			}

			sites = append(sites, model.InvocationSite{
				ContainingTypeFQN: sym.DeclaringType,
				ProjectName:       project.Name,
				Location:          toLocation(c, call),
				Arguments:         mineArguments(c, call),
			})
			return true
		})
	}

	return sites
}

func toLocation(c *compilation.Compilation, node ast.Node) model.SourceLocation {
	start := c.Position(node)
	end := c.EndPosition(node)
	return model.SourceLocation{
		FilePath:    start.Filename,
		StartLine:   start.Line,
		EndLine:     end.Line,
		StartColumn: start.Column,
		EndColumn:   end.Column,
	}
}

// mineArguments mines call's argument list the way the extension-call
// analyzer mines message parameters, minus template correlation: a cross-
// project caller's arguments are recorded positionally, by static type and
// reduction kind.
func mineArguments(c *compilation.Compilation, call *ast.CallExpr) []model.ParameterBinding {
	bindings := make([]model.ParameterBinding, 0, len(call.Args))
	for _, arg := range call.Args {
		ref := opref.Reduce(arg, c.Info)
		bindings = append(bindings, model.ParameterBinding{
			Name:        ref.Name,
			TypeDisplay: opref.TypeDisplay(c.Info.TypeOf(arg)),
			SourceKind:  ref.Kind,
		})
	}
	return bindings
}
