// Package analyzers implements the four logging usage analyzers (C4): pure
// functions from a semantic operation and the shared LoggingTypes registry
// to an optional finding, dispatched by a coordinator that guarantees at
// most one analyzer claims each operation.
package analyzers

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/loginsight/logusage/model"
	logtypes "github.com/loginsight/logusage/types"
)

// Operation is one semantic operation the coordinator offers to every
// analyzer: either a call expression or a method declaration, never both.
type Operation struct {
	Call     *ast.CallExpr
	FuncDecl *ast.FuncDecl
}

// Context carries everything an analyzer needs to mine a Finding from an
// Operation, shared read-only across a single compilation's walk.
type Context struct {
	Fset         *token.FileSet
	Info         *types.Info
	LoggingTypes *logtypes.LoggingTypes
	Config       *Config
	Cache        *TemplateCache
}

// Analyzer is the shared shape of all four analyzer families.
type Analyzer interface {
	Name() string
	Analyze(ctx *Context, op Operation) (model.Finding, bool)
}

// All returns the four built-in analyzers in the fixed order the
// coordinator checks them: ExtensionCall, CompileTimeAttribute,
// DelegateFactory, ScopeBegin. Order only matters for the (deliberately
// unreachable in well-formed input) case where more than one would match
// the same operation.
func All() []Analyzer {
	return []Analyzer{
		&ExtensionCallAnalyzer{},
		&CompileTimeAttributeAnalyzer{},
		&DelegateFactoryAnalyzer{},
		&ScopeBeginAnalyzer{},
	}
}

// Names returns the Name() of every analyzer All returns, in the same
// fixed order, for callers (e.g. progress reporting) that need to
// announce the analyzer set without instantiating it.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = a.Name()
	}
	return names
}
