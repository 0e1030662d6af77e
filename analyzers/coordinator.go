package analyzers

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/loginsight/logusage/model"
	logtypes "github.com/loginsight/logusage/types"
)

// Coordinator offers every operation in a syntax tree to the analyzer set,
// in the fixed order returned by All, stopping at the first match per
// operation (spec §4.4: "at most one analyzer claims each operation").
type Coordinator struct {
	analyzers []Analyzer
	ctx       *Context
}

// NewCoordinator builds a Coordinator sharing one Context (and its
// template cache) across every call to Visit.
func NewCoordinator(fset *token.FileSet, info *types.Info, lt *logtypes.LoggingTypes, cfg *Config) *Coordinator {
	all := All()
	enabled := make([]Analyzer, 0, len(all))
	for _, a := range all {
		if cfg.DisabledAnalyzers[a.Name()] {
			continue
		}
		enabled = append(enabled, a)
	}

	return &Coordinator{
		analyzers: enabled,
		ctx: &Context{
			Fset:         fset,
			Info:         info,
			LoggingTypes: lt,
			Config:       cfg,
			Cache:        NewTemplateCache(),
		},
	}
}

// VisitCall offers call to every enabled analyzer, returning the first
// match.
func (c *Coordinator) VisitCall(call *ast.CallExpr) (model.Finding, bool) {
	op := Operation{Call: call}
	for _, a := range c.analyzers {
		if f, ok := a.Analyze(c.ctx, op); ok {
			return f, true
		}
	}
	return model.Finding{}, false
}

// VisitFuncDecl offers decl to every enabled analyzer, returning the first
// match.
func (c *Coordinator) VisitFuncDecl(decl *ast.FuncDecl) (model.Finding, bool) {
	op := Operation{FuncDecl: decl}
	for _, a := range c.analyzers {
		if f, ok := a.Analyze(c.ctx, op); ok {
			return f, true
		}
	}
	return model.Finding{}, false
}
