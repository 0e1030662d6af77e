package analyzers

import (
	"go/ast"
	"go/constant"

	"github.com/loginsight/logusage/model"
	"github.com/loginsight/logusage/opref"
)

// ScopeBeginAnalyzer matches invocations of BeginScope on the logger
// interface (spec §4.4.4).
type ScopeBeginAnalyzer struct{}

func (*ScopeBeginAnalyzer) Name() string { return "ScopeBegin" }

func (a *ScopeBeginAnalyzer) Analyze(ctx *Context, op Operation) (model.Finding, bool) {
	var zero model.Finding
	call := op.Call
	if call == nil {
		return zero, false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "BeginScope" {
		return zero, false
	}

	recvType := ctx.Info.TypeOf(sel.X)
	if recvType == nil || !ctx.LoggingTypes.IsLoggerType(recvType) {
		return zero, false
	}

	finding := model.Finding{
		MethodType: model.ScopeBegin,
		MethodName: "BeginScope",
		Location:   location(ctx.Fset, call),
	}

	// BeginScope(ctx, state) on this module's Logger interface always
	// takes exactly a context and a state value; the template+args form
	// only applies when that state value is itself a string constant.
	stateArg := lastArg(call.Args)
	if stateArg == nil {
		return finding, true
	}

	if tv, ok := ctx.Info.Types[stateArg]; ok && tv.Value != nil && tv.Value.Kind() == constant.String {
		text := constant.StringVal(tv.Value)
		finding.MessageTemplate = &text
		finding.MessageParameters = nil
		return finding, true
	}

	text := opref.Reduce(stateArg, ctx.Info)
	display := text.Text
	if display == "" {
		display = text.Name
	}
	finding.MessageTemplate = &display
	finding.MessageParameters = nil
	return finding, true
}

func lastArg(args []ast.Expr) ast.Expr {
	if len(args) == 0 {
		return nil
	}
	return args[len(args)-1]
}
