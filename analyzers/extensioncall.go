package analyzers

import (
	"go/ast"
	"go/constant"
	"go/types"

	"github.com/loginsight/logusage/logging"
	"github.com/loginsight/logusage/model"
	"github.com/loginsight/logusage/opref"
)

// ExtensionCallAnalyzer matches invocations of the well-known logging
// extension methods (spec §4.4.1).
type ExtensionCallAnalyzer struct{}

func (*ExtensionCallAnalyzer) Name() string { return "ExtensionCall" }

var extensionLevels = map[string]logging.Level{
	"LogTrace":       logging.Trace,
	"LogDebug":       logging.Debug,
	"LogInformation": logging.Information,
	"LogWarning":     logging.Warning,
	"LogError":       logging.Error,
	"LogCritical":    logging.Critical,
}

func (a *ExtensionCallAnalyzer) Analyze(ctx *Context, op Operation) (model.Finding, bool) {
	var zero model.Finding
	call := op.Call
	if call == nil {
		return zero, false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return zero, false
	}
	method := sel.Sel.Name

	recvType := ctx.Info.TypeOf(sel.X)
	if recvType == nil || !ctx.LoggingTypes.IsLoggerType(recvType) {
		return zero, false
	}

	level, args, ok := a.resolveLevel(method, call.Args, ctx.Info)
	if !ok {
		return zero, false
	}

	finding := model.Finding{
		MethodType: model.ExtensionCall,
		MethodName: method,
		LogLevel:   level,
		Location:   location(ctx.Fset, call),
	}

	idx, tmplText, ok := findTemplateArg(args, ctx.Info)
	if !ok {
		return zero, false
	}

	finding.MessageTemplate = &tmplText
	finding.MessageParameters = bindParameters(ctx, tmplText, args[idx+1:])

	return finding, true
}

// findTemplateArg locates the message-template argument among args: the
// first one whose value is a compile-time string constant. Everything
// before it is the optional event-id/exception prefix spec §4.4.1
// describes; everything after it is the params object[] args.
func findTemplateArg(args []ast.Expr, info *types.Info) (int, string, bool) {
	for i, a := range args {
		if text, ok := literalString(a, info); ok {
			return i, text, true
		}
	}
	return 0, "", false
}

// resolveLevel determines the log level for method and returns the
// remaining args, i.e. everything after an explicit Level argument when
// method is the generic Log, unchanged otherwise. The returned level is
// nil when method is the generic Log and its first argument can't be
// resolved to a known level (a non-constant expression, or a literal
// outside the known range like 7) — the call site is still a match,
// just with an unknown level (spec §8 boundary behaviour), so only the
// bool result signals "not a logging call at all".
func (a *ExtensionCallAnalyzer) resolveLevel(method string, args []ast.Expr, info *types.Info) (*logging.Level, []ast.Expr, bool) {
	if lvl, ok := extensionLevels[method]; ok {
		level := lvl
		return &level, args, true
	}
	if method != "Log" || len(args) == 0 {
		return nil, nil, false
	}

	if tv, ok := info.Types[args[0]]; ok && tv.Value != nil {
		if n, ok := constant.Int64Val(tv.Value); ok {
			if lvl, ok := logging.LevelFromInt(n); ok {
				level := lvl
				return &level, args[1:], true
			}
		}
	}
	return nil, args[1:], true
}

func literalString(expr ast.Expr, info *types.Info) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(tv.Value), true
}

// bindParameters pairs tmplText's placeholders with args, left to right,
// zipping to min(len) when counts differ (spec §4.4.1).
func bindParameters(ctx *Context, tmplText string, args []ast.Expr) []model.ParameterBinding {
	parsed := ctx.Cache.Parse(tmplText)
	names := parsed.PlaceholderNames()

	n := len(names)
	if len(args) < n {
		n = len(args)
	}

	bindings := make([]model.ParameterBinding, 0, n)
	for i := 0; i < n; i++ {
		argType := ctx.Info.TypeOf(args[i])
		ref := opref.Reduce(args[i], ctx.Info)
		bindings = append(bindings, model.ParameterBinding{
			Name:        names[i],
			TypeDisplay: opref.TypeDisplay(argType),
			SourceKind:  ref.Kind,
		})
	}
	return bindings
}
