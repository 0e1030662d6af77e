package analyzers

import (
	"go/ast"
	"go/constant"
	"strconv"
	"strings"

	"github.com/loginsight/logusage/logging"
	"github.com/loginsight/logusage/model"
	"github.com/loginsight/logusage/opref"
)

// DelegateFactoryAnalyzer matches invocations of the Define0..Define6
// generic-delegate-factory family (spec §4.4.3).
type DelegateFactoryAnalyzer struct{}

func (*DelegateFactoryAnalyzer) Name() string { return "DelegateFactory" }

func (a *DelegateFactoryAnalyzer) Analyze(ctx *Context, op Operation) (model.Finding, bool) {
	var zero model.Finding
	call := op.Call
	if call == nil {
		return zero, false
	}

	funcName, typeArgs, ok := defineCall(call, ctx)
	if !ok {
		return zero, false
	}

	if len(call.Args) < 3 {
		return zero, false
	}

	levelVal := ctx.Info.Types[call.Args[0]]
	if levelVal.Value == nil || levelVal.Value.Kind() != constant.Int {
		return zero, false
	}
	n, _ := constant.Int64Val(levelVal.Value)
	level, ok := logging.LevelFromInt(n)
	if !ok {
		return zero, false
	}

	tmplText, literal := literalString(call.Args[2], ctx.Info)
	finding := model.Finding{
		MethodType: model.DelegateFactory,
		MethodName: funcName,
		LogLevel:   &level,
		Location:   location(ctx.Fset, call),
	}
	if !literal {
		return finding, true
	}
	finding.MessageTemplate = &tmplText

	parsed := ctx.Cache.Parse(tmplText)
	names := parsed.PlaceholderNames()

	// Correlation is positional between typeArgs and names; mismatched
	// counts are reported verbatim rather than truncated (spec §4.4.3),
	// unlike the extension-call analyzer's min(len) zip.
	n2 := len(typeArgs)
	if len(names) > n2 {
		n2 = len(names)
	}
	bindings := make([]model.ParameterBinding, 0, n2)
	for i := 0; i < n2; i++ {
		b := model.ParameterBinding{SourceKind: model.RefParameter}
		if i < len(names) {
			b.Name = names[i]
		}
		if i < len(typeArgs) {
			b.TypeDisplay = typeArgs[i]
		}
		bindings = append(bindings, b)
	}
	finding.MessageParameters = bindings

	return finding, true
}

// defineCall recognizes a call to logging.DefineN and returns N's logged
// function name plus the generic type arguments supplied at the call site,
// rendered via opref's canonical type display.
func defineCall(call *ast.CallExpr, ctx *Context) (string, []string, bool) {
	var funcName string
	var indexExpr ast.Expr

	switch fun := call.Fun.(type) {
	case *ast.Ident:
		funcName = fun.Name
	case *ast.SelectorExpr:
		funcName = fun.Sel.Name
	case *ast.IndexExpr:
		name, ok := defineNameOf(fun.X)
		if !ok {
			return "", nil, false
		}
		funcName = name
		indexExpr = fun.Index
	case *ast.IndexListExpr:
		name, ok := defineNameOf(fun.X)
		if !ok {
			return "", nil, false
		}
		funcName = name
		return funcName, typeArgDisplays(ctx, fun.Indices), isDefineName(funcName)
	default:
		return "", nil, false
	}

	if !isDefineName(funcName) {
		return "", nil, false
	}
	if indexExpr == nil {
		return funcName, nil, true
	}
	return funcName, typeArgDisplays(ctx, []ast.Expr{indexExpr}), true
}

// defineNameOf extracts the called function's name from the generic
// instantiation expression's callee, whether it's package-unqualified
// (Define2[...]) or package-qualified (logging.Define2[...]).
func defineNameOf(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, true
	case *ast.SelectorExpr:
		return e.Sel.Name, true
	default:
		return "", false
	}
}

func isDefineName(name string) bool {
	if !strings.HasPrefix(name, "Define") {
		return false
	}
	suffix := strings.TrimPrefix(name, "Define")
	n, err := strconv.Atoi(suffix)
	return err == nil && n >= 0 && n <= 6
}

func typeArgDisplays(ctx *Context, exprs []ast.Expr) []string {
	out := make([]string, 0, len(exprs))
	for _, e := range exprs {
		if t := ctx.Info.TypeOf(e); t != nil {
			out = append(out, opref.TypeDisplay(t))
		}
	}
	return out
}
