// Package opref reduces a go/ast expression to a model.ConstantOrReference,
// the same reduction spec §4.2 describes for turning a call-site argument
// expression into either a compile-time constant or a named symbolic
// reference.
package opref

import (
	"go/ast"
	"go/constant"
	"go/types"

	"github.com/loginsight/logusage/model"
)

// Reduce inspects expr using info, the type-checked result for the
// compilation expr came from, and returns the ConstantOrReference it
// denotes. Expressions this package doesn't specifically recognize reduce
// to an Expression-kind value carrying their source text, never to
// model.Missing: Missing is reserved for an argument that is absent
// entirely.
func Reduce(expr ast.Expr, info *types.Info) model.ConstantOrReference {
	expr = unparen(expr)

	if tv, ok := info.Types[expr]; ok && tv.Value != nil {
		if v, ok := constantValue(tv.Value); ok {
			return model.Constant(v)
		}
	}

	switch e := expr.(type) {
	case *ast.Ident:
		return reduceIdent(e, info)

	case *ast.SelectorExpr:
		return reduceSelector(e, info)

	case *ast.CallExpr:
		return model.Expression(model.RefInvocation, exprText(e))

	case *ast.BinaryExpr:
		return model.Expression(model.RefCoalesce, exprText(e))
	}

	return model.Expression(model.RefLocal, exprText(expr))
}

func reduceIdent(e *ast.Ident, info *types.Info) model.ConstantOrReference {
	obj := info.Uses[e]
	if obj == nil {
		obj = info.Defs[e]
	}
	switch o := obj.(type) {
	case *types.Const:
		if v, ok := constantValue(o.Val()); ok {
			return model.Constant(v)
		}
		return model.Reference(model.RefConstant, e.Name)
	case *types.Var:
		if o.IsField() {
			return model.Reference(model.RefField, e.Name)
		}
		return model.Reference(model.RefLocal, e.Name)
	}
	return model.Reference(model.RefLocal, e.Name)
}

func reduceSelector(e *ast.SelectorExpr, info *types.Info) model.ConstantOrReference {
	obj := info.Uses[e.Sel]
	switch o := obj.(type) {
	case *types.Const:
		if v, ok := constantValue(o.Val()); ok {
			return model.Constant(v)
		}
		return model.Reference(model.RefConstant, e.Sel.Name)
	case *types.Var:
		if o.IsField() {
			return model.Reference(model.RefField, e.Sel.Name)
		}
		return model.Reference(model.RefProperty, e.Sel.Name)
	case *types.Func:
		return model.Reference(model.RefProperty, e.Sel.Name)
	}
	return model.Reference(model.RefProperty, e.Sel.Name)
}

func constantValue(v constant.Value) (any, bool) {
	switch v.Kind() {
	case constant.String:
		return constant.StringVal(v), true
	case constant.Int:
		if i, ok := constant.Int64Val(v); ok {
			return i, true
		}
	case constant.Float:
		if f, ok := constant.Float64Val(v); ok {
			return f, true
		}
	case constant.Bool:
		return constant.BoolVal(v), true
	}
	return nil, false
}

func unparen(expr ast.Expr) ast.Expr {
	for {
		p, ok := expr.(*ast.ParenExpr)
		if !ok {
			return expr
		}
		expr = p.X
	}
}
