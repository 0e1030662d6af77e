package analyzers

import (
	"fmt"
	"go/types"
	"reflect"

	"github.com/loginsight/logusage/model"
	"github.com/loginsight/logusage/opref"
)

// mineLogProperties builds a model.LogPropertiesParameter for a parameter
// whose type should be mined field-by-field instead of logged as a scalar
// (spec §4.4.5). paramType is the parameter's static type, already
// stripped of generic wrapper syntax is not required: mining walks the
// underlying struct fields directly.
func mineLogProperties(paramName string, paramType types.Type, cfg model.LogPropertiesConfig) model.LogPropertiesParameter {
	lp := model.LogPropertiesParameter{
		ParameterName:        paramName,
		ParameterTypeDisplay: opref.TypeDisplay(paramType),
		Config:               cfg,
	}

	stack := map[string]bool{}
	lp.Properties = mineFields(paramType, cfg.Transitive, stack)
	return lp
}

// mineFields enumerates the public instance fields of t (Go's analogue of
// C#'s public instance properties), recursing into nested struct fields
// only when transitive is true. stack tracks type names currently being
// mined so a cycle breaks instead of recursing forever: a type already on
// the stack is mined with nested left nil rather than revisited.
func mineFields(t types.Type, transitive bool, stack map[string]bool) []*model.PropertyNode {
	st, named := underlyingStruct(t)
	if st == nil {
		return nil
	}

	key := typeKey(named, t)
	if stack[key] {
		return nil
	}
	stack[key] = true
	defer delete(stack, key)

	var nodes []*model.PropertyNode
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}

		node := &model.PropertyNode{
			OriginalName: f.Name(),
			EmittedName:  f.Name(),
			TypeDisplay:  opref.TypeDisplay(f.Type()),
			IsNullable:   opref.IsNullable(f.Type()),
		}

		if tagName, ok := structTagValue(st.Tag(i), "logtag"); ok {
			node.CustomTagName = &tagName
			node.EmittedName = tagName
		}
		if class, ok := structTagValue(st.Tag(i), "logclass"); ok {
			node.DataClassification = &class
		}

		if transitive {
			elemType := elementTypeForRecursion(f.Type())
			node.Nested = mineFields(elemType, transitive, stack)
		}

		nodes = append(nodes, node)
	}
	return nodes
}

func underlyingStruct(t types.Type) (*types.Struct, *types.Named) {
	named, _ := t.(*types.Named)
	u := t.Underlying()
	if ptr, ok := u.(*types.Pointer); ok {
		u = ptr.Elem().Underlying()
	}
	st, ok := u.(*types.Struct)
	if !ok {
		return nil, nil
	}
	return st, named
}

// elementTypeForRecursion returns the type transitive mining should
// recurse into: the element type for a slice/array/map (collection-typed
// properties, spec §4.4.5), otherwise t unchanged.
func elementTypeForRecursion(t types.Type) types.Type {
	switch u := t.Underlying().(type) {
	case *types.Slice:
		return u.Elem()
	case *types.Array:
		return u.Elem()
	case *types.Map:
		return u.Elem()
	case *types.Pointer:
		return u.Elem()
	}
	return t
}

func typeKey(named *types.Named, fallback types.Type) string {
	if named != nil && named.Obj() != nil {
		if pkg := named.Obj().Pkg(); pkg != nil {
			return pkg.Path() + "." + named.Obj().Name()
		}
		return named.Obj().Name()
	}
	return fallback.String()
}

func structTagValue(tag, key string) (string, bool) {
	v := reflect.StructTag(tag).Get(key)
	if v == "" {
		return "", false
	}
	return v, true
}

// loggingTypesTagCollector is the part of the LoggingTypes registry that
// validateTagProvider needs.
type loggingTypesTagCollector interface {
	ImplementsTagCollector(types.Type) bool
}

// validateTagProvider validates a resolved tag-provider method against the
// seven rules spec §4.4.5 lists, in order, stopping at the first
// violation.
func validateTagProvider(paramName string, paramType types.Type, providerType *types.Named, methodName string, lt loggingTypesTagCollector) model.TagProvider {
	tp := model.TagProvider{
		ParameterName: paramName,
	}
	if providerType != nil {
		tp.ProviderTypeFQN = typeKey(providerType, paramType)
	}
	tp.ProviderMethodName = methodName

	fail := func(msg string) model.TagProvider {
		tp.IsValid = false
		tp.ValidationMessage = &msg
		return tp
	}

	if providerType == nil {
		return fail(fmt.Sprintf("tag provider type for parameter %q could not be resolved", paramName))
	}

	// Go has no static methods, so the provider is a package-level
	// function living alongside providerType rather than a method bound
	// to it; "Type.Method" in the directive only names providerType for
	// display (rule 2's "must be static" becomes "must be a free
	// function", which package-scope lookup guarantees by construction).
	pkg := providerType.Obj().Pkg()
	if pkg == nil {
		return fail(fmt.Sprintf("tag provider type for parameter %q has no resolvable package", paramName))
	}
	obj := pkg.Scope().Lookup(methodName)
	fn, ok := obj.(*types.Func)
	if !ok {
		return fail(fmt.Sprintf("function %q does not exist alongside %s", methodName, tp.ProviderTypeFQN))
	}

	sig := fn.Type().(*types.Signature)

	if !fn.Exported() {
		return fail(fmt.Sprintf("method %q must be publicly or internally visible", methodName))
	}

	if sig.Results().Len() != 0 {
		return fail(fmt.Sprintf("method %q must return nothing", methodName))
	}

	if sig.Params().Len() != 2 {
		return fail(fmt.Sprintf("method %q must take exactly two parameters", methodName))
	}

	if !lt.ImplementsTagCollector(sig.Params().At(0).Type()) {
		return fail(fmt.Sprintf("first parameter of %q must be the tag collector interface", methodName))
	}

	if !types.AssignableTo(paramType, sig.Params().At(1).Type()) {
		return fail(fmt.Sprintf("second parameter of %q must be assignable from %s", methodName, opref.TypeDisplay(paramType)))
	}

	tp.IsValid = true
	return tp
}
