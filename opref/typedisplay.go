package opref

import (
	"go/types"
	"strings"
)

// TypeDisplay renders t the way spec §3's typeDisplay field expects:
// package-qualified by short package name rather than full import path, and
// with pointer/slice/map wrappers spelled out using Go's own syntax rather
// than any .NET-ism the distillation's wording might suggest.
func TypeDisplay(t types.Type) string {
	return types.TypeString(t, qualifier)
}

// qualifier shortens an import path to its package name, matching what a Go
// reader expects from a type display (e.g. "time.Duration", not
// "\"time\".Duration").
func qualifier(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}
	return pkg.Name()
}

// IsNullable reports whether t's Go representation can itself take the
// nil value, the translation of C#'s nullable-reference-type check.
func IsNullable(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Pointer, *types.Slice, *types.Map, *types.Chan, *types.Signature, *types.Interface:
		return true
	case *types.Basic:
		return u.Kind() == types.UnsafePointer
	}
	return false
}

// TrimGenericArgs strips a generic type's "[T1, T2]" argument list, so
// Properties[Order] and Properties[Invoice] both reduce to "Properties".
func TrimGenericArgs(display string) string {
	if i := strings.IndexByte(display, '['); i >= 0 {
		return display[:i]
	}
	return display
}
