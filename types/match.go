package types

import (
	"go/types"
	"strings"
)

// requiredLoggerMethods lists the methods IsLoggerType treats as evidence a
// type is a logger even when it isn't declared in one of
// LoggingTypes.LoggerPackagePaths; any one of them being present is enough.
var requiredLoggerMethods = []string{
	"Log", "LogTrace", "LogDebug", "LogInformation", "LogWarning", "LogError", "LogCritical",
}

// IsLoggerType reports whether t should be treated as a logger at a call
// site. Types declared in LoggerPackagePaths are always accepted. Outside
// StrictLoggerTypes, any named type ending in "Logger" that also has at
// least one of the well-known logging methods is accepted too, since a
// workspace scan can't assume every logger implementation imports this
// module's own Logger interface.
func (lt *LoggingTypes) IsLoggerType(t types.Type) bool {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if alias, ok := t.(*types.Alias); ok {
		t = alias.Rhs()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	if pkg := named.Obj().Pkg(); pkg != nil {
		path := pkg.Path()
		for _, p := range lt.LoggerPackagePaths {
			if path == p {
				return true
			}
		}
	}

	if lt.StrictLoggerTypes {
		return false
	}

	name := named.Obj().Name()
	if name == "Logger" || strings.HasSuffix(name, "Logger") {
		return hasLoggerMethods(t)
	}

	return false
}

func hasLoggerMethods(t types.Type) bool {
	for _, name := range requiredLoggerMethods {
		obj, _, _ := types.LookupFieldOrMethod(t, true, nil, name)
		fn, ok := obj.(*types.Func)
		if !ok {
			continue
		}
		sig, ok := fn.Type().(*types.Signature)
		if !ok || sig.Params().Len() < 1 {
			continue
		}
		return true
	}
	return false
}

// ImplementsTagCollector reports whether t satisfies the tag-collector
// interface, used when validating a tag-provider method's first parameter
// (spec §4.4.5 rule 6).
func (lt *LoggingTypes) ImplementsTagCollector(t types.Type) bool {
	if lt.TagCollectorInterface == nil {
		return false
	}
	return types.Implements(t, lt.TagCollectorInterface) ||
		types.Implements(types.NewPointer(t), lt.TagCollectorInterface)
}
