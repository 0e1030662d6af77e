// Package types resolves the well-known logging symbols from a
// compilation's symbol table once per run (C1), the registry every
// analyzer in the analyzers package consults instead of re-resolving
// symbols itself.
package types

import (
	"go/types"
)

// LoggingTypes is the registry of well-known symbols an extraction run
// resolves once and shares read-only with every analyzer. Optional
// families that fail to resolve are left nil rather than aborting the
// run; only LoggerInterface missing aborts (spec §4.1).
type LoggingTypes struct {
	LoggerInterface       *types.Interface
	LevelEnumPkg          string
	EventIDStruct         *types.Named
	LogPropertiesAttr     *types.Named
	TagNameAttr           *types.Named
	TagProviderAttr       *types.Named
	TagCollectorInterface *types.Interface
	DataClassificationAttr *types.Named

	// StrictLoggerTypes disables the name-based leniency fallback in
	// IsLoggerType, accepting only types declared in LoggerPackagePaths.
	StrictLoggerTypes bool
	LoggerPackagePaths []string
}

// DefaultLoggerPackagePaths names the import paths IsLoggerType always
// accepts regardless of StrictLoggerTypes, mirroring the teacher
// analyzer's own-package fast path.
var DefaultLoggerPackagePaths = []string{
	"github.com/loginsight/logusage/logging",
}

// Resolve builds a LoggingTypes registry by locating the logging package
// (one of LoggerPackagePaths) among pkg's transitive imports and pulling
// its well-known symbols out of that package's own scope, since real
// target code imports these types rather than declaring them itself.
// Every optional family that can't be found is left nil/empty on the
// returned registry; ok is false only when the logger interface itself
// can't be resolved, signalling the orchestrator should return an empty
// result (spec §4.1).
func Resolve(pkg *types.Package, strict bool) (*LoggingTypes, bool) {
	lt := &LoggingTypes{
		StrictLoggerTypes:  strict,
		LoggerPackagePaths: DefaultLoggerPackagePaths,
	}

	loggingPkg := findImport(pkg, DefaultLoggerPackagePaths)
	if loggingPkg == nil {
		loggingPkg = pkg
	}

	if iface := lookupInterface(loggingPkg, "Logger"); iface != nil {
		lt.LoggerInterface = iface
	}
	if named := lookupNamed(loggingPkg, "EventID"); named != nil {
		lt.EventIDStruct = named
	}
	if iface := lookupInterface(loggingPkg, "TagCollector"); iface != nil {
		lt.TagCollectorInterface = iface
	}
	if named := lookupNamed(loggingPkg, "DataClassifier"); named != nil {
		lt.DataClassificationAttr = named
	}

	return lt, lt.LoggerInterface != nil
}

// findImport searches pkg's transitive imports for a package whose path is
// in paths, breadth-first. Returns nil if none of pkg's imports match.
func findImport(pkg *types.Package, paths []string) *types.Package {
	if pkg == nil {
		return nil
	}
	wanted := make(map[string]bool, len(paths))
	for _, p := range paths {
		wanted[p] = true
	}

	seen := map[string]bool{pkg.Path(): true}
	queue := append([]*types.Package{}, pkg.Imports()...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next.Path()] {
			continue
		}
		seen[next.Path()] = true
		if wanted[next.Path()] {
			return next
		}
		queue = append(queue, next.Imports()...)
	}
	return nil
}

func lookupInterface(pkg *types.Package, name string) *types.Interface {
	named := lookupNamed(pkg, name)
	if named == nil {
		return nil
	}
	iface, _ := named.Underlying().(*types.Interface)
	return iface
}

func lookupNamed(pkg *types.Package, name string) *types.Named {
	if pkg == nil {
		return nil
	}
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return nil
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil
	}
	named, _ := tn.Type().(*types.Named)
	return named
}
