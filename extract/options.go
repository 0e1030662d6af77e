// Package extract implements the extractor orchestrator (C6): given a
// compilation, an optional project graph, and an optional progress
// callback, it walks every syntax tree, dispatches every call expression
// and method declaration to the analyzer set, and returns the collected
// findings plus their derived summary.
package extract

import (
	"github.com/loginsight/logusage/analyzers"
	"github.com/loginsight/logusage/compilation"
)

// Options configures a single extraction run.
type Options struct {
	// ProjectGraph enables cross-project invocation gathering for
	// CompileTimeAttribute findings (C5). Nil disables it; spec §4.5
	// treats that as intentional, not an error.
	ProjectGraph *compilation.ProjectGraph

	// AnalyzerConfig is forwarded to the coordinator unchanged.
	AnalyzerConfig analyzers.Config

	// StrictLoggerTypes disables the lenient by-name logger recognition.
	StrictLoggerTypes bool

	// Progress, when non-nil, is called at workspace-ready, at each
	// analyzer phase's start, at every project's completion, and at
	// least every 5% of total operations scanned in between. Callback
	// panics are recovered and self-logged, never propagated.
	Progress ProgressFunc
}
