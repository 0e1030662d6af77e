package logging

import "context"

// Logger is the structural contract the extractor looks for when deciding
// whether a value is a logger at a call site. Types declared in this
// package are always treated as loggers; outside strict mode, any named
// type whose name ends in "Logger" and that has at least one of the Log*
// methods below is treated as a logger too, whether or not it actually
// implements Logger — duck typing, not nominal typing, since unrelated
// projects in a workspace may each define their own logger type with this
// shape.
type Logger interface {
	// Log writes a log event at the specified level.
	Log(level Level, messageTemplate string, args ...any)

	// LogTrace writes a trace-level log event.
	LogTrace(messageTemplate string, args ...any)

	// LogDebug writes a debug-level log event.
	LogDebug(messageTemplate string, args ...any)

	// LogInformation writes an information-level log event.
	LogInformation(messageTemplate string, args ...any)

	// LogWarning writes a warning-level log event.
	LogWarning(messageTemplate string, args ...any)

	// LogError writes an error-level log event.
	LogError(messageTemplate string, args ...any)

	// LogCritical writes a critical-level log event.
	LogCritical(messageTemplate string, args ...any)

	// IsEnabled reports whether events at the specified level would be
	// processed, the guard pattern call sites use before doing expensive
	// argument construction.
	IsEnabled(level Level) bool

	// BeginScope opens a logging scope carrying state, closed by the
	// returned function. Call sites that invoke this are what the
	// extractor records as ScopeBegin findings.
	BeginScope(ctx context.Context, state any) func()
}
