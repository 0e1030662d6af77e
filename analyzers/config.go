package analyzers

// Config holds the run-wide options that tune how findings are mined.
type Config struct {
	// StrictLoggerTypes restricts logger recognition to types declared in
	// the logging package itself, disabling the lenient by-name fallback.
	StrictLoggerTypes bool

	// DisabledAnalyzers allows specific analyzer families to be skipped
	// by name (ExtensionCall, CompileTimeAttribute, DelegateFactory,
	// ScopeBegin), matching how a linter lets individual checks be
	// turned off without disabling the whole run.
	DisabledAnalyzers map[string]bool
}

// DefaultConfig returns the default configuration: every analyzer enabled,
// lenient logger type matching.
func DefaultConfig() Config {
	return Config{
		DisabledAnalyzers: make(map[string]bool),
	}
}
