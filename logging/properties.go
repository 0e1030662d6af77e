package logging

// Config holds the per-parameter knobs a LogProperties-style parameter can
// carry, mirrored in model.LogPropertiesConfig for the extracted output.
type Config struct {
	// OmitReferenceName drops the parameter's own name from emitted tags,
	// so only its mined fields' names are used.
	OmitReferenceName bool

	// SkipNullProperties omits a field from the emitted tags when its
	// value is nil at log time.
	SkipNullProperties bool

	// Transitive mines fields of fields, recursively, instead of only the
	// parameter's own direct fields.
	Transitive bool
}

// Properties wraps a struct parameter that should be mined field-by-field
// rather than logged as a single scalar value. Provider, when set, takes
// over collection entirely in place of field mining (the TagProvider
// path); mining and Provider are mutually exclusive per value.
type Properties[T any] struct {
	Value    T
	Config   Config
	Provider func(collector TagCollector, value T)
}

// NewProperties wraps value with the default Config (mine direct fields
// only, keep the reference name, do not skip nulls).
func NewProperties[T any](value T) Properties[T] {
	return Properties[T]{Value: value}
}

// WithConfig returns a copy of p using cfg instead of its current Config.
func (p Properties[T]) WithConfig(cfg Config) Properties[T] {
	p.Config = cfg
	return p
}

// WithProvider returns a copy of p that collects its tags via provider
// instead of mining p.Value's fields.
func (p Properties[T]) WithProvider(provider func(TagCollector, T)) Properties[T] {
	p.Provider = provider
	return p
}
