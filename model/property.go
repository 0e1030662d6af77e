package model

// LogPropertiesConfig mirrors the configuration knobs spec.md attaches to a
// LogProperties-annotated parameter.
type LogPropertiesConfig struct {
	OmitReferenceName  bool `json:"omitReferenceName"`
	SkipNullProperties bool `json:"skipNullProperties"`
	Transitive         bool `json:"transitive"`
}

// PropertyNode describes one mined field of a structured-logging parameter.
// Nested is only populated when the declaring LogPropertiesParameter's
// Config.Transitive is true, and is always nil when recursion hit a type
// already on the current recursion stack (cycle breaker, spec invariant 3).
type PropertyNode struct {
	OriginalName       string          `json:"originalName"`
	EmittedName        string          `json:"emittedName"`
	TypeDisplay        string          `json:"typeDisplay"`
	IsNullable         bool            `json:"isNullable"`
	CustomTagName      *string         `json:"customTagName,omitempty"`
	DataClassification *string         `json:"dataClassification,omitempty"`
	Nested             []*PropertyNode `json:"nested,omitempty"`
}

// TagProvider describes a resolved (or rejected) tag-provider function for a
// LogProperties parameter.
type TagProvider struct {
	ParameterName      string  `json:"parameterName"`
	ProviderTypeFQN     string  `json:"providerTypeFqn"`
	ProviderMethodName string  `json:"providerMethodName"`
	OmitReferenceName  bool    `json:"omitReferenceName"`
	IsValid            bool    `json:"isValid"`
	ValidationMessage  *string `json:"validationMessage,omitempty"`
}

// LogPropertiesParameter is the structured-logging counterpart to a plain
// ParameterBinding: instead of one scalar value, the parameter's exported
// fields become a tree of logged properties.
type LogPropertiesParameter struct {
	ParameterName       string              `json:"parameterName"`
	ParameterTypeDisplay string             `json:"parameterTypeDisplay"`
	Config              LogPropertiesConfig `json:"config"`
	Properties          []*PropertyNode     `json:"properties"`
	TagProvider         *TagProvider        `json:"tagProvider,omitempty"`
}
