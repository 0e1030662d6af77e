package model

// RefKind classifies how a value was produced at a call site: a compile-time
// constant, a read of a named symbol, or something richer the extractor
// only records as expression text.
type RefKind string

const (
	RefConstant          RefKind = "Constant"
	RefLocal             RefKind = "Local"
	RefParameter         RefKind = "Parameter"
	RefField             RefKind = "Field"
	RefProperty          RefKind = "Property"
	RefInvocation        RefKind = "Invocation"
	RefConditionalAccess RefKind = "ConditionalAccess"
	RefCoalesce          RefKind = "Coalesce"
)

// ConstantOrReference is a value that is either a compile-time constant or a
// named symbolic reference (spec §3/§4.2). The zero value is not valid on
// its own; use Missing, Constant, or Reference to build one.
type ConstantOrReference struct {
	Kind    RefKind `json:"kind,omitempty"`
	Name    string  `json:"name,omitempty"`
	Value   any     `json:"value,omitempty"`
	Text    string  `json:"text,omitempty"`
	Missing bool    `json:"missing,omitempty"`
}

// Missing is the distinguished sentinel representing "not supplied".
var Missing = ConstantOrReference{Missing: true}

// Constant builds a compile-time constant ConstantOrReference.
func Constant(value any) ConstantOrReference {
	return ConstantOrReference{Kind: RefConstant, Value: value}
}

// Reference builds a named-symbol ConstantOrReference (Local, Parameter,
// Field, or Property).
func Reference(kind RefKind, name string) ConstantOrReference {
	return ConstantOrReference{Kind: kind, Name: name}
}

// Expression builds a ConstantOrReference for a conditional-access,
// coalesce, or invocation expression, keeping its source text.
func Expression(kind RefKind, text string) ConstantOrReference {
	return ConstantOrReference{Kind: kind, Text: text}
}
