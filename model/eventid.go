package model

import "encoding/json"

// EventIDRefKind distinguishes the two ways an EventIDBinding can be
// supplied: inline at the call site, or read back from a declared symbol.
type EventIDRefKind string

const (
	EventIDLocal     EventIDRefKind = "Local"
	EventIDParameter EventIDRefKind = "Parameter"
	EventIDField     EventIDRefKind = "Field"
	EventIDProperty  EventIDRefKind = "Property"
)

// EventIDBinding is a tagged union: either an inline {id, name} pair, or a
// reference to a symbol that holds a previously-constructed event id.
type EventIDBinding struct {
	// IsSymbolReference distinguishes the two variants; when false, Inline*
	// fields are populated, otherwise Ref* fields are.
	IsSymbolReference bool `json:"-"`

	InlineID   ConstantOrReference `json:"id,omitempty"`
	InlineName ConstantOrReference `json:"name,omitempty"`

	RefKind EventIDRefKind `json:"refKind,omitempty"`
	RefName string         `json:"refName,omitempty"`
}

// MarshalJSON emits the {kind:"Inline",...} / {kind:"Ref",...} shape spec §6
// names, since Go's encoding/json has no native tagged-union support.
func (b EventIDBinding) MarshalJSON() ([]byte, error) {
	if b.IsSymbolReference {
		return json.Marshal(struct {
			Kind    string         `json:"kind"`
			RefKind EventIDRefKind `json:"refKind"`
			RefName string         `json:"refName"`
		}{"Ref", b.RefKind, b.RefName})
	}
	return json.Marshal(struct {
		Kind string              `json:"kind"`
		ID   ConstantOrReference `json:"id"`
		Name ConstantOrReference `json:"name"`
	}{"Inline", b.InlineID, b.InlineName})
}

// InlineEventID builds the Inline variant of an EventIDBinding.
func InlineEventID(id, name ConstantOrReference) EventIDBinding {
	return EventIDBinding{InlineID: id, InlineName: name}
}

// SymbolEventID builds the SymbolReference variant of an EventIDBinding.
func SymbolEventID(kind EventIDRefKind, name string) EventIDBinding {
	return EventIDBinding{IsSymbolReference: true, RefKind: kind, RefName: name}
}
