package logging

// EventID pairs a numeric id with an optional name, the struct value used
// at call sites to distinguish one log statement's identity from its
// message text. Constructing one at a call site is what the extractor
// recognizes as an inline EventIDBinding (model.InlineEventID).
type EventID struct {
	ID   int
	Name string
}
