package logging

// Directive comment prefixes recognized on a doc comment immediately above
// a logging method declaration. These are the Go stand-in for a C#
// attribute decorating a partial method: since Go has no attribute syntax,
// a marker directive in the preceding doc comment is what promotes an
// ordinary method declaration to a CompileTimeAttribute finding.
//
// Grammar, one directive per comment line:
//
//	// +logmsg: level=Information, eventId=42, eventName=RequestStarted
//	// +logprop: request transitive, omitref
//	// +logtagprovider: request=RequestTagProvider
//
// +logmsg declares the method itself: level= is required and names a Level,
// and an optional template="..." supplies the message template.
// eventId/eventName are optional: when both are omitted no event id is
// recorded, and when only one is given the other is recorded as
// model.Missing. +logprop and
// +logtagprovider may each appear once per parameter name and apply to the
// parameter named first on the line. Parsing these lines is the
// analyzers package's responsibility; this file only fixes the vocabulary
// both packages agree on.
const (
	DirectiveLogMessage = "+logmsg:"
	DirectiveLogProperties = "+logprop:"
	DirectiveLogTagProvider = "+logtagprovider:"
)
