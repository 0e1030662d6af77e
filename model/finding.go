package model

import "github.com/loginsight/logusage/logging"

// MethodType classifies which of the four logging call-site shapes a
// Finding was mined from.
type MethodType string

const (
	ExtensionCall        MethodType = "ExtensionCall"
	CompileTimeAttribute MethodType = "CompileTimeAttribute"
	DelegateFactory      MethodType = "DelegateFactory"
	ScopeBegin           MethodType = "ScopeBegin"
)

// InvocationSite is one call site of a CompileTimeAttribute-declared logging
// method, recorded separately from the declaration itself (spec §3).
type InvocationSite struct {
	ContainingTypeFQN string             `json:"containingTypeFqn"`
	ProjectName       string             `json:"projectName,omitempty"`
	Location          SourceLocation     `json:"location"`
	Arguments         []ParameterBinding `json:"arguments"`
}

// Finding is one mined logging call site or declaration. Fields that apply
// to only a subset of MethodType values are left at their zero value
// otherwise; CompileTimeAttribute is the only variant that populates
// LogPropertiesParameters and Invocations.
type Finding struct {
	MethodType MethodType `json:"methodType"`
	MethodName string     `json:"methodName"`

	LogLevel        *logging.Level  `json:"logLevel,omitempty"`
	MessageTemplate *string         `json:"messageTemplate,omitempty"`
	EventID         *EventIDBinding `json:"eventId,omitempty"`

	MessageParameters []ParameterBinding `json:"messageParameters,omitempty"`

	Location SourceLocation `json:"location"`

	// DeclaringType is set for CompileTimeAttribute findings only: the
	// receiver type whose partial-method-equivalent declares the logging
	// method.
	DeclaringType string `json:"declaringType,omitempty"`

	LogPropertiesParameters []LogPropertiesParameter `json:"logPropertiesParameters,omitempty"`

	// Invocations holds every call site of a CompileTimeAttribute
	// declaration, collected across every project of the extraction's
	// ProjectGraph; it stays empty when no ProjectGraph is supplied.
	Invocations []InvocationSite `json:"invocations,omitempty"`
}
