package analyzers

import (
	"testing"

	"github.com/loginsight/logusage/logging"
	"github.com/loginsight/logusage/model"
)

const extensionCallSrc = `
package test

type Logger interface {
	LogInformation(message string, args ...any)
	Log(level int, message string, args ...any)
}

func run(log Logger, orderId int) {
	log.LogInformation("Processing order {OrderId}", orderId)
	log.Log(3, "Generic level log for order {OrderId}", orderId)
	log.LogInformation("no placeholders here")
}
`

func TestExtensionCallAnalyzerNamedLevel(t *testing.T) {
	f, ctx := checkSource(t, extensionCallSrc)
	call := findCall(f, "LogInformation")

	a := &ExtensionCallAnalyzer{}
	finding, ok := a.Analyze(ctx, Operation{Call: call})
	if !ok {
		t.Fatalf("expected a match")
	}
	if finding.MethodType != model.ExtensionCall {
		t.Fatalf("MethodType = %v, want ExtensionCall", finding.MethodType)
	}
	if *finding.LogLevel != logging.Information {
		t.Fatalf("LogLevel = %v, want Information", *finding.LogLevel)
	}
	if len(finding.MessageParameters) != 1 || finding.MessageParameters[0].Name != "OrderId" {
		t.Fatalf("MessageParameters = %+v, want one OrderId binding", finding.MessageParameters)
	}
}

func TestExtensionCallAnalyzerGenericLog(t *testing.T) {
	f, ctx := checkSource(t, extensionCallSrc)
	call := findCall(f, "Log")

	a := &ExtensionCallAnalyzer{}
	finding, ok := a.Analyze(ctx, Operation{Call: call})
	if !ok {
		t.Fatalf("expected a match")
	}
	if *finding.LogLevel != logging.Warning {
		t.Fatalf("LogLevel = %v, want Warning (level 3)", *finding.LogLevel)
	}
}

func TestExtensionCallAnalyzerUnknownLevelStillMatches(t *testing.T) {
	src := `
package test

type Logger interface {
	Log(level int, message string, args ...any)
}

func run(log Logger, orderId int) {
	log.Log(7, "Processing order {OrderId}", orderId)
}
`
	f, ctx := checkSource(t, src)
	call := findCall(f, "Log")

	a := &ExtensionCallAnalyzer{}
	finding, ok := a.Analyze(ctx, Operation{Call: call})
	if !ok {
		t.Fatalf("expected a match even when the level literal (7) is out of the known range")
	}
	if finding.LogLevel != nil {
		t.Fatalf("LogLevel = %v, want nil for an unresolvable level literal", finding.LogLevel)
	}
	if len(finding.MessageParameters) != 1 || finding.MessageParameters[0].Name != "OrderId" {
		t.Fatalf("MessageParameters = %+v, want one OrderId binding", finding.MessageParameters)
	}
}

func TestExtensionCallAnalyzerNoTemplateNoMatch(t *testing.T) {
	src := `
package test

type Logger interface {
	LogInformation(message string, args ...any)
}

func run(log Logger, x int) {
	log.LogInformation(whateverTemplate(x))
}

func whateverTemplate(x int) string { return "" }
`
	f, ctx := checkSource(t, src)
	call := findCall(f, "LogInformation")

	a := &ExtensionCallAnalyzer{}
	if _, ok := a.Analyze(ctx, Operation{Call: call}); ok {
		t.Fatalf("did not expect a match when no argument is a constant string")
	}
}

func TestExtensionCallAnalyzerNonLoggerReceiverNoMatch(t *testing.T) {
	src := `
package test

type Widget struct{}

func (Widget) LogInformation(message string, args ...any) {}

type Logger interface {
	Warn()
}

func run(w Widget) {
	w.LogInformation("not a real logger call {X}", 1)
}
`
	f, ctx := checkSource(t, src)
	call := findCall(f, "LogInformation")

	a := &ExtensionCallAnalyzer{}
	if _, ok := a.Analyze(ctx, Operation{Call: call}); ok {
		t.Fatalf("did not expect Widget to be recognized as a logger type (its name does not end in Logger)")
	}
}
