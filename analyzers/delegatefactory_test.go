package analyzers

import (
	"testing"

	"github.com/loginsight/logusage/model"
)

const delegateFactorySrc = `
package test

type Logger interface {
	LogInformation(message string, args ...any)
}

const levelInformation = 2

var logOrderProcessed = Define1[int](levelInformation, 1001, "Processing order {OrderId}")

func Define1[T1 any](level int, eventId int, template string) func(Logger, T1) {
	return nil
}
`

func TestDelegateFactoryAnalyzerMatchesDefineCall(t *testing.T) {
	f, ctx := checkSource(t, delegateFactorySrc)
	call := findCall(f, "Define1")

	a := &DelegateFactoryAnalyzer{}
	finding, ok := a.Analyze(ctx, Operation{Call: call})
	if !ok {
		t.Fatalf("expected a match")
	}
	if finding.MethodType != model.DelegateFactory {
		t.Fatalf("MethodType = %v, want DelegateFactory", finding.MethodType)
	}
	if finding.MessageTemplate == nil || *finding.MessageTemplate != "Processing order {OrderId}" {
		t.Fatalf("MessageTemplate = %v, want the literal template", finding.MessageTemplate)
	}
	if len(finding.MessageParameters) != 1 || finding.MessageParameters[0].Name != "OrderId" {
		t.Fatalf("MessageParameters = %+v, want one OrderId binding", finding.MessageParameters)
	}
	if finding.MessageParameters[0].TypeDisplay != "int" {
		t.Fatalf("TypeDisplay = %q, want int", finding.MessageParameters[0].TypeDisplay)
	}
}

func TestDelegateFactoryAnalyzerMismatchedCountsPreserved(t *testing.T) {
	src := `
package test

type Logger interface {
	LogInformation(message string, args ...any)
}

const levelInformation = 2

var logMismatch = Define1[int](levelInformation, 1002, "Order {OrderId} shipped to {City}")

func Define1[T1 any](level int, eventId int, template string) func(Logger, T1) {
	return nil
}
`
	f, ctx := checkSource(t, src)
	call := findCall(f, "Define1")

	a := &DelegateFactoryAnalyzer{}
	finding, ok := a.Analyze(ctx, Operation{Call: call})
	if !ok {
		t.Fatalf("expected a match")
	}
	if len(finding.MessageParameters) != 2 {
		t.Fatalf("MessageParameters = %+v, want 2 entries (verbatim mismatch, not truncated)", finding.MessageParameters)
	}
	if finding.MessageParameters[1].Name != "City" || finding.MessageParameters[1].TypeDisplay != "" {
		t.Fatalf("second binding = %+v, want City name with no type (only 1 type arg supplied)", finding.MessageParameters[1])
	}
}

func TestDelegateFactoryAnalyzerIgnoresUnrelatedCall(t *testing.T) {
	src := `
package test

type Logger interface {
	LogInformation(message string, args ...any)
}

func helper() int { return 1 }

func run() {
	helper()
}
`
	f, ctx := checkSource(t, src)
	call := findCall(f, "helper")

	a := &DelegateFactoryAnalyzer{}
	if _, ok := a.Analyze(ctx, Operation{Call: call}); ok {
		t.Fatalf("did not expect a match for a non-Define call")
	}
}
