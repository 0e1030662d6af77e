package summary

import (
	"testing"

	"github.com/loginsight/logusage/model"
)

func param(name, typeDisplay string) model.ParameterBinding {
	return model.ParameterBinding{Name: name, TypeDisplay: typeDisplay, SourceKind: model.RefParameter}
}

func TestComputeParameterTypesByName(t *testing.T) {
	findings := []model.Finding{
		{MessageParameters: []model.ParameterBinding{param("UserId", "int"), param("UserId", "string")}},
	}
	s := Compute(findings)

	types := s.ParameterTypesByName["UserId"]
	if len(types) != 2 || types[0] != "int" || types[1] != "string" {
		t.Fatalf("ParameterTypesByName[UserId] = %v, want [int string]", types)
	}
	if s.TotalParameterUsageCount != 2 {
		t.Fatalf("TotalParameterUsageCount = %d, want 2", s.TotalParameterUsageCount)
	}
	if s.UniqueParameterNameCount != 1 {
		t.Fatalf("UniqueParameterNameCount = %d, want 1", s.UniqueParameterNameCount)
	}
}

func TestComputeTypeMismatchGroup(t *testing.T) {
	findings := []model.Finding{
		{MessageParameters: []model.ParameterBinding{param("Count", "int")}},
		{MessageParameters: []model.ParameterBinding{param("Count", "string")}},
	}
	s := Compute(findings)

	if len(s.InconsistencyGroups) != 1 {
		t.Fatalf("InconsistencyGroups = %v, want 1 group", s.InconsistencyGroups)
	}
	g := s.InconsistencyGroups[0]
	if len(g.IssueKinds) != 1 || g.IssueKinds[0] != "TypeMismatch" {
		t.Fatalf("IssueKinds = %v, want [TypeMismatch]", g.IssueKinds)
	}
	if len(g.NamesWithTypes) != 2 {
		t.Fatalf("NamesWithTypes = %v, want 2 entries", g.NamesWithTypes)
	}
}

func TestComputeCasingDifferenceGroup(t *testing.T) {
	findings := []model.Finding{
		{MessageParameters: []model.ParameterBinding{param("userId", "int"), param("UserId", "int")}},
	}
	s := Compute(findings)

	if len(s.InconsistencyGroups) != 1 {
		t.Fatalf("InconsistencyGroups = %v, want 1 group", s.InconsistencyGroups)
	}
	g := s.InconsistencyGroups[0]
	if len(g.IssueKinds) != 1 || g.IssueKinds[0] != "CasingDifference" {
		t.Fatalf("IssueKinds = %v, want [CasingDifference]", g.IssueKinds)
	}
}

func TestComputeCommonParameterNamesOrdering(t *testing.T) {
	findings := []model.Finding{
		{MessageParameters: []model.ParameterBinding{param("A", "int"), param("B", "int"), param("B", "int")}},
	}
	s := Compute(findings)

	if len(s.CommonParameterNames) != 2 {
		t.Fatalf("CommonParameterNames = %v, want 2 entries", s.CommonParameterNames)
	}
	if s.CommonParameterNames[0].Name != "B" || s.CommonParameterNames[0].Count != 2 {
		t.Fatalf("first entry = %+v, want B with count 2", s.CommonParameterNames[0])
	}
	if s.CommonParameterNames[1].Name != "A" || s.CommonParameterNames[1].Count != 1 {
		t.Fatalf("second entry = %+v, want A with count 1", s.CommonParameterNames[1])
	}
}

func TestComputeTelemetryStatsTransitiveCount(t *testing.T) {
	nested := &model.PropertyNode{OriginalName: "Street"}
	root := &model.PropertyNode{OriginalName: "Address", Nested: []*model.PropertyNode{nested}}
	findings := []model.Finding{
		{
			LogPropertiesParameters: []model.LogPropertiesParameter{
				{ParameterName: "order", Properties: []*model.PropertyNode{root}},
			},
		},
	}
	s := Compute(findings)

	if s.TelemetryStats.TotalTransitivePropertyNodeCount != 2 {
		t.Fatalf("TotalTransitivePropertyNodeCount = %d, want 2", s.TelemetryStats.TotalTransitivePropertyNodeCount)
	}
}

func TestComputeEmptyInput(t *testing.T) {
	s := Compute(nil)
	if s.TotalParameterUsageCount != 0 || len(s.InconsistencyGroups) != 0 {
		t.Fatalf("Compute(nil) = %+v, want zero-value summary", s)
	}
}
