// Package summary implements the pure summarizer (C7): a total function
// from a slice of findings to the derived Summary spec §4.7 describes,
// with no I/O and no dependency on extraction order.
package summary

import (
	"sort"
	"strings"

	"github.com/loginsight/logusage/model"
)

// Compute derives a model.Summary from findings. Compute never mutates
// findings and always returns a usable Summary, even for an empty input.
func Compute(findings []model.Finding) model.Summary {
	bindings := collectBindings(findings)

	return model.Summary{
		ParameterTypesByName:     parameterTypesByName(bindings),
		TotalParameterUsageCount: len(bindings),
		UniqueParameterNameCount: uniqueNames(bindings),
		InconsistencyGroups:      inconsistencyGroups(bindings),
		CommonParameterNames:     commonParameterNames(bindings),
		TelemetryStats:           telemetryStats(findings),
	}
}

// collectBindings flattens every MessageParameter across every finding;
// LogPropertiesParameters are mined separately by telemetryStats and don't
// participate in the name/type consistency analysis, since spec §7 scopes
// that to message parameters.
func collectBindings(findings []model.Finding) []model.ParameterBinding {
	var out []model.ParameterBinding
	for _, f := range findings {
		out = append(out, f.MessageParameters...)
	}
	return out
}

func parameterTypesByName(bindings []model.ParameterBinding) map[string][]string {
	sets := make(map[string]map[string]bool)
	for _, b := range bindings {
		if sets[b.Name] == nil {
			sets[b.Name] = make(map[string]bool)
		}
		sets[b.Name][b.TypeDisplay] = true
	}

	out := make(map[string][]string, len(sets))
	for name, types := range sets {
		list := make([]string, 0, len(types))
		for t := range types {
			list = append(list, t)
		}
		sort.Strings(list)
		out[name] = list
	}
	return out
}

func uniqueNames(bindings []model.ParameterBinding) int {
	seen := make(map[string]bool)
	for _, b := range bindings {
		seen[b.Name] = true
	}
	return len(seen)
}

func inconsistencyGroups(bindings []model.ParameterBinding) []model.InconsistencyGroup {
	byExactName := make(map[string]map[string]bool)
	byCaseInsensitiveName := make(map[string]map[string]bool)
	caseInsensitiveNames := make(map[string]map[string]bool)

	for _, b := range bindings {
		if byExactName[b.Name] == nil {
			byExactName[b.Name] = make(map[string]bool)
		}
		byExactName[b.Name][b.TypeDisplay] = true

		key := strings.ToLower(b.Name)
		if byCaseInsensitiveName[key] == nil {
			byCaseInsensitiveName[key] = make(map[string]bool)
			caseInsensitiveNames[key] = make(map[string]bool)
		}
		byCaseInsensitiveName[key][b.TypeDisplay] = true
		caseInsensitiveNames[key][b.Name] = true
	}

	groups := make(map[string]*model.InconsistencyGroup)

	ensure := func(key string) *model.InconsistencyGroup {
		if g, ok := groups[key]; ok {
			return g
		}
		g := &model.InconsistencyGroup{}
		groups[key] = g
		return g
	}

	for name, types := range byExactName {
		if len(types) <= 1 {
			continue
		}
		g := ensure(strings.ToLower(name))
		addIssueKind(g, "TypeMismatch")
		for t := range types {
			addNameType(g, name, t)
		}
	}

	for key, names := range caseInsensitiveNames {
		if len(names) <= 1 {
			continue
		}
		g := ensure(key)
		addIssueKind(g, "CasingDifference")
		for name := range names {
			for t := range byExactName[name] {
				addNameType(g, name, t)
			}
		}
	}

	out := make([]model.InconsistencyGroup, 0, len(groups))
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		g := groups[k]
		sort.Slice(g.NamesWithTypes, func(i, j int) bool {
			if g.NamesWithTypes[i].Name != g.NamesWithTypes[j].Name {
				return g.NamesWithTypes[i].Name < g.NamesWithTypes[j].Name
			}
			return g.NamesWithTypes[i].TypeDisplay < g.NamesWithTypes[j].TypeDisplay
		})
		sort.Strings(g.IssueKinds)
		out = append(out, *g)
	}
	return out
}

func addIssueKind(g *model.InconsistencyGroup, kind string) {
	for _, k := range g.IssueKinds {
		if k == kind {
			return
		}
	}
	g.IssueKinds = append(g.IssueKinds, kind)
}

func addNameType(g *model.InconsistencyGroup, name, typeDisplay string) {
	for _, nt := range g.NamesWithTypes {
		if nt.Name == name && nt.TypeDisplay == typeDisplay {
			return
		}
	}
	g.NamesWithTypes = append(g.NamesWithTypes, model.NameType{Name: name, TypeDisplay: typeDisplay})
}

func commonParameterNames(bindings []model.ParameterBinding) []model.CommonParameterName {
	counts := make(map[string]int)
	typeCounts := make(map[string]map[string]int)
	for _, b := range bindings {
		counts[b.Name]++
		if typeCounts[b.Name] == nil {
			typeCounts[b.Name] = make(map[string]int)
		}
		typeCounts[b.Name][b.TypeDisplay]++
	}

	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	out := make([]model.CommonParameterName, 0, len(names))
	for _, n := range names {
		out = append(out, model.CommonParameterName{
			Name:           n,
			Count:          counts[n],
			MostCommonType: mostCommonType(typeCounts[n]),
		})
	}
	return out
}

func mostCommonType(counts map[string]int) string {
	best := ""
	bestCount := -1
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}

func telemetryStats(findings []model.Finding) model.TelemetryStats {
	var stats model.TelemetryStats

	for _, f := range findings {
		for _, p := range f.MessageParameters {
			if p.CustomTagName != nil {
				stats.ParametersWithCustomTagNameCount++
				stats.CustomTagNameMappings = append(stats.CustomTagNameMappings, model.NameType{
					Name:        p.Name,
					TypeDisplay: *p.CustomTagName,
				})
			}
		}
		for _, lp := range f.LogPropertiesParameters {
			if lp.TagProvider != nil {
				stats.ParametersWithTagProviderCount++
				stats.TagProviders = append(stats.TagProviders, *lp.TagProvider)
			}
			countProperties(&stats, lp.Properties)
		}
	}

	return stats
}

func countProperties(stats *model.TelemetryStats, nodes []*model.PropertyNode) {
	for _, n := range nodes {
		stats.TotalTransitivePropertyNodeCount++
		if n.CustomTagName != nil {
			stats.PropertiesWithCustomTagNameCount++
			stats.CustomTagNameMappings = append(stats.CustomTagNameMappings, model.NameType{
				Name:        n.OriginalName,
				TypeDisplay: *n.CustomTagName,
			})
		}
		countProperties(stats, n.Nested)
	}
}
