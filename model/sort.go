package model

import "sort"

// SortFindings orders findings by (file_path, start_line, start_column,
// method_name), the stable sort the orchestrator applies before returning
// a Result so downstream consumers see a deterministic sequence regardless
// of how parallel extraction collected them.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Location.Less(b.Location) {
			return true
		}
		if b.Location.Less(a.Location) {
			return false
		}
		return a.MethodName < b.MethodName
	})
}
