package model

// Result is the top-level output of an extraction run: every mined Finding,
// the derived Summary, and whether the run was cancelled before it covered
// every syntax tree (spec §4.6 step 6).
type Result struct {
	Findings  []Finding `json:"findings"`
	Summary   Summary   `json:"summary"`
	Cancelled bool      `json:"cancelled"`
}
