package extract

import (
	"strconv"
	"sync/atomic"

	"github.com/loginsight/logusage/selflog"
)

// ProgressReport is the payload a Progress callback receives at each
// reported milestone (spec §6/§4.6 step 7): a clamped completion
// percentage, a human-readable description of what just happened, and the
// file/analyzer that triggered it when one applies.
type ProgressReport struct {
	Percent              int
	OperationDescription string
	CurrentFile          string
	CurrentAnalyzer      string
}

// ProgressFunc receives ProgressReport at the milestones progressTracker
// fires: workspace-ready, per-analyzer phase start, per-project
// completion, and at least every 5% of operations scanned in between.
type ProgressFunc func(ProgressReport)

// progressTracker reports ProgressReports to a caller-supplied
// ProgressFunc. All state is accessed via atomics so it can be driven from
// many goroutines at once without its own lock around the callback;
// report callbacks are invoked inline on whichever worker goroutine
// crossed the threshold, matching spec §5's "reporter callbacks run on
// task-pool threads, caller marshals" contract.
type progressTracker struct {
	totalOps   int64
	doneOps    atomic.Int64
	lastBucket atomic.Int64 // last reported percent/5, so two workers crossing the same bucket only report once

	totalCompilations int
	doneCompilations  atomic.Int64

	callback ProgressFunc
}

func newProgressTracker(totalOps int64, totalCompilations int, callback ProgressFunc) *progressTracker {
	t := &progressTracker{
		totalOps:          totalOps,
		totalCompilations: totalCompilations,
		callback:          callback,
	}
	t.lastBucket.Store(-1)
	return t
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func (t *progressTracker) percentDone() int {
	if t.totalOps <= 0 {
		return 0
	}
	return clampPercent(int(t.doneOps.Load() * 100 / t.totalOps))
}

// emit invokes the callback, recovering and self-logging any panic rather
// than letting a misbehaving reporter abort extraction (spec §5).
func (t *progressTracker) emit(r ProgressReport) {
	if t.callback == nil {
		return
	}
	r.Percent = clampPercent(r.Percent)
	defer func() {
		if rec := recover(); rec != nil {
			selflog.Printf("[extract] progress reporter panic recovered: %v", rec)
		}
	}()
	t.callback(r)
}

// workspaceReady fires once, before any compilation is walked.
func (t *progressTracker) workspaceReady() {
	t.emit(ProgressReport{
		Percent:              0,
		OperationDescription: "workspace ready",
	})
}

// analyzerPhaseStart fires once per analyzer family, announcing the fixed
// set that will be dispatched for this run.
func (t *progressTracker) analyzerPhaseStart(names []string) {
	for _, name := range names {
		t.emit(ProgressReport{
			Percent:              t.percentDone(),
			OperationDescription: "analyzer phase start: " + name,
			CurrentAnalyzer:      name,
		})
	}
}

// operationScanned is called once per call expression/func decl visited
// across every compilation; it reports every time the running total
// crosses a new 5%-of-operations bucket.
func (t *progressTracker) operationScanned(currentFile string) {
	if t.callback == nil || t.totalOps <= 0 {
		return
	}
	done := t.doneOps.Add(1)
	bucket := done * 20 / t.totalOps // 20 buckets == every 5%
	if bucket > 20 {
		bucket = 20
	}
	prev := t.lastBucket.Load()
	if bucket <= prev {
		return
	}
	if !t.lastBucket.CompareAndSwap(prev, bucket) {
		return // another goroutine already advanced the bucket
	}
	t.emit(ProgressReport{
		Percent:              clampPercent(int(done * 100 / t.totalOps)),
		OperationDescription: "scanning",
		CurrentFile:          currentFile,
	})
}

// projectDone fires once per compilation, when its walk finishes.
func (t *progressTracker) projectDone(name string, findingCount int) {
	done := t.doneCompilations.Add(1)
	percent := t.percentDone()
	if t.totalCompilations > 0 {
		byProject := clampPercent(int(done) * 100 / t.totalCompilations)
		if byProject > percent {
			percent = byProject
		}
	}
	t.emit(ProgressReport{
		Percent:              percent,
		OperationDescription: projectDoneDescription(name, findingCount),
		CurrentFile:          name,
	})
}

func projectDoneDescription(name string, findingCount int) string {
	if name == "" {
		name = "(unnamed project)"
	}
	if findingCount == 1 {
		return name + ": finished, 1 finding"
	}
	return name + ": finished, " + strconv.Itoa(findingCount) + " findings"
}
