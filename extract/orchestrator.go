package extract

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/loginsight/logusage/analyzers"
	"github.com/loginsight/logusage/compilation"
	"github.com/loginsight/logusage/crosscall"
	"github.com/loginsight/logusage/model"
	"github.com/loginsight/logusage/selflog"
	"github.com/loginsight/logusage/summary"
	logtypes "github.com/loginsight/logusage/types"
)

var walkNodeFilter = []ast.Node{
	(*ast.CallExpr)(nil),
	(*ast.FuncDecl)(nil),
}

// Extract walks every compilation's syntax trees, mining findings in
// parallel across compilations and, within each compilation, across its
// files (spec §4.6/§5), bounded to the host's hardware parallelism, then
// sorts and summarizes the result. ctx cancellation is checked before each
// compilation and each file is walked (a file already being walked is
// finished) and is reported back via Result.Cancelled rather than as an
// error: a partial result is still useful.
func Extract(ctx context.Context, compilations []*compilation.Compilation, opts Options) (model.Result, error) {
	if len(compilations) == 0 {
		return model.Result{Findings: []model.Finding{}, Summary: summary.Compute(nil)}, nil
	}

	lt, ok := logtypes.Resolve(compilations[0].Types, opts.StrictLoggerTypes || opts.AnalyzerConfig.StrictLoggerTypes)
	if !ok {
		return model.Result{Findings: []model.Finding{}, Summary: summary.Compute(nil)}, nil
	}

	var totalOps int64
	for _, c := range compilations {
		totalOps += countOperations(c)
	}

	tracker := newProgressTracker(totalOps, len(compilations), opts.Progress)
	tracker.workspaceReady()
	tracker.analyzerPhaseStart(analyzers.Names())

	var mu sync.Mutex
	var findings []model.Finding
	var ctAttrIndexes []int

	limit := runtime.GOMAXPROCS(0)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, c := range compilations {
		c := c
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			local, err := walkCompilation(gctx, c, lt, &opts.AnalyzerConfig, tracker, limit)
			if err != nil {
				return err
			}

			mu.Lock()
			for i := range local {
				findings = append(findings, local[i])
				if local[i].MethodType == model.CompileTimeAttribute {
					ctAttrIndexes = append(ctAttrIndexes, len(findings)-1)
				}
			}
			mu.Unlock()

			tracker.projectDone(c.Name, len(local))
			return nil
		})
	}

	cancelled := false
	if err := g.Wait(); err != nil {
		if err == context.Canceled || err == context.DeadlineExceeded {
			cancelled = true
		} else {
			return model.Result{}, fmt.Errorf("extract: %w", err)
		}
	}

	if opts.ProjectGraph != nil {
		attachInvocations(findings, ctAttrIndexes, compilations, opts.ProjectGraph)
	}

	model.SortFindings(findings)

	return model.Result{
		Findings:  findings,
		Summary:   summary.Compute(findings),
		Cancelled: cancelled,
	}, nil
}

// countOperations counts the call expressions and method declarations in
// c without type-checking them, purely to size the progress denominator
// before the real (type-aware) walk begins.
func countOperations(c *compilation.Compilation) int64 {
	var n int64
	inspector.New(c.Files).Preorder(walkNodeFilter, func(ast.Node) { n++ })
	return n
}

// walkCompilation dispatches every call expression and method declaration
// in c to the analyzer coordinator, fanning out one worker per file bounded
// to limit so a single multi-file compilation still uses the available
// hardware parallelism rather than only compilation-level fan-out. An
// analyzer panic is recovered, logged via selflog, and the offending
// operation is skipped rather than aborting the whole compilation (spec
// §4.6 failure policy).
func walkCompilation(ctx context.Context, c *compilation.Compilation, lt *logtypes.LoggingTypes, cfg *analyzers.Config, tracker *progressTracker, limit int) ([]model.Finding, error) {
	coord := analyzers.NewCoordinator(c.Fset, c.Info, lt, cfg)

	var mu sync.Mutex
	var findings []model.Finding

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, file := range c.Files {
		file := file
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			local := walkFile(c.Fset, file, coord, tracker)

			mu.Lock()
			findings = append(findings, local...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return findings, err
	}
	return findings, nil
}

// walkFile visits every call expression and method declaration in file,
// reporting a progress tick for each one scanned.
func walkFile(fset *token.FileSet, file *ast.File, coord *analyzers.Coordinator, tracker *progressTracker) []model.Finding {
	fileName := fset.Position(file.Pos()).Filename
	var findings []model.Finding

	inspector.New([]*ast.File{file}).Preorder(walkNodeFilter, func(n ast.Node) {
		switch node := n.(type) {
		case *ast.CallExpr:
			if f, ok := safeVisitCall(coord, node); ok {
				findings = append(findings, f)
			}
		case *ast.FuncDecl:
			if f, ok := safeVisitFuncDecl(coord, node); ok {
				findings = append(findings, f)
			}
		}
		tracker.operationScanned(fileName)
	})

	return findings
}

func safeVisitCall(coord *analyzers.Coordinator, call *ast.CallExpr) (f model.Finding, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			selflog.Printf("[extract] analyzer panic recovered at %v: %v", call.Pos(), r)
			ok = false
		}
	}()
	return coord.VisitCall(call)
}

func safeVisitFuncDecl(coord *analyzers.Coordinator, decl *ast.FuncDecl) (f model.Finding, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			selflog.Printf("[extract] analyzer panic recovered at %v: %v", decl.Pos(), r)
			ok = false
		}
	}()
	return coord.VisitFuncDecl(decl)
}

// attachInvocations runs the cross-project caller finder (C5) for every
// CompileTimeAttribute finding, using the compilation it was found in to
// resolve its method symbol.
func attachInvocations(findings []model.Finding, indexes []int, compilations []*compilation.Compilation, graph *compilation.ProjectGraph) {
	for _, idx := range indexes {
		sym, ok := resolveSymbol(compilations, &findings[idx])
		if !ok {
			continue
		}
		findings[idx].Invocations = crosscall.Find(graph, sym)
	}
}

func resolveSymbol(compilations []*compilation.Compilation, f *model.Finding) (crosscall.Symbol, bool) {
	for _, c := range compilations {
		for _, file := range c.Files {
			for _, decl := range file.Decls {
				fd, ok := decl.(*ast.FuncDecl)
				if !ok || fd.Name.Name != f.MethodName || declaringTypeName(fd) != f.DeclaringType {
					continue
				}
				fn, ok := c.Info.Defs[fd.Name].(*types.Func)
				if !ok {
					continue
				}
				if sym, ok := crosscall.SymbolOf(fn); ok {
					return sym, true
				}
			}
		}
	}
	return crosscall.Symbol{}, false
}

func declaringTypeName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return ""
	}
	expr := decl.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}
