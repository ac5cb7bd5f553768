package driver

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"asmdiff/internal/compare"
	"asmdiff/internal/diagfmt"
	"asmdiff/internal/trace"
)

// DiffResult holds both parses and, when both succeeded, the pairwise
// verdicts.
type DiffResult struct {
	Left, Right *ParseResult
	Pairs       []compare.Pair
}

// LeftCount and RightCount expose the statement counts; pairing stops at
// the shorter document, so a mismatch is only visible here.
func (r *DiffResult) LeftCount() int  { return r.Left.Document.NumStatements() }
func (r *DiffResult) RightCount() int { return r.Right.Document.NumStatements() }

// View adapts the result for diagfmt.
func (r *DiffResult) View() diagfmt.DiffView {
	return diagfmt.DiffView{
		Left:  diagfmt.DiffSide{Path: r.Left.Path, Doc: r.Left.Document},
		Right: diagfmt.DiffSide{Path: r.Right.Path, Doc: r.Right.Document},
		Pairs: r.Pairs,
	}
}

// Diff parses both inputs concurrently and compares their statements. When
// a parse fails the partial result is still returned so every diagnostic
// can be shown; the error is the first failure.
func Diff(ctx context.Context, paths []string, opts Options) (*DiffResult, error) {
	if len(paths) != 2 {
		return nil, fmt.Errorf("%w, got %d", ErrArity, len(paths))
	}

	var sides [2]*ParseResult
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			res, err := Parse(gctx, path, opts)
			sides[i] = res
			return err
		})
	}
	err := g.Wait()
	res := &DiffResult{Left: sides[0], Right: sides[1]}
	if err != nil {
		return res, err
	}

	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "compare", trace.SpanID(ctx))
	phase := opts.Timer.Begin("compare")
	res.Pairs = compare.Documents(res.Left.Document, res.Right.Document)
	note := fmt.Sprintf("%d pairs", len(res.Pairs))
	opts.Timer.End(phase, note)
	sp.End(note)
	return res, nil
}
