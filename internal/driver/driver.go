// Package driver runs the asmdiff pipelines: load a file, parse it into a
// document, and compare two documents.
package driver

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"fortio.org/safecast"

	"asmdiff/internal/diag"
	"asmdiff/internal/document"
	"asmdiff/internal/observ"
	"asmdiff/internal/parser"
	"asmdiff/internal/source"
	"asmdiff/internal/trace"
)

var (
	// ErrSyntax reports that an input was rejected; its diagnostics are in
	// the result's Bag.
	ErrSyntax = errors.New("syntax errors")
	// ErrArity reports a diff invocation without exactly two inputs.
	ErrArity = errors.New("diff needs exactly two inputs")
)

// Options shared by every pipeline.
type Options struct {
	MaxDiagnostics int
	Timer          *observ.Timer // optional
}

type ParseResult struct {
	Path     string
	FileSet  *source.FileSet
	File     *source.File
	Document *document.Document // nil when the input was rejected
	Bag      *diag.Bag
}

// Parse loads path and builds its document. A load failure returns the
// underlying error (wrapping *fs.PathError) and no result. A syntax failure
// returns the result, so the caller can print its diagnostics, together
// with an error wrapping ErrSyntax.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	tracer := trace.FromContext(ctx)
	sp := trace.Begin(tracer, trace.ScopePass, "parse", trace.SpanID(ctx)).WithExtra("file", path)
	ctx = trace.WithSpan(ctx, sp)
	phase := opts.Timer.Begin("parse " + filepath.Base(path))

	res, err := parse(ctx, path, opts)

	note := "ok"
	if err != nil {
		note = err.Error()
	}
	opts.Timer.End(phase, note)
	sp.End(note)
	return res, err
}

func parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load input: %w", err)
	}
	file := fs.Get(fileID)

	maxErrors, err := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	hint, err := safecast.Conv[uint](len(file.Content) / 4)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	doc := document.New(document.Hints{Tokens: hint, Statements: hint / 4})
	pr := parser.ParseFile(ctx, file, doc, parser.Options{
		Reporter:  diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})
	bag.Sort()

	result := &ParseResult{Path: path, FileSet: fs, File: file, Bag: bag}
	switch {
	case pr.Err != nil:
		return result, fmt.Errorf("%s: %w", path, pr.Err)
	case pr.Document == nil:
		return result, fmt.Errorf("%s: %w (%d)", path, ErrSyntax, pr.Errors)
	}
	result.Document = pr.Document
	return result, nil
}
