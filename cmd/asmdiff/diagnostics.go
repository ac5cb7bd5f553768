package main

import (
	"os"

	"asmdiff/internal/diag"
	"asmdiff/internal/diagfmt"
	"asmdiff/internal/source"
)

// printDiagnostics renders bag to stderr. Warnings are dropped under --quiet;
// errors never are.
func printDiagnostics(bag *diag.Bag, fs *source.FileSet, s settings) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	if s.quiet && !bag.HasErrors() {
		return
	}
	opts := diagfmt.PrettyOpts{
		Color:     s.useColor(os.Stderr),
		ShowNotes: true,
		Max:       s.maxDiagnostics,
	}
	// stderr недоступен - печатать больше некуда
	_ = diagfmt.Pretty(os.Stderr, bag, fs, opts)
}
