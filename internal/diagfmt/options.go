// Package diagfmt renders everything asmdiff prints: diagnostics, token
// listings, document dumps, the debug filter and diff reports.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	PathModeAuto PathMode = iota // as given on the command line
	PathModeAbsolute
	PathModeRelative // relative to the working directory
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	Max       int // 0 prints every diagnostic
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col
	PathMode         PathMode
	Max              int
	IncludeNotes     bool
}
