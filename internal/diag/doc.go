// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: Severity, a numeric Code with a stable
// string ID, a short Message, the Primary span and optional Notes. Producers
// emit through a Reporter (usually BagReporter feeding a Bag) and never
// format anything themselves; rendering lives in internal/diagfmt.
//
// A document whose Bag holds an error is rejected as a whole: the parser does
// not attempt recovery and the driver never exposes a partial document.
package diag
