// Package source holds the assembler inputs of one invocation and maps byte
// offsets back to lines and columns.
package source

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// FileID indexes a File inside its FileSet.
type FileID uint32

// File is one input after normalisation. Token spans index Content
// directly.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Virtual bool // added from memory (tests, fuzzing)
	HadBOM  bool
	CRLF    bool // CRLF line ends were rewritten to LF

	newlines []uint32 // offset of every '\n'
}

// LineCol is a 1-based position.
type LineCol struct {
	Line uint32
	Col  uint32
}

func newFile(id FileID, path string, content []byte) *File {
	f := &File{ID: id, Path: path, Content: content}
	for i, b := range content {
		if b == '\n' {
			f.newlines = append(f.newlines, offset(i))
		}
	}
	return f
}

// NumLines counts lines; a trailing newline does not open a new one.
func (f *File) NumLines() int {
	n := len(f.newlines)
	if len(f.Content) > 0 && f.Content[len(f.Content)-1] != '\n' {
		n++
	}
	return n
}

// Position converts a byte offset.
func (f *File) Position(off uint32) LineCol {
	// число переводов строки строго левее off
	before, _ := slices.BinarySearch(f.newlines, off)
	lineStart := uint32(0)
	if before > 0 {
		lineStart = f.newlines[before-1] + 1
	}
	return LineCol{Line: offset(before) + 1, Col: off - lineStart + 1}
}

// Line returns line n without its newline, or "" when n is out of range.
func (f *File) Line(n uint32) string {
	if n == 0 || int(n) > len(f.newlines)+1 {
		return ""
	}
	start := uint32(0)
	if n > 1 {
		start = f.newlines[n-2] + 1
	}
	end := offset(len(f.Content))
	if int(n) <= len(f.newlines) {
		end = f.newlines[n-1]
	}
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// offset converts an int into a file offset; inputs beyond 4 GiB are not
// supported.
func offset(i int) uint32 {
	off, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("source offset overflow: %w", err))
	}
	return off
}
