package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"asmdiff/internal/source"
)

// cursor walks the bytes of one file. Offsets are file offsets, so spans
// built from marks index File.Content directly.
type cursor struct {
	src  []byte
	file source.FileID
	off  uint32
	end  uint32
}

func newCursor(f *source.File) cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file %s too large: %w", f.Path, err))
	}
	return cursor{src: f.Content, file: f.ID, end: end}
}

func (c *cursor) eof() bool { return c.off >= c.end }

// peek returns the current byte, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// at reports whether the remaining input starts with s.
func (c *cursor) at(s string) bool {
	return c.end-c.off >= uint32(len(s)) && string(c.src[c.off:c.off+uint32(len(s))]) == s
}

// bump advances by one byte and returns the byte it stepped over.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// skipWhile advances past every byte accepted by keep.
func (c *cursor) skipWhile(keep func(byte) bool) {
	for !c.eof() && keep(c.src[c.off]) {
		c.off++
	}
}

func (c *cursor) mark() uint32 { return c.off }

func (c *cursor) spanFrom(m uint32) source.Span {
	return source.Span{File: c.file, Start: m, End: c.off}
}
