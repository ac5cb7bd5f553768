package lexer

import (
	"testing"

	"asmdiff/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.s", []byte(content)))
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	c := newCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if c.eof() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := c.peek(); got != want {
			t.Fatalf("peek = %q, want %q", got, want)
		}
		if got := c.bump(); got != want {
			t.Fatalf("bump = %q, want %q", got, want)
		}
	}
	if !c.eof() {
		t.Fatalf("expected EOF at end")
	}
	if c.peek() != 0 || c.bump() != 0 {
		t.Fatalf("expected zero bytes at EOF")
	}
}

func TestCursorAt(t *testing.T) {
	c := newCursor(createFile("/*x"))
	if !c.at("/*") || c.at("*/") {
		t.Fatalf("at mismatch at start")
	}
	c.bump()
	c.bump()
	if c.at("x*") {
		t.Fatalf("at must not read past the end")
	}
	if !c.at("x") {
		t.Fatalf("at must match the last byte")
	}
}

func TestSkipWhileAndSpan(t *testing.T) {
	c := newCursor(createFile("  \tmovl"))
	m := c.mark()
	c.skipWhile(isSpace)
	sp := c.spanFrom(m)
	if sp.Start != 0 || sp.End != 3 {
		t.Fatalf("spanFrom = %+v", sp)
	}
	c.skipWhile(func(byte) bool { return true })
	if !c.eof() {
		t.Fatalf("skipWhile must stop at EOF")
	}
}
