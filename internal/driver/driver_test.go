package driver

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"asmdiff/internal/compare"
	"asmdiff/internal/diag"
	"asmdiff/internal/observ"
	"asmdiff/internal/token"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const leftSrc = ".text\n.globl foo\n.type foo, @function\nfoo:\n\tmovl $1, %eax\n\tret\n"

func TestParseSuccess(t *testing.T) {
	path := writeFile(t, "a.s", leftSrc)
	timer := observ.NewTimer()

	res, err := Parse(context.Background(), path, Options{Timer: timer})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.Document == nil || !res.Document.Finalized() {
		t.Fatalf("expected a finalized document")
	}
	if _, ok := res.Document.Find("foo"); !ok {
		t.Fatalf("symbol foo not found")
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors in bag")
	}
	if report := timer.Report(); len(report.Phases) != 1 || !strings.HasPrefix(report.Phases[0].Name, "parse ") {
		t.Fatalf("unexpected timer phases: %+v", report.Phases)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(context.Background(), filepath.Join(t.TempDir(), "nope.s"), Options{})
	if err == nil {
		t.Fatalf("expected load error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestParseSyntaxError(t *testing.T) {
	path := writeFile(t, "bad.s", ".section\n")

	res, err := Parse(context.Background(), path, Options{})
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
	if res == nil || res.Document != nil {
		t.Fatalf("expected a result without document")
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("expected diagnostics in bag")
	}
	if res.Bag.Items()[0].Code != diag.SynExpectSectionName {
		t.Fatalf("unexpected code %s", res.Bag.Items()[0].Code.ID())
	}
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, "t.s", "nop # c\n")

	res, err := Tokenize(path, 0)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatalf("token stream must end with EOF")
	}
	if res.Tokens[0].Text != "nop" {
		t.Fatalf("first token = %q", res.Tokens[0].Text)
	}
}

func TestDiffEqualInputs(t *testing.T) {
	a := writeFile(t, "a.s", leftSrc)
	b := writeFile(t, "b.s", leftSrc)

	res, err := Diff(context.Background(), []string{a, b}, Options{})
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if len(res.Pairs) != res.LeftCount() || res.LeftCount() != res.RightCount() {
		t.Fatalf("pairs=%d left=%d right=%d", len(res.Pairs), res.LeftCount(), res.RightCount())
	}
	for _, p := range res.Pairs {
		if !p.Verdict.Equal {
			t.Fatalf("pair %d differs: %+v", p.Index, p.Verdict)
		}
	}
	if !res.View().Equal() {
		t.Fatalf("view should report equal documents")
	}
}

func TestDiffReportsMismatch(t *testing.T) {
	a := writeFile(t, "a.s", leftSrc)
	b := writeFile(t, "b.s", strings.Replace(leftSrc, "$1", "$2", 1))

	res, err := Diff(context.Background(), []string{a, b}, Options{})
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	var differ []compare.Pair
	for _, p := range res.Pairs {
		if !p.Verdict.Equal {
			differ = append(differ, p)
		}
	}
	if len(differ) != 1 {
		t.Fatalf("expected one differing pair, got %d", len(differ))
	}
	v := differ[0].Verdict
	if v.Reason != compare.ReasonText || v.Left != "$1" || v.Right != "$2" {
		t.Fatalf("unexpected verdict %+v", v)
	}
	if res.View().CountMismatch() {
		t.Fatalf("statement counts should match")
	}
}

func TestDiffArity(t *testing.T) {
	_, err := Diff(context.Background(), []string{"one.s"}, Options{})
	if !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
}

func TestDiffKeepsPartialResults(t *testing.T) {
	a := writeFile(t, "a.s", leftSrc)
	b := writeFile(t, "b.s", ".type foo\n")

	res, err := Diff(context.Background(), []string{a, b}, Options{})
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
	if res == nil || res.Right == nil || !res.Right.Bag.HasErrors() {
		t.Fatalf("right side diagnostics should be kept")
	}
	if res.Pairs != nil {
		t.Fatalf("no pairs expected after a failed parse")
	}
}
