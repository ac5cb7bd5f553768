package token_test

import (
	"testing"

	"asmdiff/internal/token"
)

func TestTriviaKinds(t *testing.T) {
	trivia := []token.Kind{token.Newline, token.Comment, token.Separator}
	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Fatalf("%v should be trivia", k)
		}
	}
	non := []token.Kind{token.Ident, token.Label, token.Comma, token.DirType, token.String}
	for _, k := range non {
		if k.IsTrivia() {
			t.Fatalf("%v must NOT be trivia", k)
		}
	}
}

func TestLookupDirective(t *testing.T) {
	cases := []struct {
		word string
		want token.Kind
		ok   bool
	}{
		{".section", token.DirSection, true},
		{".globl", token.DirGlobl, true},
		{".global", token.DirGlobl, true},
		{".lcomm", token.DirComm, true},
		{".equ", token.DirSet, true},
		{".cfi_startproc", token.DirCFI, true},
		{".loc", token.DirLoc, true},
		{".p2align", token.DirOther, true},
		{"movl", token.Invalid, false},
		{".", token.Invalid, false},
	}
	for _, tc := range cases {
		got, ok := token.LookupDirective(tc.word)
		if got != tc.want || ok != tc.ok {
			t.Errorf("LookupDirective(%q) = %v, %v; want %v, %v", tc.word, got, ok, tc.want, tc.ok)
		}
		if ok && !got.IsDirective() {
			t.Errorf("%v should be a directive kind", got)
		}
	}
}

func TestKindString(t *testing.T) {
	if token.LocalLabel.String() != "local-label" {
		t.Fatalf("unexpected name %q", token.LocalLabel.String())
	}
	if token.Kind(250).String() != "unknown" {
		t.Fatalf("out of range kind must be unknown")
	}
}

func TestTokenSource(t *testing.T) {
	lbl := token.Token{Kind: token.Label, Text: "foo"}
	if lbl.Source() != "foo:" {
		t.Fatalf("label source = %q", lbl.Source())
	}
	str := token.Token{Kind: token.String, Text: `".foo"`}
	if str.Unquoted() != ".foo" {
		t.Fatalf("unquoted = %q", str.Unquoted())
	}
	id := token.Token{Kind: token.Ident, Text: ".foo"}
	if id.Unquoted() != ".foo" {
		t.Fatalf("ident unquoted = %q", id.Unquoted())
	}
}
