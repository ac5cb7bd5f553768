package testkit_test

import (
	"context"
	"strings"
	"testing"

	"asmdiff/internal/document"
	"asmdiff/internal/parser"
	"asmdiff/internal/source"
	"asmdiff/internal/testkit"
	"asmdiff/internal/token"
)

func TestCheckDocumentOnParsedInput(t *testing.T) {
	inputs := map[string]string{
		"function": ".text\n.globl foo\n.type foo, @function\nfoo:\n\tret\n",
		"data":     ".data\ntable: .long 1, 2\n.LC0: .string \"x\"\n.section .rodata\n.previous\n",
		"mixed":    "main: pushq %rbp; movq %rsp, %rbp\n.cfi_def_cfa 6, 16\n\tpopq %rbp # done\n\tret\n",
		"sections": ".pushsection .init\nnop\n.popsection\n.section \".foo\",\"ax\"\nf: ret\n",
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual(name+".s", []byte(input)))
			res := parser.ParseFile(context.Background(), file, document.New(document.Hints{}), parser.Options{})
			if res.Document == nil {
				t.Fatalf("parse failed with %d errors", res.Errors)
			}
			if err := testkit.CheckDocument(res.Document, file); err != nil {
				t.Fatalf("invariant violated: %v", err)
			}
		})
	}
}

func TestCheckDocumentCatchesForeignSpan(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.s", []byte("nop\n")))
	doc := document.New(document.Hints{})
	id := doc.AddToken(token.Token{Kind: token.Ident, Text: "nop", Span: source.Span{File: file.ID, Start: 0, End: 99}})
	doc.NewStatement(id, document.NoTokenID)

	err := testkit.CheckDocument(doc, file)
	if err == nil || !strings.Contains(err.Error(), "outside content") {
		t.Fatalf("expected span error, got %v", err)
	}
}
