package lexer_test

import (
	"testing"

	"asmdiff/internal/diag"
	"asmdiff/internal/lexer"
	"asmdiff/internal/source"
	"asmdiff/internal/token"
)

type lexed struct {
	kind token.Kind
	text string
}

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.s", []byte(src)))
	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks, bag
		}
		toks = append(toks, tok)
		if len(toks) > 1000 {
			t.Fatalf("lexer does not terminate")
		}
	}
}

func expectTokens(t *testing.T, src string, want []lexed) {
	t.Helper()
	toks, bag := lexAll(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i].Kind != want[i].kind || toks[i].Text != want[i].text {
			t.Errorf("token %d = (%v)%q, want (%v)%q", i, toks[i].Kind, toks[i].Text, want[i].kind, want[i].text)
		}
	}
}

func TestInstructionOperands(t *testing.T) {
	expectTokens(t, "\tmovl %eax, 8(%rsp,%rax,4)\n", []lexed{
		{token.Ident, "movl"},
		{token.Ident, "%eax"},
		{token.Comma, ","},
		{token.Ident, "8(%rsp,%rax,4)"},
		{token.Newline, "\n"},
	})
}

func TestLabelsAndDirectives(t *testing.T) {
	expectTokens(t, "foo: .L2: ret\n.globl foo\n", []lexed{
		{token.Label, "foo"},
		{token.LocalLabel, ".L2"},
		{token.Ident, "ret"},
		{token.Newline, "\n"},
		{token.DirGlobl, ".globl"},
		{token.Ident, "foo"},
		{token.Newline, "\n"},
	})
}

func TestDirectiveOnlyAtStatementStart(t *testing.T) {
	expectTokens(t, ".section .text.unlikely,\"ax\",@progbits\n", []lexed{
		{token.DirSection, ".section"},
		{token.Ident, ".text.unlikely"},
		{token.Comma, ","},
		{token.String, "\"ax\""},
		{token.Comma, ","},
		{token.Ident, "@progbits"},
		{token.Newline, "\n"},
	})
}

func TestColonInsideOperand(t *testing.T) {
	expectTokens(t, "movq %fs:40, %rax", []lexed{
		{token.Ident, "movq"},
		{token.Ident, "%fs:40"},
		{token.Comma, ","},
		{token.Ident, "%rax"},
	})
}

func TestCommentsAndSeparators(t *testing.T) {
	expectTokens(t, "nop; ret # done\n/* a\nb */ .text\n", []lexed{
		{token.Ident, "nop"},
		{token.Separator, ";"},
		{token.Ident, "ret"},
		{token.Comment, "# done"},
		{token.Newline, "\n"},
		{token.Comment, "/* a\nb */"},
		{token.DirText, ".text"},
		{token.Newline, "\n"},
	})
}

func TestLeadingAndLineNumbers(t *testing.T) {
	toks, _ := lexAll(t, "a:\n\t  ret\n/* x\n */ nop\n")
	if toks[2].Text != "ret" || toks[2].Leading != "\t  " || toks[2].Line != 2 {
		t.Fatalf("ret token = %+v", toks[2])
	}
	last := toks[len(toks)-2]
	if last.Text != "nop" || last.Line != 4 {
		t.Fatalf("nop token = %+v", last)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks, bag := lexAll(t, ".ascii \"abc\n")
	if !bag.HasErrors() {
		t.Fatalf("expected a diagnostic")
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("code = %v", bag.Items()[0].Code)
	}
	if toks[1].Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", toks[1].Kind)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("p.s", []byte("ret")))
	lx := lexer.New(file, lexer.Options{})
	if lx.Peek().Text != "ret" || lx.Next().Text != "ret" {
		t.Fatalf("peek consumed the token")
	}
	if lx.Next().Kind != token.EOF || lx.Next().Kind != token.EOF {
		t.Fatalf("EOF must be sticky")
	}
}
