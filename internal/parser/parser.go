// Package parser drives a document build from assembler source: it pulls
// tokens from the lexer, finds statement boundaries and calls the document
// builder for every label and directive it recognises.
package parser

import (
	"context"
	"fmt"

	"asmdiff/internal/diag"
	"asmdiff/internal/document"
	"asmdiff/internal/lexer"
	"asmdiff/internal/source"
	"asmdiff/internal/token"
	"asmdiff/internal/trace"
)

type Options struct {
	Reporter  diag.Reporter
	MaxErrors uint // 0 = no limit on forwarded errors
}

// Result describes one parse. Document is nil whenever an error was
// reported: a rejected input never exposes a partial document.
type Result struct {
	Document *document.Document
	Errors   uint
	Err      error // build protocol failure, not a syntax error
}

// Parser: состояние разбора одного файла.
type Parser struct {
	lx      *lexer.Lexer
	doc     *document.Document
	file    *source.File
	opts    Options
	errors  uint
	pending *ref // lookahead handed back by a label statement
	last    source.Span

	tracer   trace.Tracer
	span     uint64
	noSecWrn bool
}

// ref pairs a token with its ID in the document stream. EOF is never added
// to the document and has no ID.
type ref struct {
	tok token.Token
	id  document.TokenID
}

// ParseFile builds doc from file and finalizes it. doc must be fresh.
func ParseFile(ctx context.Context, file *source.File, doc *document.Document, opts Options) Result {
	tracer := trace.FromContext(ctx)
	sp := trace.Begin(tracer, trace.ScopeDocument, "parse", trace.SpanID(ctx)).WithExtra("file", file.Path)

	p := &Parser{
		doc:    doc,
		file:   file,
		opts:   opts,
		tracer: tracer,
		span:   sp.ID(),
	}
	p.lx = lexer.New(file, lexer.Options{Reporter: lexReporter{p}})

	for p.parseStatement() {
	}

	if p.errors > 0 {
		sp.End(fmt.Sprintf("%d errors", p.errors))
		return Result{Errors: p.errors}
	}
	if err := doc.Finalize(); err != nil {
		sp.End(err.Error())
		return Result{Err: err}
	}
	sp.WithExtra("statements", fmt.Sprint(doc.NumStatements())).
		WithExtra("symbols", fmt.Sprint(doc.NumSymbols())).
		End("")
	return Result{Document: doc}
}

// parseStatement parses one statement; false at end of input.
func (p *Parser) parseStatement() bool {
	first, ok := p.skipTrivia()
	if !ok {
		return false
	}
	switch kind := first.tok.Kind; {
	case kind.IsLabel():
		p.parseLabel(first)
	case kind.IsDirective():
		p.parseDirective(first)
	case kind == token.Ident:
		p.parseInstruction(first)
	default:
		p.errorAt(diag.SynUnexpectedToken, first.tok.Span,
			fmt.Sprintf("unexpected %s at start of statement", first.tok.Kind))
		p.operands()
		p.doc.NewStatement(first.id, document.NoTokenID)
	}
	return true
}

// parseLabel builds a statement holding just the label. The token after the
// label is read before the statement closes, so when it opens another
// statement on the same line it goes back as lookahead.
func (p *Parser) parseLabel(label ref) {
	look := p.next()
	for look.tok.Kind == token.Comment {
		look = p.next()
	}
	lookID := document.NoTokenID
	if look.id.IsValid() && !look.tok.Kind.IsTrivia() {
		lookID = look.id
		p.pending = &look
	}

	stmt := p.doc.NewStatement(label.id, lookID)
	p.doc.SetLabel(label.tok.Text, stmt)
	p.addToSection(stmt, label)
}

func (p *Parser) parseInstruction(first ref) {
	p.operands()
	stmt := p.doc.NewStatement(first.id, document.NoTokenID)
	p.doc.AddToSymbol(stmt)
	p.addToSection(stmt, first)
}

func (p *Parser) addToSection(stmt document.StmtID, at ref) {
	if p.doc.CurrentSection() == nil {
		if !p.noSecWrn {
			p.warnAt(diag.DocNoSection, at.tok.Span, "statement is outside of any section")
			p.noSecWrn = true
		}
		return
	}
	p.doc.AddToSection(stmt)
}
