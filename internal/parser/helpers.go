package parser

import (
	"asmdiff/internal/diag"
	"asmdiff/internal/source"
	"asmdiff/internal/token"
)

// next returns the following token, adding it to the document.
func (p *Parser) next() ref {
	if p.pending != nil {
		r := *p.pending
		p.pending = nil
		return r
	}
	tok := p.lx.Next()
	if tok.Kind == token.EOF {
		return ref{tok: tok}
	}
	if !tok.Kind.IsTrivia() {
		p.last = tok.Span
	}
	return ref{tok: tok, id: p.doc.AddToken(tok)}
}

// skipTrivia returns the first token that can start a statement.
func (p *Parser) skipTrivia() (ref, bool) {
	for {
		r := p.next()
		if r.tok.Kind == token.EOF {
			return r, false
		}
		if !r.tok.Kind.IsTrivia() {
			return r, true
		}
	}
}

// operands consumes the rest of the statement and returns its non-trivia
// tokens. The terminating newline or separator is consumed too.
func (p *Parser) operands() []ref {
	var out []ref
	for {
		r := p.next()
		switch r.tok.Kind {
		case token.EOF, token.Newline, token.Separator:
			return out
		case token.Comment:
			continue
		}
		out = append(out, r)
	}
}

// splitOperands groups operand tokens by top-level commas.
func splitOperands(refs []ref) [][]ref {
	if len(refs) == 0 {
		return nil
	}
	groups := [][]ref{nil}
	for _, r := range refs {
		if r.tok.Kind == token.Comma {
			groups = append(groups, nil)
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], r)
	}
	return groups
}

// isName reports whether r can name a symbol or a section.
func isName(r ref) bool {
	return r.tok.Kind == token.Ident || r.tok.Kind == token.String
}

// endSpan points just past the last token read, for "expected X" errors.
func (p *Parser) endSpan() source.Span {
	return source.Span{File: p.last.File, Start: p.last.End, End: p.last.End}
}

func (p *Parser) errorAt(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevError, sp, msg, nil)
}

func (p *Parser) warnAt(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevWarning, sp, msg, nil)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	if sev == diag.SevError {
		p.errors++
		if p.opts.MaxErrors != 0 && p.errors > p.opts.MaxErrors {
			return
		}
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, sev, sp, msg, notes)
	}
}

// lexReporter counts lexer errors against the parse.
type lexReporter struct{ p *Parser }

func (r lexReporter) Report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) {
	r.p.report(code, sev, sp, msg, notes)
}
