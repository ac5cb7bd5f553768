package document

import (
	"slices"

	"asmdiff/internal/token"
)

// AddToken appends tok to the whole-document stream and links it.
func (d *Document) AddToken(tok token.Token) TokenID {
	id := d.tokens.New(tok)
	d.Link(id)
	return id
}

// Link stages token id as part of the statement under construction.
// Newline, comment and separator tokens stay out of sibling groups.
func (d *Document) Link(id TokenID) {
	tok := d.tokens.Get(id)
	if tok == nil || tok.Kind.IsTrivia() {
		return
	}
	d.staged = append(d.staged, id)
}

// NewStatement turns the staged tokens into a statement led by first.
//
// lookahead, when valid, is a token the driver already read past the end of
// this statement. It is taken out of this statement and restaged as the
// leading token of the next one.
func (d *Document) NewStatement(first, lookahead TokenID) StmtID {
	staged := d.staged
	if lookahead.IsValid() {
		if i := slices.Index(staged, lookahead); i >= 0 {
			staged = slices.Delete(staged, i, i+1)
		}
	}

	toks := make([]TokenID, 0, len(staged))
	if i := slices.Index(staged, first); i > 0 {
		toks = append(toks, staged[i:]...)
		toks = append(toks, staged[:i]...)
	} else {
		toks = append(toks, staged...)
	}

	id := d.statements.New(Statement{Tokens: toks})

	d.staged = d.staged[:0]
	if lookahead.IsValid() {
		d.Link(lookahead)
	}
	return id
}

// Staged returns the tokens linked since the last statement boundary.
func (d *Document) Staged() []TokenID {
	return slices.Clone(d.staged)
}
