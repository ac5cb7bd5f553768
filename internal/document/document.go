package document

import (
	"errors"
	"fmt"
	"iter"

	"fortio.org/safecast"
	"github.com/google/btree"

	"asmdiff/internal/lru"
	"asmdiff/internal/token"
)

// ErrFinalized is returned by Finalize on a document that was already finalized.
var ErrFinalized = errors.New("document already finalized")

// Hints provide optional capacity suggestions for the arenas.
type Hints struct{ Tokens, Statements uint }

const symbolTreeDegree = 16

// Document owns the token stream, the statements and both registries, plus
// the transient build state of the single driver constructing it.
type Document struct {
	hints      Hints
	tokens     *Tokens
	statements *Statements

	symbols  *lru.Map[string, *Symbol]
	byName   *btree.BTreeG[*Symbol]
	sections *lru.Map[string, *Section]

	section     *Section
	prevSection *Section
	current     *Symbol
	staged      []TokenID
	finalized   bool
}

// New creates an empty document whose current section is DefaultSection.
func New(h Hints) *Document {
	d := &Document{hints: h}
	d.Reset()
	return d
}

// Reset drops every token, statement, symbol and section.
func (d *Document) Reset() {
	tokCap, err := safecast.Conv[uint32](d.hints.Tokens)
	if err != nil {
		panic(fmt.Errorf("token capacity overflow: %w", err))
	}
	stmtCap, err := safecast.Conv[uint32](d.hints.Statements)
	if err != nil {
		panic(fmt.Errorf("statement capacity overflow: %w", err))
	}
	d.tokens = newTokens(tokCap)
	d.statements = newStatements(stmtCap)
	d.symbols = lru.New[string, *Symbol]()
	d.byName = nil
	d.sections = lru.New[string, *Section]()
	d.prevSection = nil
	d.current = nil
	d.staged = d.staged[:0]
	d.finalized = false
	d.section = d.GetOrCreateSection(DefaultSection)
}

// Token returns the token for id, or nil.
func (d *Document) Token(id TokenID) *token.Token { return d.tokens.Get(id) }

// Tokens returns the whole-document token stream in input order.
func (d *Document) Tokens() []token.Token { return d.tokens.Data() }

// NumTokens reports the length of the token stream.
func (d *Document) NumTokens() int { return d.tokens.Len() }

// Statement returns the statement for id, or nil.
func (d *Document) Statement(id StmtID) *Statement { return d.statements.Get(id) }

// NumStatements reports how many statements were built.
func (d *Document) NumStatements() int { return d.statements.Len() }

// Statements iterates statement IDs in document order.
func (d *Document) Statements() iter.Seq[StmtID] {
	return func(yield func(StmtID) bool) {
		for id := StmtID(1); int(id) <= d.statements.Len(); id++ {
			if !yield(id) {
				return
			}
		}
	}
}

// StatementTokens returns copies of the sibling tokens of statement id.
func (d *Document) StatementTokens(id StmtID) []token.Token {
	st := d.statements.Get(id)
	if st == nil {
		return nil
	}
	out := make([]token.Token, 0, len(st.Tokens))
	for _, tid := range st.Tokens {
		out = append(out, *d.tokens.Get(tid))
	}
	return out
}

// CurrentSection returns the section statements are attributed to; it may be
// nil after PopSection runs off the end of the section order.
func (d *Document) CurrentSection() *Section { return d.section }

// PreviousSection returns the section SwapToPrevious would return to.
func (d *Document) PreviousSection() *Section { return d.prevSection }

// CurrentSymbol returns the symbol in attribute-attachment scope, or nil.
func (d *Document) CurrentSymbol() *Symbol { return d.current }

// Finalized reports whether Finalize has run.
func (d *Document) Finalized() bool { return d.finalized }

// Finalize builds the by-name lookup tree from the mutation-order list.
// It must run once, after the last builder call.
func (d *Document) Finalize() error {
	if d.finalized {
		return ErrFinalized
	}
	d.byName = btree.NewG(symbolTreeDegree, func(a, b *Symbol) bool {
		return a.Name < b.Name
	})
	for sym := range d.symbols.Values() {
		d.byName.ReplaceOrInsert(sym)
	}
	d.staged = nil
	d.finalized = true
	return nil
}
