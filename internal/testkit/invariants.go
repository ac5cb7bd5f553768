// Package testkit holds checks shared by tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"asmdiff/internal/document"
	"asmdiff/internal/source"
)

// CheckDocument verifies the structural invariants of a built document:
//  1. every token span lies inside sf and tokens appear in input order
//  2. statement token lists hold valid non-trivia tokens
//  3. symbol and section bodies agree with the statements' back references,
//     and no statement sits in two bodies of the same kind
//  4. after finalization the by-name index returns every symbol of the
//     mutation-order list
func CheckDocument(doc *document.Document, sf *source.File) error {
	if doc == nil || sf == nil {
		return fmt.Errorf("nil document or file")
	}
	if err := checkTokens(doc, sf); err != nil {
		return err
	}
	if err := checkStatements(doc); err != nil {
		return err
	}
	if err := checkBodies(doc); err != nil {
		return err
	}
	return checkIndex(doc)
}

func checkTokens(doc *document.Document, sf *source.File) error {
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prevEnd uint32
	for i, tok := range doc.Tokens() {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span in file %d, want %d", i+1, sp.File, sf.ID)
		}
		if sp.Start > sp.End || sp.End > size {
			return fmt.Errorf("token %d: span %v outside content of %d bytes", i+1, sp, size)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous token ending at %d", i+1, sp, prevEnd)
		}
		prevEnd = sp.End
	}
	return nil
}

func checkStatements(doc *document.Document) error {
	for id := range doc.Statements() {
		st := doc.Statement(id)
		if len(st.Tokens) == 0 {
			return fmt.Errorf("statement %d: no tokens", id)
		}
		for _, tid := range st.Tokens {
			tok := doc.Token(tid)
			if tok == nil {
				return fmt.Errorf("statement %d: dangling token %d", id, tid)
			}
			if tok.Kind.IsTrivia() {
				return fmt.Errorf("statement %d: trivia token %s in sibling group", id, tok.Kind)
			}
		}
	}
	return nil
}

func checkBodies(doc *document.Document) error {
	inSymbol := make(map[document.StmtID]*document.Symbol)
	for sym := range doc.Symbols() {
		for _, id := range sym.Body {
			if other, dup := inSymbol[id]; dup {
				return fmt.Errorf("statement %d in bodies of %q and %q", id, other.Name, sym.Name)
			}
			inSymbol[id] = sym
			if st := doc.Statement(id); st == nil || st.Symbol != sym {
				return fmt.Errorf("statement %d in body of %q but points elsewhere", id, sym.Name)
			}
		}
	}
	inSection := make(map[document.StmtID]*document.Section)
	for sec := range doc.Sections() {
		for _, id := range sec.Body {
			if other, dup := inSection[id]; dup {
				return fmt.Errorf("statement %d in sections %q and %q", id, other.Name, sec.Name)
			}
			inSection[id] = sec
			if st := doc.Statement(id); st == nil || st.Section != sec {
				return fmt.Errorf("statement %d in section %q but points elsewhere", id, sec.Name)
			}
		}
	}
	for id := range doc.Statements() {
		st := doc.Statement(id)
		if st.Symbol != nil && inSymbol[id] != st.Symbol {
			return fmt.Errorf("statement %d claims symbol %q without being in its body", id, st.Symbol.Name)
		}
		if st.Section != nil && inSection[id] != st.Section {
			return fmt.Errorf("statement %d claims section %q without being in its body", id, st.Section.Name)
		}
	}
	return nil
}

func checkIndex(doc *document.Document) error {
	if !doc.Finalized() {
		return nil
	}
	seen := 0
	for sym := range doc.Symbols() {
		got, ok := doc.Find(sym.Name)
		if !ok || got != sym {
			return fmt.Errorf("symbol %q: index lookup disagrees with mutation order", sym.Name)
		}
		seen++
	}
	if seen != doc.NumSymbols() {
		return fmt.Errorf("mutation order lists %d symbols, registry has %d", seen, doc.NumSymbols())
	}
	byName := 0
	for range doc.SymbolsByName() {
		byName++
	}
	if byName != seen {
		return fmt.Errorf("index holds %d symbols, want %d", byName, seen)
	}
	return nil
}
