package document

import (
	"iter"
	"strings"
)

// localLabelSigil starts compiler-generated labels such as .L3 or .LFB0.
const localLabelSigil = "."

// functionType is the .type operand, minus its sigil, that marks code.
const functionType = "function"

// GetOrCreate returns the symbol called name, creating it in the current
// section if needed, and moves it to the front of the mutation order.
func (d *Document) GetOrCreate(name string) *Symbol {
	sym, _ := d.symbols.GetOrCreate(name, func() *Symbol {
		return &Symbol{Name: name, Section: d.section}
	})
	return sym
}

// SetCurrent puts name in attribute-attachment scope; "" clears the scope.
func (d *Document) SetCurrent(name string) *Symbol {
	if name == "" {
		d.current = nil
		return nil
	}
	d.current = d.GetOrCreate(name)
	return d.current
}

// SetType records a .type statement. The symbol becomes a function when the
// type operand reads "function" after its sigil (@function, %function),
// otherwise an object.
func (d *Document) SetType(name string, stmt StmtID, typeTok TokenID) *Symbol {
	sym := d.GetOrCreate(name)
	sym.setAttr(AttrType, stmt)
	sym.Kind = SymObject
	if tok := d.tokens.Get(typeTok); tok != nil && len(tok.Text) > 1 && tok.Text[1:] == functionType {
		sym.Kind = SymFunction
	}
	d.appendBody(sym, stmt)
	return sym
}

// SetLabel records a label definition and makes its symbol current.
//
// A dot-prefixed label in a section without the executable flag does not
// open a symbol: the statement joins the current symbol's body instead and
// nil is returned.
func (d *Document) SetLabel(name string, stmt StmtID) *Symbol {
	if strings.HasPrefix(name, localLabelSigil) && !d.section.Executable() {
		d.AddToSymbol(stmt)
		return nil
	}
	sym := d.SetCurrent(name)
	sym.setAttr(AttrLabel, stmt)
	d.appendBody(sym, stmt)
	return sym
}

// SetAttr records stmt in slot a of symbol name and appends it to the body.
// AttrType and AttrLabel have dedicated setters with extra rules; routing
// them here only fills the slot.
func (d *Document) SetAttr(a Attr, name string, stmt StmtID) *Symbol {
	sym := d.GetOrCreate(name)
	if a < attrCount {
		sym.setAttr(a, stmt)
	}
	d.appendBody(sym, stmt)
	return sym
}

// AddToSymbol appends stmt to the current symbol's body, if any.
func (d *Document) AddToSymbol(stmt StmtID) {
	if d.current == nil {
		return
	}
	d.appendBody(d.current, stmt)
}

// appendBody adds stmt to sym's body unless stmt already belongs to a body.
func (d *Document) appendBody(sym *Symbol, stmt StmtID) {
	st := d.statements.Get(stmt)
	if st == nil || st.Symbol != nil {
		return
	}
	st.Symbol = sym
	sym.Body = append(sym.Body, stmt)
}

// Find looks name up in the tree built by Finalize. Before finalization it
// always reports no match.
func (d *Document) Find(name string) (*Symbol, bool) {
	if d.byName == nil {
		return nil, false
	}
	return d.byName.Get(&Symbol{Name: name})
}

// NumSymbols reports how many distinct symbols exist.
func (d *Document) NumSymbols() int { return d.symbols.Len() }

// Symbols iterates symbols most recently touched first.
func (d *Document) Symbols() iter.Seq[*Symbol] {
	return d.symbols.Values()
}

// SymbolsByName iterates symbols in name order; empty before Finalize.
func (d *Document) SymbolsByName() iter.Seq[*Symbol] {
	return func(yield func(*Symbol) bool) {
		if d.byName == nil {
			return
		}
		d.byName.Ascend(func(sym *Symbol) bool {
			return yield(sym)
		})
	}
}
