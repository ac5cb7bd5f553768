package document

// SymbolKind classifies a symbol the way ELF symbol types do.
type SymbolKind uint8

const (
	SymUnknown SymbolKind = iota
	SymFunction
	SymObject
	SymSection
)

func (k SymbolKind) String() string {
	switch k {
	case SymFunction:
		return "function"
	case SymObject:
		return "object"
	case SymSection:
		return "section"
	default:
		return "unknown"
	}
}

// Attr names one attribute slot of a symbol.
type Attr uint8

const (
	AttrType Attr = iota
	AttrLabel
	AttrVisibility // .globl / .local
	AttrWeak
	AttrHidden
	AttrProtected
	AttrInternal
	AttrSize
	AttrComm
	AttrSet

	attrCount
)

var attrNames = [attrCount]string{
	AttrType:       "type",
	AttrLabel:      "label",
	AttrVisibility: "globl_or_local",
	AttrWeak:       "weak",
	AttrHidden:     "hidden",
	AttrProtected:  "protected",
	AttrInternal:   "internal",
	AttrSize:       "size",
	AttrComm:       "comm",
	AttrSet:        "set",
}

func (a Attr) String() string {
	if a < attrCount {
		return attrNames[a]
	}
	return "invalid"
}

// Attrs lists every attribute slot in display order.
func Attrs() []Attr {
	out := make([]Attr, 0, attrCount)
	for a := range attrCount {
		out = append(out, a)
	}
	return out
}

// Symbol is a named entity of the document. Each attribute slot keeps the
// last statement written to it.
type Symbol struct {
	Name    string
	Kind    SymbolKind
	Section *Section // section current when the symbol was first referenced
	Body    []StmtID

	attrs [attrCount]StmtID
}

// Attr returns the statement held by slot a.
func (s *Symbol) Attr(a Attr) StmtID {
	if s == nil || a >= attrCount {
		return NoStmtID
	}
	return s.attrs[a]
}

func (s *Symbol) setAttr(a Attr, stmt StmtID) {
	s.attrs[a] = stmt
}
