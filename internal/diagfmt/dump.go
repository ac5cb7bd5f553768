package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"asmdiff/internal/document"
)

// DocumentSummary is the serialisable view of a parsed document used by
// `asmdiff dump --format json|msgpack`. Statement references are 1-based
// indices into Statements.
type DocumentSummary struct {
	Path       string          `json:"path" msgpack:"path"`
	Statements []StatementJSON `json:"statements" msgpack:"statements"`
	Symbols    []SymbolJSON    `json:"symbols" msgpack:"symbols"`
	Sections   []SectionJSON   `json:"sections" msgpack:"sections"`
	Counts     map[string]int  `json:"counts" msgpack:"counts"`
	Current    string          `json:"current_section,omitempty" msgpack:"current_section,omitempty"`
}

type TokenJSON struct {
	Kind string `json:"kind" msgpack:"kind"`
	Text string `json:"text" msgpack:"text"`
}

type StatementJSON struct {
	Index  int         `json:"index" msgpack:"index"`
	Line   uint32      `json:"line" msgpack:"line"`
	Text   string      `json:"text" msgpack:"text"`
	Tokens []TokenJSON `json:"tokens" msgpack:"tokens"`
}

type SymbolJSON struct {
	Name    string         `json:"name" msgpack:"name"`
	Kind    string         `json:"kind" msgpack:"kind"`
	Section string         `json:"section,omitempty" msgpack:"section,omitempty"`
	Attrs   map[string]int `json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	Body    []int          `json:"body" msgpack:"body"`
}

type SectionJSON struct {
	Name       string `json:"name" msgpack:"name"`
	Executable bool   `json:"executable" msgpack:"executable"`
	Body       []int  `json:"body" msgpack:"body"`
}

// BuildSummary collects doc into a DocumentSummary. Symbols are listed by
// name when the document is finalized, in mutation order otherwise.
func BuildSummary(path string, doc *document.Document) DocumentSummary {
	s := DocumentSummary{
		Path:       path,
		Statements: make([]StatementJSON, 0, doc.NumStatements()),
		Symbols:    make([]SymbolJSON, 0, doc.NumSymbols()),
		Sections:   make([]SectionJSON, 0, doc.NumSections()),
		Counts: map[string]int{
			"tokens":     doc.NumTokens(),
			"statements": doc.NumStatements(),
			"symbols":    doc.NumSymbols(),
			"sections":   doc.NumSections(),
		},
	}
	if cur := doc.CurrentSection(); cur != nil {
		s.Current = cur.Name
	}

	for id := range doc.Statements() {
		st := StatementJSON{Index: int(id), Line: StatementLine(doc, id), Text: StatementText(doc, id)}
		for _, tok := range doc.StatementTokens(id) {
			st.Tokens = append(st.Tokens, TokenJSON{Kind: tok.Kind.String(), Text: tok.Text})
		}
		s.Statements = append(s.Statements, st)
	}

	symbols := doc.Symbols()
	if doc.Finalized() {
		symbols = doc.SymbolsByName()
	}
	for sym := range symbols {
		sj := SymbolJSON{Name: sym.Name, Kind: sym.Kind.String(), Body: indices(sym.Body)}
		if sym.Section != nil {
			sj.Section = sym.Section.Name
		}
		for _, a := range document.Attrs() {
			if id := sym.Attr(a); id.IsValid() {
				if sj.Attrs == nil {
					sj.Attrs = make(map[string]int)
				}
				sj.Attrs[a.String()] = int(id)
			}
		}
		s.Symbols = append(s.Symbols, sj)
	}

	for sec := range doc.Sections() {
		s.Sections = append(s.Sections, SectionJSON{
			Name:       sec.Name,
			Executable: sec.Executable(),
			Body:       indices(sec.Body),
		})
	}
	return s
}

func indices(ids []document.StmtID) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out
}

// WriteSummariesJSON writes the summaries as one indented JSON array.
func WriteSummariesJSON(w io.Writer, sums []DocumentSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sums)
}

// WriteSummariesMsgpack writes the summaries as one msgpack array.
func WriteSummariesMsgpack(w io.Writer, sums []DocumentSummary) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	return enc.Encode(sums)
}
