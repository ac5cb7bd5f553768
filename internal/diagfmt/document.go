package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"asmdiff/internal/document"
	"asmdiff/internal/token"
)

// StatementText joins the sibling tokens of id the way an assembler listing
// would: one space between words, none before a comma.
func StatementText(doc *document.Document, id document.StmtID) string {
	var sb strings.Builder
	for i, tok := range doc.StatementTokens(id) {
		if i > 0 && tok.Kind != token.Comma {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Source())
	}
	return sb.String()
}

// StatementLine returns the source line of the first token of id.
func StatementLine(doc *document.Document, id document.StmtID) uint32 {
	st := doc.Statement(id)
	if tok := doc.Token(st.First()); tok != nil {
		return tok.Line
	}
	return 0
}

// writeStatement prints "(kind)text" for every sibling token; a non-empty
// prefix also gets the line number.
func writeStatement(bw *bufio.Writer, doc *document.Document, id document.StmtID, prefix string, withLine bool) {
	toks := doc.StatementTokens(id)
	if len(toks) == 0 {
		return
	}
	bw.WriteString(prefix)
	if withLine {
		fmt.Fprintf(bw, "(l%d)", toks[0].Line)
	}
	for _, tok := range toks {
		fmt.Fprintf(bw, "(%s)%s", tok.Kind, tok.Text)
	}
	bw.WriteByte('\n')
}

// FormatStatements prints every statement in document order.
func FormatStatements(w io.Writer, doc *document.Document) error {
	bw := bufio.NewWriter(w)
	for id := range doc.Statements() {
		writeStatement(bw, doc, id, "", false)
	}
	return bw.Flush()
}

// FormatSymbols prints every symbol with its filled attribute slots and
// body, then every section with its body. Both lists follow mutation order.
func FormatSymbols(w io.Writer, doc *document.Document) error {
	bw := bufio.NewWriter(w)
	for sym := range doc.Symbols() {
		fmt.Fprintf(bw, "symbol: name = %s, type = %s\n", sym.Name, sym.Kind)
		if sym.Section != nil {
			fmt.Fprintf(bw, "symbol: section = %s\n", sym.Section.Name)
		}
		for _, a := range document.Attrs() {
			if id := sym.Attr(a); id.IsValid() {
				writeStatement(bw, doc, id, "symbol: "+a.String()+" = ", true)
			}
		}
		for _, id := range sym.Body {
			writeStatement(bw, doc, id, "", true)
		}
	}
	for sec := range doc.Sections() {
		fmt.Fprintf(bw, "section: name = %s, flags = %s\n", sec.Name, sec.Flags)
		for _, id := range sec.Body {
			writeStatement(bw, doc, id, "", true)
		}
	}
	return bw.Flush()
}

// FilterOpts configures FormatDebugFilter.
type FilterOpts struct {
	CommentPrefix      string // default "# "
	DebugSectionPrefix string // default ".debug"
}

// FormatDebugFilter reconstructs the source from the token stream and
// comments out every line that starts with an ignored debug directive
// (.cfi_*, .loc, .file) or that lies inside a debug section. .ident lines
// are kept.
func FormatDebugFilter(w io.Writer, doc *document.Document, opts FilterOpts) error {
	if opts.CommentPrefix == "" {
		opts.CommentPrefix = "# "
	}
	if opts.DebugSectionPrefix == "" {
		opts.DebugSectionPrefix = ".debug"
	}

	bw := bufio.NewWriter(w)
	toks := doc.Tokens()
	// TODO: follow .previous and .popsection too; the debug state currently
	// survives them.
	lineStart, inDebug := true, false
	for i, tok := range toks {
		switch tok.Kind {
		case token.DirSection, token.DirPushSection:
			inDebug = strings.HasPrefix(nextName(toks[i+1:]), opts.DebugSectionPrefix)
		case token.DirText, token.DirData, token.DirBss:
			inDebug = false
		}
		if lineStart && tok.Kind != token.DirIdent && (tok.Kind.IsDebugIgnored() || inDebug) {
			bw.WriteString(opts.CommentPrefix)
		}
		bw.WriteString(tok.Leading)
		bw.WriteString(tok.Source())
		lineStart = tok.Kind == token.Newline
	}
	return bw.Flush()
}

// nextName returns the unquoted text of the first word or string in toks
// on the same line.
func nextName(toks []token.Token) string {
	for _, tok := range toks {
		switch tok.Kind {
		case token.Newline, token.Separator:
			return ""
		case token.Ident, token.String:
			return tok.Unquoted()
		}
	}
	return ""
}
