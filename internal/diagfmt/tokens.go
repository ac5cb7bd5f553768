package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"asmdiff/internal/source"
	"asmdiff/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Line    uint32      `json:"line"`
	Span    source.Span `json:"span"`
	Leading string      `json:"leading,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%4d: %-16s %-24q at %d:%d-%d:%d", i+1, tok.Kind, tok.Text,
			start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
		if tok.Leading != "" {
			if _, err := fmt.Fprintf(w, " (leading %q)", tok.Leading); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Line:    tok.Line,
			Span:    tok.Span,
			Leading: tok.Leading,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
