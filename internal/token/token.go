package token

import (
	"asmdiff/internal/source"
)

// Token represents a single assembler token with its location.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading string
	Line    uint32
}

// Source returns the token as it appeared in the input, minus leading space.
func (t Token) Source() string {
	if t.Kind.IsLabel() {
		return t.Text + ":"
	}
	return t.Text
}

// Unquoted returns Text without surrounding double quotes, if any.
func (t Token) Unquoted() string {
	if t.Kind == String && len(t.Text) >= 2 && t.Text[0] == '"' && t.Text[len(t.Text)-1] == '"' {
		return t.Text[1 : len(t.Text)-1]
	}
	return t.Text
}
