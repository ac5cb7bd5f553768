package fuzztests

import (
	"strings"
	"testing"

	"asmdiff/internal/diag"
	"asmdiff/internal/lexer"
	"asmdiff/internal/source"
	"asmdiff/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// FuzzLexerRoundTrip checks that leading trivia plus token source text
// reproduce the input exactly.
func FuzzLexerRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.s", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		var sb strings.Builder
		for range len(file.Content) + 2 {
			tok := lx.Next()
			sb.WriteString(tok.Leading)
			sb.WriteString(tok.Source())
			if tok.Kind == token.EOF {
				if got := sb.String(); got != string(file.Content) {
					t.Fatalf("round trip mismatch:\n got %q\nwant %q", got, file.Content)
				}
				return
			}
		}
		t.Fatalf("lexer did not reach EOF")
	})
}
