// Package compare decides whether two assembler statements are structurally
// equal. Comparison is a strict positional zip over sibling tokens: there is
// no realignment after a mismatch.
package compare

import (
	"iter"

	"asmdiff/internal/document"
	"asmdiff/internal/token"
)

// Reason explains a Differ verdict.
type Reason uint8

const (
	ReasonNone   Reason = iota
	ReasonText          // a token pair has different text
	ReasonLength        // one statement ran out of tokens first
)

func (r Reason) String() string {
	switch r {
	case ReasonText:
		return "text"
	case ReasonLength:
		return "length"
	default:
		return "none"
	}
}

// Verdict is the outcome of comparing two statements. For a Differ verdict
// Index is the position of the first differing token and Left/Right hold the
// texts found there; the exhausted side of a length mismatch is "".
type Verdict struct {
	Equal  bool
	Reason Reason
	Index  int
	Left   string
	Right  string
}

// Statements compares two sibling-token sequences.
func Statements(a, b []token.Token) Verdict {
	n := min(len(a), len(b))
	for i := range n {
		if a[i].Text != b[i].Text {
			return Verdict{Reason: ReasonText, Index: i, Left: a[i].Text, Right: b[i].Text}
		}
	}
	if len(a) == len(b) {
		return Verdict{Equal: true}
	}
	v := Verdict{Reason: ReasonLength, Index: n}
	if n < len(a) {
		v.Left = a[n].Text
	} else {
		v.Right = b[n].Text
	}
	return v
}

// Pair is one positionally aligned statement pair of two documents.
type Pair struct {
	Index   int
	Left    document.StmtID
	Right   document.StmtID
	Verdict Verdict
}

// Documents pairs the statement sequences of left and right by position and
// compares each pair. Pairing stops at the end of the shorter document.
func Documents(left, right *document.Document) []Pair {
	n := min(left.NumStatements(), right.NumStatements())
	pairs := make([]Pair, 0, n)

	lnext, lstop := iter.Pull(left.Statements())
	defer lstop()
	rnext, rstop := iter.Pull(right.Statements())
	defer rstop()

	for i := range n {
		l, _ := lnext()
		r, _ := rnext()
		pairs = append(pairs, Pair{
			Index:   i,
			Left:    l,
			Right:   r,
			Verdict: Statements(left.StatementTokens(l), right.StatementTokens(r)),
		})
	}
	return pairs
}
