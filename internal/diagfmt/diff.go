package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"asmdiff/internal/compare"
	"asmdiff/internal/document"
)

// DiffSide is one input of a comparison.
type DiffSide struct {
	Path string
	Doc  *document.Document
}

// DiffView is everything a diff report shows.
type DiffView struct {
	Left, Right DiffSide
	Pairs       []compare.Pair
}

// Differ counts the pairs that are not equal.
func (v DiffView) Differ() int {
	n := 0
	for _, p := range v.Pairs {
		if !p.Verdict.Equal {
			n++
		}
	}
	return n
}

// CountMismatch reports whether the documents have different statement
// counts, which pairing alone hides.
func (v DiffView) CountMismatch() bool {
	return v.Left.Doc.NumStatements() != v.Right.Doc.NumStatements()
}

// Equal reports whether every pair matched and both sides are the same length.
func (v DiffView) Equal() bool {
	return v.Differ() == 0 && !v.CountMismatch()
}

// DiffOpts configures the pretty diff report.
type DiffOpts struct {
	Color    bool
	OnlyDiff bool // hide equal pairs
	Width    int  // column width of the left statement, 0 = fit
	Summary  bool // draw the summary box
}

const maxColumn = 48

// FormatDiffPretty prints one row per statement pair:
//
//	=    3  movl %eax, %ebx          movl %eax, %ebx
//	!    4  movl %eax, %ebx          movl %eax, %ecx    token 3: %ebx ≠ %ecx
func FormatDiffPretty(w io.Writer, v DiffView, opts DiffOpts) error {
	same := color.New(color.Faint)
	diff := color.New(color.FgRed, color.Bold)
	why := color.New(color.FgYellow)
	for _, c := range []*color.Color{same, diff, why} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	rows := make([][2]string, len(v.Pairs))
	width := opts.Width
	for i, p := range v.Pairs {
		rows[i] = [2]string{StatementText(v.Left.Doc, p.Left), StatementText(v.Right.Doc, p.Right)}
		if opts.Width == 0 {
			width = max(width, min(maxColumn, runewidth.StringWidth(rows[i][0])))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", v.Left.Path, v.Right.Path)
	for i, p := range v.Pairs {
		if opts.OnlyDiff && p.Verdict.Equal {
			continue
		}
		left := runewidth.FillRight(runewidth.Truncate(rows[i][0], width, "…"), width)
		if p.Verdict.Equal {
			sb.WriteString(same.Sprintf("= %5d  %s  %s", p.Index+1, left, rows[i][1]))
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(diff.Sprintf("! %5d", p.Index+1))
		fmt.Fprintf(&sb, "  %s  %s  ", left, rows[i][1])
		sb.WriteString(why.Sprint(verdictReason(p.Verdict)))
		sb.WriteByte('\n')
	}
	if v.CountMismatch() {
		sb.WriteString(diff.Sprintf("statement counts differ: %d vs %d",
			v.Left.Doc.NumStatements(), v.Right.Doc.NumStatements()))
		sb.WriteByte('\n')
	}
	if opts.Summary {
		sb.WriteString(summaryBox(v, opts.Color))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func verdictReason(vd compare.Verdict) string {
	switch vd.Reason {
	case compare.ReasonText:
		return fmt.Sprintf("token %d: %s ≠ %s", vd.Index, vd.Left, vd.Right)
	case compare.ReasonLength:
		if vd.Left != "" {
			return fmt.Sprintf("left has extra tokens from %d (%s)", vd.Index, vd.Left)
		}
		return fmt.Sprintf("right has extra tokens from %d (%s)", vd.Index, vd.Right)
	default:
		return ""
	}
}

func summaryBox(v DiffView, colored bool) string {
	status := "equal"
	if !v.Equal() {
		status = "different"
	}
	body := fmt.Sprintf("%s\ncompared %d pairs, %d differ\nstatements: %d left, %d right",
		status, len(v.Pairs), v.Differ(), v.Left.Doc.NumStatements(), v.Right.Doc.NumStatements())

	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if colored {
		c := lipgloss.Color("2")
		if !v.Equal() {
			c = lipgloss.Color("1")
		}
		style = style.BorderForeground(c)
	}
	return style.Render(body)
}

type DiffPairJSON struct {
	Index     int    `json:"index"`
	Equal     bool   `json:"equal"`
	Reason    string `json:"reason,omitempty"`
	Token     int    `json:"token,omitempty"`
	LeftLine  uint32 `json:"left_line"`
	RightLine uint32 `json:"right_line"`
	Left      string `json:"left"`
	Right     string `json:"right"`
	LeftTok   string `json:"left_token,omitempty"`
	RightTok  string `json:"right_token,omitempty"`
}

type DiffJSON struct {
	Left       string         `json:"left"`
	Right      string         `json:"right"`
	Equal      bool           `json:"equal"`
	LeftCount  int            `json:"left_statements"`
	RightCount int            `json:"right_statements"`
	Differ     int            `json:"differ"`
	Pairs      []DiffPairJSON `json:"pairs"`
}

// BuildDiffJSON converts v without serialising it. onlyDiff drops equal
// pairs.
func BuildDiffJSON(v DiffView, onlyDiff bool) DiffJSON {
	out := DiffJSON{
		Left:       v.Left.Path,
		Right:      v.Right.Path,
		Equal:      v.Equal(),
		LeftCount:  v.Left.Doc.NumStatements(),
		RightCount: v.Right.Doc.NumStatements(),
		Differ:     v.Differ(),
		Pairs:      make([]DiffPairJSON, 0, len(v.Pairs)),
	}
	for _, p := range v.Pairs {
		if onlyDiff && p.Verdict.Equal {
			continue
		}
		pj := DiffPairJSON{
			Index:     p.Index,
			Equal:     p.Verdict.Equal,
			LeftLine:  StatementLine(v.Left.Doc, p.Left),
			RightLine: StatementLine(v.Right.Doc, p.Right),
			Left:      StatementText(v.Left.Doc, p.Left),
			Right:     StatementText(v.Right.Doc, p.Right),
		}
		if !p.Verdict.Equal {
			pj.Reason = p.Verdict.Reason.String()
			pj.Token = p.Verdict.Index
			pj.LeftTok = p.Verdict.Left
			pj.RightTok = p.Verdict.Right
		}
		out.Pairs = append(out.Pairs, pj)
	}
	return out
}

// FormatDiffJSON writes v as one indented JSON document.
func FormatDiffJSON(w io.Writer, v DiffView, onlyDiff bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiffJSON(v, onlyDiff))
}
