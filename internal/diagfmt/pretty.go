package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"asmdiff/internal/diag"
	"asmdiff/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note, loc, caret, dim *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan, color.Bold),
		note:  color.New(color.FgBlue),
		loc:   color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.loc, p.caret, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	  12 |     movl %eax,, %ebx
//	     |               ^
//
// Notes follow in the same shape. The bag is expected to be sorted.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if opts.Max > 0 && i >= opts.Max {
			_, err := fmt.Fprintf(w, "... %d more diagnostics\n", bag.Len()-i)
			return err
		}
		if err := writeOne(w, d, fs, opts, pal); err != nil {
			return err
		}
	}
	return nil
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	var sb strings.Builder
	sb.WriteString(pal.loc.Sprint(location(fs, d.Primary, opts.PathMode)))
	sb.WriteString(": ")
	sb.WriteString(pal.severity(d.Severity).Sprintf("%s %s", d.Severity, d.Code.ID()))
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	sb.WriteByte('\n')
	excerpt(&sb, fs, d.Primary, pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "%s: %s %s\n", pal.loc.Sprint(location(fs, n.Span, opts.PathMode)), pal.note.Sprint("note:"), n.Msg)
			excerpt(&sb, fs, n.Span, pal)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	f := fs.Get(sp.File)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(f.Path, mode), start.Line, start.Col)
}

// excerpt writes the source line of sp with a caret underline. Columns are
// measured in display cells so wide runes and tabs line up.
func excerpt(sb *strings.Builder, fs *source.FileSet, sp source.Span, pal palette) {
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := f.Line(start.Line)
	if line == "" {
		return
	}

	from := min(int(start.Col-1), len(line))
	to := len(line)
	if end.Line == start.Line {
		to = max(from, min(int(end.Col-1), len(line)))
	}

	expanded := strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
	pad := displayWidth(line[:from])
	width := max(1, displayWidth(line[from:to]))

	gutter := fmt.Sprintf("%d", start.Line)
	fmt.Fprintf(sb, " %s %s %s\n", gutter, pal.dim.Sprint("|"), expanded)
	fmt.Fprintf(sb, " %s %s %s%s\n",
		strings.Repeat(" ", len(gutter)), pal.dim.Sprint("|"),
		strings.Repeat(" ", pad), pal.caret.Sprint("^"+strings.Repeat("~", width-1)))
}

func displayWidth(s string) int {
	tabs := strings.Count(s, "\t")
	return runewidth.StringWidth(strings.ReplaceAll(s, "\t", "")) + tabs*tabWidth
}
