package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ember/internal/diag"
	"ember/internal/source"
)

type palette struct {
	err, warn, info, code, path, marker, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		code:   color.New(color.Faint),
		path:   color.New(color.Bold),
		marker: color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.marker, p.note} {
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

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := newPalette(opts.Color)
	for i := range bag.Items() {
		d := &bag.Items()[i]
		if err := prettyOne(w, d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) error {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		p.path.Sprint(formatPath(f, fs, opts.PathMode)), start.Line, start.Col,
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()), d.Message); err != nil {
		return err
	}
	if f != nil {
		line := f.Line(start.Line)
		if opts.Width > 0 {
			line = runewidth.Truncate(line, int(opts.Width), "…")
		}
		length := 1
		switch {
		case end.Line == start.Line && end.Col > start.Col:
			length = int(end.Col - start.Col)
		case end.Line > start.Line:
			// многострочный span подчёркиваем до конца первой строки
			length = max(len(line)-int(start.Col)+1, 1)
		}
		if _, err := fmt.Fprintf(w, "  %s\n  %s\n", line, p.marker.Sprint(markerLine(line, int(start.Col), length))); err != nil {
			return err
		}
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		ns, _ := fs.Resolve(n.Span)
		if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
			formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg); err != nil {
			return err
		}
	}
	return nil
}

// markerLine builds "   ^~~" aligned under a 1-based byte column.
// Tabs are copied so that the marker lines up in any terminal; wide runes
// take two cells.
func markerLine(line string, col, length int) string {
	var sb strings.Builder
	spanWidth := 0
	for i, r := range line {
		switch {
		case i < col-1:
			if r == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
			}
		case i < col-1+length:
			spanWidth += max(runewidth.RuneWidth(r), 1)
		}
	}
	if pad := col - 1 - len(line); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	if spanWidth == 0 {
		spanWidth = 1
	}
	return sb.String() + "^" + strings.Repeat("~", spanWidth-1)
}
