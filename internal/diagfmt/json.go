package diagfmt

import (
	"encoding/json"
	"io"

	"ember/internal/diag"
	"ember/internal/source"
)

// LocationJSON: байтовый диапазон, а с IncludePositions ещё line/col концов.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic; Code is the "STR1102" form.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root of diagnostics-only JSON. Count is the
// number written, which is below bag.Len() when JSONOpts.Max cuts.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// locator turns spans into LocationJSON under one set of options.
type locator struct {
	fs        *source.FileSet
	mode      source.PathMode
	positions bool
}

func newLocator(fs *source.FileSet, opts JSONOpts) locator {
	return locator{fs: fs, mode: opts.PathMode, positions: opts.IncludePositions}
}

func (l locator) at(span source.Span) LocationJSON {
	loc := LocationJSON{
		File:      formatPath(l.fs.Get(span.File), l.fs, l.mode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if l.positions {
		start, end := l.fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (l locator) diagnostic(d *diag.Diagnostic, withNotes bool) DiagnosticJSON {
	dj := DiagnosticJSON{
		Severity: d.Severity.Label(),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: l.at(d.Primary),
	}
	if withNotes && len(d.Notes) > 0 {
		dj.Notes = make([]NoteJSON, len(d.Notes))
		for i, n := range d.Notes {
			dj.Notes[i] = NoteJSON{Message: n.Msg, Location: l.at(n.Span)}
		}
	}
	return dj
}

// BuildDiagnosticsOutput converts bag in its current order. The slice is
// never nil so an empty bag encodes as [].
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	if bag == nil {
		return out
	}
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	l := newLocator(fs, opts)
	for i := range items {
		out.Diagnostics = append(out.Diagnostics, l.diagnostic(&items[i], opts.IncludeNotes))
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes bag as an indented DiagnosticsOutput.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	return writeIndented(w, BuildDiagnosticsOutput(bag, fs, opts))
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
