package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"ember/internal/diag"
	"ember/internal/driver"
	"ember/internal/source"
)

// LiteralJSON is one decoded literal in JSON output.
type LiteralJSON struct {
	Value    string       `json:"value"`
	Location LocationJSON `json:"location"`
}

// FileJSON groups the literals of one input file.
type FileJSON struct {
	Path     string        `json:"path"`
	Cached   bool          `json:"cached,omitempty"`
	Literals []LiteralJSON `json:"literals"`
}

// DecodeOutput is the root of `ember decode --format json`.
type DecodeOutput struct {
	Files       []FileJSON        `json:"files"`
	Diagnostics DiagnosticsOutput `json:"diagnostics"`
}

// FormatLiteralsPretty prints one line per literal:
// <path>:<line>:<col>: "<quoted value>"
func FormatLiteralsPretty(w io.Writer, results []*driver.Result, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, res := range results {
		if res == nil {
			continue
		}
		f := fs.Get(res.FileID)
		for _, lit := range res.Literals {
			start, _ := fs.Resolve(lit.Span)
			if _, err := fmt.Fprintf(w, "%s:%d:%d: %s\n",
				p.path.Sprint(formatPath(f, fs, opts.PathMode)), start.Line, start.Col,
				p.marker.Sprint(strconv.Quote(lit.Value))); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildDecodeOutput assembles literals and diagnostics into one document.
func BuildDecodeOutput(results []*driver.Result, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DecodeOutput {
	out := DecodeOutput{Files: make([]FileJSON, 0, len(results))}
	l := newLocator(fs, opts)
	for _, res := range results {
		if res == nil {
			continue
		}
		fj := FileJSON{
			Path:     formatPath(fs.Get(res.FileID), fs, opts.PathMode),
			Cached:   res.Cached,
			Literals: make([]LiteralJSON, 0, len(res.Literals)),
		}
		for _, lit := range res.Literals {
			fj.Literals = append(fj.Literals, LiteralJSON{
				Value:    lit.Value,
				Location: l.at(lit.Span),
			})
		}
		out.Files = append(out.Files, fj)
	}
	out.Diagnostics = BuildDiagnosticsOutput(bag, fs, opts)
	return out
}

// FormatLiteralsJSON writes BuildDecodeOutput as indented JSON.
func FormatLiteralsJSON(w io.Writer, results []*driver.Result, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	return writeIndented(w, BuildDecodeOutput(results, bag, fs, opts))
}
