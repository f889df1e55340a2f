package diag

import (
	"fmt"
	"io"
	"strings"

	"ember/internal/source"
)

// FormatShort renders one diagnostic as a single line:
// "<sev> <ID> <path>:<line>:<col> <message>". Used by the REPL.
func FormatShort(d *Diagnostic, fs *source.FileSet) string {
	path, line, col := "<unknown>", uint32(1), uint32(1)
	if fs != nil {
		if f := fs.Get(d.Primary.File); f != nil {
			path = strings.TrimPrefix(f.DisplayPath(source.PathAuto, ""), "./")
			start, _ := fs.Resolve(d.Primary)
			line, col = start.Line, start.Col
		}
	}
	return fmt.Sprintf("%s %s %s:%d:%d %s", d.Severity.Label(), d.Code.ID(), path, line, col, sanitizeMessage(d.Message))
}

// FormatShortAll renders every diagnostic of the bag in its current order.
func FormatShortAll(b *Bag, fs *source.FileSet) string {
	if b == nil || b.Len() == 0 {
		return ""
	}
	lines := make([]string, 0, b.Len())
	for i := range b.Items() {
		lines = append(lines, FormatShort(&b.Items()[i], fs))
	}
	return strings.Join(lines, "\n")
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}

// ShortReporter prints every diagnostic at once in the FormatShort form.
// Write errors are dropped: Reporter has no way to return them.
type ShortReporter struct {
	W     io.Writer
	Files *source.FileSet
}

func (r ShortReporter) Report(d Diagnostic) {
	if r.W != nil {
		fmt.Fprintln(r.W, FormatShort(&d, r.Files))
	}
}
