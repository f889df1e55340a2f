package diagfmt

import (
	"ember/internal/source"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  source.PathMode
	Width     uint8 // максимальная ширина строки, 0 - не ограничено
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         source.PathMode
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}

func formatPath(f *source.File, fs *source.FileSet, mode source.PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	base := ""
	if mode == source.PathRelative {
		base = fs.BaseDir()
	}
	return f.DisplayPath(mode, base)
}
