package driver

import (
	"ember/internal/observ"
)

// DefaultExt is the extension collected when a directory is decoded.
const DefaultExt = ".str"

// Options controls how files are decoded.
type Options struct {
	// MaxDiagnostics bounds each file's Bag; 0 means unbounded.
	MaxDiagnostics int
	// Jobs limits parallel file decodes; 0 means GOMAXPROCS.
	Jobs int
	// NFC normalises every decoded value to Unicode NFC.
	NFC bool
	// Cache, when set, stores and reuses per-file results.
	Cache *DiskCache
	// Progress receives per-file events; may be nil.
	Progress ProgressSink
	// Timer records load and scan phases; may be nil.
	Timer *observ.Timer
	// Ext selects files inside directory arguments (DefaultExt when empty).
	Ext string
}

func (o Options) ext() string {
	if o.Ext == "" {
		return DefaultExt
	}
	return o.Ext
}
