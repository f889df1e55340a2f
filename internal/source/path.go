package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathMode is how diagnostics print file paths (--path-mode).
type PathMode uint8

// PathAuto keeps short or relative paths and prints long absolute ones as
// a basename. PathRelative is relative to the FileSet base directory.
const (
	PathAuto PathMode = iota
	PathAbsolute
	PathRelative
	PathBasename
)

var pathModeNames = [...]string{"auto", "absolute", "relative", "basename"}

func (m PathMode) String() string {
	if int(m) < len(pathModeNames) {
		return pathModeNames[m]
	}
	return "unknown"
}

// ParsePathMode reads a --path-mode value; empty means auto.
func ParsePathMode(s string) (PathMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return PathAuto, nil
	}
	for m, n := range pathModeNames {
		if n == name {
			return PathMode(m), nil // #nosec G115 -- four modes
		}
	}
	return PathAuto, fmt.Errorf("invalid path mode: %q (expected: auto|absolute|relative|basename)", s)
}

// autoPathLimit: абсолютные пути длиннее сокращаются до basename.
const autoPathLimit = 40

// DisplayPath renders f.Path for mode. baseDir is only used by PathRelative;
// empty means the working directory.
func (f *File) DisplayPath(mode PathMode, baseDir string) string {
	switch mode {
	case PathAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathRelative:
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		if rel, err := filepath.Rel(baseDir, f.Path); err == nil {
			return filepath.ToSlash(rel)
		}
	case PathBasename:
		return filepath.Base(f.Path)
	case PathAuto:
		if len(f.Path) >= autoPathLimit && filepath.IsAbs(f.Path) {
			return filepath.Base(f.Path)
		}
	}
	return f.Path
}
