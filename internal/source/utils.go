package source

import (
	"bytes"
	"path/filepath"
	"slices"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// appendLineIndex appends base+i for every '\n' at data[i].
// Callers keep base+len(data) within uint32.
func appendLineIndex(idx []uint32, data []byte, base uint32) []uint32 {
	for off := 0; ; {
		i := bytes.IndexByte(data[off:], '\n')
		if i < 0 {
			return idx
		}
		off += i
		idx = append(idx, base+uint32(off)) // #nosec G115 -- see above
		off++
	}
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// число переводов строки строго до off = номер строки (0-based)
	line, _ := slices.BinarySearch(lineIdx, off)
	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1} // #nosec G115 -- line <= len(lineIdx)
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
