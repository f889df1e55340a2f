package source

// FileID is the index of a file in its FileSet.
type FileID uint32

// FileFlags describe where a file came from.
type FileFlags uint8

const (
	FileVirtual  FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM                         // a UTF-8 BOM was stripped on Load
	FileStreamed                       // fed by Feed: only LineIdx and Size grow
)

// File is one registered input. Content is nil for streamed files.
type File struct {
	ID      FileID
	Path    string // slash-separated, cleaned
	Content []byte
	LineIdx []uint32 // offsets of '\n'
	Size    uint32   // bytes seen; len(Content) unless FileStreamed
	Hash    [32]byte // sha256 of Content, keys the decode cache
	Flags   FileFlags
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Line returns line n (1-based) without its terminator, "" past the end.
// A trailing '\r' of a CRLF line is dropped too.
func (f *File) Line(n uint32) string {
	if n == 0 || int(n) > len(f.LineIdx)+1 {
		return ""
	}
	start, end := uint32(0), uint32(len(f.Content)) // #nosec G115 -- Add checks the length
	if n > 1 {
		start = f.LineIdx[n-2] + 1
	}
	if int(n) <= len(f.LineIdx) {
		end = f.LineIdx[n-1]
	}
	if start >= end || int(end) > len(f.Content) {
		return ""
	}
	line := f.Content[start:end]
	if line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return string(line)
}
