package source

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every input of a run and maps spans back to line:col.
// Re-adding a path gives a new FileID; old ids keep their content.
type FileSet struct {
	files   []File
	baseDir string // для PathRelative; пусто значит рабочая директория
}

func NewFileSet() *FileSet {
	return &FileSet{}
}

// NewFileSetWithBase creates a FileSet whose relative paths resolve against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{baseDir: baseDir}
}

// BaseDir is the directory PathRelative is computed against.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

func (fileSet *FileSet) nextID() FileID {
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	return FileID(n)
}

// Add registers content under path and indexes its lines.
// Content over 4 GiB does not fit a Span and panics.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	size, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	id := fileSet.nextID()
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizePath(path),
		Content: content,
		LineIdx: appendLineIndex(make([]uint32, 0, len(content)/32+1), content, 0),
		Size:    size,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	return id
}

// Load reads path, strips a UTF-8 BOM and registers the rest.
// Line endings are kept as is: "\r\n" is meaningful inside literals.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var flags FileFlags
	if rest, ok := bytes.CutPrefix(content, utf8BOM); ok {
		content, flags = rest, FileHadBOM
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual registers in-memory content (tests, generated input).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// AddStream registers a file whose bytes arrive over time (stdin, socket).
// Its content is not retained; Feed extends the line index so spans in
// stream offsets still resolve to line and column.
func (fileSet *FileSet) AddStream(name string) FileID {
	return fileSet.Add(name, nil, FileVirtual|FileStreamed)
}

// Feed records data read from the streamed file id.
func (fileSet *FileSet) Feed(id FileID, data []byte) error {
	f := fileSet.Get(id)
	if f == nil || f.Flags&FileStreamed == 0 {
		return fmt.Errorf("file %d is not a stream", id)
	}
	n, err := safecast.Conv[uint32](len(data))
	if err != nil || f.Size+n < f.Size {
		return fmt.Errorf("stream %s exceeds 4 GiB", f.Path)
	}
	f.LineIdx = appendLineIndex(f.LineIdx, data, f.Size)
	f.Size += n
	return nil
}

// StreamWriter adapts Feed to io.Writer, e.g. for io.TeeReader.
func (fileSet *FileSet) StreamWriter(id FileID) io.Writer {
	return streamWriter{fileSet: fileSet, id: id}
}

type streamWriter struct {
	fileSet *FileSet
	id      FileID
}

func (w streamWriter) Write(p []byte) (int, error) {
	if err := w.fileSet.Feed(w.id, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Get returns the file with id, or nil if it is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

func (fileSet *FileSet) Len() int { return len(fileSet.files) }

// Resolve maps both ends of span to line:col; an unknown file gives 1:1.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{Line: 1, Col: 1}, LineCol{Line: 1, Col: 1}
	}
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}
