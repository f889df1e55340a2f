package source

import "fmt"

// Span is a half-open byte range [Start, End) of one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Rebase переносит span, посчитанный от начала буфера, в координаты файла.
func (s Span) Rebase(base uint32) Span {
	s.Start += base
	s.End += base
	return s
}

// Head is the one-byte span at Start, where a literal opens.
func (s Span) Head() Span {
	return Span{File: s.File, Start: s.Start, End: s.Start + 1}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
