package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/strlit"
	"ember/internal/trace"
)

const (
	defaultChunkSize = 4096
	maxStreamBuffer  = 1 << 30
	maxEmptyReads    = 100
)

// ErrLiteralTooLong is returned when a single literal outgrows the stream buffer.
var ErrLiteralTooLong = errors.New("string literal exceeds stream buffer limit")

// StreamOptions configures a Stream.
type StreamOptions struct {
	ChunkSize int // 0 means 4096
	NFC       bool
	// Reporter receives one diagnostic per failed literal; may be nil.
	Reporter diag.Reporter
	// File is stamped on reported spans.
	File source.FileID
}

// Stream decodes literals from an io.Reader as the text arrives. When the
// scanner needs more input the stream reads another chunk and scans the
// literal again from its opening quote; at io.EOF the cursor turns final.
type Stream struct {
	r       io.Reader
	opts    StreamOptions
	chunk   []byte
	buf     []byte
	src     string // string(buf), rebuilt only after buf changes
	stale   bool
	want    int // next read size; doubles while one literal stays incomplete
	base    uint32 // stream offset of buf[0]
	pos     int    // next unread byte in buf
	eof     bool
	discard bool // drop input up to the next newline
	rescans int
}

// NewStream wraps r.
func NewStream(r io.Reader, opts StreamOptions) *Stream {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = defaultChunkSize
	}
	return &Stream{
		r:    r,
		opts: opts,
		want: opts.ChunkSize,
	}
}

// Offset is the stream offset of the next unread byte.
func (s *Stream) Offset() uint32 {
	return s.base + uint32(s.pos) // #nosec G115 -- buf is capped by maxStreamBuffer
}

// Rescans counts how many times a literal was scanned again after a read.
func (s *Stream) Rescans() int { return s.rescans }

// Next returns the next decoded literal, with spans in stream offsets.
// It returns io.EOF once the input ended and only trivia remained.
// A decode failure comes back as *strlit.Error (offsets in stream
// coordinates); the rest of that line is dropped and Next may be called again.
func (s *Stream) Next(ctx context.Context) (Literal, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Literal{}, err
		}
		s.compact()

		if s.discard {
			if next := skipLine(s.source(), s.pos); next >= 0 {
				s.pos = next
				s.discard = false
				continue
			}
			s.pos = len(s.buf)
			if s.eof {
				s.discard = false
				return Literal{}, io.EOF
			}
			if err := s.fill(); err != nil {
				return Literal{}, err
			}
			continue
		}

		src := s.source()
		next, exhausted := skipTrivia(src, s.pos, s.eof)
		s.pos = next
		if exhausted {
			if s.eof {
				return Literal{}, io.EOF
			}
			// незакрытый комментарий тоже может быть длинным
			s.want = max(s.want, 2*(len(s.buf)-s.pos))
			if err := s.fill(); err != nil {
				return Literal{}, err
			}
			continue
		}

		c := strlit.NewCursor(src).At(uint32(s.pos)) // #nosec G115 -- buf is capped by maxStreamBuffer
		if s.eof {
			c = c.Final()
		}
		out := strlit.ParseStringLiteral(c)
		switch out.Status {
		case strlit.Done:
			s.want = s.opts.ChunkSize
			end := int(out.Rest.Offset())
			lit := Literal{
				Value: normalize(out.Value, s.opts.NFC),
				Span:  source.Span{File: s.opts.File, Start: s.Offset(), End: s.base + uint32(end)}, // #nosec G115
			}
			s.pos = end
			return lit, nil

		case strlit.Incomplete:
			if s.eof {
				return Literal{}, io.ErrUnexpectedEOF
			}
			// длинный литерал: читаем не меньше, чем уже накоплено
			s.want = max(s.want, 2*(len(s.buf)-s.pos))
			s.rescans++
			trace.Point(ctx, trace.ScopeLiteral, "need-more", strconv.Itoa(out.Needed))
			if err := s.fill(); err != nil {
				return Literal{}, err
			}

		default:
			if s.opts.Reporter != nil {
				reportDecodeError(s.opts.Reporter, s.opts.File, s.base, out.Err)
			}
			e := *out.Err
			e.Offset += s.base
			e.End += s.base
			if out.Err.Kind == strlit.KindUnterminatedString {
				s.pos = len(s.buf)
			} else {
				s.pos = int(out.Err.Offset)
				s.discard = true
			}
			trace.Error(ctx, trace.ScopeLiteral, "literal", &e)
			return Literal{}, &e
		}
	}
}

// fill appends at least one byte from the reader, or sets eof.
func (s *Stream) fill() error {
	if s.eof {
		return nil
	}
	if len(s.buf) >= maxStreamBuffer {
		return ErrLiteralTooLong
	}
	size := min(s.want, maxStreamBuffer-len(s.buf))
	if cap(s.chunk) < size {
		s.chunk = make([]byte, size)
	}
	chunk := s.chunk[:size]
	for range maxEmptyReads {
		n, err := s.r.Read(chunk)
		if n > 0 {
			s.buf = append(s.buf, chunk[:n]...)
			s.stale = true
		}
		if errors.Is(err, io.EOF) {
			s.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("read stream: %w", err)
		}
		if n > 0 {
			return nil
		}
	}
	return io.ErrNoProgress
}

// compact drops consumed bytes once they make up half of the buffer.
func (s *Stream) compact() {
	if s.pos == 0 || s.pos < len(s.buf)/2 {
		return
	}
	s.base += uint32(s.pos) // #nosec G115 -- buf is capped by maxStreamBuffer
	n := copy(s.buf, s.buf[s.pos:])
	s.buf = s.buf[:n]
	s.pos = 0
	s.stale = true
}

// source returns the buffer as a string, copying only after it changed.
func (s *Stream) source() string {
	if s.stale {
		s.src = string(s.buf)
		s.stale = false
	}
	return s.src
}
