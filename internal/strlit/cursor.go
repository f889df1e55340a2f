package strlit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Cursor is an immutable view over a source buffer: the whole buffer, the
// current byte offset, and whether the caller has declared that no more input
// will arrive. Every method returns a new Cursor; the buffer is never mutated.
type Cursor struct {
	src string
	off uint32
	eof bool
}

// NewCursor returns a cursor at the start of src. The buffer is treated as a
// live prefix of a longer stream.
func NewCursor(src string) Cursor {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("len source overflow: %w", err))
	}
	return Cursor{src: src}
}

// NewFinalCursor returns a cursor at the start of src for a buffer that is
// known to be complete.
func NewFinalCursor(src string) Cursor {
	return NewCursor(src).Final()
}

// Final marks the buffer as complete.
func (c Cursor) Final() Cursor {
	c.eof = true
	return c
}

// IsFinal reports whether the caller declared end of input.
func (c Cursor) IsFinal() bool { return c.eof }

// At returns a cursor over the same buffer positioned at off.
func (c Cursor) At(off uint32) Cursor {
	if int(off) > len(c.src) {
		off = c.limit()
	}
	c.off = off
	return c
}

// Offset is the absolute byte offset of the cursor in the buffer.
func (c Cursor) Offset() uint32 { return c.off }

// Rest returns the unconsumed part of the buffer.
func (c Cursor) Rest() string { return c.src[c.off:] }

// Len is the number of unconsumed bytes.
func (c Cursor) Len() int { return len(c.src) - int(c.off) }

// EOF reports whether the buffer is exhausted. It says nothing about whether
// more input may still arrive; see IsFinal.
func (c Cursor) EOF() bool { return c.off >= c.limit() }

// Peek returns the current byte, or 0 at the end of the buffer.
func (c Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.off]
}

// Peek2 returns the current and the next byte if both are available.
func (c Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.src[c.off], c.src[c.off+1], true
}

// PeekRune decodes the rune at the cursor. size is 0 when the buffer ends
// inside a multi-byte sequence; for invalid bytes r is utf8.RuneError and
// size is 1.
func (c Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.src[c.off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	rest := c.Rest()
	if !utf8.FullRuneInString(rest) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(rest)
}

// HasPrefix reports whether the unconsumed input starts with s.
func (c Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.Rest(), s)
}

// Advance moves the cursor n bytes forward, stopping at the end of the buffer.
func (c Cursor) Advance(n int) Cursor {
	if n <= 0 {
		return c
	}
	if n > c.Len() {
		n = c.Len()
	}
	un, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("advance overflow: %w", err))
	}
	c.off += un
	return c
}

// Eat consumes b if it is the next byte.
func (c Cursor) Eat(b byte) (Cursor, bool) {
	if !c.EOF() && c.src[c.off] == b {
		return c.Advance(1), true
	}
	return c, false
}

func (c Cursor) limit() uint32 {
	// длина уже проверена в NewCursor
	return uint32(len(c.src)) // #nosec G115 -- checked by NewCursor
}

// skipSpace consumes horizontal whitespace (space and tab).
func (c Cursor) skipSpace() Cursor {
	n := 0
	rest := c.Rest()
	for n < len(rest) && (rest[n] == ' ' || rest[n] == '\t') {
		n++
	}
	return c.Advance(n)
}
