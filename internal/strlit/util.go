package strlit

import (
	"strings"
	"unicode/utf8"
)

// expectPrefix checks that the input starts with p. A shorter buffer that is
// itself a prefix of p asks for more input unless it is final.
func expectPrefix[T any](c Cursor, p string) (Outcome[T], bool) {
	if c.HasPrefix(p) {
		return Outcome[T]{}, true
	}
	rest := c.Rest()
	if len(rest) < len(p) && strings.HasPrefix(p, rest) && !c.IsFinal() {
		return needMore[T](len(p) - len(rest)), false
	}
	err := newError(KindInvalidEscape, c.Offset(), c.Advance(len(p)).Offset())
	if r, size := c.PeekRune(); size > 0 {
		err.Rune = r
	}
	return fail[T](err), false
}

// escapeError builds an escape failure for the backslash at start, with at
// pointing at the character that follows it.
func escapeError(kind ErrorKind, start uint32, at Cursor) *Error {
	r, size := at.PeekRune()
	err := newError(kind, start, at.Advance(max(size, 1)).Offset())
	if size > 0 {
		err.Rune = r
	}
	return err
}

// runeShortfall estimates how many bytes are missing to complete the rune at
// the cursor.
func runeShortfall(c Cursor) int {
	rest := c.Rest()
	if len(rest) == 0 {
		return 1
	}
	want := 4
	switch b := rest[0]; {
	case b&0xE0 == 0xC0:
		want = 2
	case b&0xF0 == 0xE0:
		want = 3
	}
	if want > len(rest) {
		return want - len(rest)
	}
	return 1
}

// invalidUTF8At returns the index of the first byte of s that does not start
// a valid UTF-8 sequence, or -1.
func invalidUTF8At(s string) int {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
