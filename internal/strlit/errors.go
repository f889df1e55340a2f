package strlit

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrorKind classifies decode failures.
type ErrorKind uint8

const (
	// KindNotAString: the input does not start with an opening quote.
	KindNotAString ErrorKind = iota + 1
	// KindInvalidEscape: a backslash not followed by any escape grammar.
	KindInvalidEscape
	// KindUnknownEscape: a mnemonic letter outside the table.
	KindUnknownEscape
	// KindInvalidCodepoint: a hex escape naming a non-scalar value.
	KindInvalidCodepoint
	// KindUnterminatedString: final input ended before the closing quote.
	KindUnterminatedString
	// KindInvalidUTF8: literal text that is not valid UTF-8.
	KindInvalidUTF8
)

// Sentinel errors matched by errors.Is against an *Error of the same kind.
var (
	ErrNotAString         = errors.New("not a string literal")
	ErrInvalidEscape      = errors.New("invalid escape sequence")
	ErrUnknownEscape      = errors.New("unknown escape sequence")
	ErrInvalidCodepoint   = errors.New("invalid code point")
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrInvalidUTF8        = errors.New("invalid UTF-8")
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotAString:
		return "NotAString"
	case KindInvalidEscape:
		return "InvalidEscape"
	case KindUnknownEscape:
		return "UnknownEscape"
	case KindInvalidCodepoint:
		return "InvalidCodepoint"
	case KindUnterminatedString:
		return "UnterminatedString"
	case KindInvalidUTF8:
		return "InvalidUTF8"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindNotAString:
		return ErrNotAString
	case KindInvalidEscape:
		return ErrInvalidEscape
	case KindUnknownEscape:
		return ErrUnknownEscape
	case KindInvalidCodepoint:
		return ErrInvalidCodepoint
	case KindUnterminatedString:
		return ErrUnterminatedString
	case KindInvalidUTF8:
		return ErrInvalidUTF8
	default:
		return nil
	}
}

// Error is a decode failure. Offset and End delimit the offending text as byte
// offsets into the buffer the cursor was created over.
type Error struct {
	Kind   ErrorKind
	Offset uint32
	End    uint32
	// Rune is the character after the backslash for escape errors.
	Rune rune
	// Value is the rejected number for KindInvalidCodepoint.
	Value uint32
}

// Message is the human-readable description without position.
func (e *Error) Message() string {
	switch e.Kind {
	case KindNotAString:
		return `expected '"' to open a string literal`
	case KindInvalidEscape:
		if e.Rune != 0 {
			return "invalid escape sequence " + escapeText(e.Rune)
		}
		return "invalid escape sequence"
	case KindUnknownEscape:
		return "unknown escape sequence " + escapeText(e.Rune)
	case KindInvalidCodepoint:
		return fmt.Sprintf("\\x%X does not name a valid character", e.Value)
	case KindUnterminatedString:
		return "unterminated string literal"
	case KindInvalidUTF8:
		return "invalid UTF-8 in string literal"
	default:
		return "decode error"
	}
}

// escapeText shows a visible rune after its backslash; control and space
// runes are quoted so messages stay on one line.
func escapeText(r rune) string {
	if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
		return `\` + string(r)
	}
	return `\ followed by ` + strconv.QuoteRune(r)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message(), e.Offset)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *Error) Unwrap() error { return e.Kind.sentinel() }

func newError(kind ErrorKind, start, end uint32) *Error {
	if end < start {
		end = start
	}
	return &Error{Kind: kind, Offset: start, End: end}
}
