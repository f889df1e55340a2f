package strlit

import "unicode"

const (
	maxHexDigits = 8

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// DecodeHexEscape decodes `\x` followed by 1 to 8 hexadecimal digits into a
// single scalar rune. The digit run is greedy and bounded; no terminator is
// consumed.
func DecodeHexEscape(c Cursor) Outcome[rune] {
	start := c.Offset()
	if o, ok := expectPrefix[rune](c, `\x`); !ok {
		return o
	}
	body := c.Advance(2)
	if o, matched := scanHex(body, start); matched {
		return o
	}
	return fail[rune](escapeError(KindInvalidEscape, start, c.Advance(1)))
}

// scanHex reads the digits after `\x`. start is the offset of the backslash.
// matched is false when no digit is present and none can still arrive.
func scanHex(body Cursor, start uint32) (o Outcome[rune], matched bool) {
	rest := body.Rest()
	n := 0
	var v uint32
	for n < maxHexDigits && n < len(rest) && isHex(rest[n]) {
		v = v<<4 | hexVal(rest[n])
		n++
	}
	if n < maxHexDigits && n == len(rest) && !body.IsFinal() {
		// the run may continue in the next chunk
		return needMore[rune](1), true
	}
	if n == 0 {
		return Outcome[rune]{}, false
	}
	after := body.Advance(n)
	if v > unicode.MaxRune || (v >= surrogateMin && v <= surrogateMax) {
		err := newError(KindInvalidCodepoint, start, after.Offset())
		err.Value = v
		return fail[rune](err), true
	}
	return done(after, rune(v)), true // #nosec G115 -- v <= unicode.MaxRune
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func hexVal(b byte) uint32 {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0')
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10
	default:
		return uint32(b-'A') + 10
	}
}
