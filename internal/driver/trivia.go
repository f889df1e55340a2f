package driver

import "strings"

// Между литералами допускаются пробельные символы и комментарии ';' до конца строки.

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// skipTrivia returns the offset of the next literal candidate. exhausted is
// true when the input ran out first. With final false a comment that reaches
// the end of src is not consumed, since its newline may still arrive.
func skipTrivia(src string, pos int, final bool) (next int, exhausted bool) {
	for pos < len(src) {
		switch b := src[pos]; {
		case isSpace(b):
			pos++
		case b == ';':
			nl := indexNewline(src, pos)
			if nl < 0 {
				if final {
					return len(src), true
				}
				return pos, true
			}
			pos = nl + 1
		default:
			return pos, false
		}
	}
	return pos, true
}

// skipLine returns the offset just past the newline that ends the line of pos,
// or -1 when src has no newline at or after pos.
func skipLine(src string, pos int) int {
	nl := indexNewline(src, pos)
	if nl < 0 {
		return -1
	}
	return nl + 1
}

// skipToken drops a stray token: everything up to the next space, quote or
// comment, and at least one byte.
func skipToken(src string, pos int) int {
	end := pos + 1
	for end < len(src) && !isSpace(src[end]) && src[end] != '"' && src[end] != ';' {
		end++
	}
	return min(end, len(src))
}

func indexNewline(src string, pos int) int {
	if i := strings.IndexByte(src[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return -1
}
