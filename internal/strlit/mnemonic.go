package strlit

// mnemonics maps the letter after a backslash to its control character.
var mnemonics = map[rune]rune{
	'a': '\a',
	'b': '\b',
	't': '\t',
	'n': '\n',
	'r': '\r',
}

// DecodeMnemonic decodes a backslash followed by one mnemonic letter.
func DecodeMnemonic(c Cursor) Outcome[rune] {
	start := c.Offset()
	if o, ok := expectPrefix[rune](c, `\`); !ok {
		return o
	}
	body := c.Advance(1)
	r, size := body.PeekRune()
	if size == 0 {
		switch {
		case !body.IsFinal():
			return needMore[rune](runeShortfall(body))
		case body.EOF():
			return fail[rune](newError(KindInvalidEscape, start, body.Offset()))
		default:
			return fail[rune](newError(KindInvalidUTF8, body.Offset(), body.Advance(body.Len()).Offset()))
		}
	}
	if m, ok := mnemonics[r]; ok {
		return done(body.Advance(size), m)
	}
	err := newError(KindUnknownEscape, start, body.Advance(size).Offset())
	err.Rune = r
	return fail[rune](err)
}

// mnemonicByte is the single-byte lookup used by the fragment recognizer.
func mnemonicByte(b byte) (rune, bool) {
	r, ok := mnemonics[rune(b)]
	return r, ok
}
