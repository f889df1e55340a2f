package strlit

import "strings"

// nextFragment recognizes one unit of literal body at c. The caller has
// already handled the end of the buffer and the closing quote.
//
// Alternatives are tried in a fixed order and the first match wins: some
// grammars are textual prefixes of others, so the order is part of the
// contract.
func nextFragment(c Cursor) Outcome[string] {
	// 1) обычный текст без '"' и '\'
	if o, ok := scanRun(c); ok {
		return o
	}

	start := c.Offset()
	body := c.Advance(1) // '\'
	if body.EOF() {
		return endOfInput[string](body)
	}

	// 2) \"  3) \\
	switch body.Peek() {
	case '"':
		return done(body.Advance(1), `"`)
	case '\\':
		return done(body.Advance(1), `\`)
	}

	// 4) line continuation
	if o, ok := scanContinuation(body); ok {
		return o
	}
	if ws := body.skipSpace(); ws.EOF() || (ws.Len() == 1 && ws.Peek() == '\r') {
		// final input ran out before the line ending
		return endOfInput[string](ws)
	}

	// 5) mnemonic
	if r, ok := mnemonicByte(body.Peek()); ok {
		return done(body.Advance(1), string(r))
	}

	// 6) \x hex
	if body.Peek() == 'x' {
		digits := body.Advance(1)
		if o, ok := scanHex(digits, start); ok {
			if o.Status != Done {
				return recast[string](o)
			}
			return done(o.Rest, string(o.Value))
		}
		if digits.EOF() {
			return endOfInput[string](digits)
		}
	}

	if _, size := body.PeekRune(); size == 0 {
		return endOfInput[string](body)
	}
	return fail[string](escapeError(KindInvalidEscape, start, body))
}

// scanRun matches a maximal non-empty run of characters other than '"' and
// '\'. The run is a substring of the buffer; nothing is copied.
func scanRun(c Cursor) (Outcome[string], bool) {
	rest := c.Rest()
	i := strings.IndexAny(rest, `"\`)
	switch {
	case i == 0:
		return Outcome[string]{}, false
	case i < 0:
		// the run reaches the end of the buffer, the literal is still open
		return endOfInput[string](c.Advance(len(rest))), true
	}
	run := rest[:i]
	if bad := invalidUTF8At(run); bad >= 0 {
		at := c.Advance(bad)
		return fail[string](newError(KindInvalidUTF8, at.Offset(), at.Advance(1).Offset())), true
	}
	return done(c.Advance(i), run), true
}

// endOfInput is the outcome for a buffer that ran out inside a literal.
func endOfInput[T any](c Cursor) Outcome[T] {
	if !c.IsFinal() {
		return needMore[T](runeShortfall(c))
	}
	return fail[T](newError(KindUnterminatedString, c.Offset(), c.Advance(c.Len()).Offset()))
}
