package strlit

// scanContinuation matches the tail of a line continuation after its
// backslash: horizontal whitespace, one line ending (LF or CRLF), horizontal
// whitespace. The whole run folds to nothing.
func scanContinuation(body Cursor) (o Outcome[string], matched bool) {
	c := body.skipSpace()
	if c.EOF() {
		if c.IsFinal() {
			return Outcome[string]{}, false
		}
		return needMore[string](1), true
	}
	switch c.Peek() {
	case '\n':
		c = c.Advance(1)
	case '\r':
		_, b1, ok := c.Peek2()
		if !ok {
			if c.IsFinal() {
				return Outcome[string]{}, false
			}
			return needMore[string](1), true
		}
		if b1 != '\n' {
			return Outcome[string]{}, false
		}
		c = c.Advance(2)
	default:
		return Outcome[string]{}, false
	}
	c = c.skipSpace()
	if c.EOF() && !c.IsFinal() {
		// more indentation may follow
		return needMore[string](1), true
	}
	return done(c, ""), true
}
