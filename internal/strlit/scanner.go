package strlit

import "strings"

// ParseStringLiteral decodes the quoted literal starting at c.
//
// On Done, Value holds the decoded text and Rest points just past the closing
// quote. On Incomplete, call again from the same start with a longer buffer;
// the scanner keeps no state between calls. Failed is terminal for this
// literal.
func ParseStringLiteral(c Cursor) Outcome[string] {
	open := c.Offset()
	if c.EOF() {
		if c.IsFinal() {
			return fail[string](newError(KindNotAString, open, open))
		}
		return needMore[string](1)
	}
	if c.Peek() != '"' {
		return fail[string](escapeError(KindNotAString, open, c))
	}
	c = c.Advance(1)

	var sb strings.Builder
	for {
		if c.EOF() {
			return anchorAt(endOfInput[string](c), open)
		}
		if c.Peek() == '"' {
			return done(c.Advance(1), sb.String())
		}
		o := nextFragment(c)
		if o.Status != Done {
			return anchorAt(o, open)
		}
		sb.WriteString(o.Value)
		c = o.Rest
	}
}

// Parse decodes a literal at the start of src, treating src as a prefix of a
// longer stream.
func Parse(src string) Outcome[string] {
	return ParseStringLiteral(NewCursor(src))
}

// ParseFinal decodes a literal at the start of a complete buffer.
func ParseFinal(src string) Outcome[string] {
	return ParseStringLiteral(NewFinalCursor(src))
}

// anchorAt points an unterminated-literal error at the opening quote.
func anchorAt(o Outcome[string], open uint32) Outcome[string] {
	if o.Status == Failed && o.Err != nil && o.Err.Kind == KindUnterminatedString {
		o.Err.Offset = open
	}
	return o
}
