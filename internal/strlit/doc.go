// Package strlit decodes quoted string literals of a Scheme-family syntax
// from possibly partial input.
//
// # Grammar
//
//	<string>       :: "\"" <element>* "\"" ;
//	<element>      :: <run> | "\\\"" | "\\\\" | <continuation> | <mnemonic> | <hex> ;
//	<run>          :: <any char except "\"" and "\\">+ ;
//	<continuation> :: "\\" <hspace>* <line-ending> <hspace>* ;
//	<mnemonic>     :: "\\" ( "a" | "b" | "t" | "n" | "r" ) ;
//	<hex>          :: "\\x" <hex-digit>{1,8} ;
//	<line-ending>  :: "\n" | "\r\n" ;
//	<hspace>       :: " " | "\t" ;
//
// Elements are recognized in the order listed; the first match wins. A hex
// escape must name a Unicode scalar value: surrogates and values above
// U+10FFFF are rejected.
//
// # Streaming
//
// Every decoder returns an Outcome with one of three statuses. Incomplete is
// not an error: it means the buffer seen so far is a valid prefix and the
// caller should retry from the same start once more input is available. A
// Cursor created with NewFinalCursor (or marked with Cursor.Final) tells the
// decoders that nothing more will arrive, which turns an open literal into
// KindUnterminatedString.
//
//	o := strlit.Parse(buf)
//	switch o.Status {
//	case strlit.Done:
//		use(o.Value, o.Rest.Offset())
//	case strlit.Incomplete:
//		// read at least o.Needed more bytes, then call Parse again
//	case strlit.Failed:
//		report(o.Err)
//	}
//
// Decoders perform no I/O and hold no state, so concurrent calls on
// independent buffers need no synchronization.
package strlit
