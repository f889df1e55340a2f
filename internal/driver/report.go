package driver

import (
	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/strlit"
)

var kindCodes = map[strlit.ErrorKind]diag.Code{
	strlit.KindNotAString:         diag.StrNotAString,
	strlit.KindInvalidEscape:      diag.StrInvalidEscape,
	strlit.KindUnknownEscape:      diag.StrUnknownEscape,
	strlit.KindInvalidCodepoint:   diag.StrInvalidCodepoint,
	strlit.KindUnterminatedString: diag.StrUnterminated,
	strlit.KindInvalidUTF8:        diag.StrInvalidUTF8,
}

// CodeFor maps a decode failure kind to its diagnostic code.
func CodeFor(kind strlit.ErrorKind) diag.Code {
	if code, ok := kindCodes[kind]; ok {
		return code
	}
	return diag.UnknownCode
}

// reportDecodeError converts e into a diagnostic. base shifts the
// buffer-relative offsets of e into file offsets.
func reportDecodeError(r diag.Reporter, file source.FileID, base uint32, e *strlit.Error) {
	span := source.Span{File: file, Start: e.Offset, End: max(e.End, e.Offset)}.Rebase(base)
	b := diag.ReportError(r, CodeFor(e.Kind), span, e.Message())
	if e.Kind == strlit.KindUnterminatedString {
		b.WithNote(span.Head(), "string literal starts here")
	}
	b.Emit()
}

// reportLoadError points at file, a placeholder registered for a path that
// could not be read.
func reportLoadError(r diag.Reporter, file source.FileID, err error) {
	diag.ReportError(r, diag.IOLoadFileError, source.Span{File: file}, "failed to load file: "+err.Error()).Emit()
}
