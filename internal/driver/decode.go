package driver

import (
	"context"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"ember/internal/diag"
	"ember/internal/source"
	"ember/internal/strlit"
	"ember/internal/trace"
)

// Literal is one decoded string literal.
type Literal struct {
	Value string      `msgpack:"value"`
	Span  source.Span `msgpack:"span"`
}

// Result holds everything decoded from one file.
type Result struct {
	Path     string
	FileID   source.FileID
	Literals []Literal
	Bag      *diag.Bag
	Cached   bool // восстановлен из DiskCache
}

// DecodeSource decodes every literal of file. Literals may be separated by
// whitespace and ';' line comments. A failing literal is reported to the
// Bag and decoding resumes: after a stray token for NotAString, at the next
// line for escape errors, and not at all after an unterminated literal.
// The only error returned is the context's.
func DecodeSource(ctx context.Context, file *source.File, opts Options) (*Result, error) {
	ctx, span := trace.Start(ctx, trace.ScopeFile, "scan:"+file.Path)
	res := &Result{
		Path:   file.Path,
		FileID: file.ID,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}
	reporter := diag.BagReporter{Bag: res.Bag}
	src := string(file.Content)
	whole := strlit.NewFinalCursor(src)

	pos := 0
	for {
		if err := ctx.Err(); err != nil {
			span.End("canceled")
			return res, err
		}
		next, exhausted := skipTrivia(src, pos, true)
		if exhausted {
			break
		}
		pos = next

		out := strlit.ParseStringLiteral(whole.At(uint32(pos))) // #nosec G115 -- длина проверена в FileSet.Add
		switch out.Status {
		case strlit.Done:
			end := out.Rest.Offset()
			res.Literals = append(res.Literals, Literal{
				Value: normalize(out.Value, opts.NFC),
				Span:  source.Span{File: file.ID, Start: uint32(pos), End: end}, // #nosec G115
			})
			trace.Point(ctx, trace.ScopeLiteral, "literal", strconv.Itoa(pos))
			pos = int(end)
		case strlit.Failed:
			reportDecodeError(reporter, file.ID, 0, out.Err)
			trace.Error(ctx, trace.ScopeLiteral, "literal", out.Err)
			pos = resync(src, pos, out.Err)
		default:
			// финальный курсор не даёт Incomplete
			pos = len(src)
		}
		if pos >= len(src) {
			break
		}
	}

	span.WithExtra("literals", strconv.Itoa(len(res.Literals))).
		WithExtra("diagnostics", strconv.Itoa(res.Bag.Len())).
		End("")
	return res, nil
}

// resync returns where scanning continues after failure e of the literal at pos.
func resync(src string, pos int, e *strlit.Error) int {
	switch e.Kind {
	case strlit.KindNotAString:
		return skipToken(src, pos)
	case strlit.KindUnterminatedString:
		return len(src)
	}
	if next := skipLine(src, int(e.Offset)); next >= 0 {
		return next
	}
	return len(src)
}

func normalize(v string, nfc bool) string {
	if nfc {
		return norm.NFC.String(v)
	}
	return v
}

// Values returns the decoded strings of r in source order.
func (r *Result) Values() []string {
	out := make([]string, len(r.Literals))
	for i, lit := range r.Literals {
		out[i] = lit.Value
	}
	return out
}
