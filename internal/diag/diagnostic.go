package diag

import (
	"ember/internal/source"
)

// Note points at a secondary span, e.g. where a literal opened.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Reporter принимает готовые диагностики от драйвера.
// BagReporter копит их, ShortReporter сразу печатает.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adds to Bag; a nil Bag drops everything.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag != nil {
		r.Bag.Add(d)
	}
}

// ReportBuilder collects notes for one diagnostic and hands it to a
// Reporter on Emit. A nil builder is valid and does nothing.
type ReportBuilder struct {
	to   Reporter
	d    Diagnostic
	done bool
}

// ReportError starts an error diagnostic for r.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{to: r, d: NewError(code, primary, msg)}
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b != nil {
		b.d = b.d.WithNote(sp, msg)
	}
	return b
}

// Emit reports the diagnostic; calls after the first are ignored.
func (b *ReportBuilder) Emit() {
	if b == nil || b.done {
		return
	}
	b.done = true
	if b.to != nil {
		b.to.Report(b.d)
	}
}
