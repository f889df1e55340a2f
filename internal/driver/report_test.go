package driver

import (
	"testing"

	"ember/internal/diag"
	"ember/internal/strlit"
)

func TestCodeFor(t *testing.T) {
	tests := map[strlit.ErrorKind]diag.Code{
		strlit.KindNotAString:         diag.StrNotAString,
		strlit.KindInvalidEscape:      diag.StrInvalidEscape,
		strlit.KindUnknownEscape:      diag.StrUnknownEscape,
		strlit.KindInvalidCodepoint:   diag.StrInvalidCodepoint,
		strlit.KindUnterminatedString: diag.StrUnterminated,
		strlit.KindInvalidUTF8:        diag.StrInvalidUTF8,
		strlit.ErrorKind(200):         diag.UnknownCode,
	}
	for kind, want := range tests {
		if got := CodeFor(kind); got != want {
			t.Errorf("CodeFor(%v) = %v, want %v", kind, got.ID(), want.ID())
		}
	}
}

func TestReportDecodeErrorShiftsSpan(t *testing.T) {
	bag := diag.NewBag(0)
	out := strlit.ParseFinal(`"abc\z"`)
	if out.Status != strlit.Failed {
		t.Fatalf("expected failure, got %v", out.Status)
	}
	reportDecodeError(diag.BagReporter{Bag: bag}, 2, 100, out.Err)
	d := bag.Items()[0]
	if d.Primary.File != 2 || d.Primary.Start != 104 || d.Primary.End != 106 {
		t.Fatalf("span = %v", d.Primary)
	}
	if d.Message != out.Err.Message() {
		t.Fatalf("message = %q", d.Message)
	}
}
