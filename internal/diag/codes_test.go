package diag

import (
	"strings"
	"testing"

	"ember/internal/source"
)

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{StrNotAString, "STR1101"},
		{StrInvalidUTF8, "STR1106"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
		{Code(9999), "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if got := Code(1199).Title(); got != "Unknown error" {
		t.Errorf("unregistered code title = %q", got)
	}
	if got := StrUnterminated.String(); got != "[STR1105]: Unterminated string literal" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("lits.str", []byte("\"ok\"\n\"bad\\q\"\n"))
	bag := NewBag(0)
	bag.Add(NewError(StrUnknownEscape, source.Span{File: id, Start: 9, End: 11}, "unknown escape\r\ncharacter 'q'"))
	bag.Add(New(SevWarning, StrInfo, source.Span{File: 77}, "orphan"))

	got := FormatShortAll(bag, fs)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("unexpected output %q", got)
	}
	if lines[0] != "error STR1103 lits.str:2:5 unknown escape character 'q'" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "warning STR1100 <unknown>:1:1 orphan" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if FormatShortAll(NewBag(0), fs) != "" {
		t.Error("empty bag must render empty")
	}
}
