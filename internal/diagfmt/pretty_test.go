package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	fileID := fs.AddVirtual("/home/user/project/lits/test.str", []byte("\"bad \\q\"\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.StrInvalidEscape, source.Span{File: fileID, Start: 5, End: 7}, "invalid escape sequence \\q"))

	tests := []struct {
		name     string
		mode     source.PathMode
		contains string
	}{
		{"Absolute path", source.PathAbsolute, "/home/user/project/lits/test.str:1:6:"},
		{"Relative path", source.PathRelative, "\nlits/test.str:1:6:"},
		{"Basename only", source.PathBasename, "test.str:1:6:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatal(err)
			}
			// ведущий перевод строки, чтобы относительный путь совпал с началом строки
			if got := "\n" + buf.String(); !strings.Contains(got, tt.contains) {
				t.Fatalf("output %q does not contain %q", got, tt.contains)
			}
		})
	}
}

func TestPrettyLayout(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.str", []byte("\"ok\"\n\t\"x\\q\" \"open\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.StrInvalidEscape, source.Span{File: id, Start: 8, End: 10}, "invalid escape sequence \\q"))
	bag.Add(diag.NewError(diag.StrUnterminated, source.Span{File: id, Start: 12, End: 18}, "unterminated string literal").
		WithNote(source.Span{File: id, Start: 12, End: 13}, "string literal starts here"))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	want := "a.str:2:4: ERROR STR1102: invalid escape sequence \\q\n" +
		"  \t\"x\\q\" \"open\n" +
		"  \t  ^~\n" +
		"a.str:2:8: ERROR STR1105: unterminated string literal\n" +
		"  \t\"x\\q\" \"open\n" +
		"  \t      ^~~~~\n" +
		"  note: a.str:2:8: string literal starts here\n"
	if got := buf.String(); got != want {
		t.Fatalf("pretty output mismatch:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestMarkerLineWideRunes(t *testing.T) {
	// "日本" занимает 4 колонки, маркер сдвигается на 4 пробела
	line := "日本\"x\\q\""
	col := len("日本\"x") + 1
	if got := markerLine(line, col, 2); got != "    "+"  "+"^~" {
		t.Fatalf("markerLine = %q", got)
	}
	if got := markerLine("", 3, 0); got != "  ^" {
		t.Fatalf("marker past end = %q", got)
	}
}
