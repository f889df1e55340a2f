package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ember/internal/diag"
	"ember/internal/driver"
	"ember/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.str", []byte("\"ok\"\n\"\\xD800\""))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.StrInvalidCodepoint, source.Span{File: fileID, Start: 6, End: 12}, "\\xD800 does not name a valid character").
		WithNote(source.Span{File: fileID, Start: 5, End: 6}, "literal"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: source.PathBasename, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 {
		t.Fatalf("count = %d", output.Count)
	}
	d := output.Diagnostics[0]
	if d.Severity != "error" || d.Code != "STR1104" || d.Location.File != "test.str" {
		t.Fatalf("diagnostic = %+v", d)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 2 || len(d.Notes) != 1 {
		t.Fatalf("location = %+v notes=%d", d.Location, len(d.Notes))
	}
}

func TestJSONMaxAndEmpty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.str", []byte("a b c"))
	bag := diag.NewBag(0)
	for i := range uint32(3) {
		bag.Add(diag.NewError(diag.StrNotAString, source.Span{File: id, Start: 2 * i, End: 2*i + 1}, "x"))
	}
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || out.Diagnostics[0].Location.StartLine != 0 {
		t.Fatalf("out = %+v", out)
	}

	var buf bytes.Buffer
	if err := JSON(&buf, diag.NewBag(0), fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"diagnostics": []`) {
		t.Fatalf("empty output = %s", buf.String())
	}
}

func TestFormatLiterals(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("l.str", []byte("\"a\\tb\"\n  \"\\x263A\""))
	results := []*driver.Result{{
		Path:   "l.str",
		FileID: id,
		Literals: []driver.Literal{
			{Value: "a\tb", Span: source.Span{File: id, Start: 0, End: 6}},
			{Value: "☺", Span: source.Span{File: id, Start: 9, End: 17}},
		},
		Bag: diag.NewBag(0),
	}, nil}

	var buf bytes.Buffer
	if err := FormatLiteralsPretty(&buf, results, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "l.str:1:1: \"a\\tb\"\nl.str:2:3: \"☺\"\n"
	if buf.String() != want {
		t.Fatalf("pretty literals:\nwant %q\ngot  %q", want, buf.String())
	}

	buf.Reset()
	if err := FormatLiteralsJSON(&buf, results, results[0].Bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatal(err)
	}
	var out DecodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out.Files) != 1 || len(out.Files[0].Literals) != 2 || out.Files[0].Literals[1].Value != "☺" {
		t.Fatalf("decode output = %+v", out)
	}
	if out.Files[0].Literals[1].Location.StartLine != 2 || out.Diagnostics.Count != 0 {
		t.Fatalf("decode output = %+v", out)
	}
}
