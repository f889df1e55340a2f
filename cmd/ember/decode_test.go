package main

import (
	"bytes"
	"strings"
	"testing"

	"ember/internal/driver"
)

type changedSet map[string]bool

func (c changedSet) Changed(name string) bool { return c[name] }

func TestMergeManifestFlagsWin(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[decode]
format = "json"
jobs = 4
nfc = true
max_diagnostics = 5
`)
	m, err := loadManifestAt(path)
	if err != nil {
		t.Fatalf("loadManifestAt: %v", err)
	}
	base := decodeSettings{format: "pretty", jobs: 2, maxDiagnostics: 100, ext: driver.DefaultExt, pathMode: "auto"}

	got := mergeManifest(base, changedSet{"jobs": true}, m)
	if got.format != "json" {
		t.Fatalf("format = %q, want json from file", got.format)
	}
	if got.jobs != 2 {
		t.Fatalf("jobs = %d, explicit flag must win", got.jobs)
	}
	if !got.nfc || got.maxDiagnostics != 5 {
		t.Fatalf("nfc/max_diagnostics not taken from file: %+v", got)
	}
	if got.ext != driver.DefaultExt || got.cache {
		t.Fatalf("keys missing from the file must keep flag values: %+v", got)
	}
}

func TestMergeManifestNil(t *testing.T) {
	base := decodeSettings{format: "pretty", jobs: 1}
	if got := mergeManifest(base, changedSet{}, nil); got != base {
		t.Fatalf("nil manifest changed settings: %+v", got)
	}
}

func TestPrintDecodeSummary(t *testing.T) {
	results := []*driver.Result{
		{Literals: make([]driver.Literal, 2)},
		{Literals: make([]driver.Literal, 1), Cached: true},
		nil,
	}
	var buf bytes.Buffer
	printDecodeSummary(&buf, results, 4)
	got := strings.TrimSpace(buf.String())
	want := "3 literal(s) in 3 file(s), 1 from cache, 4 diagnostic(s)"
	if got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}

func TestProgressWanted(t *testing.T) {
	tests := []struct {
		value string
		files int
		tty   bool
		want  bool
	}{
		{"", 3, true, true},
		{"AUTO", 1, true, false},
		{"auto", 3, false, false},
		{" on ", 1, false, true},
		{"off", 10, true, false},
	}
	for _, tt := range tests {
		got, err := progressWanted(tt.value, tt.files, tt.tty)
		if err != nil || got != tt.want {
			t.Fatalf("progressWanted(%q, %d, %v) = %v, %v", tt.value, tt.files, tt.tty, got, err)
		}
	}
	if _, err := progressWanted("sometimes", 2, true); err == nil {
		t.Fatalf("expected error for unknown ui mode")
	}
}
