package source

import (
	"slices"
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\r\n\nx")
	idx := appendLineIndex(nil, content, 0)
	if len(idx) != 3 {
		t.Fatalf("expected 3 newlines, got %v", idx)
	}
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{7, LineCol{3, 1}},
		{8, LineCol{4, 1}},
		{9, LineCol{4, 2}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestAppendLineIndexOffsetsFromBase(t *testing.T) {
	idx := appendLineIndex([]uint32{1}, []byte("a\n\nb\n"), 10)
	if want := []uint32{1, 11, 12, 14}; !slices.Equal(idx, want) {
		t.Fatalf("idx = %v, want %v", idx, want)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("a/./b/../c.str"); got != "a/c.str" {
		t.Fatalf("normalizePath = %q", got)
	}
}
