package source

import (
	"testing"
)

func TestSpanRebase(t *testing.T) {
	tests := []struct {
		name string
		span Span
		base uint32
		want Span
	}{
		{"zero base", Span{File: 1, Start: 10, End: 20}, 0, Span{File: 1, Start: 10, End: 20}},
		{"chunk base", Span{File: 2, Start: 0, End: 4}, 128, Span{File: 2, Start: 128, End: 132}},
		{"zero width", Span{File: 1, Start: 3, End: 3}, 7, Span{File: 1, Start: 10, End: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Rebase(tt.base); got != tt.want {
				t.Errorf("Rebase(%d) = %v, want %v", tt.base, got, tt.want)
			}
		})
	}
}

func TestSpanHeadAndString(t *testing.T) {
	s := Span{File: 3, Start: 4, End: 9}
	if got := s.Head(); got != (Span{File: 3, Start: 4, End: 5}) {
		t.Fatalf("Head() = %v", got)
	}
	if got := s.String(); got != "3:4-9" {
		t.Fatalf("String() = %q", got)
	}
}
