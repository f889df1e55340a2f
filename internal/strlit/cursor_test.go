package strlit

import "testing"

// TestCursorSequential проверяет последовательное чтение без мутации исходного курсора
func TestCursorSequential(t *testing.T) {
	c := NewCursor("a\nb")
	if c.EOF() {
		t.Fatal("expected not EOF at start")
	}
	if c.Peek() != 'a' {
		t.Errorf("expected peek 'a', got %q", c.Peek())
	}
	next := c.Advance(1)
	if c.Offset() != 0 {
		t.Errorf("Advance mutated the receiver: offset %d", c.Offset())
	}
	if next.Peek() != '\n' {
		t.Errorf("expected peek '\\n', got %q", next.Peek())
	}
	end := next.Advance(2)
	if !end.EOF() {
		t.Error("expected EOF at end")
	}
	if end.Peek() != 0 {
		t.Errorf("expected peek 0 at EOF, got %q", end.Peek())
	}
	if end.Rest() != "" {
		t.Errorf("expected empty rest, got %q", end.Rest())
	}
}

func TestCursorAdvanceClamps(t *testing.T) {
	c := NewCursor("abc").Advance(10)
	if c.Offset() != 3 {
		t.Errorf("expected offset 3, got %d", c.Offset())
	}
	if got := c.Advance(-2).Offset(); got != 3 {
		t.Errorf("negative advance moved cursor to %d", got)
	}
}

func TestCursorPeek2(t *testing.T) {
	c := NewCursor("ab")
	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 at start = (%q, %q, %v)", b0, b1, ok)
	}
	if _, _, ok := c.Advance(1).Peek2(); ok {
		t.Error("expected Peek2 to fail on the last byte")
	}
}

func TestCursorPeekRune(t *testing.T) {
	tests := []struct {
		name string
		src  string
		r    rune
		size int
	}{
		{"ascii", "a", 'a', 1},
		{"two bytes", "é", 'é', 2},
		{"three bytes", "€x", '€', 3},
		{"truncated", "\xe2\x82", 0xFFFD, 0},
		{"invalid", "\xffa", 0xFFFD, 1},
		{"empty", "", 0xFFFD, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, size := NewCursor(tt.src).PeekRune()
			if r != tt.r || size != tt.size {
				t.Errorf("PeekRune(%q) = (%q, %d), want (%q, %d)", tt.src, r, size, tt.r, tt.size)
			}
		})
	}
}

func TestCursorEat(t *testing.T) {
	c := NewCursor(`"x`)
	next, ok := c.Eat('"')
	if !ok || next.Offset() != 1 {
		t.Fatalf("Eat('\"') = (%d, %v)", next.Offset(), ok)
	}
	if _, ok := next.Eat('"'); ok {
		t.Error("Eat matched the wrong byte")
	}
}

func TestCursorFinalAndAt(t *testing.T) {
	c := NewCursor("hello")
	if c.IsFinal() {
		t.Error("NewCursor must not be final")
	}
	f := c.Final()
	if !f.IsFinal() || c.IsFinal() {
		t.Error("Final must return a final copy and leave the receiver alone")
	}
	at := f.At(3)
	if at.Rest() != "lo" || !at.IsFinal() {
		t.Errorf("At(3) rest = %q final = %v", at.Rest(), at.IsFinal())
	}
	if got := f.At(99).Offset(); got != 5 {
		t.Errorf("At beyond the buffer = %d, want 5", got)
	}
}

func TestCursorSkipSpace(t *testing.T) {
	c := NewCursor(" \t \nx").skipSpace()
	if c.Peek() != '\n' {
		t.Errorf("skipSpace stopped at %q", c.Peek())
	}
	if got := NewCursor("x").skipSpace().Offset(); got != 0 {
		t.Errorf("skipSpace consumed non-space: %d", got)
	}
}
