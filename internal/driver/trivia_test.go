package driver

import "testing"

func TestSkipTrivia(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		pos           int
		final         bool
		wantNext      int
		wantExhausted bool
	}{
		{"literal at start", `"a"`, 0, false, 0, false},
		{"spaces and newlines", " \t\r\n\"a\"", 0, false, 4, false},
		{"comment then literal", "; c\n\"a\"", 0, false, 4, false},
		{"open comment waits", "  ; not done", 0, false, 2, true},
		{"open comment final", "  ; done", 0, true, 8, true},
		{"only spaces", "   ", 0, false, 3, true},
		{"stray token", "  abc", 0, true, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, exhausted := skipTrivia(tt.src, tt.pos, tt.final)
			if next != tt.wantNext || exhausted != tt.wantExhausted {
				t.Fatalf("skipTrivia = (%d, %v), want (%d, %v)", next, exhausted, tt.wantNext, tt.wantExhausted)
			}
		})
	}
}

func TestSkipLineAndToken(t *testing.T) {
	if got := skipLine("ab\ncd", 0); got != 3 {
		t.Errorf("skipLine = %d", got)
	}
	if got := skipLine("abcd", 1); got != -1 {
		t.Errorf("skipLine without newline = %d", got)
	}
	if got := skipToken(`abc"x"`, 0); got != 3 {
		t.Errorf("skipToken = %d", got)
	}
	if got := skipToken("x", 0); got != 1 {
		t.Errorf("skipToken single = %d", got)
	}
}
