package strlit_test

import (
	"testing"

	"ember/internal/strlit"
)

func TestMnemonicEscapes(t *testing.T) {
	tests := map[string]rune{
		"alert":           '\u0007',
		"backspace":       '\u0008',
		"tab":             '\t',
		"newline":         '\n',
		"carriage return": '\r',
	}
	inputs := map[string]string{
		"alert":           `\a`,
		"backspace":       `\b`,
		"tab":             `\t`,
		"newline":         `\n`,
		"carriage return": `\r`,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			o := strlit.DecodeMnemonic(strlit.NewCursor(inputs[name]))
			if o.Status != strlit.Done {
				t.Fatalf("status = %v, err = %v", o.Status, o.Err)
			}
			if o.Value != want {
				t.Errorf("value = %U, want %U", o.Value, want)
			}
			if !o.Rest.EOF() {
				t.Errorf("rest = %q, want empty", o.Rest.Rest())
			}
		})
	}
}

func TestMnemonicKeepsRest(t *testing.T) {
	o := strlit.DecodeMnemonic(strlit.NewCursor(`\nabc`))
	if o.Status != strlit.Done || o.Value != '\n' || o.Rest.Rest() != "abc" {
		t.Errorf("got %v %q rest %q", o.Status, o.Value, o.Rest.Rest())
	}
}

func TestMnemonicInvalid(t *testing.T) {
	for _, tt := range []struct {
		src string
		r   rune
	}{
		{`\p`, 'p'},
		{`\x`, 'x'},
		{`\"`, '"'},
		{`\é`, 'é'},
		{`\ `, ' '},
	} {
		o := strlit.DecodeMnemonic(strlit.NewCursor(tt.src))
		if o.Status != strlit.Failed {
			t.Errorf("DecodeMnemonic(%q) = %v, want failed", tt.src, o.Status)
			continue
		}
		if o.Err.Kind != strlit.KindUnknownEscape || o.Err.Rune != tt.r {
			t.Errorf("DecodeMnemonic(%q) = %v %q, want UnknownEscape %q", tt.src, o.Err.Kind, o.Err.Rune, tt.r)
		}
		if int(o.Err.End) != len(tt.src) {
			t.Errorf("DecodeMnemonic(%q) end = %d, want %d", tt.src, o.Err.End, len(tt.src))
		}
	}
}

func TestMnemonicIncomplete(t *testing.T) {
	for _, src := range []string{``, `\`, "\\\xc3"} {
		o := strlit.DecodeMnemonic(strlit.NewCursor(src))
		if o.Status != strlit.Incomplete || o.Needed != 1 {
			t.Errorf("DecodeMnemonic(%q) = %v needed %d, want incomplete/1", src, o.Status, o.Needed)
		}
	}
}

func TestMnemonicAtEndOfInput(t *testing.T) {
	o := strlit.DecodeMnemonic(strlit.NewFinalCursor(`\`))
	if o.Status != strlit.Failed || o.Err.Kind != strlit.KindInvalidEscape {
		t.Errorf("got %v %v, want InvalidEscape", o.Status, o.Err)
	}
	o = strlit.DecodeMnemonic(strlit.NewFinalCursor("\\\xc3"))
	if o.Status != strlit.Failed || o.Err.Kind != strlit.KindInvalidUTF8 {
		t.Errorf("got %v %v, want InvalidUTF8", o.Status, o.Err)
	}
}
