package testkit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ember/internal/strlit"
)

// Decoder is the shape shared by the literal decoders.
type Decoder func(strlit.Cursor) strlit.Outcome[string]

// CheckScalarString verifies that a decoded value is valid UTF-8. Go's
// decoder rejects encoded surrogates, so this also rules out lone surrogate
// code points.
func CheckScalarString(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("decoded value %q is not valid UTF-8", s)
	}
	return nil
}

// CheckPrefixStability feeds every prefix of src to decode as a non-final
// buffer and checks that:
// 1) once a prefix settles (Done or Failed) no longer prefix goes back to Incomplete
// 2) every settled prefix agrees with the first settled one
// 3) the whole buffer reaches the same outcome
// 4) a Done value satisfies CheckScalarString
func CheckPrefixStability(src string, decode Decoder) error {
	var (
		first   strlit.Outcome[string]
		firstAt = -1
	)
	for i := 0; i <= len(src); i++ {
		o := decode(strlit.NewCursor(src[:i]))
		if firstAt < 0 {
			if o.Status != strlit.Incomplete {
				first, firstAt = o, i
			}
			continue
		}
		if o.Status == strlit.Incomplete {
			return fmt.Errorf("prefix %d of %q went back to incomplete after settling at %d", i, src, firstAt)
		}
		if err := sameOutcome(first, o); err != nil {
			return fmt.Errorf("prefix %d of %q: %w", i, src, err)
		}
	}
	if firstAt >= 0 && first.Status == strlit.Done {
		return CheckScalarString(first.Value)
	}
	return nil
}

func sameOutcome(want, got strlit.Outcome[string]) error {
	if want.Status != got.Status {
		return fmt.Errorf("status %v, want %v", got.Status, want.Status)
	}
	switch want.Status {
	case strlit.Done:
		if want.Value != got.Value {
			return fmt.Errorf("value %q, want %q", got.Value, want.Value)
		}
		if want.Rest.Offset() != got.Rest.Offset() {
			return fmt.Errorf("rest at %d, want %d", got.Rest.Offset(), want.Rest.Offset())
		}
	case strlit.Failed:
		if want.Err.Kind != got.Err.Kind || want.Err.Offset != got.Err.Offset {
			return fmt.Errorf("error %v, want %v", got.Err, want.Err)
		}
	}
	return nil
}

// Quote builds a literal from raw body text, for property-style tests.
func Quote(body string) string {
	var sb strings.Builder
	sb.Grow(len(body) + 2)
	sb.WriteByte('"')
	sb.WriteString(body)
	sb.WriteByte('"')
	return sb.String()
}
