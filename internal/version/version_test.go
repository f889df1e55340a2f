package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	orig := Version
	origNoColor := color.NoColor
	t.Cleanup(func() {
		Version = orig
		color.NoColor = origNoColor
	})
	color.NoColor = true

	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.0.0-rc.1", "1.0.0-rc.1"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() with %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestColoredAddsEscapes(t *testing.T) {
	orig := Version
	origNoColor := color.NoColor
	t.Cleanup(func() {
		Version = orig
		color.NoColor = origNoColor
	})
	color.NoColor = false
	Version = "1.2.3"
	if got := Colored(); got == "1.2.3" {
		t.Fatal("expected ANSI escapes around version parts")
	}
}

// BenchmarkColored benchmarks rendering of the coloured version
func BenchmarkColored(b *testing.B) {
	for b.Loop() {
		_ = Colored()
	}
}
