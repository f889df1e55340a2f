// Package version holds build metadata, set with -ldflags "-X".
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"
	// GitCommit and BuildDate are empty in a plain go build.
	GitCommit = ""
	BuildDate = ""
)

// цвета major, minor, patch
var partColors = [3]*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored renders Version with each numeric part in its own colour. The
// pre-release suffix stays plain; a version that is not x.y.z is returned as is.
func Colored() string {
	core, suffix, hasSuffix := strings.Cut(Version, "-")
	parts := strings.Split(core, ".")
	if len(parts) != len(partColors) {
		return Version
	}
	for i, p := range parts {
		parts[i] = partColors[i].Sprint(p)
	}
	out := strings.Join(parts, ".")
	if hasSuffix {
		out += "-" + suffix
	}
	return out
}
