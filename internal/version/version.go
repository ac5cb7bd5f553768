// Package version holds build metadata for the asmdiff CLI. The variables
// can be overridden at build time via -ldflags "-X asmdiff/internal/version.Version=...".
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var partColors = []*color.Color{
	color.New(color.FgYellow, color.Bold),
	color.New(color.FgGreen, color.Bold),
	color.New(color.FgBlue, color.Bold),
}

// Colored renders Version with major, minor and patch in separate colours.
// A pre-release suffix stays uncoloured.
func Colored(enabled bool) string {
	v := strings.TrimSpace(Version)
	core, suffix, hasSuffix := strings.Cut(v, "-")
	parts := strings.Split(core, ".")

	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			sb.WriteByte('.')
		}
		if !enabled || i >= len(partColors) {
			sb.WriteString(p)
			continue
		}
		c := *partColors[i]
		c.EnableColor()
		sb.WriteString(c.Sprint(p))
	}
	if hasSuffix {
		sb.WriteByte('-')
		sb.WriteString(suffix)
	}
	return sb.String()
}
