package version

import "github.com/fatih/color"

// Version information for the fsum CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var accent = color.New(color.FgCyan, color.Bold)

// Banner returns the colorized one-line identity printed by the version command.
func Banner() string {
	return "fsum " + accent.Sprint(Version)
}
