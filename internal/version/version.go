// Package version exposes build-time version metadata.
// Values are overridden at build time via -ldflags.
package version

import "fmt"

var (
	// Version is the semantic version of this build.
	Version = "0.1.0"
	// Commit is the git commit hash this binary was built from.
	Commit = "unknown"
	// BuildDate is the UTC build timestamp.
	BuildDate = "unknown"
)

// Short returns just the semantic version.
func Short() string {
	return Version
}

// Info returns a human-readable version string for CLI output.
func Info() string {
	return fmt.Sprintf("netvantage %s (commit %s, built %s)", Version, Commit, BuildDate)
}

// Map returns version metadata for JSON responses.
func Map() map[string]string {
	return map[string]string{
		"version":    Version,
		"commit":     Commit,
		"build_date": BuildDate,
	}
}
