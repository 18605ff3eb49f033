// SPDX-License-Identifier: MIT

// Package version carries build metadata, set at build time with
// -ldflags "-X github.com/dywu101/deeptb/internal/version.Version=1.2.3".
package version

import "fmt"

var (
	// Version is the semantic version of the binary.
	Version = "0.1.0"

	// GitCommit is the commit hash (set via ldflags).
	GitCommit = "unknown"

	// BuildTime is the build timestamp (set via ldflags).
	BuildTime = "unknown"
)

// String renders the full version line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
