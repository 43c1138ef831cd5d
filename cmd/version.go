// Package cmd contains build-time variables injected via ldflags:
//
//	go build -ldflags "-X github.com/thoreinstein/nem/cmd.Version=v1.2.0 \
//	  -X github.com/thoreinstein/nem/cmd.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/thoreinstein/nem/cmd.Date=$(date -u +%Y-%m-%d)" ./cmd/nem
package cmd

import "fmt"

// Build-time variables set via ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// Info returns the multi-line version banner printed by nem version.
func Info() string {
	return fmt.Sprintf("nem version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
