// Package version holds build metadata injected at link time.
package version

import "runtime"

// Populated via -ldflags at build time, e.g.:
//
//	go build -ldflags "-X github.com/speakeasy-app/speakeasy/version.GitRelease=v0.2.0"
var (
	// GitRelease is the release tag or branch the binary was built from.
	GitRelease = "dev"

	// GitCommit is the short commit hash.
	GitCommit = "unknown"

	// GitCommitDate is the commit date.
	GitCommitDate = "unknown"

	// GoInfo is the Go toolchain version used for the build.
	GoInfo = runtime.Version()
)
