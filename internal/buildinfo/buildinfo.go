// Package buildinfo exposes the tool version stamped at build time.
package buildinfo

import "github.com/blang/semver/v4"

// Version is the zklings version. Release builds override it with
// -ldflags "-X github.com/zklings/zklings/internal/buildinfo.Version=...".
var Version = "0.3.0"

// Semver parses Version, tolerating a leading "v".
func Semver() (semver.Version, error) {
	return semver.ParseTolerant(Version)
}
