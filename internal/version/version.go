// Package version provides centralized version information for the firesale
// CLI. Build metadata is injected at build time via ldflags:
//
//	-ldflags "-X firesale/internal/version.version=v1.0.0 -X firesale/internal/version.commit=abc123 -X firesale/internal/version.buildTime=2026-01-01T00:00:00Z"
package version

import (
	"fmt"
	"io"
)

// These variables are set via ldflags during build.
//
//nolint:gochecknoglobals // Required for build-time injection via ldflags.
var (
	version   string
	commit    string
	buildTime string
)

// ApplicationName is the name displayed in version output.
const ApplicationName = "firesale"

// Defaults used when build metadata is unavailable.
const (
	DefaultVersion   = "dev"
	DefaultCommit    = "unknown"
	DefaultBuildTime = "unknown"
)

// Info holds resolved version information with defaults applied.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
}

// Get returns version information from the build-time variables, applying
// defaults for any that were not injected.
func Get() Info {
	return Info{
		Version:   orDefault(version, DefaultVersion),
		Commit:    orDefault(commit, DefaultCommit),
		BuildTime: orDefault(buildTime, DefaultBuildTime),
	}
}

// SetBuildVars overrides the build-time variables. Intended for tests and
// build systems that set metadata through the cmd package.
func SetBuildVars(v, c, bt string) {
	version = v
	commit = c
	buildTime = bt
}

// ResetBuildVars clears the build-time variables. Intended for tests.
func ResetBuildVars() {
	version = ""
	commit = ""
	buildTime = ""
}

// Write renders the version information to w. In short mode only the bare
// version string is printed.
func (i Info) Write(w io.Writer, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, i.Version)
		return err
	}
	_, err := fmt.Fprintf(w, "%s\nVersion: %s\nCommit: %s\nBuilt: %s\n",
		ApplicationName, i.Version, i.Commit, i.BuildTime)
	return err
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
