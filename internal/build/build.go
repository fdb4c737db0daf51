// Package build provides build-time information for the crogen binary.
// Version is read from the embedded VERSION file or set via ldflags.
package build

import (
	_ "embed"
	"runtime"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// version can be overridden via ldflags:
// -X github.com/tacogips/crogen/internal/build.version=x.y.z
var version string

var (
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// SetBuildInfo records commit and date values injected into the main package.
// Empty values keep the current ones.
func SetBuildInfo(commit, date string) {
	if commit != "" {
		gitCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}

// Current returns the build information of the running binary.
func Current() Info {
	return Info{
		Version:   Version(),
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
