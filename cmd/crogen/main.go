package main

import (
	"github.com/tacogips/crogen/internal/build"
	"github.com/tacogips/crogen/internal/cli"
)

// Build information (set via ldflags during build)
var (
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	build.SetBuildInfo(gitCommit, buildDate)
	cli.Execute()
}
