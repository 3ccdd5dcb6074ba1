// Package main provides the entry point for the scholarlink CLI tool.
package main

import (
	"github.com/scholarlink/scholarlink/cmd/scholarlink/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
