// Package main is the entry point for the bigbench CLI.
//
// All commands live in internal/cli. Build-time version info is injected
// via ldflags.
package main

import (
	"github.com/alexshd/bigbench/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.Version = version
	cli.Commit = commit

	cli.Execute(cli.NewRootCommand())
}
