package main

import (
	"os"

	"github.com/trebuchet-org/chaincfg/internal/cli"
	"github.com/trebuchet-org/chaincfg/internal/config"
)

// Set via -ldflags at release time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
