package main

import (
	"os"

	"github.com/gitstu/gitstu/internal/cli"
	"github.com/gitstu/gitstu/internal/config"
)

// These variables are set at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	if err := cli.Execute(); err != nil {
		os.Exit(config.ExitCode(err))
	}
}
