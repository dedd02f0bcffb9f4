// Command fjcnorm normalizes the Federal Judicial Center's commission-centered
// export of Article III judges into a per-commission table.
package main

import (
	"os"

	"github.com/jurimetrics/fjcnorm/internal/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	os.Exit(cli.Exit(cli.Execute()))
}
