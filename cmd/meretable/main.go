// Command meretable renders table definitions with nested column headers.
package main

import (
	"os"

	"github.com/bjaus/meretable/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
