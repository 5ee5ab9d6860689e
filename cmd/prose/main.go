// Command prose converts prose source files to HTML and hosts the
// live-preview editor.
package main

import (
	"os"

	"github.com/prosedown/prose/internal/cli"
	"github.com/prosedown/prose/internal/logging"
)

// Set via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error(err.Error())
		os.Exit(1)
	}
}
