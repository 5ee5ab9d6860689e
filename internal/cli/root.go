// Package cli provides the Cobra command structure for prose.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/prosedown/prose/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root prose command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "prose",
		Short: "compile a constrained markdown dialect to HTML",
		Long: `prose compiles a constrained markdown dialect into HTML.

The html command converts one source document; the serve command hosts a
live-preview editor that re-renders on every keystroke. A document that does
not parse in its entirety renders to a fixed fallback message rather than a
partial result.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize diagnostics: auto, always, never")

	rootCmd.AddCommand(newHTMLCommand(&color))
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
