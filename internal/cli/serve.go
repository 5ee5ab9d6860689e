package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/prosedown/prose/internal/configloader"
	"github.com/prosedown/prose/internal/logging"
	"github.com/prosedown/prose/internal/server"
)

func newServeCommand() *cobra.Command {
	var addr string
	var configPath string
	var detect bool
	var escape bool

	cmd := &cobra.Command{
		Use:   "serve [--addr host:port]",
		Short: "Serve the live-preview editor",
		Long: `Serve hosts a browser editor that renders the document on every edit.
The page offers actions to load the built-in sample document, clear the
editor, and toggle between the rendered output and the raw HTML text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configloader.Load(configPath)
			if err != nil {
				return err
			}
			// Explicit flags win over the config file.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("detect-lang") {
				cfg.DetectLanguage = detect
			}
			if cmd.Flags().Changed("escape") {
				cfg.Escape = escape
			}
			logging.SetLevel(cfg.LogLevel)

			s := server.New()
			s.Detect = cfg.DetectLanguage
			s.Escape = cfg.Escape
			s.Logger = logging.Default()
			if cfg.SampleFile != "" {
				b, err := os.ReadFile(cfg.SampleFile)
				if err != nil {
					return err
				}
				s.Sample = string(b)
			}
			return s.ListenAndServe(cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", configloader.Default().Addr, "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().BoolVar(&detect, "detect-lang", false,
		"classify the language of untagged code fences")
	cmd.Flags().BoolVar(&escape, "escape", false,
		"HTML-escape text content and attribute values")

	return cmd
}
