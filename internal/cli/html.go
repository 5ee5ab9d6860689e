package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	sq "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/prosedown/prose"
	"github.com/prosedown/prose/gen/html"
	"github.com/prosedown/prose/internal/logging"
	"github.com/prosedown/prose/internal/ui/pretty"
	"github.com/prosedown/prose/parser"
)

type htmlFlags struct {
	output  string
	timeout time.Duration
	filter  string
	strict  bool
	detect  bool
	escape  bool
	sample  bool
}

func newHTMLCommand(color *string) *cobra.Command {
	flags := &htmlFlags{}

	cmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "HTML output generator for prose source files",
		Long: `This command parses a prose source document and converts it to HTML.

If no input file is specified, input is read from standard input. Similarly,
if no output argument is specified, output is written to standard output.

A document that fails to parse prints the fixed fallback message; pass
--strict to get a positional diagnostic and a non-zero exit instead.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTML(cmd, args, flags, *color)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "``name of the output file")
	cmd.Flags().DurationVarP(&flags.timeout, "timeout", "t", -1,
		"``timeout used to halt generation and any filter command")
	cmd.Flags().StringVar(&flags.filter, "filter", "",
		"``command the generated HTML is piped through, split on shell words")
	cmd.Flags().BoolVar(&flags.strict, "strict", false,
		"report a positional parse error instead of the fallback message")
	cmd.Flags().BoolVar(&flags.detect, "detect-lang", false,
		"classify the language of untagged code fences")
	cmd.Flags().BoolVar(&flags.escape, "escape", false,
		"HTML-escape text content and attribute values")
	cmd.Flags().BoolVar(&flags.sample, "sample", false,
		"render the built-in sample document instead of reading input")
	// Set string version of default value to be zero-value to prevent it
	// from being printed by FlagUsages.
	cmd.Flags().Lookup("timeout").DefValue = "0"

	return cmd
}

func runHTML(cmd *cobra.Command, args []string, flags *htmlFlags, color string) error {
	logger := logging.Default()

	name := "stdin"
	source := prose.Sample
	if !flags.sample {
		src := os.Stdin
		if len(args) != 0 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			src = f
			name = args[0]
		}
		b, err := io.ReadAll(src)
		if err != nil {
			return err
		}
		source = string(b)
	} else {
		name = "sample"
	}

	out := os.Stdout
	if len(flags.output) != 0 {
		f, err := os.Create(flags.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if flags.timeout > -1 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}

	doc, err := parser.ParseString(source)
	if err != nil {
		var perr *parser.Error
		if flags.strict && errors.As(err, &perr) {
			styles := pretty.NewStyles(pretty.ColorEnabled(color, os.Stderr))
			fmt.Fprint(os.Stderr, styles.FormatParseError(name, source, perr))
			return err
		}
		logger.Debug("parse failed, emitting fallback",
			logging.FieldInput, name, logging.FieldError, err)
		_, werr := io.WriteString(out, prose.Fallback)
		return werr
	}

	g := html.GenContext(ctx, doc)
	g.Detect = flags.detect
	g.Escape = flags.escape
	rendered, err := g.Output()
	if err != nil {
		return err
	}

	if flags.filter != "" {
		return runFilter(ctx, flags.filter, rendered, out)
	}
	_, err = out.Write(rendered)
	return err
}

// runFilter pipes the generated HTML through a user command. The command is
// split according to the Bourne shell's word-splitting rules.
func runFilter(ctx context.Context, filter string, input []byte, out io.Writer) error {
	words, err := sq.Split(filter)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("no valid command: %q", filter)
	}
	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
