// Package pretty provides Lipgloss-based styled output for parse
// diagnostics.
package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/prosedown/prose/parser"
)

// Styles contains the styled renderers for diagnostic output.
type Styles struct {
	Error      lipgloss.Style
	FilePath   lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style
	Dim        lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		s := lipgloss.NewStyle()
		return &Styles{Error: s, FilePath: s, Message: s, SourceLine: s, Caret: s, Dim: s}
	}
	return &Styles{
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		FilePath:   lipgloss.NewStyle().Bold(true),
		Message:    lipgloss.NewStyle(),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// ColorEnabled resolves a --color mode ("auto", "always", "never") against
// whether w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// FormatParseError formats a positional parse error with its source line and
// a caret marking the failing column. name is the input's display name,
// typically the file path or "stdin".
func (s *Styles) FormatParseError(name, source string, perr *parser.Error) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(name), perr.Line, perr.Column)
	builder.WriteString(fmt.Sprintf("%s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render("expected "+perr.Expected),
	))

	if line, ok := sourceLine(source, perr.Line); ok {
		const indent = "        "
		builder.WriteString(indent + s.SourceLine.Render(line) + "\n")
		if perr.Column > 0 {
			padding := indent + strings.Repeat(" ", perr.Column-1)
			builder.WriteString(padding + s.Caret.Render("^") + "\n")
		}
	}

	return builder.String()
}

// sourceLine returns the 1-based nth line of source without its terminator.
func sourceLine(source string, n int) (string, bool) {
	lines := strings.Split(source, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}
