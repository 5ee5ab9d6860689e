package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosedown/prose/internal/ui/pretty"
	"github.com/prosedown/prose/parser"
)

func TestFormatParseError(t *testing.T) {
	t.Parallel()

	src := "# ok\n# h1"
	_, err := parser.ParseString(src)
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)

	styles := pretty.NewStyles(false)
	got := styles.FormatParseError("stdin", src, perr)
	assert.Contains(t, got, "stdin:2:5")
	assert.Contains(t, got, "error")
	assert.Contains(t, got, "expected a newline")
	assert.Contains(t, got, "# h1")
	assert.Contains(t, got, "^")
}

func TestFormatParseErrorOutOfRangeLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	perr := &parser.Error{Offset: 0, Line: 9, Column: 1, Expected: "a block"}
	got := styles.FormatParseError("stdin", "one\n", perr)
	assert.Contains(t, got, "stdin:9:1")
	assert.NotContains(t, got, "^")
}

func TestColorEnabled(t *testing.T) {
	t.Parallel()

	assert.True(t, pretty.ColorEnabled("always", &bytes.Buffer{}))
	assert.False(t, pretty.ColorEnabled("never", &bytes.Buffer{}))
	// A plain buffer is not a terminal.
	assert.False(t, pretty.ColorEnabled("auto", &bytes.Buffer{}))
}
