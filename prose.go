// Package prose compiles a constrained markdown dialect into HTML.
//
// The pipeline is strictly one-directional: the parser builds an AST for the
// whole document, and the HTML generator walks it once to produce a string.
// Render is the single entry point; it is pure, holds no state across calls,
// and is safe to call concurrently on independent documents.
package prose

import (
	"github.com/prosedown/prose/gen/html"
	"github.com/prosedown/prose/parser"
)

// Fallback is the fixed message returned by Render whenever the document
// fails to parse in its entirety.
const Fallback = "Sorry, this did not seem to work! Maybe your markdown was not well formed, have you hit [Enter] after your last line?"

// Render parses source as one whole document and returns its HTML. On any
// parse failure it returns Fallback, never a partial render.
func Render(source string) string {
	out, err := RenderStrict(source)
	if err != nil {
		return Fallback
	}
	return out
}

// RenderStrict is Render without the friendly message: a parse failure is
// returned as a positional *parser.Error instead of the Fallback string.
func RenderStrict(source string) (string, error) {
	doc, err := parser.ParseString(source)
	if err != nil {
		return "", err
	}
	out, err := html.Gen(doc).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Sample is a built-in document demonstrating every structure the dialect
// supports. The live-preview UI loads it on demand, and it is guaranteed to
// parse.
const Sample = "# Prose\n" +
	"## Markdown, compiled to HTML\n" +
	"Prose turns a small markdown dialect into HTML as you type.\n" +
	"Use the buttons above to load this sample, clear the editor, or flip between the rendered page and the raw HTML text.\n" +
	"\n" +
	"## Supported structures\n" +
	"1. Headings\n" +
	"2. Ordered lists\n" +
	"3. Unordered lists\n" +
	"4. Fenced code blocks\n" +
	"5. Paragraph lines\n" +
	"\n" +
	"## Inline styles\n" +
	"- *italic text*\n" +
	"- **bold text**\n" +
	"- `inline code`\n" +
	"- [a link](https://example.com)\n" +
	"- ![a tiny image](https://example.com/logo.png)\n" +
	"\n" +
	"## Code\n" +
	"```go\n" +
	"package main\n" +
	"\n" +
	"import \"fmt\"\n" +
	"\n" +
	"func main() {\n" +
	"\tfmt.Println(\"hello, prose\")\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"Every line needs its trailing newline, this one included.\n"
