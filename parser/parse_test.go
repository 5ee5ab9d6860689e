// Tests for parse.go
package parser_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sanity-io/litter"

	"github.com/prosedown/prose/ast"
	"github.com/prosedown/prose/parser"
)

type smallcase struct {
	in   string
	want *ast.Document
	werr bool
}

func docEquals(want, got *ast.Document) bool {
	if len(want.Blocks) != len(got.Blocks) {
		return false
	}
	for i := range want.Blocks {
		if !reflect.DeepEqual(want.Blocks[i], got.Blocks[i]) {
			return false
		}
	}
	return true
}

func blocks(bs ...ast.Block) *ast.Document {
	return &ast.Document{Blocks: bs}
}

var headings = []smallcase{
	{"# h1\n", blocks(&ast.Heading{Level: 1, Text: ast.Text{ast.Plain{Text: "h1"}}}), false},
	{"## h2\n", blocks(&ast.Heading{Level: 2, Text: ast.Text{ast.Plain{Text: "h2"}}}), false},
	{"###### h6\n", blocks(&ast.Heading{Level: 6, Text: ast.Text{ast.Plain{Text: "h6"}}}), false},
	// Levels are not clamped at six.
	{"####### deep\n", blocks(&ast.Heading{Level: 7, Text: ast.Text{ast.Plain{Text: "deep"}}}), false},
	// A heading marker with content but no text is legal.
	{"# \n", blocks(&ast.Heading{Level: 1, Text: nil}), false},
	{"# *em*\n", blocks(&ast.Heading{Level: 1, Text: ast.Text{ast.Italic{Text: "em"}}}), false},
	// No space after the markers: the line falls through to a paragraph.
	{"#hash\n", blocks(&ast.Line{Text: ast.Text{ast.Plain{Text: "#hash"}}}), false},
	// Missing terminator is a hard failure.
	{"# h1", nil, true},
}

var lists = []smallcase{
	{"- a\n- b\n", blocks(&ast.UnorderedList{Items: []ast.Text{
		{ast.Plain{Text: "a"}},
		{ast.Plain{Text: "b"}},
	}}), false},
	{"- *one* item\n", blocks(&ast.UnorderedList{Items: []ast.Text{
		{ast.Italic{Text: "one"}, ast.Plain{Text: " item"}},
	}}), false},
	{"1. a\n2. b\n", blocks(&ast.OrderedList{Items: []ast.Text{
		{ast.Plain{Text: "a"}},
		{ast.Plain{Text: "b"}},
	}}), false},
	// Digits are consumed but never validated or reordered.
	{"99. x\n7. y\n", blocks(&ast.OrderedList{Items: []ast.Text{
		{ast.Plain{Text: "x"}},
		{ast.Plain{Text: "y"}},
	}}), false},
	// A hyphen without its space is a paragraph, not a list.
	{"-a\n", blocks(&ast.Line{Text: ast.Text{ast.Plain{Text: "-a"}}}), false},
	// A list ends where its prefix stops matching.
	{"- a\nplain\n", blocks(
		&ast.UnorderedList{Items: []ast.Text{{ast.Plain{Text: "a"}}}},
		&ast.Line{Text: ast.Text{ast.Plain{Text: "plain"}}},
	), false},
}

var codeblocks = []smallcase{
	{"```bash\necho hi\n```", blocks(&ast.CodeBlock{Lang: "bash", Body: "echo hi\n"}), false},
	{"```\nbody\n```", blocks(&ast.CodeBlock{Lang: ast.LangUnspecified, Body: "body\n"}), false},
	{"```go\na := 1\n\nb := 2\n```", blocks(&ast.CodeBlock{Lang: "go", Body: "a := 1\n\nb := 2\n"}), false},
	// The body may not be empty.
	{"```\n```", nil, true},
	// An unterminated fence fails the document.
	{"```go\nfmt\n", nil, true},
	// The language tag may not contain a reserved character.
	{"```a*b\nx\n```", nil, true},
}

var lines = []smallcase{
	{"plain *it* and **bold** and `code`\n", blocks(&ast.Line{Text: ast.Text{
		ast.Plain{Text: "plain "},
		ast.Italic{Text: "it"},
		ast.Plain{Text: " and "},
		ast.Bold{Text: "bold"},
		ast.Plain{Text: " and "},
		ast.Code{Text: "code"},
	}}), false},
	{"[title](https://example.com)\n", blocks(&ast.Line{Text: ast.Text{
		ast.Link{Label: "title", URL: "https://example.com"},
	}}), false},
	{"![alt text](image.jpg)\n", blocks(&ast.Line{Text: ast.Text{
		ast.Image{Alt: "alt text", URL: "image.jpg"},
	}}), false},
	// A bare terminator is a Line with empty text.
	{"\n", blocks(&ast.Line{Text: nil}), false},
	// Plain runs are maximal: punctuation stays in one node.
	{"oh my gosh!\n", blocks(&ast.Line{Text: ast.Text{ast.Plain{Text: "oh my gosh!"}}}), false},
	// "![" is a reserved prefix, "!" alone is not.
	{"gosh!![wow](w)\n", blocks(&ast.Line{Text: ast.Text{
		ast.Plain{Text: "gosh!"},
		ast.Image{Alt: "wow", URL: "w"},
	}}), false},
}

var ordering = []smallcase{
	// Italic is tried first but cannot contain the marker, so a doubled
	// marker reaches the bold rule.
	{"*x*\n", blocks(&ast.Line{Text: ast.Text{ast.Italic{Text: "x"}}}), false},
	{"**x**\n", blocks(&ast.Line{Text: ast.Text{ast.Bold{Text: "x"}}}), false},
	// Image before link, else "!" would be consumed as plain text.
	{"![a](u)\n", blocks(&ast.Line{Text: ast.Text{ast.Image{Alt: "a", URL: "u"}}}), false},
	{"[a](u)\n", blocks(&ast.Line{Text: ast.Text{ast.Link{Label: "a", URL: "u"}}}), false},
	// Italic may close early and leave a dangling marker behind it.
	{"***x***\n", nil, true},
}

var failures = []smallcase{
	// Empty input: a document needs at least one block.
	{"", nil, true},
	{"*unterminated", nil, true},
	{"**unterminated\n", nil, true},
	{"`unterminated\n", nil, true},
	{"[label](url\n", nil, true},
	// A reserved character that matches no inline rule poisons the line.
	{"a*b\n", nil, true},
	// Leftover input after the last block fails the whole document.
	{"# h1\nleftover", nil, true},
}

var documents = []smallcase{
	{"# title\n\n- a\n- b\n\n1. x\n\ntext\n", blocks(
		&ast.Heading{Level: 1, Text: ast.Text{ast.Plain{Text: "title"}}},
		&ast.Line{Text: nil},
		&ast.UnorderedList{Items: []ast.Text{{ast.Plain{Text: "a"}}, {ast.Plain{Text: "b"}}}},
		&ast.Line{Text: nil},
		&ast.OrderedList{Items: []ast.Text{{ast.Plain{Text: "x"}}}},
		&ast.Line{Text: nil},
		&ast.Line{Text: ast.Text{ast.Plain{Text: "text"}}},
	), false},
}

func runSmall(t *testing.T, cases []smallcase) {
	t.Helper()
	for i, test := range cases {
		got, err := parser.ParseString(test.in)
		if test.werr {
			if err == nil {
				t.Errorf("case %d, in %q: want error, got\n%s", i, test.in, litter.Sdump(got))
			}
			continue
		}
		if err != nil {
			t.Errorf("case %d, in %q: unexpected error %v", i, test.in, err)
			continue
		}
		if !docEquals(test.want, got) {
			t.Errorf("case %d, in %q,\nwant %s,\ngot %s", i, test.in, litter.Sdump(test.want), litter.Sdump(got))
		}
	}
}

func TestHeadings(t *testing.T)   { runSmall(t, headings) }
func TestLists(t *testing.T)      { runSmall(t, lists) }
func TestCodeBlocks(t *testing.T) { runSmall(t, codeblocks) }
func TestLines(t *testing.T)      { runSmall(t, lines) }
func TestOrdering(t *testing.T)   { runSmall(t, ordering) }
func TestFailures(t *testing.T)   { runSmall(t, failures) }
func TestDocuments(t *testing.T)  { runSmall(t, documents) }

func TestParseReader(t *testing.T) {
	doc, err := parser.Parse(strings.NewReader("# h1\n"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("want 1 block, got %d", len(doc.Blocks))
	}
}

func TestErrorPosition(t *testing.T) {
	tests := []struct {
		in       string
		line     int
		column   int
		contains string
	}{
		// The italic rule consumes to end of input hunting for its close.
		{"*unterminated", 1, 14, `closing "*"`},
		// The missing terminator is reported at the end of the line.
		{"# h1", 1, 5, "newline"},
		// The dangling marker sends the italic rule hunting to end of
		// input, so the frontier lands there.
		{"# ok\na*b\n", 3, 1, `closing "*"`},
	}
	for _, test := range tests {
		_, err := parser.ParseString(test.in)
		if err == nil {
			t.Errorf("in %q: want error", test.in)
			continue
		}
		perr, ok := err.(*parser.Error)
		if !ok {
			t.Errorf("in %q: want *parser.Error, got %T", test.in, err)
			continue
		}
		if perr.Line != test.line || perr.Column != test.column {
			t.Errorf("in %q: want %d:%d, got %d:%d (%v)", test.in, test.line, test.column, perr.Line, perr.Column, perr)
		}
		if !strings.Contains(perr.Expected, test.contains) {
			t.Errorf("in %q: want expected to mention %q, got %q", test.in, test.contains, perr.Expected)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse did not panic on bad input")
		}
	}()
	parser.MustParse("*unterminated")
}
