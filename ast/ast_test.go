package ast_test

import (
	"errors"
	"testing"

	"github.com/prosedown/prose/ast"
)

func doc() *ast.Document {
	return &ast.Document{Blocks: []ast.Block{
		&ast.Heading{Level: 1, Text: ast.Text{ast.Plain{Text: "title"}}},
		&ast.UnorderedList{Items: []ast.Text{
			{ast.Italic{Text: "a"}},
			{ast.Plain{Text: "b"}, ast.Code{Text: "c"}},
		}},
		&ast.CodeBlock{Lang: ast.LangUnspecified, Body: "x\n"},
		&ast.Line{Text: ast.Text{ast.Link{Label: "l", URL: "u"}}},
	}}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	var blocks, inlines int
	err := ast.Walk(doc(), func(n ast.Node) error {
		switch n.(type) {
		case ast.Block:
			blocks++
		case ast.Inline:
			inlines++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if blocks != 4 {
		t.Errorf("want 4 blocks, got %d", blocks)
	}
	if inlines != 5 {
		t.Errorf("want 5 inlines, got %d", inlines)
	}
}

func TestWalkStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	visited := 0
	err := ast.Walk(doc(), func(n ast.Node) error {
		visited++
		if _, ok := n.(*ast.CodeBlock); ok {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("want stop error, got %v", err)
	}
	// Document, heading + its inline, list + three inlines, code block.
	if visited != 8 {
		t.Errorf("want 8 nodes visited, got %d", visited)
	}
}

func TestWalkNil(t *testing.T) {
	if err := ast.Walk(nil, func(ast.Node) error { return errors.New("called") }); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
