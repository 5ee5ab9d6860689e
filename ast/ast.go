// Package ast declares the node types for a parsed prose document.
//
// A document is an ordered sequence of blocks. Blocks that carry inline
// content hold it as a Text, an ordered sequence of inline nodes. Nodes are
// plain data: they carry no behavior and exclusively own their children.
package ast

// Node is the union of every AST node kind.
type Node interface {
	node()
}

// Block is a top-level structural unit: heading, list, code block, or line.
type Block interface {
	Node
	block()
}

// Inline is a span-level node inside a block's text.
type Inline interface {
	Node
	inline()
}

// Text is the inline content of one logical line, in source order.
// Rendering concatenates each node's output in order with no separators.
type Text []Inline

// Document is a whole parsed source file.
type Document struct {
	Blocks []Block
}

// LangUnspecified is the language recorded for a fenced code block whose
// opening fence carries no language tag.
const LangUnspecified = "unspecified"

// Heading is a # heading. Level counts the leading markers and is not
// clamped; levels beyond 6 are legal data.
type Heading struct {
	Level int
	Text  Text
}

// UnorderedList holds one or more "- " items. Items is never empty.
type UnorderedList struct {
	Items []Text
}

// OrderedList holds one or more "1. " items. Items is never empty; the
// source digits are discarded, item order is source order.
type OrderedList struct {
	Items []Text
}

// CodeBlock is a fenced code block. Body is stored verbatim, including
// embedded newlines, and never contains a backtick.
type CodeBlock struct {
	Lang string
	Body string
}

// Line is a paragraph line, or a blank source line when Text is empty.
type Line struct {
	Text Text
}

// Bold is **text**.
type Bold struct {
	Text string
}

// Italic is *text*.
type Italic struct {
	Text string
}

// Code is `text`.
type Code struct {
	Text string
}

// Link is [label](url).
type Link struct {
	Label string
	URL   string
}

// Image is ![alt](url).
type Image struct {
	Alt string
	URL string
}

// Plain is a maximal run of unmarked characters.
type Plain struct {
	Text string
}

func (*Document) node()      {}
func (*Heading) node()       {}
func (*UnorderedList) node() {}
func (*OrderedList) node()   {}
func (*CodeBlock) node()     {}
func (*Line) node()          {}
func (Bold) node()           {}
func (Italic) node()         {}
func (Code) node()           {}
func (Link) node()           {}
func (Image) node()          {}
func (Plain) node()          {}

func (*Heading) block()       {}
func (*UnorderedList) block() {}
func (*OrderedList) block()   {}
func (*CodeBlock) block()     {}
func (*Line) block()          {}

func (Bold) inline()   {}
func (Italic) inline() {}
func (Code) inline()   {}
func (Link) inline()   {}
func (Image) inline()  {}
func (Plain) inline()  {}

// Walker is called by Walk for each node. Returning an error stops the walk.
type Walker func(Node) error

// Walk calls f on n and then on each of n's children, depth-first in source
// order.
func Walk(n Node, f Walker) error {
	if n == nil {
		return nil
	}
	if err := f(n); err != nil {
		return err
	}
	switch t := n.(type) {
	case *Document:
		for _, b := range t.Blocks {
			if err := Walk(b, f); err != nil {
				return err
			}
		}
	case *Heading:
		return walkText(t.Text, f)
	case *UnorderedList:
		for _, it := range t.Items {
			if err := walkText(it, f); err != nil {
				return err
			}
		}
	case *OrderedList:
		for _, it := range t.Items {
			if err := walkText(it, f); err != nil {
				return err
			}
		}
	case *Line:
		return walkText(t.Text, f)
	}
	return nil
}

func walkText(text Text, f Walker) error {
	for _, in := range text {
		if err := Walk(in, f); err != nil {
			return err
		}
	}
	return nil
}
