// MIT License

// Copyright (c) 2026 The Prose Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package parser implements a parser for prose source. It takes in an
// io.Reader as input and outputs an *ast.Document.
//
// The parser adheres to the following grammar for prose source files:
//
//	unicode_char = /* an arbitrary Unicode code point except newline */ .
//	newline      = /* the Unicode code point U+000A */ .
//	octothorpe   = /* the Unicode code point U+0023 */ .
//	backtick     = /* the Unicode code point U+0060 */ .
//	hyphen       = /* the Unicode code point U+002D */ .
//	asterisk     = /* the Unicode code point U+002A */ .
//	space        = /* the Unicode code point U+0020 */ .
//	digit        = "0" ... "9" .
//
//	plain     = unicode_char { unicode_char } .
//	italic    = asterisk plain asterisk .
//	bold      = asterisk asterisk plain asterisk asterisk .
//	code      = backtick plain backtick .
//	image     = "!" "[" plain "]" "(" plain ")" .
//	link      = "[" plain "]" "(" plain ")" .
//	inline    = italic | code | bold | image | link | plain .
//	text      = { inline } newline .
//	heading   = octothorpe { octothorpe } space text .
//	ulist     = hyphen space text { hyphen space text } .
//	olist     = digit { digit } "." space text { digit { digit } "." space text } .
//	fence     = backtick backtick backtick .
//	codeblock = fence [ plain ] newline string fence .
//	block     = heading | ulist | olist | codeblock | text .
//	document  = block { block } .
//
// Alternatives are tried strictly in the order written above, and the first
// alternative to match wins. That order is part of the dialect: italic is
// tried before bold so that a doubled asterisk falls through to the bold
// rule, and image is tried before link so that the leading "!" is never
// consumed as plain text. A plain run stops at the first reserved prefix
// ("*", "`", "[", "![") or newline, and must consume at least one character.
//
// The grammar has no error recovery. If any position matches no alternative,
// or input remains after the last block, the whole parse fails with a
// positional *Error.
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/prosedown/prose/ast"
)

// Error describes the furthest point at which the parse could not proceed.
type Error struct {
	Offset   int    // byte offset into the source
	Line     int    // 1-based line number
	Column   int    // 1-based byte column within the line
	Expected string // description of the token expected at Offset
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: expected %s", e.Line, e.Column, e.Expected)
}

// MustParse is like ParseString but panics if the source cannot be parsed.
func MustParse(src string) *ast.Document {
	doc, err := ParseString(src)
	if err != nil {
		panic("parse error: " + err.Error())
	}
	return doc
}

// Parse reads all of src and parses it as one prose document.
func Parse(src io.Reader) (*ast.Document, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return ParseString(string(b))
}

// ParseString parses the source and if successful, returns its corresponding
// AST structure. The document must consist entirely of blocks: a document
// with no blocks, or with input left over after the last block, fails with
// an *Error pointing at the furthest position the parser reached.
func ParseString(src string) (*ast.Document, error) {
	p := &parser{src: src}
	doc, ok := p.document()
	if !ok {
		e := p.err
		if e == nil {
			e = &Error{Offset: p.pos, Expected: "a block"}
		}
		e.Line, e.Column = lineCol(src, e.Offset)
		return nil, e
	}
	return doc, nil
}

// parser is a cursor over an immutable source string. Alternatives save and
// restore pos; no alternative that has matched to completion is revisited.
type parser struct {
	src string
	pos int
	err *Error // furthest failure seen so far
}

// fail records a failed expectation. The furthest failure wins; at equal
// offsets the earlier (higher priority) alternative keeps its message.
func (p *parser) fail(offset int, expected string) {
	if p.err == nil || offset > p.err.Offset {
		p.err = &Error{Offset: offset, Expected: expected}
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

// tag consumes the literal s, or consumes nothing and reports false.
func (p *parser) tag(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

// noneOf consumes the longest non-empty run of characters, none of which
// appear in set.
func (p *parser) noneOf(set string) (string, bool) {
	rest := p.src[p.pos:]
	i := strings.IndexAny(rest, set)
	if i == -1 {
		i = len(rest)
	}
	if i == 0 {
		return "", false
	}
	p.pos += i
	return rest[:i], true
}

// digits consumes a non-empty run of ASCII digits.
func (p *parser) digits() bool {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	return p.pos > start
}

// plain consumes characters one at a time as long as the remaining input
// does not begin with a reserved prefix or a newline. It reports false if
// nothing was consumed.
func (p *parser) plain() (string, bool) {
	start := p.pos
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; c {
		case '*', '`', '[', '\n':
			goto done
		case '!':
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '[' {
				goto done
			}
		}
		p.pos++
	}
done:
	if p.pos == start {
		return "", false
	}
	return p.src[start:p.pos], true
}

// document = block { block } .
func (p *parser) document() (*ast.Document, bool) {
	doc := &ast.Document{}
	for !p.eof() {
		b, ok := p.block()
		if !ok {
			return nil, false
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	if len(doc.Blocks) == 0 {
		p.fail(p.pos, "a block")
		return nil, false
	}
	return doc, true
}

// block = heading | ulist | olist | codeblock | text .
func (p *parser) block() (ast.Block, bool) {
	if h, ok := p.heading(); ok {
		return h, true
	}
	if l, ok := p.unorderedList(); ok {
		return l, true
	}
	if l, ok := p.orderedList(); ok {
		return l, true
	}
	if c, ok := p.codeBlock(); ok {
		return c, true
	}
	if ln, ok := p.line(); ok {
		return ln, true
	}
	return nil, false
}

// heading = octothorpe { octothorpe } space text .
func (p *parser) heading() (*ast.Heading, bool) {
	save := p.pos
	level := 0
	for p.tag("#") {
		level++
	}
	if level == 0 {
		p.fail(p.pos, `"#"`)
		p.pos = save
		return nil, false
	}
	if !p.tag(" ") {
		p.fail(p.pos, "a space after the heading markers")
		p.pos = save
		return nil, false
	}
	text, ok := p.text()
	if !ok {
		p.pos = save
		return nil, false
	}
	return &ast.Heading{Level: level, Text: text}, true
}

// ulist = hyphen space text { hyphen space text } .
func (p *parser) unorderedList() (*ast.UnorderedList, bool) {
	save := p.pos
	var items []ast.Text
	for {
		isave := p.pos
		if !p.tag("- ") {
			p.fail(p.pos, `"- "`)
			break
		}
		text, ok := p.text()
		if !ok {
			p.pos = isave
			break
		}
		items = append(items, text)
	}
	if len(items) == 0 {
		p.pos = save
		return nil, false
	}
	return &ast.UnorderedList{Items: items}, true
}

// olist = digit { digit } "." space text { digit { digit } "." space text } .
func (p *parser) orderedList() (*ast.OrderedList, bool) {
	save := p.pos
	var items []ast.Text
	for {
		isave := p.pos
		if !p.digits() {
			p.fail(p.pos, "a digit")
			break
		}
		if !p.tag(".") {
			p.fail(p.pos, `"." after the item number`)
			p.pos = isave
			break
		}
		if !p.tag(" ") {
			p.fail(p.pos, `a space after "."`)
			p.pos = isave
			break
		}
		text, ok := p.text()
		if !ok {
			p.pos = isave
			break
		}
		items = append(items, text)
	}
	if len(items) == 0 {
		p.pos = save
		return nil, false
	}
	return &ast.OrderedList{Items: items}, true
}

// codeblock = fence [ plain ] newline string fence .
//
// The language tag follows the plain rule, so it cannot contain a reserved
// character. A fence with no tag records ast.LangUnspecified. The body is
// any non-empty run without a backtick, kept verbatim.
func (p *parser) codeBlock() (*ast.CodeBlock, bool) {
	save := p.pos
	if !p.tag("```") {
		p.fail(p.pos, "an opening fence")
		p.pos = save
		return nil, false
	}
	lang := ast.LangUnspecified
	if tag, ok := p.plain(); ok {
		lang = tag
	}
	if !p.tag("\n") {
		p.fail(p.pos, "a newline after the opening fence")
		p.pos = save
		return nil, false
	}
	body, ok := p.noneOf("`")
	if !ok {
		p.fail(p.pos, "a code block body")
		p.pos = save
		return nil, false
	}
	if !p.tag("```") {
		p.fail(p.pos, "a closing fence")
		p.pos = save
		return nil, false
	}
	return &ast.CodeBlock{Lang: lang, Body: body}, true
}

// line wraps one text line in a generic Line block. A bare newline is a
// valid Line with empty text.
func (p *parser) line() (*ast.Line, bool) {
	save := p.pos
	text, ok := p.text()
	if !ok {
		p.pos = save
		return nil, false
	}
	return &ast.Line{Text: text}, true
}

// text = { inline } newline .
//
// The trailing newline is mandatory: a final line without one is a parse
// error, which the entry point folds into the fallback message.
func (p *parser) text() (ast.Text, bool) {
	var t ast.Text
	for {
		in, ok := p.inline()
		if !ok {
			break
		}
		t = append(t, in)
	}
	if !p.tag("\n") {
		p.fail(p.pos, "a newline at the end of the line")
		return nil, false
	}
	return t, true
}

// inline = italic | code | bold | image | link | plain .
func (p *parser) inline() (ast.Inline, bool) {
	if in, ok := p.italic(); ok {
		return in, true
	}
	if in, ok := p.code(); ok {
		return in, true
	}
	if in, ok := p.bold(); ok {
		return in, true
	}
	if in, ok := p.image(); ok {
		return in, true
	}
	if in, ok := p.link(); ok {
		return in, true
	}
	if s, ok := p.plain(); ok {
		return ast.Plain{Text: s}, true
	}
	return nil, false
}

// italic = asterisk plain asterisk . The content may not contain an
// asterisk, so "**" falls through to the bold rule.
func (p *parser) italic() (ast.Inline, bool) {
	save := p.pos
	if !p.tag("*") {
		p.pos = save
		return nil, false
	}
	s, ok := p.noneOf("*")
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.tag("*") {
		p.fail(p.pos, `a closing "*"`)
		p.pos = save
		return nil, false
	}
	return ast.Italic{Text: s}, true
}

// code = backtick plain backtick .
func (p *parser) code() (ast.Inline, bool) {
	save := p.pos
	if !p.tag("`") {
		p.pos = save
		return nil, false
	}
	s, ok := p.noneOf("`")
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.tag("`") {
		p.fail(p.pos, "a closing backtick")
		p.pos = save
		return nil, false
	}
	return ast.Code{Text: s}, true
}

// bold = asterisk asterisk plain asterisk asterisk .
func (p *parser) bold() (ast.Inline, bool) {
	save := p.pos
	if !p.tag("**") {
		p.pos = save
		return nil, false
	}
	s, ok := p.noneOf("*")
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.tag("**") {
		p.fail(p.pos, `a closing "**"`)
		p.pos = save
		return nil, false
	}
	return ast.Bold{Text: s}, true
}

// image = "!" "[" plain "]" "(" plain ")" .
func (p *parser) image() (ast.Inline, bool) {
	save := p.pos
	if !p.tag("![") {
		p.pos = save
		return nil, false
	}
	alt, url, ok := p.bracketPair()
	if !ok {
		p.pos = save
		return nil, false
	}
	return ast.Image{Alt: alt, URL: url}, true
}

// link = "[" plain "]" "(" plain ")" .
func (p *parser) link() (ast.Inline, bool) {
	save := p.pos
	if !p.tag("[") {
		p.pos = save
		return nil, false
	}
	label, url, ok := p.bracketPair()
	if !ok {
		p.pos = save
		return nil, false
	}
	return ast.Link{Label: label, URL: url}, true
}

// bracketPair parses `label](url)` after the opening bracket has been
// consumed. The label excludes "]" and the url excludes ")"; both are
// non-empty.
func (p *parser) bracketPair() (label, url string, ok bool) {
	label, ok = p.noneOf("]")
	if !ok {
		return "", "", false
	}
	if !p.tag("]") {
		p.fail(p.pos, `"]"`)
		return "", "", false
	}
	if !p.tag("(") {
		p.fail(p.pos, `"(" after "]"`)
		return "", "", false
	}
	url, ok = p.noneOf(")")
	if !ok {
		return "", "", false
	}
	if !p.tag(")") {
		p.fail(p.pos, `")"`)
		return "", "", false
	}
	return label, url, true
}

// lineCol converts a byte offset into a 1-based line and column.
func lineCol(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line = 1 + strings.Count(src[:offset], "\n")
	col = offset - strings.LastIndexByte(src[:offset], '\n')
	return line, col
}
