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

// Package html converts an AST document into HTML output.
//
// AST nodes correspond to the following HTML tags:
//
//	Line (non-empty)     <p></p>
//	Line (empty)         nothing
//	Heading              <h1></h1>, <h2></h2>, ... unclamped
//	UnorderedList        <ul><li></li></ul>
//	OrderedList          <ol><li></li></ol>
//	CodeBlock            <pre><code class="lang-..."></code></pre>
//	Bold                 <b></b>
//	Italic               <i></i>
//	Code                 <code></code>
//	Link                 <a href=""></a>
//	Image                <img src="" alt="" />
//	Plain                the text, unchanged
//
// Block and inline outputs are concatenated in document order with no
// separators. Text is emitted verbatim unless the Escape switch is set; the
// unescaped default reproduces the dialect's historical output and is the
// single place an embedder can flip.
package html

import (
	"bytes"
	"context"
	"errors"
	"html"
	"io"
	"strconv"

	"github.com/prosedown/prose/ast"
	"github.com/prosedown/prose/langdetect"
)

type stickyCountWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (c *stickyCountWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	c.n += int64(n)
	return
}

func (c *stickyCountWriter) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// Generator converts one *ast.Document into HTML output.
type Generator struct {
	// Stdout specifies the generator's output. HTML is written to it by Run.
	Stdout io.Writer

	// Escape, when set, HTML-escapes all user-supplied text and attribute
	// values. It is off by default for compatibility: the dialect
	// historically emits content verbatim.
	Escape bool

	// Detect, when set, replaces the unspecified language sentinel on code
	// blocks with a language classified from the block body.
	Detect bool

	ctx context.Context
	doc *ast.Document
}

// Gen returns a Generator that converts doc into HTML output.
func Gen(doc *ast.Document) *Generator {
	return &Generator{ctx: context.TODO(), doc: doc}
}

// GenContext is like Gen but includes a context. The context is checked
// between blocks, so a canceled generator stops after the block it is
// writing.
func GenContext(ctx context.Context, doc *ast.Document) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, doc: doc}
}

// Run writes the document to Stdout and returns the first write error
// encountered, or the context error if generation was canceled.
func (g *Generator) Run() error {
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	cw := &stickyCountWriter{w: g.Stdout}
	for _, b := range g.doc.Blocks {
		select {
		case <-g.ctx.Done():
			if cw.err != nil {
				return cw.err
			}
			return g.ctx.Err()
		default:
			g.block(b, cw)
		}
	}
	return cw.err
}

// Output runs the generator and returns its output as a byte slice.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, errStdoutSet
	}
	var buf bytes.Buffer
	g.Stdout = &buf
	err := g.Run()
	return buf.Bytes(), err
}

var errStdoutSet = errors.New("html: Stdout already set")

func (g *Generator) block(b ast.Block, cw *stickyCountWriter) {
	switch t := b.(type) {
	case *ast.Heading:
		level := strconv.Itoa(t.Level)
		cw.WriteString("<h" + level + ">")
		g.text(t.Text, cw)
		cw.WriteString("</h" + level + ">")
	case *ast.UnorderedList:
		cw.WriteString("<ul>")
		g.items(t.Items, cw)
		cw.WriteString("</ul>")
	case *ast.OrderedList:
		cw.WriteString("<ol>")
		g.items(t.Items, cw)
		cw.WriteString("</ol>")
	case *ast.CodeBlock:
		lang := t.Lang
		if g.Detect && lang == ast.LangUnspecified {
			lang = langdetect.Detect([]byte(t.Body))
		}
		cw.WriteString(`<pre><code class="lang-` + g.esc(lang) + `">`)
		cw.WriteString(g.esc(t.Body))
		cw.WriteString("</code></pre>")
	case *ast.Line:
		var buf bytes.Buffer
		inner := &stickyCountWriter{w: &buf}
		g.text(t.Text, inner)
		// A blank source line renders to nothing, not an empty <p></p>.
		if buf.Len() > 0 {
			cw.WriteString("<p>")
			cw.Write(buf.Bytes())
			cw.WriteString("</p>")
		}
	}
}

func (g *Generator) items(items []ast.Text, cw *stickyCountWriter) {
	for _, it := range items {
		cw.WriteString("<li>")
		g.text(it, cw)
		cw.WriteString("</li>")
	}
}

func (g *Generator) text(t ast.Text, cw *stickyCountWriter) {
	for _, in := range t {
		switch s := in.(type) {
		case ast.Bold:
			cw.WriteString("<b>" + g.esc(s.Text) + "</b>")
		case ast.Italic:
			cw.WriteString("<i>" + g.esc(s.Text) + "</i>")
		case ast.Code:
			cw.WriteString("<code>" + g.esc(s.Text) + "</code>")
		case ast.Link:
			cw.WriteString(`<a href="` + g.esc(s.URL) + `">` + g.esc(s.Label) + "</a>")
		case ast.Image:
			cw.WriteString(`<img src="` + g.esc(s.URL) + `" alt="` + g.esc(s.Alt) + `" />`)
		case ast.Plain:
			cw.WriteString(g.esc(s.Text))
		}
	}
}

// esc is the single escaping policy point. With Escape unset it is the
// identity, which reproduces the dialect's verbatim output.
func (g *Generator) esc(s string) string {
	if g.Escape {
		return html.EscapeString(s)
	}
	return s
}
