package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prosedown/prose"
	"github.com/prosedown/prose/ast"
	"github.com/prosedown/prose/gen/html"
	"github.com/prosedown/prose/internal/logging"
	"github.com/prosedown/prose/parser"
)

// renderRequest is the body of POST /api/render.
type renderRequest struct {
	Source string `json:"source"`
}

// renderResponse carries the rendered HTML. HTML is always set: a parse
// failure yields the fixed fallback message, with the positional detail in
// Error for editors that want to show it.
type renderResponse struct {
	HTML   string `json:"html"`
	Blocks int    `json:"blocks"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(editorPage))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	resp := renderResponse{}
	doc, err := parser.ParseString(req.Source)
	if err != nil {
		resp.HTML = prose.Fallback
		var perr *parser.Error
		if errors.As(err, &perr) {
			resp.Error = perr.Error()
		}
	} else {
		g := html.GenContext(r.Context(), doc)
		g.Detect = s.Detect
		g.Escape = s.Escape
		out, gerr := g.Output()
		if gerr != nil {
			http.Error(w, gerr.Error(), http.StatusInternalServerError)
			return
		}
		resp.HTML = string(out)
		resp.Blocks = countBlocks(doc)
	}
	s.logger().Debug("render",
		logging.FieldBlocks, resp.Blocks,
		logging.FieldDuration, time.Since(start),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(s.Sample))
}

func countBlocks(doc *ast.Document) int {
	n := 0
	ast.Walk(doc, func(node ast.Node) error {
		if _, ok := node.(ast.Block); ok {
			n++
		}
		return nil
	})
	return n
}
