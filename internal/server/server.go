// Package server provides the HTTP server behind the prose live-preview UI.
//
// The server is a thin adapter around prose rendering: every endpoint
// operates on the string produced by the generator and never exposes the
// AST. The editor page re-renders on each edit and offers the sample, clear
// and raw-HTML toggle actions.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/prosedown/prose"
	"github.com/prosedown/prose/internal/logging"
)

// Server holds the preview application state.
type Server struct {
	// Sample is the document loaded by the UI's Sample action.
	Sample string
	// Detect classifies untagged code fences in rendered output.
	Detect bool
	// Escape HTML-escapes rendered text and attribute values.
	Escape bool
	// Logger receives request and render logs. Defaults to logging.Default.
	Logger *log.Logger
}

// New returns a Server with the built-in sample document.
func New() *Server {
	return &Server{Sample: prose.Sample}
}

func (s *Server) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logging.Default()
}

// Handler returns the route table for the preview UI and its API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/sample", s.handleSample)
	return s.logRequests(mux)
}

// ListenAndServe serves the preview UI on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger().Info("serving live preview", logging.FieldAddr, addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		s.logger().Debug("request",
			logging.FieldMethod, r.Method,
			logging.FieldPath, r.URL.Path,
			logging.FieldStatus, rec.status,
			logging.FieldDuration, time.Since(start),
		)
	})
}
