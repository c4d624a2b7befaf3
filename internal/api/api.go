// Package api implements the HTTP API server for empath.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dshills/empath/internal/config"
	"github.com/dshills/empath/internal/engines"
	"github.com/dshills/empath/internal/review"
)

// CompleterFactory builds a completer for one request. Tests inject a
// stub factory so handlers can be exercised without live engines.
type CompleterFactory func(engine, model string) (review.Completer, error)

// Server is the empath HTTP API server.
type Server struct {
	addr         string
	mux          *http.ServeMux
	server       *http.Server
	tables       review.Tables
	cfg          config.Config
	newCompleter CompleterFactory
}

// New creates a new API server.
func New(addr string, tables review.Tables, cfg config.Config) *Server {
	s := &Server{
		addr:   addr,
		tables: tables,
		cfg:    cfg,
	}
	s.newCompleter = func(engine, model string) (review.Completer, error) {
		c, err := engines.New(engine, engines.Options{
			Model:       model,
			OllamaHost:  cfg.OllamaHost,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
		if err != nil {
			return nil, err
		}
		if cfg.Privacy.RedactSecrets {
			c = engines.WithRedaction(c)
		}
		return c, nil
	}
	s.mux = http.NewServeMux()
	s.registerRoutes()
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /api/demo", s.handleDemo)
	s.mux.HandleFunc("POST /api/review", s.handleReview)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	log.Printf("empath API server listening on %s", s.addr)
	return s.server.ListenAndServe()
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// SetCompleterFactory overrides engine construction, for tests.
func (s *Server) SetCompleterFactory(f CompleterFactory) {
	s.newCompleter = f
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Printf("json encode error: %v", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// readJSON decodes a JSON request body into v.
func readJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}
