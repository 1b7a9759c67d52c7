// Package httpapi exposes generated diagrams over HTTP: a JSON view of
// the computed regions, the rendered PNGs, the list of available
// elements, and Prometheus metrics.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elchem/pourbaix"
	"github.com/elchem/pourbaix/internal/logging"
	"github.com/elchem/pourbaix/pkg/domain"
	"github.com/elchem/pourbaix/pkg/ports"
)

// Server renders diagrams on demand and caches the PNGs in outputDir.
type Server struct {
	gen       *pourbaix.Generator
	lister    ports.EntryLister
	outputDir string
	logger    *slog.Logger
	metrics   *metrics
}

// Option configures the Server.
type Option func(*Server)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server around an existing generator.
func NewServer(gen *pourbaix.Generator, lister ports.EntryLister, outputDir string, opts ...Option) *Server {
	s := &Server{
		gen:       gen,
		lister:    lister,
		outputDir: outputDir,
		logger:    logging.NewNop(),
		metrics:   newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.getHealth)
	r.Get("/elements", s.getElements)
	r.Get("/diagrams/{element}.png", s.getDiagramPNG)
	r.Get("/diagrams/{element}.json", s.getDiagramJSON)
	r.Handle("/metrics", s.metrics.handler())
	return r
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok", "version": pourbaix.Version})
}

func (s *Server) getElements(w http.ResponseWriter, r *http.Request) {
	symbols, err := s.lister.ListElements(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("list elements: %v", err), http.StatusInternalServerError)
		s.logger.Error("list elements failed", "error", err)
		return
	}
	writeJSON(w, s.logger, map[string][]string{"elements": symbols})
}

func (s *Server) getDiagramJSON(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "element")

	start := time.Now()
	diagram, err := s.gen.Diagram(r.Context(), []string{symbol})
	if err != nil {
		s.writeDiagramError(w, symbol, err)
		return
	}
	s.metrics.buildDuration.Observe(time.Since(start).Seconds())

	// The winner grid is bulky and mostly useful for re-rendering;
	// the JSON view exposes the domains and the entry set.
	writeJSON(w, s.logger, struct {
		Element string          `json:"element"`
		Limits  domain.Limits   `json:"limits"`
		Domains []domain.Domain `json:"domains"`
		Entries []domain.Entry  `json:"entries"`
	}{symbol, diagram.Limits, diagram.Domains, diagram.Entries})
}

func (s *Server) getDiagramPNG(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "element")
	path := filepath.Join(s.outputDir, symbol+".png")

	refresh := r.URL.Query().Get("refresh") != ""
	if _, err := os.Stat(path); err != nil || refresh {
		if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
			http.Error(w, fmt.Sprintf("output dir: %v", err), http.StatusInternalServerError)
			return
		}
		start := time.Now()
		if _, err := s.gen.Generate(r.Context(), []string{symbol}, path); err != nil {
			s.writeDiagramError(w, symbol, err)
			return
		}
		s.metrics.buildDuration.Observe(time.Since(start).Seconds())
		s.metrics.diagramsRendered.WithLabelValues(symbol).Inc()
	}

	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}

// writeDiagramError maps pipeline failures onto HTTP statuses.
func (s *Server) writeDiagramError(w http.ResponseWriter, symbol string, err error) {
	switch {
	case errors.Is(err, domain.ErrEntriesNotFound):
		http.Error(w, fmt.Sprintf("no entries for %s", symbol), http.StatusNotFound)
	case errors.Is(err, domain.ErrMalformedEntries), errors.Is(err, domain.ErrNoEntries), errors.Is(err, domain.ErrDegenerateSystem):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	s.logger.Warn("diagram request failed", "element", symbol, "error", err)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
