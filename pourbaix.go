package pourbaix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/elchem/pourbaix/internal/logging"
	"github.com/elchem/pourbaix/internal/plot"
	"github.com/elchem/pourbaix/internal/stability"
	"github.com/elchem/pourbaix/pkg/adapters/fsstore"
	"github.com/elchem/pourbaix/pkg/domain"
	"github.com/elchem/pourbaix/pkg/ports"
)

// Generator is the high-level entry point: it runs the
// load -> build -> render pipeline for an element system.
type Generator struct {
	loader        ports.EntryLoader
	builder       ports.DiagramBuilder
	renderer      ports.DiagramRenderer
	logger        *slog.Logger
	concentration float64
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithLoader injects a custom entry loader, bypassing the default
// filesystem store.
func WithLoader(l ports.EntryLoader) Option {
	return func(g *Generator) {
		g.loader = l
	}
}

// WithBuilder injects a custom diagram builder.
func WithBuilder(b ports.DiagramBuilder) Option {
	return func(g *Generator) {
		g.builder = b
	}
}

// WithRenderer injects a custom renderer.
func WithRenderer(r ports.DiagramRenderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithConcentration overrides the ion concentration (mol/l) of every
// dissolved species in loaded entry sets.
func WithConcentration(c float64) Option {
	return func(g *Generator) {
		g.concentration = c
	}
}

// New creates a Generator. entriesDir is the directory of per-element
// JSON entry files; it is ignored when WithLoader is given.
func New(entriesDir string, opts ...Option) (*Generator, error) {
	g := &Generator{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.loader == nil {
		if entriesDir == "" {
			return nil, errors.New("pourbaix: entries directory or a custom loader is required")
		}
		g.loader = fsstore.New(entriesDir, fsstore.WithLogger(g.logger))
	}
	if g.builder == nil {
		g.builder = stability.New(stability.WithLogger(g.logger))
	}
	if g.renderer == nil {
		g.renderer = plot.New()
	}
	return g, nil
}

// LoadEntries loads and pools the entry sets for the given element
// symbols, applying the concentration override if configured.
func (g *Generator) LoadEntries(ctx context.Context, symbols []string) ([]domain.Entry, error) {
	if len(symbols) == 0 {
		return nil, domain.ErrNoEntries
	}

	var pooled []domain.Entry
	for _, symbol := range symbols {
		entries, err := g.loader.LoadEntries(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", symbol, err)
		}
		pooled = append(pooled, entries...)
	}

	if g.concentration > 0 {
		for i := range pooled {
			if pooled[i].Phase == domain.PhaseIon {
				pooled[i].Concentration = g.concentration
			}
		}
	}
	return pooled, nil
}

// Diagram loads the entries for the element system and builds its
// stability diagram.
func (g *Generator) Diagram(ctx context.Context, symbols []string) (*domain.Diagram, error) {
	entries, err := g.LoadEntries(ctx, symbols)
	if err != nil {
		return nil, err
	}
	diagram, err := g.builder.Build(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("build diagram for %v: %w", symbols, err)
	}
	return diagram, nil
}

// Generate runs the full pipeline and writes the rendered image to
// outPath. The built diagram is returned for inspection.
func (g *Generator) Generate(ctx context.Context, symbols []string, outPath string) (*domain.Diagram, error) {
	diagram, err := g.Diagram(ctx, symbols)
	if err != nil {
		return nil, err
	}
	if err := g.renderer.Render(diagram, outPath); err != nil {
		return nil, fmt.Errorf("render %v: %w", symbols, err)
	}
	g.logger.Info("diagram generated", "elements", symbols, "output", outPath, "domains", len(diagram.Domains))
	return diagram, nil
}
