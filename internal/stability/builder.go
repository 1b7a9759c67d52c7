// Package stability computes Pourbaix stability regions. It is the
// computational core behind ports.DiagramBuilder: entries in, diagram
// out. The algorithm evaluates every species' normalized free energy
// on a pH x potential grid and keeps the minimum per cell.
package stability

import (
	"context"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/elchem/pourbaix/internal/logging"
	"github.com/elchem/pourbaix/pkg/domain"
)

// DefaultResolution is the grid cell count per axis.
const DefaultResolution = 280

// Builder implements ports.DiagramBuilder over a fixed window and
// resolution. A Builder is stateless between calls and safe for
// concurrent use.
type Builder struct {
	limits     domain.Limits
	resolution int
	logger     *slog.Logger
}

// Option configures the Builder.
type Option func(*Builder)

// WithLimits sets the pH/potential window.
func WithLimits(limits domain.Limits) Option {
	return func(b *Builder) {
		b.limits = limits
	}
}

// WithResolution sets the grid cell count per axis.
func WithResolution(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.resolution = n
		}
	}
}

// WithLogger configures a logger for build events.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// New creates a Builder with the conventional aqueous window.
func New(opts ...Option) *Builder {
	b := &Builder{
		limits:     domain.DefaultLimits(),
		resolution: DefaultResolution,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build computes the stability diagram for the entry set.
func (b *Builder) Build(ctx context.Context, entries []domain.Entry) (*domain.Diagram, error) {
	if len(entries) == 0 {
		return nil, domain.ErrNoEntries
	}

	usable := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if e.NonSolventAtoms() > 0 {
			usable = append(usable, e)
		}
	}
	if len(usable) < 2 {
		return nil, fmt.Errorf("%d comparable species: %w", len(usable), domain.ErrDegenerateSystem)
	}

	d := &domain.Diagram{
		Limits:  b.limits,
		PHSteps: b.resolution,
		ESteps:  b.resolution,
		Entries: usable,
		Winners: make([]int, b.resolution*b.resolution),
	}

	// Per-cell argmin. The pH-dependent part of each species' energy
	// is linear, so precompute the column terms once per row sweep.
	energies := make([]float64, len(usable))
	for j := 0; j < d.ESteps; j++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v := d.E(j)
		for i := 0; i < d.PHSteps; i++ {
			pH := d.PH(i)
			for k, e := range usable {
				energies[k] = e.NormalizedEnergyAt(pH, v)
			}
			// MinIdx takes the first minimum, so ties resolve to the
			// lowest entry index and rebuilds stay identical.
			d.Winners[j*d.PHSteps+i] = floats.MinIdx(energies)
		}
	}

	d.Domains = extractDomains(d)

	b.logger.Debug("diagram built",
		"entries", len(usable),
		"domains", len(d.Domains),
		"grid", fmt.Sprintf("%dx%d", d.PHSteps, d.ESteps))
	return d, nil
}
