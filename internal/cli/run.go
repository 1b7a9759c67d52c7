// Package cli wires the configuration into the generator and runs the
// per-element batch for the plot command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/elchem/pourbaix"
	"github.com/elchem/pourbaix/internal/plot"
	"github.com/elchem/pourbaix/internal/stability"
	"github.com/elchem/pourbaix/pkg/domain"
)

// RunOptions carries everything the plot batch needs. Values come from
// flags merged over the config file.
type RunOptions struct {
	Elements      []string
	EntriesDir    string
	OutputDir     string
	Limits        domain.Limits
	Resolution    int
	Concentration float64
	// Combine pools all elements into one diagram instead of
	// producing one per element.
	Combine bool
}

// NewGenerator builds a Generator following the CLI conventions.
func NewGenerator(opts RunOptions, logger *slog.Logger) (*pourbaix.Generator, error) {
	builderOpts := []stability.Option{
		stability.WithLimits(opts.Limits),
		stability.WithLogger(logger),
	}
	if opts.Resolution > 0 {
		builderOpts = append(builderOpts, stability.WithResolution(opts.Resolution))
	}

	genOpts := []pourbaix.Option{
		pourbaix.WithLogger(logger),
		pourbaix.WithBuilder(stability.New(builderOpts...)),
		pourbaix.WithRenderer(plot.New()),
	}
	if opts.Concentration > 0 {
		genOpts = append(genOpts, pourbaix.WithConcentration(opts.Concentration))
	}
	return pourbaix.New(opts.EntriesDir, genOpts...)
}

// RunBatch generates diagrams for the requested elements. A failure in
// one element's pipeline is logged and the batch continues; the
// returned error joins all failures, so a nil result means every
// element succeeded.
func RunBatch(ctx context.Context, opts RunOptions, logger *slog.Logger) error {
	if len(opts.Elements) == 0 {
		return errors.New("no elements requested: pass symbols as arguments or list them in pourbaix.yaml")
	}

	gen, err := NewGenerator(opts, logger)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if opts.Combine {
		name := strings.Join(opts.Elements, "")
		out := filepath.Join(opts.OutputDir, name+".png")
		if _, err := gen.Generate(ctx, opts.Elements, out); err != nil {
			return err
		}
		return nil
	}

	var failures []error
	for _, symbol := range opts.Elements {
		out := filepath.Join(opts.OutputDir, symbol+".png")
		if _, err := gen.Generate(ctx, []string{symbol}, out); err != nil {
			if ctx.Err() != nil {
				failures = append(failures, ctx.Err())
				break
			}
			logger.Error("element failed", "element", symbol, "error", err)
			failures = append(failures, err)
			continue
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d of %d elements failed: %w", len(failures), len(opts.Elements), errors.Join(failures...))
	}
	return nil
}
