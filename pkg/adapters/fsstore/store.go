// Package fsstore implements the entry loader and saver ports on a
// directory of per-element JSON files (Ni.json, Fe.json, ...), the
// same layout the fetch workflow writes.
package fsstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/elchem/pourbaix/internal/logging"
	"github.com/elchem/pourbaix/pkg/domain"
)

// Store loads and saves entry sets as <dir>/<Symbol>.json.
type Store struct {
	dir    string
	logger *slog.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithLogger configures a logger for load/save events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store rooted at dir. The directory does not need to
// exist until the first save.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:    dir,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadEntries reads and validates the entry set for symbol.
func (s *Store) LoadEntries(ctx context.Context, symbol string) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.path(symbol)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s (%s): %w", symbol, path, domain.ErrEntriesNotFound)
		}
		return nil, fmt.Errorf("read entries for %s: %w", symbol, err)
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", symbol, err, domain.ErrMalformedEntries)
	}

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", symbol, err)
		}
		if entries[i].Phase == domain.PhaseIon && entries[i].Concentration <= 0 {
			entries[i].Concentration = domain.DefaultConcentration
		}
	}

	s.logger.Debug("entries loaded", "element", symbol, "count", len(entries))
	return entries, nil
}

// SaveEntries writes the entry set for symbol, creating the directory
// if needed. Existing files are overwritten.
func (s *Store) SaveEntries(ctx context.Context, symbol string, entries []domain.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create entries dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode entries for %s: %w", symbol, err)
	}
	if err := os.WriteFile(s.path(symbol), data, 0o644); err != nil {
		return fmt.Errorf("write entries for %s: %w", symbol, err)
	}

	s.logger.Info("entries saved", "element", symbol, "count", len(entries))
	return nil
}

// ListElements returns the symbols with an entry file, sorted.
func (s *Store) ListElements(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list entries dir: %w", err)
	}

	symbols := make([]string, 0, len(matches))
	for _, m := range matches {
		symbols = append(symbols, strings.TrimSuffix(filepath.Base(m), ".json"))
	}
	sort.Strings(symbols)
	return symbols, nil
}

// Has reports whether an entry file exists for symbol without reading it.
func (s *Store) Has(symbol string) bool {
	_, err := os.Stat(s.path(symbol))
	return err == nil
}

func (s *Store) path(symbol string) string {
	return filepath.Join(s.dir, symbol+".json")
}
