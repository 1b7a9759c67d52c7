// Package inmemory provides an entry loader backed by a map, for tests
// and for embedding the generator with programmatically built entry sets.
package inmemory

import (
	"context"
	"fmt"
	"sort"

	"github.com/elchem/pourbaix/pkg/domain"
)

// Loader holds entry sets keyed by element symbol.
type Loader struct {
	sets map[string][]domain.Entry
}

// New creates an empty loader.
func New() *Loader {
	return &Loader{sets: make(map[string][]domain.Entry)}
}

// NewFromSets creates a loader over the given element -> entries map.
func NewFromSets(sets map[string][]domain.Entry) *Loader {
	l := New()
	for symbol, entries := range sets {
		l.Add(symbol, entries...)
	}
	return l
}

// Add registers entries for an element, appending to any existing set.
func (l *Loader) Add(symbol string, entries ...domain.Entry) {
	l.sets[symbol] = append(l.sets[symbol], entries...)
}

// LoadEntries returns a copy of the element's entry set.
func (l *Loader) LoadEntries(ctx context.Context, symbol string) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, ok := l.sets[symbol]
	if !ok {
		return nil, fmt.Errorf("%s: %w", symbol, domain.ErrEntriesNotFound)
	}
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// ListElements returns the registered symbols, sorted.
func (l *Loader) ListElements(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	symbols := make([]string, 0, len(l.sets))
	for symbol := range l.sets {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols, nil
}
