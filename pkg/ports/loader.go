package ports

import (
	"context"

	"github.com/elchem/pourbaix/pkg/domain"
)

// EntryLoader retrieves the candidate species for one element.
// This decouples the pipeline from where entries live (FS, memory,
// remote API).
type EntryLoader interface {
	// LoadEntries returns the entry set for the element symbol.
	// It returns an error matching domain.ErrEntriesNotFound when no
	// data exists for the symbol, and domain.ErrMalformedEntries when
	// the data cannot be parsed.
	LoadEntries(ctx context.Context, symbol string) ([]domain.Entry, error)
}

// EntrySaver persists an entry set for later loading. The filesystem
// store implements it for the fetch workflow.
type EntrySaver interface {
	SaveEntries(ctx context.Context, symbol string, entries []domain.Entry) error
}

// EntryLister enumerates the elements a loader has data for. Used for
// introspection surfaces ('pourbaix elements', the HTTP /elements
// endpoint).
type EntryLister interface {
	ListElements(ctx context.Context) ([]string, error)
}
