package ports

import (
	"context"

	"github.com/elchem/pourbaix/pkg/domain"
)

// EntryCache sits between a remote entry source and the local store.
// A miss is not an error.
type EntryCache interface {
	Get(ctx context.Context, symbol string) ([]domain.Entry, bool, error)
	Put(ctx context.Context, symbol string, entries []domain.Entry) error
}
