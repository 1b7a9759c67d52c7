package ports

import (
	"context"

	"github.com/elchem/pourbaix/pkg/domain"
)

// DiagramBuilder computes stability regions from an entry set.
// The computation is deterministic: the same entries yield an equal
// diagram on every call.
type DiagramBuilder interface {
	// Build returns an error matching domain.ErrNoEntries for an empty
	// set and domain.ErrDegenerateSystem when the set cannot form
	// stability regions.
	Build(ctx context.Context, entries []domain.Entry) (*domain.Diagram, error)
}
