package stability

import (
	"context"
	"errors"
	"testing"

	"github.com/elchem/pourbaix/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ironEntries is a minimal but physically sensible Fe system: metal,
// two oxides and two dissolved ions.
func ironEntries() []domain.Entry {
	return []domain.Entry{
		{EntryID: "fe", Name: "Fe", Phase: domain.PhaseSolid, Composition: map[string]float64{"Fe": 1}, Energy: 0},
		{EntryID: "fe2o3", Name: "Fe2O3", Phase: domain.PhaseSolid, Composition: map[string]float64{"Fe": 2, "O": 3}, Energy: -7.69},
		{EntryID: "fe3o4", Name: "Fe3O4", Phase: domain.PhaseSolid, Composition: map[string]float64{"Fe": 3, "O": 4}, Energy: -10.54},
		{EntryID: "fe2+", Name: "Fe[2+]", Phase: domain.PhaseIon, Composition: map[string]float64{"Fe": 1}, Energy: -0.82, Charge: 2, Concentration: 1e-6},
		{EntryID: "fe3+", Name: "Fe[3+]", Phase: domain.PhaseIon, Composition: map[string]float64{"Fe": 1}, Energy: -0.05, Charge: 3, Concentration: 1e-6},
	}
}

func TestBuilder_Build(t *testing.T) {
	b := New(WithResolution(80))
	d, err := b.Build(context.Background(), ironEntries())
	require.NoError(t, err)

	assert.Equal(t, 80, d.PHSteps)
	assert.Len(t, d.Winners, 80*80)
	assert.NotEmpty(t, d.Domains)

	// Every winner indexes a real entry.
	for _, w := range d.Winners {
		require.GreaterOrEqual(t, w, 0)
		require.Less(t, w, len(d.Entries))
	}

	// Domain cell counts partition the grid.
	total := 0
	for _, dom := range d.Domains {
		total += dom.Cells
	}
	assert.Equal(t, 80*80, total)

	// Physical sanity: strongly acidic and oxidizing conditions
	// dissolve iron; alkaline oxidizing conditions passivate it as an
	// oxide; strongly reducing conditions leave the metal.
	stableAt := func(pH, v float64) string {
		e, ok := d.StableAt(pH, v)
		require.True(t, ok)
		return e.Name
	}
	assert.Equal(t, "Fe[3+]", stableAt(0.5, 1.8))
	assert.Equal(t, "Fe", stableAt(7, -2.5))
	oxide := stableAt(13, 0.8)
	assert.Contains(t, []string{"Fe2O3", "Fe3O4"}, oxide)
}

func TestBuilder_Determinism(t *testing.T) {
	b := New(WithResolution(60))
	ctx := context.Background()

	first, err := b.Build(ctx, ironEntries())
	require.NoError(t, err)
	second, err := b.Build(ctx, ironEntries())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuilder_EmptySet(t *testing.T) {
	_, err := New().Build(context.Background(), nil)
	assert.True(t, errors.Is(err, domain.ErrNoEntries), "want ErrNoEntries, got %v", err)
}

func TestBuilder_DegenerateSet(t *testing.T) {
	// A single comparable species cannot form regions.
	single := []domain.Entry{
		{EntryID: "ni", Phase: domain.PhaseSolid, Composition: map[string]float64{"Ni": 1}},
	}
	_, err := New().Build(context.Background(), single)
	assert.True(t, errors.Is(err, domain.ErrDegenerateSystem), "want ErrDegenerateSystem, got %v", err)

	// Solvent-only species do not count as comparable.
	solventOnly := []domain.Entry{
		{EntryID: "h2o", Phase: domain.PhaseSolid, Composition: map[string]float64{"H": 2, "O": 1}},
		{EntryID: "h2", Phase: domain.PhaseSolid, Composition: map[string]float64{"H": 2}},
	}
	_, err = New().Build(context.Background(), solventOnly)
	assert.True(t, errors.Is(err, domain.ErrDegenerateSystem), "want ErrDegenerateSystem, got %v", err)
}

func TestBuilder_InvalidEntry(t *testing.T) {
	bad := append(ironEntries(), domain.Entry{EntryID: "broken", Phase: "gas"})
	_, err := New().Build(context.Background(), bad)
	assert.True(t, errors.Is(err, domain.ErrMalformedEntries), "want ErrMalformedEntries, got %v", err)
}

func TestBuilder_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Build(ctx, ironEntries())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuilder_CustomLimits(t *testing.T) {
	limits := domain.Limits{PHMin: 2, PHMax: 12, EMin: -1, EMax: 2}
	d, err := New(WithLimits(limits), WithResolution(40)).Build(context.Background(), ironEntries())
	require.NoError(t, err)

	assert.Equal(t, limits, d.Limits)
	assert.InDelta(t, 2.125, d.PH(0), 1e-9)
	assert.InDelta(t, 11.875, d.PH(39), 1e-9)
}
