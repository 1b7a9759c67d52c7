package plot

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/elchem/pourbaix/internal/stability"
	"github.com/elchem/pourbaix/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDiagram(t *testing.T) *domain.Diagram {
	t.Helper()
	entries := []domain.Entry{
		{EntryID: "ni", Name: "Ni", Phase: domain.PhaseSolid, Composition: map[string]float64{"Ni": 1}, Energy: 0},
		{EntryID: "nio", Name: "NiO", Phase: domain.PhaseSolid, Composition: map[string]float64{"Ni": 1, "O": 1}, Energy: -2.23},
		{EntryID: "ni2+", Name: "Ni[2+]", Phase: domain.PhaseIon, Composition: map[string]float64{"Ni": 1}, Energy: -0.47, Charge: 2, Concentration: 1e-6},
	}
	d, err := stability.New(stability.WithResolution(50)).Build(context.Background(), entries)
	require.NoError(t, err)
	return d
}

func TestRenderer_Render(t *testing.T) {
	d := testDiagram(t)
	out := filepath.Join(t.TempDir(), "Ni.png")

	require.NoError(t, New().Render(d, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err, "output should be a decodable PNG")
	assert.Positive(t, img.Bounds().Dx())
}

func TestRenderer_Render_Overwrites(t *testing.T) {
	d := testDiagram(t)
	out := filepath.Join(t.TempDir(), "Ni.png")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0o644))

	require.NoError(t, New().Render(d, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(len("stale")))
}

func TestRenderer_Render_UnwritablePath(t *testing.T) {
	d := testDiagram(t)
	err := New().Render(d, filepath.Join(t.TempDir(), "missing", "dir", "Ni.png"))
	require.Error(t, err)
}

func TestRenderer_Options(t *testing.T) {
	d := testDiagram(t)
	out := filepath.Join(t.TempDir(), "bare.png")

	r := New(WithoutDomainLabels(), WithoutReferenceLines(), WithTitle("Ni system"))
	require.NoError(t, r.Render(d, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
