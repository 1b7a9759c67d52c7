package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/elchem/pourbaix/internal/stability"
	"github.com/elchem/pourbaix/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReport(t *testing.T) {
	entries := []domain.Entry{
		{EntryID: "ni", Name: "Ni", Phase: domain.PhaseSolid, Composition: map[string]float64{"Ni": 1}, Energy: 0},
		{EntryID: "nio", Name: "NiO", Phase: domain.PhaseSolid, Composition: map[string]float64{"Ni": 1, "O": 1}, Energy: -2.23},
		{EntryID: "ni2+", Name: "Ni[2+]", Phase: domain.PhaseIon, Composition: map[string]float64{"Ni": 1}, Energy: -0.47, Charge: 2},
	}
	d, err := stability.New(stability.WithResolution(40)).Build(context.Background(), entries)
	require.NoError(t, err)

	report := BuildReport([]string{"Ni"}, d)

	assert.Contains(t, report, "# Pourbaix report: Ni")
	assert.Contains(t, report, "## Stable domains")
	assert.Contains(t, report, "## Candidate species")
	// Every stable domain is listed.
	for _, dom := range d.Domains {
		assert.Contains(t, report, dom.Label)
	}
	// The shares in the domain table sum to roughly 100%.
	assert.Equal(t, len(d.Domains)+len(d.Entries)+4, strings.Count(report, "|\n"))
}

func TestRender_FallsBackToMarkdown(t *testing.T) {
	md := "# heading\n\nbody\n"
	out := Render(md)
	assert.NotEmpty(t, out)
}
