package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elchem/pourbaix"
	"github.com/elchem/pourbaix/internal/stability"
	"github.com/elchem/pourbaix/pkg/adapters/inmemory"
	"github.com/elchem/pourbaix/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	loader := inmemory.NewFromSets(map[string][]domain.Entry{
		"Ni": {
			{EntryID: "ni", Name: "Ni", Phase: domain.PhaseSolid, Composition: map[string]float64{"Ni": 1}, Energy: 0},
			{EntryID: "nio", Name: "NiO", Phase: domain.PhaseSolid, Composition: map[string]float64{"Ni": 1, "O": 1}, Energy: -2.23},
			{EntryID: "ni2+", Name: "Ni[2+]", Phase: domain.PhaseIon, Composition: map[string]float64{"Ni": 1}, Energy: -0.47, Charge: 2},
		},
		"Xx": {
			{EntryID: "only", Phase: domain.PhaseSolid, Composition: map[string]float64{"Xx": 1}},
		},
	})

	gen, err := pourbaix.New("",
		pourbaix.WithLoader(loader),
		pourbaix.WithBuilder(stability.New(stability.WithResolution(40))),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(NewServer(gen, loader, t.TempDir()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestServer_Elements(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/elements")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"Ni", "Xx"}, body["elements"])
}

func TestServer_DiagramJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/diagrams/Ni.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Element string          `json:"element"`
		Domains []domain.Domain `json:"domains"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Ni", body.Element)
	assert.NotEmpty(t, body.Domains)
}

func TestServer_DiagramPNG(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/diagrams/Ni.png")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestServer_DiagramErrors(t *testing.T) {
	srv := newTestServer(t)

	// Unknown element.
	resp, err := http.Get(srv.URL + "/diagrams/Zr.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Degenerate entry set (a single comparable species).
	resp, err = http.Get(srv.URL + "/diagrams/Xx.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t)

	// Render once so the counter exists.
	resp, err := http.Get(srv.URL + "/diagrams/Ni.png")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
