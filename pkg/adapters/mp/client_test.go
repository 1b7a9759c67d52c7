package mp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elchem/pourbaix/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "Fe", r.URL.Query().Get("elements"))

		w.Header().Set("Content-Type", "application/json")
		// Mixed record shapes: one with an explicit composition, one
		// carrying only a formula with an embedded charge.
		w.Write([]byte(`{"data": [
			{"entry_id": "mp-13", "phase_type": "solid", "composition": {"Fe": 2, "O": 3}, "energy": -7.69},
			{"entry_id": "ion-1", "phase_type": "ion", "formula": "Fe[2+]", "energy": -0.82}
		]}`))
	}))
	defer srv.Close()

	client := New("secret", WithBaseURL(srv.URL))
	entries, err := client.FetchEntries(context.Background(), "Fe")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.PhaseSolid, entries[0].Phase)
	assert.Equal(t, map[string]float64{"Fe": 2, "O": 3}, entries[0].Composition)

	assert.Equal(t, domain.PhaseIon, entries[1].Phase)
	assert.Equal(t, 2.0, entries[1].Charge)
	assert.Equal(t, domain.DefaultConcentration, entries[1].Concentration)
}

func TestClient_FetchEntries_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New("secret", WithBaseURL(srv.URL)).FetchEntries(context.Background(), "Xx")
	assert.True(t, errors.Is(err, domain.ErrEntriesNotFound), "want ErrEntriesNotFound, got %v", err)
}

func TestClient_FetchEntries_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"entry_id": "x", "phase_type": "solid"}]}`))
	}))
	defer srv.Close()

	_, err := New("secret", WithBaseURL(srv.URL)).FetchEntries(context.Background(), "Fe")
	assert.True(t, errors.Is(err, domain.ErrMalformedEntries), "want ErrMalformedEntries, got %v", err)
}

func TestClient_FetchEntries_AuthRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := New("wrong", WithBaseURL(srv.URL)).FetchEntries(context.Background(), "Fe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key rejected")
}
