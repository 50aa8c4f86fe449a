package uniprot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hrh3JSON = `{
	"proteinDescription": {
		"recommendedName": {
			"fullName": {"value": "Histamine H3 receptor"}
		}
	},
	"genes": [
		{
			"geneName": {"value": "HRH3"},
			"synonyms": [{"value": "GPCR97"}]
		}
	]
}`

func newTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Path {
		case "/uniprotkb/Q9Y5N1.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(hrh3JSON))
		case "/uniprotkb/BROKEN.json":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestClientFetch(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.URL)

	rec, err := c.Fetch(context.Background(), "Q9Y5N1")
	require.NoError(t, err)

	protein, genes := rec.Names()
	assert.Equal(t, "Histamine H3 receptor", protein)
	assert.Equal(t, []string{"HRH3", "GPCR97"}, genes)
}

func TestClientFetchCaches(t *testing.T) {
	srv, calls := newTestServer(t)
	c := NewClient(srv.URL)

	_, err := c.Fetch(context.Background(), "Q9Y5N1")
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), "Q9Y5N1")
	require.NoError(t, err)

	assert.Equal(t, 1, *calls)
}

func TestClientFetchNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.URL)

	_, err := c.Fetch(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientFetchServerError(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.URL)

	_, err := c.Fetch(context.Background(), "BROKEN")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClientValidate(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.URL)

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"gene_symbol", "hrh3", true},
		{"gene_symbol_case", "HRH3", true},
		{"synonym", "gpcr97", true},
		{"protein_name", "histamine h3 receptor", true},
		{"mismatch", "drd2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := c.Validate(context.Background(), "Q9Y5N1", tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestClientContextCancellation(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Fetch(ctx, "Q9Y5N1")
	assert.Error(t, err)
}
