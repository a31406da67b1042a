package registrar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"coursecatalog-backend/lib/telemetry"
)

func TestClientSearch(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/registrar")
	defer cleanup()

	var gotPath string
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotPath = r.URL.Path
		gotForm = r.PostForm
		w.Write([]byte(searchResultsPage))
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	page, err := client.Search(context.Background(), Query{
		Term:       "Fall 2026",
		School:     "College of Arts and Sciences",
		Department: "CSDS",
	})
	require.NoError(t, err)
	require.Equal(t, searchEndpoint, gotPath)
	require.Equal(t, "Fall 2026", gotForm.Get("term"))
	require.Equal(t, "College of Arts and Sciences", gotForm.Get("school"))
	require.Equal(t, "CSDS", gotForm.Get("department"))
	require.Equal(t, searchResultsPage, string(page))

	// an empty department means the whole school in one request
	_, err = client.Search(context.Background(), Query{
		Term:   "Fall 2026",
		School: "College of Arts and Sciences",
	})
	require.NoError(t, err)
	require.False(t, gotForm.Has("department"))
}

func TestClientSearchStatusError(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:scrapers/registrar")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("registrar offline"))
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	_, err = client.Search(context.Background(), Query{
		Term:   "Fall 2026",
		School: "School of Engineering",
	})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	require.Equal(t, "registrar offline", statusErr.Body)
	// diagnostics carry the body verbatim
	require.Contains(t, err.Error(), "registrar offline")
}
