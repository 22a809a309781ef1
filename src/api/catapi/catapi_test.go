package catapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/whiskerworks/spycat/src/api/types"
)

func TestFetchBreedNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/breeds", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Siamese"},{"name":"Maine Coon"},{"name":"Bombay"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil, 0)
	names, err := c.FetchBreedNames(context.Background())
	require.NoError(t, err)
	require.Len(t, names, 3)
	require.Contains(t, names, "Siamese")
	require.Contains(t, names, "Maine Coon")
	require.NotContains(t, names, "Nonexistent Breed")
}

func TestFetchBreedNamesSendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "sekrit", r.Header.Get("x-api-key"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit", nil, 0)
	_, err := c.FetchBreedNames(context.Background())
	require.NoError(t, err)
}

func TestFetchBreedNamesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil, 0)
	_, err := c.FetchBreedNames(context.Background())
	require.ErrorIs(t, err, types.ErrServiceUnavailable)
}

func TestFetchBreedNamesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := NewClient(srv.URL, "", nil, 0)
	_, err := c.FetchBreedNames(context.Background())
	require.ErrorIs(t, err, types.ErrServiceUnavailable)
}

func TestFetchBreedNamesBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", nil, 0)
	_, err := c.FetchBreedNames(context.Background())
	require.ErrorIs(t, err, types.ErrServiceUnavailable)
}
