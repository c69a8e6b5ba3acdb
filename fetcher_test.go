package proxyown_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proxyown "github.com/RxDataLab/go-proxyown"
)

func newTestClient(srv *httptest.Server) *proxyown.Client {
	c := proxyown.NewClient("test@research.org")
	c.APIBase = srv.URL
	c.FilesBase = srv.URL
	c.MaxRetries = 0
	c.BackoffFactor = 0
	return c
}

func TestFetch_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.MaxRetries = 3

	body, err := c.Fetch(srv.URL + "/doc")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetch_ExhaustedRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.MaxRetries = 1

	_, err := c.Fetch(srv.URL + "/doc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, proxyown.ErrFetchFailed))
}

func TestFetch_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Fetch(srv.URL)
	require.NoError(t, err)
	assert.Contains(t, gotUA, "go-proxyown")
	assert.Contains(t, gotUA, "test@research.org")
}

func TestFetchJSON_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	var out map[string]interface{}
	err := c.FetchJSON(srv.URL, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, proxyown.ErrInvalidJSON))
	assert.False(t, errors.Is(err, proxyown.ErrFetchFailed))
}

func TestFetchJSON_Valid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Apple Inc."}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, c.FetchJSON(srv.URL, &out))
	assert.Equal(t, "Apple Inc.", out.Name)
}
