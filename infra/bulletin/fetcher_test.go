package bulletin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcherFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte("%PDF-1.4 bulletin"))
	}))
	defer srv.Close()

	spoolPath := filepath.Join(t.TempDir(), "MediaRegionaleStradale.pdf")
	cfg := Config{URL: srv.URL, SpoolPath: spoolPath}
	cfg.SetDefaults()
	f := NewHTTPFetcher(cfg)

	body, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 bulletin", string(body))

	spooled, err := os.ReadFile(spoolPath)
	require.NoError(t, err)
	assert.Equal(t, body, spooled)
}

func TestHTTPFetcherStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := Config{URL: srv.URL}
	cfg.SetDefaults()
	_, err := NewHTTPFetcher(cfg).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPFetcherUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := Config{URL: url, TimeoutSeconds: 1}
	cfg.SetDefaults()
	_, err := NewHTTPFetcher(cfg).Fetch(context.Background())
	assert.Error(t, err)
}

func TestHTTPFetcherSpoolFailureIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("doc"))
	}))
	defer srv.Close()

	cfg := Config{URL: srv.URL, SpoolPath: filepath.Join(t.TempDir(), "missing", "dir", "b.pdf")}
	cfg.SetDefaults()
	body, err := NewHTTPFetcher(cfg).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "doc", string(body))
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	assert.Equal(t, DefaultURL, cfg.URL)
	assert.Equal(t, "Lombardia", cfg.Region)
	assert.Equal(t, 10, cfg.TimeoutSeconds)
	assert.Equal(t, 1.84, cfg.DefaultGasoline)
	assert.Equal(t, 1.75, cfg.DefaultDiesel)
	assert.NoError(t, cfg.Validate())

	cfg.URL = "ftp://example.org/bulletin.pdf"
	assert.Error(t, cfg.Validate())
}
