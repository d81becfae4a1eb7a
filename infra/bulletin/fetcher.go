package bulletin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kilianp07/boater/infra/logger"
)

// maxDocumentSize bounds the downloaded bulletin.
const maxDocumentSize = 32 << 20

// HTTPFetcher downloads the bulletin document with a plain GET.
type HTTPFetcher struct {
	url       string
	client    *http.Client
	spoolPath string
	log       logger.Logger
}

// NewHTTPFetcher creates a fetcher from cfg. Defaults must already be applied.
func NewHTTPFetcher(cfg Config) *HTTPFetcher {
	return &HTTPFetcher{
		url:       cfg.URL,
		client:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		spoolPath: cfg.SpoolPath,
		log:       logger.New("bulletin-fetcher"),
	}
}

// Fetch downloads the document. When a spool path is configured the body is
// also written there; a spool failure is logged and ignored.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.log.Warnf("close response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	f.log.Debugw("bulletin downloaded", map[string]any{"url": f.url, "bytes": len(body)})
	if f.spoolPath != "" {
		if err := spool(f.spoolPath, body); err != nil {
			f.log.Warnf("spool bulletin: %v", err)
		}
	}
	return body, nil
}

// spool writes data next to path and renames it into place.
func spool(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bulletin-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
