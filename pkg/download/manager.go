// Package download provides the HTTP fetch-and-write primitive used to
// provision configuration files from the shared hooks repository.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single file download
const DefaultTimeout = 30 * time.Second

// Manager performs sequential, blocking file downloads
type Manager struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	verbose bool
}

// NewManager creates a download manager rooted at baseURL. Remote paths
// passed to Fetch are resolved relative to it.
func NewManager(baseURL string) *Manager {
	return &Manager{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: DefaultTimeout,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithTimeout sets the per-download timeout
func (m *Manager) WithTimeout(timeout time.Duration) *Manager {
	m.timeout = timeout
	m.client.Timeout = timeout
	return m
}

// WithVerbose sets the verbose mode for download messages
func (m *Manager) WithVerbose(verbose bool) *Manager {
	m.verbose = verbose
	return m
}

// BaseURL returns the base URL downloads are resolved against
func (m *Manager) BaseURL() string {
	return m.baseURL
}

// Fetch downloads remotePath (relative to the base URL) and writes the
// response body verbatim to dest, creating parent directories as
// needed. Any transport error or non-success status is returned as an
// error; nothing is retried.
func (m *Manager) Fetch(ctx context.Context, remotePath, dest string) error {
	url := m.baseURL + "/" + strings.TrimPrefix(remotePath, "/")
	if m.verbose {
		fmt.Printf("[INFO] Downloading from %s...\n", url)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", url, err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download from %s: %w", url, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close response body: %v\n", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: HTTP %d for %s", resp.StatusCode, url)
	}

	if dirErr := os.MkdirAll(filepath.Dir(dest), 0o750); dirErr != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dest, dirErr)
	}

	file, err := os.Create(dest) // #nosec G304 -- destination comes from the static file mapping
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", dest, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file: %v\n", closeErr)
		}
	}()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("failed to write file %s: %w", dest, err)
	}

	if m.verbose {
		fmt.Printf("[INFO] Downloaded successfully to %s\n", dest)
	}
	return nil
}
