package installer

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devhooks/pre-commit-setup/pkg/download"
	"github.com/devhooks/pre-commit-setup/pkg/project"
)

// configServer serves stub content for every known remote path and
// records the request order.
func configServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()

	var mu sync.Mutex
	var requested []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requested = append(requested, r.URL.Path)
		mu.Unlock()
		_, _ = w.Write([]byte("# stub config for " + r.URL.Path + "\n"))
	}))
	t.Cleanup(server.Close)

	return server, &requested
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(originalDir) })
	return tempDir
}

func TestInstall_Ansible_WritesAllFiles(t *testing.T) {
	server, _ := configServer(t)
	tempDir := chdirTemp(t)

	var out bytes.Buffer
	inst := New(download.NewManager(server.URL), PolicyPrompt, strings.NewReader(""), &out)

	err := inst.Install(context.Background(), project.Ansible)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tempDir, ".pre-commit-config.yaml"))
	entries, err := os.ReadDir(filepath.Join(tempDir, ".config"))
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestInstall_Terraform_OnlyPreCommitConfig(t *testing.T) {
	server, _ := configServer(t)
	tempDir := chdirTemp(t)

	var out bytes.Buffer
	inst := New(download.NewManager(server.URL), PolicyPrompt, strings.NewReader(""), &out)

	err := inst.Install(context.Background(), project.Terraform)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tempDir, ".pre-commit-config.yaml"))
	assert.NoDirExists(t, filepath.Join(tempDir, ".config"))
}

func TestInstall_AbortsOnFirstFailure(t *testing.T) {
	var mu sync.Mutex
	var requested []string

	// Second file fails; the remaining mappings must not be requested
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requested = append(requested, r.URL.Path)
		count := len(requested)
		mu.Unlock()

		if count == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	chdirTemp(t)

	var out bytes.Buffer
	inst := New(download.NewManager(server.URL), PolicyPrompt, strings.NewReader(""), &out)

	err := inst.Install(context.Background(), project.Ansible)
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, requested, 2, "no downloads should be attempted after the failure")
}

func TestInstall_PromptDeclinedLeavesFilesUntouched(t *testing.T) {
	server, requested := configServer(t)
	tempDir := chdirTemp(t)

	existing := filepath.Join(tempDir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0o600))

	var out bytes.Buffer
	inst := New(download.NewManager(server.URL), PolicyPrompt, strings.NewReader("n\n"), &out)

	err := inst.Install(context.Background(), project.Ansible)
	require.ErrorIs(t, err, ErrDeclined)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))
	assert.Empty(t, *requested)
}

func TestInstall_PromptAcceptedOverwrites(t *testing.T) {
	server, _ := configServer(t)
	tempDir := chdirTemp(t)

	existing := filepath.Join(tempDir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0o600))

	var out bytes.Buffer
	inst := New(download.NewManager(server.URL), PolicyPrompt, strings.NewReader("y\n"), &out)

	err := inst.Install(context.Background(), project.Ansible)
	require.NoError(t, err)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.NotEqual(t, "original", string(content))
	assert.Contains(t, out.String(), "will be overwritten")
}

func TestInstall_ForceOverwritesWithoutPrompt(t *testing.T) {
	server, _ := configServer(t)
	tempDir := chdirTemp(t)

	existing := filepath.Join(tempDir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0o600))

	var out bytes.Buffer
	inst := New(download.NewManager(server.URL), PolicyForce, strings.NewReader(""), &out)

	err := inst.Install(context.Background(), project.Terraform)
	require.NoError(t, err)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.NotEqual(t, "original", string(content))
	assert.NotContains(t, out.String(), "Continue?")
}

func TestInstall_SkipLeavesExistingAndFetchesMissing(t *testing.T) {
	server, requested := configServer(t)
	tempDir := chdirTemp(t)

	existing := filepath.Join(tempDir, ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0o600))

	var out bytes.Buffer
	inst := New(download.NewManager(server.URL), PolicySkip, strings.NewReader(""), &out)

	err := inst.Install(context.Background(), project.Ansible)
	require.NoError(t, err)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))

	// Only the four missing lint configs were fetched
	assert.Len(t, *requested, 4)
	assert.FileExists(t, filepath.Join(tempDir, ".config", "yamllint.yml"))
}
