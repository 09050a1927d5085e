package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `repos:
- repo: https://github.com/ansible/ansible-lint
  rev: v25.1.0
  hooks:
  - id: ansible-lint
    args: [-c, .config/ansible-lint.yml]
- repo: https://github.com/adrienverge/yamllint
  rev: v1.35.1
  hooks:
  - id: yamllint
    args: [-c, .config/yamllint.yml]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".pre-commit-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	require.Len(t, cfg.Repos, 2)
	assert.Equal(t, "https://github.com/ansible/ansible-lint", cfg.Repos[0].Repo)
	assert.Equal(t, "v25.1.0", cfg.Repos[0].Rev)
	assert.Equal(t, 2, cfg.HookCount())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(writeConfig(t, "  \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "repos: [\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:    "no repos",
			config:  Config{},
			wantErr: "no repos",
		},
		{
			name: "missing repo url",
			config: Config{Repos: []Repo{
				{Hooks: []Hook{{ID: "x"}}},
			}},
			wantErr: "missing its repo URL",
		},
		{
			name: "missing rev",
			config: Config{Repos: []Repo{
				{Repo: "https://github.com/ansible/ansible-lint", Hooks: []Hook{{ID: "x"}}},
			}},
			wantErr: "missing a rev",
		},
		{
			name: "local repo needs no rev",
			config: Config{Repos: []Repo{
				{Repo: "local", Hooks: []Hook{{ID: "x"}}},
			}},
		},
		{
			name: "no hooks",
			config: Config{Repos: []Repo{
				{Repo: "local"},
			}},
			wantErr: "defines no hooks",
		},
		{
			name: "hook without id",
			config: Config{Repos: []Repo{
				{Repo: "local", Hooks: []Hook{{Name: "unnamed"}}},
			}},
			wantErr: "without an id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
