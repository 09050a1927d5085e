// Package config parses the provisioned .pre-commit-config.yaml so the
// verify command can report on it.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config mirrors the parts of .pre-commit-config.yaml this tool reports on
type Config struct {
	MinimumPreCommitVersion string   `yaml:"minimum_pre_commit_version,omitempty"`
	Repos                   []Repo   `yaml:"repos"`
	DefaultStages           []string `yaml:"default_stages,omitempty"`
	FailFast                bool     `yaml:"fail_fast,omitempty"`
}

// Repo is one entry of the repos list
type Repo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev,omitempty"`
	Hooks []Hook `yaml:"hooks"`
}

// Hook is one hook of a repo entry
type Hook struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name,omitempty"`
	Args []string `yaml:"args,omitempty"`
}

// Load reads and parses the pre-commit configuration at configPath
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath) // #nosec G304 -- fixed config file name
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("config file %s is empty", configPath)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return &cfg, nil
}

// Validate checks the structural invariants pre-commit itself requires
func (c *Config) Validate() error {
	if len(c.Repos) == 0 {
		return fmt.Errorf("configuration contains no repos")
	}
	for i, repo := range c.Repos {
		if repo.Repo == "" {
			return fmt.Errorf("repo %d is missing its repo URL", i)
		}
		if repo.Repo != "local" && repo.Repo != "meta" && repo.Rev == "" {
			return fmt.Errorf("repo %s is missing a rev", repo.Repo)
		}
		if len(repo.Hooks) == 0 {
			return fmt.Errorf("repo %s defines no hooks", repo.Repo)
		}
		for _, hook := range repo.Hooks {
			if hook.ID == "" {
				return fmt.Errorf("repo %s contains a hook without an id", repo.Repo)
			}
		}
	}
	return nil
}

// HookCount returns the total number of hooks across all repos
func (c *Config) HookCount() int {
	count := 0
	for _, repo := range c.Repos {
		count += len(repo.Hooks)
	}
	return count
}
