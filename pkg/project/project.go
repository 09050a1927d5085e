// Package project defines the supported project types and the static
// file mappings each type provisions into a consumer repository.
package project

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Type identifies a supported project type
type Type string

// Supported project types
const (
	Ansible   Type = "ansible"
	Terraform Type = "terraform"
	OpenTofu  Type = "opentofu"
)

// ConfigDir is the directory shared lint configuration is written to
const ConfigDir = ".config"

// PreCommitConfigName is the top-level pre-commit configuration file name
const PreCommitConfigName = ".pre-commit-config.yaml"

// FileMapping pairs a remote file path (relative to the base URL) with
// the local destination path it is written to.
type FileMapping struct {
	RemotePath string
	LocalPath  string
}

// lint configs provisioned for Ansible projects; Terraform and OpenTofu
// projects only receive their pre-commit config template
var ansibleMappings = []FileMapping{
	{RemotePath: "ansible/ansible-lint.yml", LocalPath: filepath.Join(ConfigDir, "ansible-lint.yml")},
	{RemotePath: "ansible/yamllint.yml", LocalPath: filepath.Join(ConfigDir, "yamllint.yml")},
	{RemotePath: "ansible/ruff.toml", LocalPath: filepath.Join(ConfigDir, "ruff.toml")},
	{RemotePath: "ansible/pylintrc", LocalPath: filepath.Join(ConfigDir, "pylintrc")},
}

var preCommitTemplates = map[Type]string{
	Ansible:   "ansible/pre-commit-config.yaml",
	Terraform: "terraform/pre-commit-config.yaml",
	OpenTofu:  "opentofu/pre-commit-config.yaml",
}

// All returns the supported project types in display order
func All() []Type {
	return []Type{Ansible, Terraform, OpenTofu}
}

// Parse resolves a CLI selector string to a project type
func Parse(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Ansible:
		return Ansible, nil
	case Terraform:
		return Terraform, nil
	case OpenTofu:
		return OpenTofu, nil
	default:
		return "", fmt.Errorf("unknown project type %q (expected one of: ansible, terraform, opentofu)", s)
	}
}

// Mappings returns every file the given project type provisions, the
// pre-commit config template first followed by the lint configs.
func (t Type) Mappings() []FileMapping {
	mappings := []FileMapping{
		{RemotePath: preCommitTemplates[t], LocalPath: PreCommitConfigName},
	}
	if t == Ansible {
		mappings = append(mappings, ansibleMappings...)
	}
	return mappings
}

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}
