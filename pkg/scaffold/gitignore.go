// Package scaffold writes the static local files that accompany the
// downloaded configuration: the .gitignore entry for the config
// directory and the ansible.cfg starting point.
package scaffold

import (
	"fmt"
	"os"
	"strings"

	"github.com/devhooks/pre-commit-setup/pkg/project"
)

const gitignoreName = ".gitignore"

// gitignore block appended when the entry is missing
const gitignoreEntry = "\n# Shared pre-commit hook configuration\n" + project.ConfigDir + "/\n"

// UpdateGitignore appends a ".config/" entry to the .gitignore in the
// current directory. A repository without a .gitignore is left alone,
// and an existing entry is never duplicated. It reports whether the
// file was changed.
func UpdateGitignore() (bool, error) {
	data, err := os.ReadFile(gitignoreName)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", gitignoreName, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == project.ConfigDir+"/" {
			return false, nil
		}
	}

	file, err := os.OpenFile(gitignoreName, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", gitignoreName, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file: %v\n", closeErr)
		}
	}()

	if _, err := file.WriteString(gitignoreEntry); err != nil {
		return false, fmt.Errorf("failed to append to %s: %w", gitignoreName, err)
	}
	return true, nil
}
