// Package installer runs the sequential fetch-and-write loop that
// provisions a project type's configuration files.
package installer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/devhooks/pre-commit-setup/pkg/download"
	"github.com/devhooks/pre-commit-setup/pkg/project"
)

// OverwritePolicy decides what happens when a destination file already exists
type OverwritePolicy int

// Overwrite policies
const (
	// PolicyPrompt asks once, up front, whether existing files may be
	// replaced; declining aborts without touching anything.
	PolicyPrompt OverwritePolicy = iota
	// PolicyForce replaces existing files without asking
	PolicyForce
	// PolicySkip leaves existing files alone and only fetches missing ones
	PolicySkip
)

// ErrDeclined is returned when the user answers the overwrite prompt
// with anything other than yes.
var ErrDeclined = errors.New("overwrite declined")

// Status line colors, matching the check-style output of pre-commit itself
var (
	writtenColor = color.New(color.FgGreen)
	skippedColor = color.New(color.FgCyan)
	failedColor  = color.New(color.FgRed)
)

// Installer fetches a project type's file mappings in order, aborting
// on the first failure.
type Installer struct {
	manager *download.Manager
	stdin   io.Reader
	stdout  io.Writer
	policy  OverwritePolicy
}

// New creates an installer that downloads through manager. Prompts are
// read from stdin and status lines go to stdout.
func New(manager *download.Manager, policy OverwritePolicy, stdin io.Reader, stdout io.Writer) *Installer {
	return &Installer{
		manager: manager,
		policy:  policy,
		stdin:   stdin,
		stdout:  stdout,
	}
}

// Install provisions every file mapping of the given project type. The
// downloads are sequential and blocking; the first transport or write
// error aborts the remaining mappings.
func (inst *Installer) Install(ctx context.Context, typ project.Type) error {
	mappings := typ.Mappings()

	existing := existingTargets(mappings)
	if len(existing) > 0 && inst.policy == PolicyPrompt {
		if err := inst.confirmOverwrite(existing); err != nil {
			return err
		}
	}

	for _, m := range mappings {
		if inst.policy == PolicySkip {
			if _, err := os.Stat(m.LocalPath); err == nil {
				skippedColor.Fprintf(inst.stdout, "  skipped %s (already exists)\n", m.LocalPath)
				continue
			}
		}

		if err := inst.manager.Fetch(ctx, m.RemotePath, m.LocalPath); err != nil {
			failedColor.Fprintf(inst.stdout, "  failed  %s\n", m.LocalPath)
			return fmt.Errorf("failed to provision %s: %w", m.LocalPath, err)
		}
		writtenColor.Fprintf(inst.stdout, "  written %s\n", m.LocalPath)
	}

	return nil
}

// confirmOverwrite asks a single y/N question covering all files that
// would be replaced.
func (inst *Installer) confirmOverwrite(existing []string) error {
	fmt.Fprintf(inst.stdout, "The following files already exist and will be overwritten:\n")
	for _, path := range existing {
		fmt.Fprintf(inst.stdout, "  %s\n", path)
	}
	fmt.Fprintf(inst.stdout, "Continue? [y/N]: ")

	reader := bufio.NewReader(inst.stdin)
	answer, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return ErrDeclined
	}
}

func existingTargets(mappings []project.FileMapping) []string {
	var existing []string
	for _, m := range mappings {
		if _, err := os.Stat(m.LocalPath); err == nil {
			existing = append(existing, m.LocalPath)
		}
	}
	return existing
}
