package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/devhooks/pre-commit-setup/pkg/download"
	"github.com/devhooks/pre-commit-setup/pkg/installer"
	"github.com/devhooks/pre-commit-setup/pkg/project"
	"github.com/devhooks/pre-commit-setup/pkg/scaffold"
)

// InstallCommand provisions the shared hook configuration for one project type
type InstallCommand struct{}

// InstallOptions holds command-line options for the install command
type InstallOptions struct {
	Timeout      time.Duration `          long:"timeout"        description:"Timeout for each file download" default:"30s"`
	Force        bool          `short:"f" long:"force"          description:"Overwrite existing files without asking"`
	SkipExisting bool          `short:"s" long:"skip-existing"  description:"Leave existing files untouched and only fetch missing ones"`
	NoGitignore  bool          `          long:"no-gitignore"   description:"Do not add a .config/ entry to .gitignore"`
	NoAnsibleCfg bool          `          long:"no-ansible-cfg" description:"Do not scaffold ansible.cfg (ansible projects)"`
	Verbose      bool          `short:"v" long:"verbose"        description:"Show download URLs"`
	Help         bool          `short:"h" long:"help"           description:"Show this help message"`
}

// Help returns the help text for the install command
func (c *InstallCommand) Help() string {
	var opts InstallOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "PROJECT-TYPE " + OptionsUsage

	formatter := &HelpFormatter{
		Command:     "install",
		Description: "Download the shared pre-commit configuration for a project type.",
		Examples: []Example{
			{Command: "pre-commit-setup install ansible", Description: "Provision an Ansible project"},
			{Command: "pre-commit-setup install terraform --force", Description: "Overwrite existing files"},
			{Command: "pre-commit-setup install opentofu --skip-existing", Description: "Only fetch missing files"},
		},
		Notes: []string{
			"Supported project types: ansible, terraform, opentofu.",
			"Ansible projects receive lint configs under .config/ plus .pre-commit-config.yaml;",
			"Terraform and OpenTofu projects receive only .pre-commit-config.yaml.",
			"When files already exist you are asked once before anything is overwritten.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the install command
func (c *InstallCommand) Synopsis() string {
	return "Download the shared pre-commit configuration for a project type"
}

// Run executes the install command
func (c *InstallCommand) Run(args []string) int {
	var opts InstallOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "PROJECT-TYPE " + OptionsUsage

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return 1
	}

	if len(remaining) != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one project type is required (ansible, terraform or opentofu)\n\n")
		fmt.Fprint(os.Stderr, c.Help())
		return 1
	}

	typ, err := project.Parse(remaining[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.Force && opts.SkipExisting {
		fmt.Fprintf(os.Stderr, "Error: --force and --skip-existing are mutually exclusive\n")
		return 1
	}

	policy := installer.PolicyPrompt
	switch {
	case opts.Force:
		policy = installer.PolicyForce
	case opts.SkipExisting:
		policy = installer.PolicySkip
	}

	manager := download.NewManager(baseURL()).
		WithTimeout(opts.Timeout).
		WithVerbose(opts.Verbose)
	inst := installer.New(manager, policy, os.Stdin, os.Stdout)

	fmt.Printf("Provisioning pre-commit configuration for %s\n", typ)
	if err := inst.Install(context.Background(), typ); err != nil {
		if errors.Is(err, installer.ErrDeclined) {
			fmt.Println("Aborted; no files were changed")
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if !opts.NoGitignore {
		changed, ignoreErr := scaffold.UpdateGitignore()
		if ignoreErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", ignoreErr)
			return 1
		}
		if changed {
			fmt.Println("  added .config/ to .gitignore")
		}
	}

	if typ == project.Ansible && !opts.NoAnsibleCfg {
		created, cfgErr := scaffold.WriteAnsibleCfg()
		if cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cfgErr)
			return 1
		}
		if created {
			fmt.Println("  created ansible.cfg")
		}
	}

	fmt.Println("Done. Activate the hooks with 'pre-commit install'")
	return 0
}

// baseURL returns the download root, honoring the test/env override
func baseURL() string {
	if override := os.Getenv(BaseURLEnvVar); override != "" {
		return override
	}
	return DefaultBaseURL
}

// InstallCommandFactory creates a new install command instance
func InstallCommandFactory() (cli.Command, error) {
	return &InstallCommand{}, nil
}
