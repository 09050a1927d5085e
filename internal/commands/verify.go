package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/devhooks/pre-commit-setup/pkg/config"
)

// VerifyCommand checks the provisioned .pre-commit-config.yaml
type VerifyCommand struct{}

// VerifyOptions holds command-line options for the verify command
type VerifyOptions struct {
	Config  string `short:"c" long:"config"  description:"Path to the pre-commit config file" default:".pre-commit-config.yaml"`
	Verbose bool   `short:"v" long:"verbose" description:"List configured repos and hooks"`
	Help    bool   `short:"h" long:"help"    description:"Show this help message"`
}

// Help returns the help text for the verify command
func (c *VerifyCommand) Help() string {
	var opts VerifyOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "verify",
		Description: "Verify the provisioned .pre-commit-config.yaml file.",
		Examples: []Example{
			{Command: "pre-commit-setup verify", Description: "Check the configuration file"},
			{Command: "pre-commit-setup verify --verbose", Description: "Also list repos and hooks"},
		},
		Notes: []string{
			"Checks the syntax and structure of the configuration file.",
			"Returns exit code 0 if valid, non-zero if there are errors.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the verify command
func (c *VerifyCommand) Synopsis() string {
	return "Verify the provisioned pre-commit configuration"
}

// Run executes the verify command
func (c *VerifyCommand) Run(args []string) int {
	var opts VerifyOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	_, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return 1
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("Error: failed to load configuration: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: configuration is invalid: %v\n", err)
		return 1
	}

	fmt.Printf("Configuration is valid: %d repos, %d hooks\n", len(cfg.Repos), cfg.HookCount())
	if opts.Verbose {
		for _, repo := range cfg.Repos {
			fmt.Printf("  %s", repo.Repo)
			if repo.Rev != "" {
				fmt.Printf(" @ %s", repo.Rev)
			}
			fmt.Println()
			for _, hook := range repo.Hooks {
				fmt.Printf("    - %s\n", hook.ID)
			}
		}
	}
	return 0
}

// VerifyCommandFactory creates a new verify command instance
func VerifyCommandFactory() (cli.Command, error) {
	return &VerifyCommand{}, nil
}
