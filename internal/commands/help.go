package commands

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"
)

// HelpCommand handles the help command functionality
type HelpCommand struct{}

// HelpOptions holds command-line options for the help command
type HelpOptions struct {
	Help bool `short:"h" long:"help" description:"Show this help message"`
}

// commandHelp describes every registered command
var commandHelp = map[string]string{
	"install": "Download the shared pre-commit configuration for a project type (ansible, terraform or opentofu).",
	"list":    "List the supported project types and the files each one provisions.",
	"verify":  "Check that the provisioned .pre-commit-config.yaml file is valid.",
	"help":    "Show help information for commands.",
}

// Help returns the help text for the help command
func (c *HelpCommand) Help() string {
	return `
Show help for a specific command.

Usage: pre-commit-setup help [COMMAND]

If COMMAND is specified, shows detailed help for that command.
If no command is specified, shows general help.

Available commands:
  install    Download the shared pre-commit configuration for a project type
  list       List supported project types and their files
  verify     Verify the provisioned pre-commit configuration

`
}

// Synopsis returns a short description of the help command
func (c *HelpCommand) Synopsis() string {
	return "Show help for a specific command"
}

// Run executes the help command
func (c *HelpCommand) Run(args []string) int {
	var opts HelpOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[COMMAND]"

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return 1
	}

	if len(remaining) == 0 {
		fmt.Print(c.Help())
		return 0
	}

	command := remaining[0]
	if help, exists := commandHelp[command]; exists {
		fmt.Printf("Command: %s\n\n", command)
		fmt.Printf("Description: %s\n\n", help)
		fmt.Printf("For detailed usage information, run:\n")
		fmt.Printf("  pre-commit-setup %s --help\n", command)
	} else {
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Println("Available commands:")
		names := make([]string, 0, len(commandHelp))
		for name := range commandHelp {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return 1
	}

	return 0
}

// HelpCommandFactory creates a new help command instance
func HelpCommandFactory() (cli.Command, error) {
	return &HelpCommand{}, nil
}
