package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/devhooks/pre-commit-setup/pkg/project"
)

// ListCommand shows the supported project types and what each provisions
type ListCommand struct{}

// ListOptions holds command-line options for the list command
type ListOptions struct {
	Help bool `short:"h" long:"help" description:"Show this help message"`
}

var (
	typeHeadingStyle = lipgloss.NewStyle().Bold(true)
	mappingStyle     = lipgloss.NewStyle().Faint(true)
)

// Help returns the help text for the list command
func (c *ListCommand) Help() string {
	var opts ListOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "list",
		Description: "List the supported project types and the files each one provisions.",
		Examples: []Example{
			{Command: "pre-commit-setup list", Description: "Show all project types"},
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the list command
func (c *ListCommand) Synopsis() string {
	return "List supported project types and their files"
}

// Run executes the list command
func (c *ListCommand) Run(args []string) int {
	var opts ListOptions
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

	var out strings.Builder
	for _, typ := range project.All() {
		out.WriteString(typeHeadingStyle.Render(typ.String()))
		out.WriteString("\n")
		for _, m := range typ.Mappings() {
			out.WriteString("  ")
			out.WriteString(mappingStyle.Render(fmt.Sprintf("%-35s <- %s", m.LocalPath, m.RemotePath)))
			out.WriteString("\n")
		}
		out.WriteString("\n")
	}
	fmt.Print(out.String())

	return 0
}

// ListCommandFactory creates a new list command instance
func ListCommandFactory() (cli.Command, error) {
	return &ListCommand{}, nil
}
