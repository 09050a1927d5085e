package commands

import (
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
)

// HelpFormatter provides standardized help formatting for all commands
type HelpFormatter struct {
	Command     string
	Description string
	Examples    []Example
	Notes       []string
}

// Example represents a command example
type Example struct {
	Command     string
	Description string
}

// FormatHelp generates standardized help text for a command
func (h *HelpFormatter) FormatHelp(parser *flags.Parser) string {
	var result strings.Builder

	if h.Description != "" {
		result.WriteString(fmt.Sprintf("%s\n\n", h.Description))
	}

	if len(h.Examples) > 0 {
		result.WriteString("Examples:\n")
		for _, example := range h.Examples {
			if example.Description != "" {
				result.WriteString(
					fmt.Sprintf("  %s  # %s\n", example.Command, example.Description),
				)
			} else {
				result.WriteString(fmt.Sprintf("  %s\n", example.Command))
			}
		}
		result.WriteString("\n")
	}

	if len(h.Notes) > 0 {
		result.WriteString("Notes:\n")
		for _, note := range h.Notes {
			result.WriteString(fmt.Sprintf("  • %s\n", note))
		}
		result.WriteString("\n")
	}

	var helpBuf strings.Builder
	parser.WriteHelp(&helpBuf)
	result.WriteString(helpBuf.String())

	return result.String()
}
