// Package main provides the pre-commit-setup command-line tool, which
// provisions shared pre-commit hook configuration into a repository.
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"

	"github.com/devhooks/pre-commit-setup/internal/commands"
)

// Version information set by GoReleaser
var (
	version = "dev"
	commit  = "none"    //nolint:unused // Set by GoReleaser
	date    = "unknown" //nolint:unused // Set by GoReleaser
)

func main() {
	c := cli.NewCLI("pre-commit-setup", version)
	c.Args = os.Args[1:]
	c.HelpFunc = customHelpFunc
	c.Commands = map[string]cli.CommandFactory{
		"install": commands.InstallCommandFactory,
		"list":    commands.ListCommandFactory,
		"verify":  commands.VerifyCommandFactory,
		"help":    commands.HelpCommandFactory,
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitStatus)
}

func customHelpFunc(map[string]cli.CommandFactory) string {
	return `usage: pre-commit-setup [-h] [--version]
                        {install,list,verify}
                        ...

Provision shared pre-commit hook configuration for Ansible, Terraform
and OpenTofu projects.

positional arguments:
  {install,list,verify}
    install             Download the shared pre-commit configuration for a project type
    list                List supported project types and their files
    verify              Verify the provisioned pre-commit configuration

optional arguments:
  -h, --help            show this help message and exit
  --version             show program's version number and exit
`
}
