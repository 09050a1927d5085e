//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the pre-commit-setup binary into bin/
func Build() error {
	fmt.Println("Building pre-commit-setup...")
	return sh.Run("go", "build", "-o", "bin/pre-commit-setup", "./cmd/pre-commit-setup")
}

// Install installs the binary with go install
func Install() error {
	fmt.Println("Installing pre-commit-setup...")
	return sh.Run("go", "install", "./cmd/pre-commit-setup")
}

// Test runs the unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs the unit tests with coverage output
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint runs golangci-lint over the module
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats the source tree
func Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// Clean removes build and coverage artifacts
func Clean() error {
	for _, path := range []string{"bin", "coverage.out"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}
