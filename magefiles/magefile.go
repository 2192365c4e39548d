//go:build mage

// Package main contains Mage build targets for the mockup renderer.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir    = "bin"
	binName   = "mockgen"
	cmdPkg    = "./cmd/mockgen"
	outputDir = "mockups"
)

// Default target to run when none is specified.
var Default = Mockups

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests of every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Mockups renders the PNG and PDF mockups into mockups/, then checks them.
func Mockups() error {
	mg.Deps(Build)
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "render", "--out", outputDir, "--format", "png,pdf"); err != nil {
		return err
	}
	return sh.RunV(bin, "check", "--out", outputDir, "--format", "png,pdf")
}

// Clean removes the binary and the rendered mockups.
func Clean() error {
	for _, dir := range []string{binDir, outputDir} {
		if err := sh.Rm(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	return nil
}
