//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "vocab"
	pkg     = "./cmd/vocab"
	distDir = "dist"
)

// Default target when running plain `mage`
var Default = Build

func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
		if err != nil || strings.TrimSpace(out) == "" {
			out = "dev"
		}
		version = strings.TrimSpace(out)
	}
	return fmt.Sprintf("-s -w -X main.Version=%s", version)
}

// Build compiles the vocab binary into dist/
func Build() error {
	if err := os.MkdirAll(distDir, 0755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", distDir+"/"+binary, pkg)
}

// Install installs vocab into GOBIN
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), pkg)
}

// Generate regenerates mocks
func Generate() error {
	return sh.RunV("go", "generate", "./...")
}

// Test runs the test suite with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build output
func Clean() error {
	return sh.Rm(distDir)
}
