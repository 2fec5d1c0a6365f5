//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - run the test suite
var Default = Test

// Test runs the full test suite with race detection
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet across the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Lint runs staticcheck if installed
func Lint() error {
	if err := sh.RunV("staticcheck", "./..."); err != nil {
		fmt.Println("staticcheck not available (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
		return err
	}
	return nil
}

// Demo builds and runs the component showcase
func Demo() error {
	mg.Deps(Vet)
	return sh.RunV("go", "run", "./cmd/clicycle-demo")
}

// Build compiles the demo binary into bin/
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/clicycle-demo", "./cmd/clicycle-demo")
}
