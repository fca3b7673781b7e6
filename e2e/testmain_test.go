//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"testing"
)

func TestMain(m *testing.M) {
	e2eDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	binPath = e2eDir + "/selectauto_e2e"

	// Build the test binary from the parent module
	fmt.Println("Building test binary from main project...")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/selectauto")
	cmd.Dir = ".."
	if err := cmd.Run(); err != nil {
		fmt.Printf("Failed to build test binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	os.Remove(binPath)
	os.Exit(code)
}
