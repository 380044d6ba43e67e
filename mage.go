//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	serverBin = "./bin/bzstats"
	mainPkg   = "./cmd"
	lintTool  = "github.com/golangci/golangci-lint/cmd/golangci-lint@v1.55.2"
)

const (
	testServerConfigPath = "test_configs/server.toml"
	e2ePkg               = "./internal/web/e2e/..."
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the bzstats binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, mainPkg)
}

// Run serves the dashboard with configs/server.toml
func Run() error {
	mg.Deps(Build)
	return sh.RunV(serverBin, "serve")
}

// Test runs unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

func Lint() error {
	return sh.RunV("go", "run", lintTool, "run", "./...")
}

// E2E builds the binary and drives the dashboard in a headless browser
func E2E() error {
	mg.Deps(Build)
	bin, err := filepath.Abs(serverBin)
	if err != nil {
		return err
	}
	config, err := filepath.Abs(testServerConfigPath)
	if err != nil {
		return err
	}
	return sh.RunV(
		"go", "test", "-v", "-tags", "e2e", e2ePkg,
		"-server-bin", bin, "-server-config", config,
	)
}
