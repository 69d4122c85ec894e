//go:build docsgen_cli
// +build docsgen_cli

package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra/doc"

	"github.com/pvchecker/pv-checker/cmd"
	internalcmd "github.com/pvchecker/pv-checker/internal/cmd"
	"github.com/pvchecker/pv-checker/internal/files"
)

// main writes Markdown and man page references for every command.
// It assumes it is run from the repository root.
func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "pv-checker.docsgen",
		Level:  hclog.Info,
		Output: os.Stderr,
	})

	// Paths relative to the repository root.
	docsPath := "./docs/commands/"
	manPath := "./docs/man/"

	rootCmd, err := cmd.NewRootCmd(&cmd.RootCmd{BaseCmd: &internalcmd.BaseCmd{}})
	if err != nil {
		logger.Error("failed to create root command for docs generation", "error", err)
		os.Exit(1)
	}
	rootCmd.DisableAutoGenTag = true

	for _, dir := range []string{docsPath, manPath} {
		if err := os.RemoveAll(dir); err != nil {
			logger.Error("failed to clear docs directory", "path", dir, "error", err)
			os.Exit(1)
		}
		if err := files.EnsureAtLeastRegularDir(dir); err != nil {
			logger.Error("failed to create docs directory", "path", dir, "error", err)
			os.Exit(1)
		}
	}

	if err := doc.GenMarkdownTree(rootCmd, docsPath); err != nil {
		logger.Error("failed to generate CLI docs", "error", err)
		os.Exit(1)
	}

	header := &doc.GenManHeader{
		Title:   "PV-CHECKER",
		Section: "1",
		Source:  "pv-checker " + cmd.Version(),
	}
	if err := doc.GenManTree(rootCmd, header, manPath); err != nil {
		logger.Error("failed to generate man pages", "error", err)
		os.Exit(1)
	}

	logger.Info("CLI docs generated", "markdown", docsPath, "man", manPath)
}
