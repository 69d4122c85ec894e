// Package cmd contains the building blocks shared by pv-checker's cobra commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/pvchecker/pv-checker/internal/files"
	"github.com/pvchecker/pv-checker/internal/flags"
)

// AppName is the name of the pv-checker binary.
const AppName = "pv-checker"

// BaseCmd holds state shared by every command.
type BaseCmd struct {
	logger hclog.Logger
}

// SetLogger updates the command's logger.
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the command's logger, creating it from the global flags on first use.
// Log output is discarded unless a log path is configured.
func (c *BaseCmd) Logger() (hclog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}

	// Get log level from flags first, then environment, then default.
	logLevel := strings.ToLower(strings.TrimSpace(flags.LogLevel))
	if logLevel == "" {
		logLevel = strings.ToLower(strings.TrimSpace(os.Getenv(flags.EnvVarLogLevel)))
	}
	level := hclog.LevelFromString(logLevel)
	if level == hclog.NoLevel {
		level = hclog.LevelFromString(flags.DefaultLogLevel)
	}

	// Get log path from flags first, then environment.
	logPath := strings.TrimSpace(flags.LogPath)
	if logPath == "" {
		logPath = strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))
	}

	var output io.Writer = io.Discard
	if logPath != "" {
		logPath, err := files.ExpandHome(logPath)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, files.RegularFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", logPath, err)
		}
		output = f
	}

	c.logger = hclog.New(&hclog.LoggerOptions{
		Name:   AppName,
		Level:  level,
		Output: output,
	})

	return c.logger, nil
}
