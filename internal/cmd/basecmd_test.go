package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/pvchecker/pv-checker/internal/flags"
)

func resetLogFlags(t *testing.T) {
	t.Helper()

	prevPath, prevLevel := flags.LogPath, flags.LogLevel
	t.Cleanup(func() {
		flags.LogPath = prevPath
		flags.LogLevel = prevLevel
	})
}

func TestBaseCmd_Logger_UsesInjected(t *testing.T) {
	t.Parallel()

	logger := hclog.NewNullLogger()
	c := &BaseCmd{}
	c.SetLogger(logger)

	got, err := c.Logger()
	require.NoError(t, err)
	require.Equal(t, logger, got)
}

func TestBaseCmd_Logger_WritesToLogPath(t *testing.T) {
	resetLogFlags(t)

	logPath := filepath.Join(t.TempDir(), "pv-checker.log")
	flags.LogPath = logPath
	flags.LogLevel = "debug"

	c := &BaseCmd{}
	logger, err := c.Logger()
	require.NoError(t, err)
	require.True(t, logger.IsDebug())

	logger.Debug("checking packages", "count", 2)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "checking packages")
	require.Contains(t, string(data), "count=2")

	// Cached after first use.
	again, err := c.Logger()
	require.NoError(t, err)
	require.Equal(t, logger, again)
}

func TestBaseCmd_Logger_LevelFromEnv(t *testing.T) {
	resetLogFlags(t)
	flags.LogPath = ""
	flags.LogLevel = ""
	t.Setenv(flags.EnvVarLogLevel, "WARN")
	t.Setenv(flags.EnvVarLogPath, "")

	logger, err := (&BaseCmd{}).Logger()
	require.NoError(t, err)
	require.True(t, logger.IsWarn())
	require.False(t, logger.IsInfo())
}

func TestBaseCmd_Logger_UnknownLevelFallsBack(t *testing.T) {
	resetLogFlags(t)
	flags.LogPath = ""
	flags.LogLevel = "loud"

	logger, err := (&BaseCmd{}).Logger()
	require.NoError(t, err)
	require.True(t, logger.IsInfo())
	require.False(t, logger.IsDebug())
}

func TestBaseCmd_Logger_BadLogPath(t *testing.T) {
	resetLogFlags(t)
	flags.LogPath = filepath.Join(t.TempDir(), "missing", "dir", "pv-checker.log")

	_, err := (&BaseCmd{}).Logger()
	require.ErrorContains(t, err, "failed to open log file")
}
