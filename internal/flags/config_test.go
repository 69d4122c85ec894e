package flags

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestConfig_InitConfigFile_EnvVars(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "env var value with extra white space",
			value:    "  /custom/path/packages.toml  ",
			expected: "/custom/path/packages.toml",
		},
		{
			name:     "env var missing",
			value:    "", // Implementation uses os.Getenv which returns an empty string when missing.
			expected: DefaultConfigFile,
		},
		{
			name:     "env var only white space",
			value:    "   ",
			expected: DefaultConfigFile,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvVarConfigFile, tc.value)
			t.Cleanup(func() {
				// Reset global variable
				ConfigFile = ""
			})

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			initConfigFile(fs)

			require.Equal(t, tc.expected, ConfigFile)
			flag := fs.Lookup(FlagNameConfigFile)
			require.NotNil(t, flag)
			require.Equal(t, FlagShorthandConfigFile, flag.Shorthand)
			require.Equal(t, tc.expected, flag.Value.String())
		})
	}
}

func TestConfig_InitConfigFile_FlagOverridesEnv(t *testing.T) {
	t.Setenv(EnvVarConfigFile, "/from/env.yaml")
	t.Cleanup(func() { ConfigFile = "" })

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	initConfigFile(fs)

	require.NoError(t, fs.Parse([]string{"-c", "/from/flag.toml"}))
	require.Equal(t, "/from/flag.toml", ConfigFile)
}

func TestConfig_InitLogger_EnvVars(t *testing.T) {
	tests := []struct {
		name          string
		pathValue     string
		levelValue    string
		expectedPath  string
		expectedLevel string
	}{
		{
			name:          "defaults",
			expectedPath:  DefaultLogPath,
			expectedLevel: DefaultLogLevel,
		},
		{
			name:          "env vars trimmed and level lower cased",
			pathValue:     " /tmp/pv-checker.log ",
			levelValue:    " DEBUG ",
			expectedPath:  "/tmp/pv-checker.log",
			expectedLevel: "debug",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvVarLogPath, tc.pathValue)
			t.Setenv(EnvVarLogLevel, tc.levelValue)
			t.Cleanup(func() {
				LogPath = ""
				LogLevel = ""
			})

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			initLogger(fs)

			require.Equal(t, tc.expectedPath, LogPath)
			require.Equal(t, tc.expectedLevel, LogLevel)
			require.Equal(t, tc.expectedLevel, fs.Lookup(FlagNameLogLevel).Value.String())
		})
	}
}

func TestInitFlags_RegistersAll(t *testing.T) {
	t.Cleanup(func() {
		ConfigFile = ""
		LogPath = ""
		LogLevel = ""
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	InitFlags(fs)

	for _, name := range []string{FlagNameConfigFile, FlagNameLogPath, FlagNameLogLevel} {
		require.NotNil(t, fs.Lookup(name), name)
	}
}
