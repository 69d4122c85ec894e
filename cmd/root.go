package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pvchecker/pv-checker/internal/cmd"
	cmdopts "github.com/pvchecker/pv-checker/internal/cmd/options"
	"github.com/pvchecker/pv-checker/internal/flags"
)

var appVersion = "dev" // Set at build time using -ldflags

// Version returns the pv-checker version.
func Version() string {
	return appVersion
}

type RootCmd struct {
	*cmd.BaseCmd
}

// Execute builds and runs the root command.
func Execute() error {
	rootCmd, err := NewRootCmd(&RootCmd{BaseCmd: &cmd.BaseCmd{}})
	if err != nil {
		return err
	}

	return rootCmd.Execute()
}

// NewRootCmd creates the root command. Without a subcommand it behaves like 'check'.
func NewRootCmd(c *RootCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:           cmd.AppName,
		Short:         "Checks GitHub repositories for their latest commit or tag",
		Long:          c.longDescription(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       appVersion,
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	checkCmd, err := NewCheckCmd(c.BaseCmd, opt...)
	if err != nil {
		return nil, err
	}

	// Running the root command on its own checks every configured package.
	rootCmd.RunE = checkCmd.RunE
	rootCmd.Flags().AddFlagSet(checkCmd.Flags())
	rootCmd.AddCommand(checkCmd)

	fns := []func(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error){
		NewValidateCmd,
		NewInitCmd,
		NewServeCmd,
	}

	for _, fn := range fns {
		tempCmd, err := fn(c.BaseCmd, opt...)
		if err != nil {
			return nil, err
		}
		rootCmd.AddCommand(tempCmd)
	}

	return rootCmd, nil
}

func (c *RootCmd) longDescription() string {
	return `pv-checker reads a list of packages from a configuration file and reports the
latest version of each one: the newest commit or the newest tag of its repository.

Packages are checked concurrently. A failure for one package is reported next to it
and never stops the others.`
}
