package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvchecker/pv-checker/internal/cmd"
	cmdopts "github.com/pvchecker/pv-checker/internal/cmd/options"
	"github.com/pvchecker/pv-checker/internal/config"
	"github.com/pvchecker/pv-checker/internal/files"
	"github.com/pvchecker/pv-checker/internal/flags"
)

type InitCmd struct {
	*cmd.BaseCmd
	cfgInitializer config.Initializer
}

func NewInitCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &InitCmd{
		BaseCmd:        baseCmd,
		cfgInitializer: opts.ConfigInitializer,
	}

	cobraCommand := &cobra.Command{
		Use:          "init",
		Short:        "Creates a starter config file",
		Long:         c.longDescription(),
		Args:         cobra.NoArgs,
		RunE:         c.run,
		SilenceUsage: true,
	}

	return cobraCommand, nil
}

func (c *InitCmd) longDescription() string {
	return fmt.Sprintf(
		"Creates a starter config file declaring one example package (default: %s).\n\n"+
			"A path ending in .toml creates a TOML file, any other path creates a YAML file.\n"+
			"An existing file is never overwritten.\n\n"+
			"The config file path can be overridden using the `--%s` flag or the `%s` environment variable.",
		flags.DefaultConfigFile,
		flags.FlagNameConfigFile,
		flags.EnvVarConfigFile,
	)
}

func (c *InitCmd) run(cmd *cobra.Command, _ []string) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	path, err := files.ExpandHome(flags.ConfigFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "🚀 Creating config file at: %s\n", path)

	if err := c.cfgInitializer.Init(path); err != nil {
		return err
	}

	logger.Info("Config file created", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Config file created: %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "📄 Edit it to declare your packages, then run: '%s check'\n", cmd.Root().Name())

	return nil
}
