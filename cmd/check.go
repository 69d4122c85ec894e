package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/pvchecker/pv-checker/internal/checker"
	"github.com/pvchecker/pv-checker/internal/cmd"
	cmdopts "github.com/pvchecker/pv-checker/internal/cmd/options"
	"github.com/pvchecker/pv-checker/internal/cmd/output"
	"github.com/pvchecker/pv-checker/internal/config"
	"github.com/pvchecker/pv-checker/internal/flags"
	"github.com/pvchecker/pv-checker/internal/printer"
)

type CheckCmd struct {
	*cmd.BaseCmd
	cfgLoader   config.Loader
	checkerOpts []checker.Option
	format      cmd.OutputFormat
	filters     map[string]string
	cache       cmd.CacheFlags
}

func NewCheckCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &CheckCmd{
		BaseCmd:     baseCmd,
		cfgLoader:   opts.ConfigLoader,
		checkerOpts: opts.CheckerOptions,
		format:      cmd.FormatText,
	}

	cobraCommand := &cobra.Command{
		Use:          "check",
		Short:        "Checks the latest version of every configured package",
		Long:         c.longDescription(),
		Args:         cobra.NoArgs,
		RunE:         c.run,
		SilenceUsage: true,
	}

	allowed := cmd.AllowedOutputFormats()
	cobraCommand.Flags().Var(
		&c.format,
		cmd.FlagNameFormat,
		fmt.Sprintf("Specify the output format (one of: %s)", allowed.String()),
	)
	cmd.RegisterFilterFlag(cobraCommand.Flags(), &c.filters)
	c.cache.Register(cobraCommand.Flags())

	return cobraCommand, nil
}

func (c *CheckCmd) longDescription() string {
	return fmt.Sprintf(
		"Checks the latest version of every package declared in the config file (default: %s).\n\n"+
			"In text output each package is printed as soon as its check completes, followed by a summary.\n"+
			"JSON and YAML output list every package in configuration order.\n\n"+
			"The config file path can be overridden using the `--%s` flag or the `%s` environment variable.",
		flags.DefaultConfigFile,
		flags.FlagNameConfigFile,
		flags.EnvVarConfigFile,
	)
}

func (c *CheckCmd) run(cobraCmd *cobra.Command, _ []string) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	reportPrinter, err := printer.NewReportPrinter()
	if err != nil {
		return err
	}

	handler, err := cmd.NewReportHandler(c.format, cobraCmd.OutOrStdout(), reportPrinter)
	if err != nil {
		return err
	}

	cfg, err := c.cfgLoader.Load(flags.ConfigFile)
	if err != nil {
		return handleError(handler, err)
	}

	chk, err := cmd.NewChecker(logger, &c.cache, c.checkerOpts...)
	if err != nil {
		return handleError(handler, err)
	}

	pkgs, err := cfg.Select(c.filters)
	if err != nil {
		return handleError(handler, err)
	}
	logger.Info("Checking packages", "count", len(pkgs), "config", cfg.Path())

	ctx, stop := signal.NotifyContext(cobraCmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Text output is streamed as each check completes.
	if text, ok := handler.(*output.TextHandler[checker.Report]); ok {
		results := chk.Run(ctx, pkgs, func(r checker.Result) {
			if err := text.HandleResult(r.Report()); err != nil {
				logger.Error("Failed to print result", "package", r.Package.Name, "error", err)
			}
		})
		text.Finish(len(results))
		logSummary(logger, results)
		return nil
	}

	results := chk.Run(ctx, pkgs, nil)
	logSummary(logger, results)

	return handler.HandleResults(checker.Reports(results)...)
}

// handleError renders err with h and returns it, so the command exits with a failure.
func handleError(h output.Handler[checker.Report], err error) error {
	if handlerErr := h.HandleError(err); handlerErr != nil {
		return handlerErr
	}
	return err
}

func logSummary(logger hclog.Logger, results []checker.Result) {
	succeeded, failed := checker.Summary(results)
	logger.Info("Check complete", "succeeded", succeeded, "failed", failed)
}
