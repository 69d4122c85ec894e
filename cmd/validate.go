package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvchecker/pv-checker/internal/checker"
	"github.com/pvchecker/pv-checker/internal/cmd"
	cmdopts "github.com/pvchecker/pv-checker/internal/cmd/options"
	"github.com/pvchecker/pv-checker/internal/config"
	"github.com/pvchecker/pv-checker/internal/errors"
	"github.com/pvchecker/pv-checker/internal/flags"
	"github.com/pvchecker/pv-checker/internal/printer"
)

// summaryValid is reported for packages that passed validation.
const summaryValid = "valid"

type ValidateCmd struct {
	*cmd.BaseCmd
	cfgLoader   config.Loader
	checkerOpts []checker.Option
	format      cmd.OutputFormat
	filters     map[string]string
}

func NewValidateCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ValidateCmd{
		BaseCmd:     baseCmd,
		cfgLoader:   opts.ConfigLoader,
		checkerOpts: opts.CheckerOptions,
		format:      cmd.FormatText,
	}

	cobraCommand := &cobra.Command{
		Use:   "validate",
		Short: "Validates the config file without contacting any provider",
		Long:  "Validates every package declared in the config file: its URL, package type and version type.\n\n" +
			"No network requests are made. The command fails when at least one package is invalid.",
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

	return cobraCommand, nil
}

func (c *ValidateCmd) run(cobraCmd *cobra.Command, _ []string) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	validationPrinter, err := printer.NewValidationPrinter()
	if err != nil {
		return err
	}

	handler, err := cmd.NewReportHandler(c.format, cobraCmd.OutOrStdout(), validationPrinter)
	if err != nil {
		return err
	}

	cfg, err := c.cfgLoader.Load(flags.ConfigFile)
	if err != nil {
		return handleError(handler, err)
	}

	// Validation never reaches the network, so the response cache is not involved.
	chk, err := cmd.NewChecker(logger, nil, c.checkerOpts...)
	if err != nil {
		return handleError(handler, err)
	}

	pkgs, err := cfg.Select(c.filters)
	if err != nil {
		return handleError(handler, err)
	}
	reports := make([]checker.Report, 0, len(pkgs))
	invalid := 0

	for i, p := range pkgs {
		result := checker.Result{Index: i, Package: p, Err: chk.Validate(p)}
		report := result.Report()
		if result.OK() {
			report.Summary = summaryValid
		} else {
			invalid++
			logger.Debug("Invalid package", "package", p.Name, "error", result.Err)
		}
		reports = append(reports, report)
	}

	if err := handler.HandleResults(reports...); err != nil {
		return err
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d packages failed validation", errors.ErrInvalidPackage, invalid, len(pkgs))
	}

	return nil
}
