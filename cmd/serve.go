package cmd

import (
	"context"
	stdErrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvchecker/pv-checker/internal/checker"
	"github.com/pvchecker/pv-checker/internal/cmd"
	cmdopts "github.com/pvchecker/pv-checker/internal/cmd/options"
	"github.com/pvchecker/pv-checker/internal/config"
	"github.com/pvchecker/pv-checker/internal/daemon"
	"github.com/pvchecker/pv-checker/internal/flags"
)

const (
	flagNameAddr            = "addr"
	flagNameCORSEnable      = "cors-enable"
	flagNameCORSAllowOrigin = "cors-allow-origin"
	flagNameShutdownTimeout = "shutdown-timeout"
)

type ServeCmd struct {
	*cmd.BaseCmd
	cfgLoader       config.Loader
	checkerOpts     []checker.Option
	addr            string
	corsEnabled     bool
	corsOrigins     []string
	shutdownTimeout time.Duration
	cache           cmd.CacheFlags
}

func NewServeCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &ServeCmd{
		BaseCmd:     baseCmd,
		cfgLoader:   opts.ConfigLoader,
		checkerOpts: opts.CheckerOptions,
	}

	cobraCommand := &cobra.Command{
		Use:   "serve",
		Short: "Serves version checks over an HTTP API",
		Long:  "Starts an HTTP API answering version checks for the packages in the config file.\n\n" +
			"The config file is read on every request, so edits take effect without a restart.\n" +
			"The server stops gracefully on SIGINT or SIGTERM.",
		Args:         cobra.NoArgs,
		RunE:         c.run,
		SilenceUsage: true,
	}

	cobraCommand.Flags().StringVar(
		&c.addr,
		flagNameAddr,
		daemon.DefaultAPIAddr(),
		"Address for the API to bind to",
	)
	cobraCommand.Flags().BoolVar(
		&c.corsEnabled,
		flagNameCORSEnable,
		false,
		"Enable CORS for the API",
	)
	cobraCommand.Flags().StringSliceVar(
		&c.corsOrigins,
		flagNameCORSAllowOrigin,
		nil,
		"Origins allowed to call the API when CORS is enabled (can be repeated)",
	)
	cobraCommand.Flags().DurationVar(
		&c.shutdownTimeout,
		flagNameShutdownTimeout,
		daemon.DefaultAPIShutdownTimeout(),
		"How long to wait for in-flight requests when shutting down",
	)
	c.cache.Register(cobraCommand.Flags())

	return cobraCommand, nil
}

func (c *ServeCmd) run(cobraCmd *cobra.Command, _ []string) error {
	logger, err := c.Logger()
	if err != nil {
		return err
	}

	// Fail fast on a broken config, later edits are picked up per request.
	cfg, err := c.cfgLoader.Load(flags.ConfigFile)
	if err != nil {
		return err
	}

	chk, err := cmd.NewChecker(logger, &c.cache, c.checkerOpts...)
	if err != nil {
		return err
	}

	svc, err := daemon.NewPackageService(logger, c.cfgLoader, flags.ConfigFile, chk)
	if err != nil {
		return err
	}

	deps, err := daemon.NewAPIDependencies(logger, svc, c.addr)
	if err != nil {
		return err
	}

	server, err := daemon.NewAPIServer(
		deps,
		daemon.WithCORSEnabled(c.corsEnabled),
		daemon.WithCORSAllowOrigins(c.corsOrigins),
		daemon.WithShutdownTimeout(c.shutdownTimeout),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cobraCmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting API server", "addr", c.addr, "packages", len(cfg.Packages()))
	fmt.Fprintf(cobraCmd.OutOrStdout(), "🚀 Serving %d package(s) on http://%s\n", len(cfg.Packages()), c.addr)

	if err := server.Start(ctx); err != nil && !stdErrors.Is(err, context.Canceled) {
		return err
	}

	fmt.Fprintln(cobraCmd.OutOrStdout(), "👋 API server stopped")

	return nil
}
