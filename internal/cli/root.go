// Package cli implements the prophecy command-line tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
	"github.com/zapponejosh/prophecy-cycles/internal/logger"
	"github.com/zapponejosh/prophecy-cycles/internal/prophecy"
)

// app carries flag values and the loaded service to every subcommand.
type app struct {
	format   string
	logLevel string

	log *slog.Logger
	svc *prophecy.Service
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "prophecy",
		Short: "Browse and compare prophetic cycles across traditions",
		Long: `prophecy reads the built-in catalog of prophetic cycles and prints
cycles, traditions, the event timeline, the 2025 convergence and
side-by-side comparisons. Output is a table, JSON or YAML.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.format, "format", "f", formatTable, "output format: table, json, yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		a.cyclesCmd(),
		a.traditionsCmd(),
		a.timelineCmd(),
		a.convergenceCmd(),
		a.compareCmd(),
		a.exportCmd(),
	)
	return root
}

// setup validates global flags, logs to stderr and loads the catalog.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := checkFormat(a.format); err != nil {
		return err
	}

	a.log = logger.SetupWriter(cmd.ErrOrStderr(), a.logLevel, "text")

	svc, err := prophecy.Load()
	if err != nil {
		if errors.Is(err, catalog.ErrIntegrity) {
			a.log.Error("catalog failed integrity checks", slog.Any("error", err))
		}
		return fmt.Errorf("load catalog: %w", err)
	}
	a.svc = svc

	a.log.Debug("catalog loaded", slog.Int("cycles", len(svc.AllCycles())))
	return nil
}
