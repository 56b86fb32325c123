package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute runs the matroidx command line and exits 1 on error.
// SIGINT and SIGTERM cancel the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app is the state shared by all subcommands.
type app struct {
	log       *logrus.Logger
	debug     bool
	logLevel  string
	logFormat string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{log: logrus.New()}

	cmd := &cobra.Command{
		Use:          "matroidx",
		Short:        "Maximum common independent sets of graphic and transversal matroids",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setupLogger(stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log every augmentation (same as --log-level debug)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warning", "log level: panic|fatal|error|warning|info|debug|trace")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text|json")

	cmd.AddCommand(solveCmd(a), verifyCmd(a), catalogCmd())

	return cmd
}

func (a *app) setupLogger(w io.Writer) error {
	lvl, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	if a.debug {
		lvl = logrus.DebugLevel
	}

	switch a.logFormat {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format %q (expected text|json)", a.logFormat)
	}
	a.log.SetOutput(w)
	a.log.SetLevel(lvl)

	return nil
}
