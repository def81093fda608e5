// Package cmd implements the freqfilter command line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

type globalFlags struct {
	configPath string
	verbose    bool
	logFormat  string
}

// globalState holds everything a command touches outside of its arguments, so
// tests can swap the file system, streams and environment.
type globalState struct {
	ctx context.Context

	fs        afero.Fs
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(key string) (string, bool)

	logger *logrus.Logger
	flags  globalFlags
}

func newGlobalState(ctx context.Context) *globalState {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	return &globalState{
		ctx:       ctx,
		fs:        afero.NewOsFs(),
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
		logger:    logger,
		flags:     globalFlags{logFormat: "text"},
	}
}

func rootFlagSet(flags *globalFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	fs.StringVarP(&flags.configPath, "config", "c", flags.configPath, "TOML config file")
	fs.BoolVarP(&flags.verbose, "verbose", "v", flags.verbose, "enable debug logging")
	fs.StringVar(&flags.logFormat, "log-format", flags.logFormat, "log format: text or json")
	return fs
}

func newRootCommand(gs *globalState) *cobra.Command {
	root := &cobra.Command{
		Use:           "freqfilter",
		Short:         "Count and filter word sequence frequencies",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return gs.setupLogger()
		},
	}

	root.PersistentFlags().AddFlagSet(rootFlagSet(&gs.flags))
	root.SetIn(gs.stdin)
	root.SetOut(gs.stdout)
	root.SetErr(gs.stderr)

	root.AddCommand(
		getCmdCount(gs),
		getCmdVersion(gs),
	)
	return root
}

func (gs *globalState) setupLogger() error {
	gs.logger.SetOutput(gs.stderr)
	if gs.flags.verbose {
		gs.logger.SetLevel(logrus.DebugLevel)
	}

	switch gs.flags.logFormat {
	case "text":
		gs.logger.SetFormatter(&logrus.TextFormatter{})
	case "json":
		gs.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format `%s`", gs.flags.logFormat)
	}
	return nil
}

// Execute runs the command line and exits the process on failure.
func Execute() {
	gs := newGlobalState(context.Background())

	if err := newRootCommand(gs).ExecuteContext(gs.ctx); err != nil {
		gs.logger.WithError(err).Error("freqfilter failed")
		os.Exit(1)
	}
}
