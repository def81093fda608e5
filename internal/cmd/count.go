package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/e11jah/bst/frequency"
	"github.com/e11jah/bst/internal/config"
)

type cmdCount struct {
	gs *globalState

	minPrefixLen int
	maxPrefixLen int
	cutoff       int
	cutoffs      []int
	format       string
}

func (c *cmdCount) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	fs.IntVar(&c.minPrefixLen, "min", 1, "shortest prefix length, in words")
	fs.IntVar(&c.maxPrefixLen, "max", 1, "longest prefix length, in words")
	fs.IntVar(&c.cutoff, "cutoff", 1, "drop prefixes occurring fewer times than this")
	fs.IntSliceVar(&c.cutoffs, "cutoffs", nil, "one cutoff per prefix length, overrides --cutoff")
	fs.StringVarP(&c.format, "format", "f", config.FormatText, "output format: text, json or yaml")
	return fs
}

// config consolidates defaults, the config file, the environment and the
// flags that were set explicitly, in that order.
func (c *cmdCount) config(flags *pflag.FlagSet) (*config.Config, error) {
	conf := config.NewConfig()
	if path := c.gs.flags.configPath; path != "" {
		if err := conf.Load(c.gs.fs, path); err != nil {
			return nil, err
		}
	}
	if err := conf.LoadEnv(c.gs.lookupEnv); err != nil {
		return nil, err
	}

	if flags.Changed("min") {
		conf.MinPrefixLen = c.minPrefixLen
	}
	if flags.Changed("max") {
		conf.MaxPrefixLen = c.maxPrefixLen
	}
	if flags.Changed("cutoff") {
		conf.Cutoff = c.cutoff
		// a single cutoff on the command line beats per-length cutoffs from
		// the file or the environment
		if !flags.Changed("cutoffs") {
			conf.Cutoffs = nil
		}
	}
	if flags.Changed("cutoffs") {
		conf.Cutoffs = c.cutoffs
	}
	if flags.Changed("format") {
		conf.Format = c.format
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *cmdCount) readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(c.gs.stdin)
	}
	data, err := afero.ReadFile(c.gs.fs, args[0])
	if err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	return data, nil
}

func (c *cmdCount) run(cmd *cobra.Command, args []string) error {
	conf, err := c.config(cmd.Flags())
	if err != nil {
		return err
	}
	if !c.gs.flags.verbose {
		level, _ := logrus.ParseLevel(conf.LogLevel)
		c.gs.logger.SetLevel(level)
	}

	data, err := c.readInput(args)
	if err != nil {
		return err
	}

	filter := frequency.New(frequency.WithLogger(c.gs.logger))
	if err := filter.Build(string(data), conf.MinPrefixLen, conf.MaxPrefixLen); err != nil {
		return err
	}

	var reports []frequency.Report
	if len(conf.Cutoffs) > 0 {
		reports, err = filter.FilterEach(conf.Cutoffs)
	} else {
		reports, err = filter.Filter(conf.Cutoff)
	}
	if errors.Is(err, frequency.ErrNotBuilt) {
		c.gs.logger.Warn("input contains no words")
		return nil
	}
	if err != nil {
		return err
	}

	return printReports(c.gs.stdout, conf.Format, reports)
}

func getCmdCount(gs *globalState) *cobra.Command {
	c := &cmdCount{gs: gs}

	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count word sequences and keep the frequent ones",
		Long: `Count every sequence of consecutive words, for each length between
--min and --max, drop the sequences occurring fewer than --cutoff times and
print the rest, most frequent first.

  Reads standard input when no file or "-" is given.`,
		Example: `
  freqfilter count --min 1 --max 3 --cutoff 2 book.txt
  cat book.txt | freqfilter count --max 2 --cutoffs 5,2 -f yaml`[1:],
		Args: cobra.MaximumNArgs(1),
		RunE: c.run,
	}

	cmd.Flags().AddFlagSet(c.flagSet())
	return cmd
}
