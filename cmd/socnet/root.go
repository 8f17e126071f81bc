package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socnet/config"
	"github.com/katalvlaran/socnet/logging"
	"github.com/katalvlaran/socnet/reduce"
	"github.com/katalvlaran/socnet/tweet"
)

// runFlags are shared by every subcommand. Flags given on the command line
// override the config file.
type runFlags struct {
	input       string
	configPath  string
	kind        string
	start, end  int64
	giant       bool
	aggregation string
	threshold   int
	logLevel    string
}

func newRootCmd() *cobra.Command {
	f := &runFlags{}
	root := &cobra.Command{
		Use:          "socnet",
		Short:        "Build and reduce social interaction networks",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.input, "input", "i", "", "CSV file of posts (twitwi column layout)")
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML run configuration")
	pf.StringVarP(&f.kind, "type", "t", "", "Interaction type: mention, retweet, reply, quote")
	pf.Int64Var(&f.start, "start", 0, "Window start, epoch seconds (requires --end)")
	pf.Int64Var(&f.end, "end", 0, "Window end, epoch seconds (requires --start)")
	pf.BoolVar(&f.giant, "giant", false, "Keep only the largest weakly-connected component")
	pf.StringVar(&f.aggregation, "aggregation", "", "Degree filter: none, soft, hard")
	pf.IntVar(&f.threshold, "threshold", 0, "In-degree threshold for hard aggregation")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newBuildCmd(f), newSummaryCmd(f))
	return root
}

// resolve merges the config file (or defaults) with the flags that were set.
func (f *runFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("type") {
		k, err := tweet.ParseKind(f.kind)
		if err != nil {
			return config.Config{}, err
		}
		cfg.InteractionType = k
	}
	if changed("start") || changed("end") {
		w := &config.Window{}
		if changed("start") {
			w.Start = &f.start
		}
		if changed("end") {
			w.End = &f.end
		}
		cfg.TimeWindow = w
	}
	if changed("giant") {
		cfg.Reduction.GiantComponent = f.giant
	}
	if changed("aggregation") {
		cfg.Reduction.Aggregation = reduce.Aggregation(f.aggregation)
	}
	if changed("threshold") {
		cfg.Reduction.HardThreshold = f.threshold
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	return cfg, cfg.Validate()
}

// load reads the input CSV.
func (f *runFlags) load() (tweet.Batch, error) {
	if f.input == "" {
		return nil, fmt.Errorf("%w: --input is required", tweet.ErrInvalidArgument)
	}
	fh, err := os.Open(f.input)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	b, err := tweet.ReadCSV(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.input, err)
	}
	return b, nil
}

func newLogger(cmd *cobra.Command, cfg config.Config) logrus.FieldLogger {
	return logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel).WithField("component", "socnet")
}
