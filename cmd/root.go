package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
// On its own it runs the benchmark.
var RootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Benchmark classic sorting algorithms over random integer arrays",
	Long: `sortbench times insertion, selection, bubble, quick and merge sort over
randomly generated arrays of each configured size, verifies every result and
reports the average time per algorithm. Bogo sort is only run on a tiny array.

Without flags it benchmarks sizes 100, 1000 and 10000 with 5 trials each.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runBenchmark,
}

var (
	cfgFile  string
	logLevel string
	noColor  bool
)

// log is shared by every command. Report output goes to stdout, log lines to
// stderr.
var log = logrus.New()

// Execute adds all child commands to the root command and sets Flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		println("Failed to execute command: " + err.Error())
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML) with benchmark settings")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

// setup configures logging and colours and loads the config file, if any.
func setup(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())
	if noColor {
		color.NoColor = true
	}
	return loadConfig()
}
