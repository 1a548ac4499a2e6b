package cmd

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"sortbench/cmd/util"
	"sortbench/graph"
	"sortbench/harness"
	"sortbench/report"
)

const p = string(os.PathSeparator)

var (
	runID      string
	output     string
	cpuProfile bool
	sarifOut   bool
	strict     bool
)

func init() {
	defaults := harness.DefaultSettings()
	flags := RootCmd.Flags()
	flags.IntSlice("sizes", defaults.Sizes, "array sizes to benchmark")
	flags.IntP("trials", "c", defaults.Trials, "number of trials per algorithm and size")
	flags.Int64("seed", 0, "seed for the random source (0 picks one from the clock)")
	flags.Int("range", defaults.Bound, "generated values are drawn from [0, range)")
	flags.StringSliceP("algorithms", "a", nil, "algorithms to run (default all)")
	flags.Int("bogo-size", defaults.BogoSize, "array size bogo sort is run with")
	flags.Int("bogo-max", defaults.BogoMaxSize, "largest benchmark size for which bogo sort is still run")
	flags.Bool("summary", false, "print a fastest-first ranking per size")
	bindFlags(flags)

	flags.StringVarP(&runID, "id", "n", "", "id of the run, used to name its artifacts (default a new UUID)")
	flags.StringVarP(&output, "output", "o", "_data", "the path to the output folder for run artifacts")
	flags.BoolVar(&cpuProfile, "cpuprofile", false, "record a CPU profile of the run and print the hottest sorting routines")
	flags.BoolVar(&sarifOut, "sarif", false, "write the results as a SARIF log")
	flags.BoolVar(&strict, "strict", false, "exit non-zero when any sort fails verification")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	settings, err := programSettings()
	if err != nil {
		return err
	}
	runner, err := harness.NewRunner(settings, cmd.OutOrStdout(), log)
	if err != nil {
		return err
	}

	// Generate a UUID if no id is provided
	id := runID
	if len(id) == 0 {
		id = uuid.New().String()
	}
	artifacts := cpuProfile || sarifOut
	tmpPath := "_tmp" + p + id + p
	if artifacts {
		// clear the tmp subfolder if it exists
		if err := util.CleanOrCreateTempFolder(tmpPath); err != nil {
			return err
		}
	}

	var rep *harness.Report
	if cpuProfile {
		rep, err = profiled(tmpPath+"cpu.pprof", func() *harness.Report { return runner.Run(id) })
		if err != nil {
			return err
		}
		g, _, err := graph.Load(tmpPath + "cpu.pprof")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "CPU time by sorting routine")
		util.PrintHotspots(cmd.OutOrStdout(), g, util.SortFunctions, 10)
	} else {
		rep = runner.Run(id)
	}

	if sarifOut {
		if err := report.WriteFile(tmpPath+"results.sarif", rep, "algorithms"); err != nil {
			return err
		}
	}
	if artifacts {
		dest := output + p + id
		if err := util.PublishFolder(tmpPath, dest); err != nil {
			return err
		}
		log.Infof("run artifacts written to %s", dest)
		fmt.Fprintln(cmd.OutOrStdout(), "Artifacts written to "+dest)
	}

	if failures := rep.Failures(); strict && len(failures) > 0 {
		return errors.Errorf("%d sort(s) failed verification", len(failures))
	}
	return nil
}

// profiled runs fn under the CPU profiler, writing the profile to path.
func profiled(path string, fn func() *harness.Report) (*harness.Report, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not create CPU profile")
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, errors.Wrap(err, "could not start CPU profile")
	}
	rep := fn()
	pprof.StopCPUProfile()
	return rep, nil
}
