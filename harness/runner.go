package harness

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"sortbench/algorithms"
)

// separator is printed after every size group.
var separator = strings.Repeat("-", 80)

// Runner drives a benchmark: for every size and algorithm it generates fresh
// arrays, times the sort, verifies the output and prints the average.
type Runner struct {
	Settings   Settings
	Algorithms []algorithms.Algorithm
	Rand       *rand.Rand
	Seed       int64
	Out        io.Writer
	Log        *logrus.Logger

	errorLine *color.Color
}

// NewRunner builds a Runner writing its report to out. The random source is
// shared by the generator and every algorithm that needs one.
func NewRunner(settings Settings, out io.Writer, log *logrus.Logger) (*Runner, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	rng, seed := settings.Rand()
	algs, err := settings.Select(rng)
	if err != nil {
		return nil, err
	}
	return &Runner{
		Settings:   settings,
		Algorithms: algs,
		Rand:       rng,
		Seed:       seed,
		Out:        out,
		Log:        log,
	}, nil
}

// Run benchmarks every configured size and returns the collected results.
// Verification failures are reported and recorded, never returned.
func (r *Runner) Run(runID string) *Report {
	report := &Report{RunID: runID, Seed: r.Seed, Settings: r.Settings}
	r.Log.WithFields(logrus.Fields{"run": runID, "seed": r.Seed}).Info("starting benchmark")

	for _, size := range r.Settings.Sizes {
		for _, alg := range r.Algorithms {
			if alg.Tiny {
				continue
			}
			report.Results = append(report.Results, r.TestSort(alg, size, r.Settings.Trials))
		}

		// only run the tiny algorithms with very small arrays
		if size <= r.Settings.BogoMaxSize {
			for _, alg := range r.Algorithms {
				if alg.Tiny {
					report.Results = append(report.Results, r.TestSort(alg, r.Settings.BogoSize, 1))
				}
			}
		}

		fmt.Fprintln(r.Out, separator)
	}

	if r.Settings.Summary {
		r.printSummary(report)
	}
	return report
}

// TestSort times trials sorts of fresh random arrays of the given size. The
// first array that comes back unsorted aborts the loop.
func (r *Runner) TestSort(alg algorithms.Algorithm, size, trials int) Result {
	res := Result{Algorithm: alg.Name, Size: size, Trials: trials}
	fmt.Fprintf(r.Out, "Testing %s with array size %d (%d trials)\n", alg.Name, size, trials)

	for t := 0; t < trials; t++ {
		arr := algorithms.RandomArray(r.Rand, size, r.Settings.Bound)
		start := time.Now()
		alg.Sort(arr)
		elapsed := time.Since(start)
		res.Durations = append(res.Durations, elapsed)

		log := r.Log.WithFields(logrus.Fields{"algorithm": alg.Key, "size": size, "trial": t})
		if !algorithms.IsSorted(arr) {
			log.Warn("output failed verification")
			res.Err = ErrNotSorted
			r.errorColor().Fprintln(r.Out, "Error: Array not sorted correctly!")
			return res
		}
		log.Debugf("sorted in %s", elapsed)
	}

	fmt.Fprintf(r.Out, "Average time: %.2f ms\n\n", res.MeanMillis())
	if stats, err := Summarize(res); err != nil {
		r.Log.Debugf("could not summarize %s at %d: %v", alg.Name, size, err)
	} else {
		r.Log.WithFields(logrus.Fields{
			"algorithm": alg.Key,
			"size":      size,
			"p50":       stats.P50,
			"p90":       stats.P90,
			"p99":       stats.P99,
		}).Info("trial quantiles")
	}
	return res
}

func (r *Runner) printSummary(report *Report) {
	fmt.Fprintln(r.Out, "Summary (fastest first)")
	for _, size := range r.Settings.Sizes {
		ranking := report.Ranking(size)
		if len(ranking) == 0 {
			continue
		}
		fmt.Fprintf(r.Out, "Array size %d:\n", size)
		for i, pair := range ranking {
			fmt.Fprintf(r.Out, "  %d. %-16s %10.2f ms\n", i+1, pair.Algorithm, millis(pair.Time))
		}
	}
	if failures := report.Failures(); len(failures) > 0 {
		r.errorColor().Fprintf(r.Out, "%d verification failure(s)\n", len(failures))
	}
}

func (r *Runner) errorColor() *color.Color {
	if r.errorLine == nil {
		r.errorLine = color.New(color.FgRed)
	}
	return r.errorLine
}
