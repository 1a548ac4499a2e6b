// Package report writes benchmark results as a SARIF 2.1.0 log, so CI systems
// that already ingest static-analysis output can surface a sort whose output
// failed verification.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/owenrumney/go-sarif/sarif"
	"github.com/pkg/errors"

	"sortbench/harness"
)

const (
	toolName = "sortbench"

	// RuleUnsorted is reported for every (algorithm, size) whose output failed
	// the sortedness check.
	RuleUnsorted = "SORTBENCH001"
	// RuleTiming carries the average time of every passing (algorithm, size).
	RuleTiming = "SORTBENCH002"
)

// NewRun converts a benchmark report into a SARIF run. sourceDir is where the
// sorting routines live; each result points at the file of its algorithm.
func NewRun(rep *harness.Report, sourceDir string) *sarif.Run {
	run := sarif.NewRun(toolName, "")
	for _, res := range rep.Results {
		location := sarif.NewLocationWithPhysicalLocation(sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().WithUri(filepath.ToSlash(filepath.Join(sourceDir, sourceFile(res.Algorithm))))).
			WithRegion(sarif.NewRegion().WithStartLine(1)))

		if res.Failed() {
			run.AddResult(RuleUnsorted).
				WithLocation(location).
				WithMessage(sarif.NewMessage().WithText(fmt.Sprintf(
					"%s produced an unsorted array of size %d (run %s, seed %d)",
					res.Algorithm, res.Size, rep.RunID, rep.Seed)))
			continue
		}
		run.AddResult(RuleTiming).
			WithLocation(location).
			WithMessage(sarif.NewMessage().WithText(fmt.Sprintf(
				"%s sorted size %d in %.2f ms on average over %d trials",
				res.Algorithm, res.Size, res.MeanMillis(), res.Trials)))
	}
	return run
}

// Write encodes rep as a SARIF log to w.
func Write(w io.Writer, rep *harness.Report, sourceDir string) error {
	log, err := sarif.New(sarif.Version210)
	if err != nil {
		return errors.Wrap(err, "could not create SARIF report")
	}
	log.AddRun(NewRun(rep, sourceDir))
	if err := log.Write(w); err != nil {
		return errors.Wrap(err, "could not write SARIF report")
	}
	return nil
}

// WriteFile writes rep as a SARIF log to path, replacing any existing file.
func WriteFile(path string, rep *harness.Report, sourceDir string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create SARIF file")
	}
	defer f.Close()
	return Write(f, rep, sourceDir)
}

// sourceFile maps a display name to the file implementing it.
func sourceFile(algorithm string) string {
	switch algorithm {
	case "Insertion Sort", "Selection Sort", "Bubble Sort":
		return "simple.go"
	case "Quick Sort":
		return "quick.go"
	case "Merge Sort":
		return "merge.go"
	case "Bogo Sort":
		return "bogo.go"
	default:
		return "registry.go"
	}
}
