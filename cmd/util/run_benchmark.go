package util

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/modfile"
	"golang.org/x/tools/benchmark/parse"
)

// ModulePath reads the module path from the go.mod in dir.
func ModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", errors.Wrap(err, "could not read go.mod")
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", errors.Errorf("no module directive in %s", filepath.Join(dir, "go.mod"))
	}
	return path, nil
}

// RunGoBench runs the benchmarks of pkg matching benchName with go test, from
// inside dir. Regular tests are skipped. The combined output is returned even
// when go test fails, since it usually says why.
func RunGoBench(dir, pkg, benchName string, count int) (string, error) {
	// set up all the arguments in an array, to allow for conditional arguments
	args := make([]string, 0)
	args = append(args, "test", pkg)
	args = append(args, "-run=NONE")         // no regular tests
	args = append(args, "-bench="+benchName) // the benchmarks to run
	args = append(args, "-benchmem")
	if count > 0 {
		args = append(args, fmt.Sprintf("-count=%d", count))
	}

	cmd := exec.Command("go", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), errors.Wrap(err, "failed to run go test")
	}
	return string(output), nil
}

// BenchSummary is the average of every run of one benchmark.
type BenchSummary struct {
	Name        string
	Runs        int
	NsPerOp     float64
	AllocsPerOp uint64
	BytesPerOp  uint64
}

// ParseBench parses go test -bench output and averages repeated runs of the
// same benchmark. The result is ordered as the benchmarks first appeared.
func ParseBench(output string) ([]BenchSummary, error) {
	set, err := parse.ParseSet(strings.NewReader(output))
	if err != nil {
		return nil, errors.Wrap(err, "could not parse benchmark output")
	}
	summaries := make([]BenchSummary, 0, len(set))
	order := make(map[string]int, len(set))
	for name, runs := range set {
		s := BenchSummary{Name: name, Runs: len(runs)}
		first := -1
		for _, b := range runs {
			s.NsPerOp += b.NsPerOp
			s.AllocsPerOp += b.AllocsPerOp
			s.BytesPerOp += b.AllocedBytesPerOp
			if first < 0 || b.Ord < first {
				first = b.Ord
			}
		}
		if s.Runs > 0 {
			s.NsPerOp /= float64(s.Runs)
			s.AllocsPerOp /= uint64(s.Runs)
			s.BytesPerOp /= uint64(s.Runs)
		}
		order[name] = first
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return order[summaries[i].Name] < order[summaries[j].Name]
	})
	return summaries, nil
}
