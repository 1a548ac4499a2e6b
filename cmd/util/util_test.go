package util

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/pprof/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/graph"
)

const benchOutput = `goos: linux
goarch: amd64
pkg: sortbench/algorithms
BenchmarkQuickSort_100-8     	  200000	      5000 ns/op	       0 B/op	       0 allocs/op
BenchmarkMergeSort_100-8     	  100000	     12000 ns/op	    1792 B/op	     198 allocs/op
BenchmarkQuickSort_100-8     	  200000	      7000 ns/op	       0 B/op	       0 allocs/op
PASS
ok  	sortbench/algorithms	4.321s
`

func TestParseBench(t *testing.T) {
	summaries, err := ParseBench(benchOutput)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "BenchmarkQuickSort_100-8", summaries[0].Name)
	assert.Equal(t, 2, summaries[0].Runs)
	assert.InDelta(t, 6000.0, summaries[0].NsPerOp, 1e-9)

	assert.Equal(t, "BenchmarkMergeSort_100-8", summaries[1].Name)
	assert.Equal(t, uint64(198), summaries[1].AllocsPerOp)
	assert.Equal(t, uint64(1792), summaries[1].BytesPerOp)
}

func TestModulePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/sorts\n\ngo 1.21\n"), 0o644))
	path, err := ModulePath(dir)
	require.NoError(t, err)
	assert.Equal(t, "example.com/sorts", path)

	_, err = ModulePath(t.TempDir())
	assert.Error(t, err)
}

func TestCleanOrCreateTempFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "_tmp", "run")
	require.NoError(t, CleanOrCreateTempFolder(dir))
	assert.DirExists(t, dir)

	stale := filepath.Join(dir, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	require.NoError(t, CleanOrCreateTempFolder(dir))
	assert.NoFileExists(t, stale)
	assert.DirExists(t, dir)
}

func TestPublishFolder(t *testing.T) {
	src := filepath.Join(t.TempDir(), "run")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "results.sarif"), []byte("{}"), 0o644))

	dest := filepath.Join(t.TempDir(), "_data", "run")
	require.NoError(t, PublishFolder(src, dest))
	assert.FileExists(t, filepath.Join(dest, "results.sarif"))
	assert.NoDirExists(t, src)
}

func TestPrintHotspots(t *testing.T) {
	quick := &profile.Function{ID: 1, Name: "sortbench/algorithms.QuickSort"}
	run := &profile.Function{ID: 2, Name: "sortbench/harness.(*Runner).TestSort"}
	lq := &profile.Location{ID: 1, Line: []profile.Line{{Function: quick}}}
	lr := &profile.Location{ID: 2, Line: []profile.Line{{Function: run}}}
	g := graph.FromProfile(&profile.Profile{
		SampleType: []*profile.ValueType{{Type: "cpu", Unit: "nanoseconds"}},
		Sample: []*profile.Sample{
			{Location: []*profile.Location{lq, lr}, Value: []int64{3000}},
			{Location: []*profile.Location{lr}, Value: []int64{1000}},
		},
	})

	buf := new(bytes.Buffer)
	PrintHotspots(buf, g, SortFunctions, 5)
	assert.Contains(t, buf.String(), "sortbench/algorithms.QuickSort")
	assert.Contains(t, buf.String(), "75.00%")
	assert.NotContains(t, buf.String(), "TestSort")

	buf.Reset()
	PrintHotspots(buf, g, regexp.MustCompile(`nothing`), 5)
	assert.Equal(t, "No matching functions in profile\n", buf.String())
}
