package harness

import (
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrNotSorted marks a trial whose output failed the sortedness check.
var ErrNotSorted = errors.New("array not sorted correctly")

// Result holds the trials of one algorithm at one array size.
type Result struct {
	Algorithm string
	Size      int
	// Trials is the number of trials that were planned. Durations can be
	// shorter when a trial failed verification.
	Trials    int
	Durations []time.Duration
	Err       error
}

// Failed reports whether a trial failed verification.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Total is the summed sort time of all completed trials.
func (r Result) Total() time.Duration {
	return lo.Sum(r.Durations)
}

// Mean is the total divided by the planned number of trials.
func (r Result) Mean() time.Duration {
	if r.Trials == 0 {
		return 0
	}
	return r.Total() / time.Duration(r.Trials)
}

// MeanMillis is Mean in fractional milliseconds.
func (r Result) MeanMillis() float64 {
	if r.Trials == 0 {
		return 0
	}
	return millis(r.Total()) / float64(r.Trials)
}

// Report is the outcome of a full run.
type Report struct {
	RunID    string
	Seed     int64
	Settings Settings
	Results  []Result
}

// Failures returns the results that failed verification.
func (r *Report) Failures() []Result {
	return lo.Filter(r.Results, func(res Result, _ int) bool {
		return res.Failed()
	})
}

// Ranking returns the passing results at size ranked fastest first.
func (r *Report) Ranking(size int) AlgorithmTimeArray {
	passed := lo.Filter(r.Results, func(res Result, _ int) bool {
		return res.Size == size && !res.Failed()
	})
	ranking := AlgorithmTimeArray(lo.Map(passed, func(res Result, _ int) AlgorithmTimePair {
		return AlgorithmTimePair{Algorithm: res.Algorithm, Time: res.Mean()}
	}))
	ranking.Sort()
	return ranking
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
