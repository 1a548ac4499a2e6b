package harness

import (
	"time"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// RelativeAccuracy of the quantile sketch.
const RelativeAccuracy = 0.01

// Stats summarises the trial durations of a Result.
type Stats struct {
	Count         int
	Mean          time.Duration
	Min, Max      time.Duration
	P50, P90, P99 time.Duration
}

// Summarize computes Stats over the completed trials of r. Quantiles come from
// a DDSketch, so they are within RelativeAccuracy of the exact values.
func Summarize(r Result) (Stats, error) {
	if len(r.Durations) == 0 {
		return Stats{}, nil
	}
	sketch, err := ddsketch.NewDefaultDDSketch(RelativeAccuracy)
	if err != nil {
		return Stats{}, errors.Wrap(err, "could not create sketch")
	}
	for _, d := range r.Durations {
		if err := sketch.Add(float64(d)); err != nil {
			return Stats{}, errors.Wrapf(err, "could not add %s to sketch", d)
		}
	}
	qs, err := sketch.GetValuesAtQuantiles([]float64{0.5, 0.9, 0.99})
	if err != nil {
		return Stats{}, errors.Wrap(err, "could not read quantiles")
	}
	return Stats{
		Count: len(r.Durations),
		Mean:  lo.Sum(r.Durations) / time.Duration(len(r.Durations)),
		Min:   lo.Min(r.Durations),
		Max:   lo.Max(r.Durations),
		P50:   time.Duration(qs[0]),
		P90:   time.Duration(qs[1]),
		P99:   time.Duration(qs[2]),
	}, nil
}
