package harness

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"sortbench/algorithms"
)

// Settings is everything a benchmark run needs to know. The zero value is not
// usable, start from DefaultSettings.
type Settings struct {
	// Sizes are the array sizes benchmarked, in order.
	Sizes []int
	// Trials is the number of arrays sorted per algorithm and size.
	Trials int
	// Bound is the exclusive upper bound of generated values.
	Bound int
	// Seed seeds the shared random source. 0 picks one from the clock.
	Seed int64
	// Algorithms restricts the run to these keys. Empty means all.
	Algorithms []string
	// BogoSize is the fixed array size tiny algorithms are run with.
	BogoSize int
	// BogoMaxSize is the largest configured size after which tiny algorithms
	// are still run.
	BogoMaxSize int
	// Summary prints a fastest-first ranking per size after the run.
	Summary bool
}

// DefaultSettings are the compiled-in defaults used when sortbench is run
// without flags or config.
func DefaultSettings() Settings {
	return Settings{
		Sizes:       []int{100, 1000, 10000},
		Trials:      5,
		Bound:       algorithms.DefaultBound,
		BogoSize:    10,
		BogoMaxSize: 1000,
	}
}

// Validate checks that the settings describe a runnable benchmark.
func (s Settings) Validate() error {
	if len(s.Sizes) == 0 {
		return errors.New("no array sizes configured")
	}
	for _, size := range s.Sizes {
		if size < 0 {
			return errors.Errorf("invalid array size %d", size)
		}
	}
	if s.Trials < 1 {
		return errors.Errorf("trials must be at least 1, got %d", s.Trials)
	}
	if s.Bound < 1 {
		return errors.Errorf("value range must be at least 1, got %d", s.Bound)
	}
	if s.BogoSize < 0 {
		return errors.Errorf("invalid bogo size %d", s.BogoSize)
	}
	return nil
}

// Rand returns the random source for a run along with the seed it was built
// from, so that a clock-seeded run can be reproduced.
func (s Settings) Rand() (*rand.Rand, int64) {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Select resolves Settings.Algorithms against the sort table.
func (s Settings) Select(rng *rand.Rand) ([]algorithms.Algorithm, error) {
	if len(s.Algorithms) == 0 {
		return algorithms.All(rng), nil
	}
	selected := make([]algorithms.Algorithm, 0, len(s.Algorithms))
	for _, name := range s.Algorithms {
		a, ok := algorithms.Lookup(name, rng)
		if !ok {
			return nil, errors.Errorf("unknown algorithm %q", name)
		}
		selected = append(selected, a)
	}
	return selected, nil
}
