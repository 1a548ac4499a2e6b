package algorithms

import (
	"math/rand"

	"github.com/pkg/errors"
)

// ErrShuffleLimit is returned by BogoSortLimit when the array is still
// unsorted after the allowed number of shuffles.
var ErrShuffleLimit = errors.New("bogosort: shuffle limit reached")

// BogoSort shuffles arr until it happens to be sorted and returns the number
// of shuffles it took. The expected count grows factorially with len(arr).
func BogoSort(arr []int, rng *rand.Rand) int {
	n, _ := BogoSortLimit(arr, rng, 0)
	return n
}

// BogoSortLimit is BogoSort with a cap on the number of shuffles. A
// maxShuffles of 0 or less means no cap. The array is left in whatever order
// the last shuffle produced when the cap is hit.
func BogoSortLimit(arr []int, rng *rand.Rand, maxShuffles int) (int, error) {
	shuffles := 0
	for !IsSorted(arr) {
		if maxShuffles > 0 && shuffles >= maxShuffles {
			return shuffles, errors.Wrapf(ErrShuffleLimit, "%d elements after %d shuffles", len(arr), shuffles)
		}
		shuffle(arr, rng)
		shuffles++
	}
	return shuffles, nil
}

// shuffle swaps every index with a uniformly chosen one. This is not a
// uniform permutation, it is the naive shuffle bogosort is defined with.
func shuffle(arr []int, rng *rand.Rand) {
	for i := range arr {
		r := rng.Intn(len(arr))
		arr[i], arr[r] = arr[r], arr[i]
	}
}
