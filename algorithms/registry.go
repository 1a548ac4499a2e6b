package algorithms

import (
	"math/rand"
	"strings"
)

// SortFunc sorts arr in place.
type SortFunc func(arr []int)

// Algorithm is a named entry of the sort table.
type Algorithm struct {
	// Key is the short, lower-case name used on the command line.
	Key string
	// Name is the display name used in reports.
	Name string
	Sort SortFunc
	// Tiny algorithms are only run on very small inputs.
	Tiny bool
}

// All returns every algorithm in the order the benchmark runs them. rng is
// captured by the algorithms that need randomness.
func All(rng *rand.Rand) []Algorithm {
	return []Algorithm{
		{Key: "insertion", Name: "Insertion Sort", Sort: InsertionSort},
		{Key: "selection", Name: "Selection Sort", Sort: SelectionSort},
		{Key: "bubble", Name: "Bubble Sort", Sort: BubbleSort},
		{Key: "quick", Name: "Quick Sort", Sort: QuickSort},
		{Key: "merge", Name: "Merge Sort", Sort: MergeSort},
		{Key: "bogo", Name: "Bogo Sort", Sort: func(arr []int) { BogoSort(arr, rng) }, Tiny: true},
	}
}

// Lookup finds an algorithm by key or display name, ignoring case. "Quick",
// "quick" and "Quick Sort" all match.
func Lookup(name string, rng *rand.Rand) (Algorithm, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimSuffix(strings.TrimSuffix(name, " sort"), "sort")
	for _, a := range All(rng) {
		if a.Key == name {
			return a, true
		}
	}
	return Algorithm{}, false
}
