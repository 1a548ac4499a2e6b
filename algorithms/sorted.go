package algorithms

import "math/rand"

// DefaultBound is the exclusive upper bound of generated values.
const DefaultBound = 10000

// IsSorted reports whether arr is in non-decreasing order.
func IsSorted(arr []int) bool {
	for i := 0; i < len(arr)-1; i++ {
		if arr[i] > arr[i+1] {
			return false
		}
	}
	return true
}

// RandomArray returns size values drawn uniformly from [0, bound).
func RandomArray(rng *rand.Rand, size, bound int) []int {
	arr := make([]int, size)
	for i := range arr {
		arr[i] = rng.Intn(bound)
	}
	return arr
}
