package algorithms

import "cmp"

// MergeSort is a stable top-down merge sort. Each split copies its halves
// into fresh buffers, so it uses O(n) extra memory per level.
func MergeSort(arr []int) {
	mergeSortFunc(arr, cmp.Compare[int])
}

// mergeSortFunc is MergeSort over any element type. It stays unexported;
// the tests use it to check stability with tagged elements.
func mergeSortFunc[E any](arr []E, compare func(a, b E) int) {
	if len(arr) <= 1 {
		return
	}
	mid := len(arr) / 2

	left := make([]E, mid)
	right := make([]E, len(arr)-mid)
	copy(left, arr[:mid])
	copy(right, arr[mid:])

	mergeSortFunc(left, compare)
	mergeSortFunc(right, compare)

	merge(arr, left, right, compare)
}

// merge writes the sorted union of left and right into arr. Ties take the
// left element first.
func merge[E any](arr, left, right []E, compare func(a, b E) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			arr[k] = left[i]
			i++
		} else {
			arr[k] = right[j]
			j++
		}
		k++
	}
	k += copy(arr[k:], left[i:])
	copy(arr[k:], right[j:])
}
