// Package algorithms holds the sorting routines exercised by sortbench.
//
// Every routine sorts a []int into non-decreasing order in place and never
// changes its length:
//   - InsertionSort, SelectionSort, BubbleSort: quadratic textbook sorts
//   - QuickSort: Lomuto partitioning around the last element of each range
//   - MergeSort: top-down, stable, allocates a buffer per split
//   - BogoSort: shuffles until sorted; only meant for tiny inputs
//
// The routines are listed in run order by All, which is what the benchmark
// driver iterates over.
package algorithms
