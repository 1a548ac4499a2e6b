package main

import "sortbench/cmd"

// sortbench benchmarks six classic sorting algorithms:
// - generate a random array for every configured size and trial
// - time one sort of it with a monotonic clock
// - verify the output is sorted, reporting and skipping the rest of that
//   algorithm's trials if it is not
// - print the average time per algorithm and size
func main() {
	cmd.Execute()
}
