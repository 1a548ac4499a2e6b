package algorithms

// span is an inclusive [low, high] range still waiting to be partitioned.
type span struct {
	low, high int
}

// QuickSort sorts arr with Lomuto partitioning, using the last element of
// each range as the pivot.
//
// Pending ranges live on an explicit stack instead of the call stack. The
// larger side of every partition is pushed first so the smaller side is
// handled next, which keeps the stack at O(log n) entries even when the
// partitioning itself degrades to O(n²) on sorted input.
func QuickSort(arr []int) {
	if len(arr) < 2 {
		return
	}
	stack := []span{{0, len(arr) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.low >= s.high {
			continue
		}
		p := partition(arr, s.low, s.high)
		left, right := span{s.low, p - 1}, span{p + 1, s.high}
		if left.high-left.low > right.high-right.low {
			stack = append(stack, left, right)
		} else {
			stack = append(stack, right, left)
		}
	}
}

// partition moves every element <= arr[high] in front of it and returns the
// pivot's final index.
func partition(arr []int, low, high int) int {
	pivot := arr[high]
	i := low - 1
	for j := low; j < high; j++ {
		if arr[j] <= pivot {
			i++
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
	arr[i+1], arr[high] = arr[high], arr[i+1]
	return i + 1
}
