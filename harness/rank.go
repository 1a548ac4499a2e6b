package harness

import (
	"sort"
	"time"
)

type AlgorithmTimePair struct {
	Algorithm string
	Time      time.Duration
}

type AlgorithmTimeArray []AlgorithmTimePair

func (l AlgorithmTimeArray) Len() int {
	return len(l)
}

func (l AlgorithmTimeArray) Less(i, j int) bool {
	// fastest first, ties broken by name so the order is stable across runs
	if l[i].Time != l[j].Time {
		return l[i].Time < l[j].Time
	}
	return l[i].Algorithm < l[j].Algorithm
}

func (l AlgorithmTimeArray) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

func (l AlgorithmTimeArray) Sort() {
	sort.Sort(l)
}
