package algorithms

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deterministic sorts, i.e. everything but bogosort
func deterministic() []Algorithm {
	var out []Algorithm
	for _, a := range All(rand.New(rand.NewSource(1))) {
		if !a.Tiny {
			out = append(out, a)
		}
	}
	return out
}

func TestSortScenario(t *testing.T) {
	for _, a := range All(rand.New(rand.NewSource(7))) {
		t.Run(a.Key, func(t *testing.T) {
			data := []int{5, 3, 8, 1, 9, 2}
			a.Sort(data)
			assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, data)
		})
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	for _, a := range All(rand.New(rand.NewSource(7))) {
		t.Run(a.Key, func(t *testing.T) {
			var empty []int
			a.Sort(empty)
			assert.Empty(t, empty)
			assert.True(t, IsSorted(empty))

			single := []int{42}
			a.Sort(single)
			assert.Equal(t, []int{42}, single)
			assert.True(t, IsSorted(single))
		})
	}
}

func TestSortIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{2, 3, 7, 16, 100, 257, 1000}
	for _, a := range deterministic() {
		for _, n := range sizes {
			data := RandomArray(rng, n, 50)
			want := slices.Clone(data)
			slices.Sort(want)

			a.Sort(data)
			require.Len(t, data, n)
			assert.True(t, IsSorted(data), "%s n=%d not sorted", a.Name, n)
			assert.Equal(t, want, data, "%s n=%d is not a permutation of its input", a.Name, n)
		}
	}
}

func TestSortNegativesAndDuplicates(t *testing.T) {
	for _, a := range deterministic() {
		data := []int{0, -3, 7, -3, 7, 0, 2, -100, 100, 2}
		a.Sort(data)
		assert.Equal(t, []int{-100, -3, -3, 0, 0, 2, 2, 7, 7, 100}, data, a.Name)
	}
}

func TestSortIdempotent(t *testing.T) {
	for _, a := range All(rand.New(rand.NewSource(3))) {
		data := []int{1, 2, 2, 3, 5, 8, 13}
		require.True(t, IsSorted(data))
		a.Sort(data)
		assert.Equal(t, []int{1, 2, 2, 3, 5, 8, 13}, data, a.Name)
		assert.True(t, IsSorted(data))
	}
}

func TestSortReverse(t *testing.T) {
	for _, a := range deterministic() {
		data := make([]int, 500)
		for i := range data {
			data[i] = len(data) - i
		}
		a.Sort(data)
		assert.True(t, IsSorted(data), a.Name)
		assert.Equal(t, 1, data[0])
		assert.Equal(t, 500, data[499])
	}
}

// Last-element pivoting is quadratic on sorted input; the explicit stack
// must still get through it.
func TestQuickSortLargeSorted(t *testing.T) {
	data := make([]int, 20000)
	for i := range data {
		data[i] = i
	}
	QuickSort(data)
	assert.True(t, IsSorted(data))

	slices.Reverse(data)
	QuickSort(data)
	assert.True(t, IsSorted(data))
}

func TestPartition(t *testing.T) {
	data := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	p := partition(data, 0, len(data)-1)

	assert.Equal(t, 5, data[p])
	for i := 0; i < p; i++ {
		assert.LessOrEqual(t, data[i], 5, "data[%d]", i)
	}
	for i := p + 1; i < len(data); i++ {
		assert.Greater(t, data[i], 5, "data[%d]", i)
	}
}

type tagged struct {
	key, origin int
}

func compareKey(a, b tagged) int { return a.key - b.key }

func TestMergeSortStable(t *testing.T) {
	data := []tagged{{2, 0}, {2, 1}, {1, 2}, {1, 3}}
	mergeSortFunc(data, compareKey)
	assert.Equal(t, []tagged{{1, 2}, {1, 3}, {2, 0}, {2, 1}}, data)

	ints := []int{2, 2, 1, 1}
	MergeSort(ints)
	assert.Equal(t, []int{1, 1, 2, 2}, ints)
}

func TestMergeSortStableRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	data := make([]tagged, 1000)
	for i := range data {
		data[i] = tagged{key: rng.Intn(10), origin: i}
	}
	mergeSortFunc(data, compareKey)
	for i := 1; i < len(data); i++ {
		require.LessOrEqual(t, data[i-1].key, data[i].key)
		if data[i-1].key == data[i].key {
			require.Less(t, data[i-1].origin, data[i].origin, "equal keys reordered at %d", i)
		}
	}
}

func TestBogoSortTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := []int{3, 1, 2}
	shuffles, err := BogoSortLimit(data, rng, 100000)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, data)
	assert.Greater(t, shuffles, 0)
}

func TestBogoSortSortedNeedsNoShuffle(t *testing.T) {
	data := []int{1, 2, 3, 4}
	assert.Equal(t, 0, BogoSort(data, rand.New(rand.NewSource(1))))
}

func TestBogoSortLimit(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	shuffles, err := BogoSortLimit(data, rand.New(rand.NewSource(5)), 3)
	require.ErrorIs(t, err, ErrShuffleLimit)
	assert.Equal(t, 3, shuffles)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, data)
}

func TestIsSorted(t *testing.T) {
	assert.False(t, IsSorted([]int{1, 3, 2}))
	assert.True(t, IsSorted([]int{1, 2, 3}))
	assert.True(t, IsSorted([]int{2, 2, 2}))
	assert.True(t, IsSorted(nil))
	assert.True(t, IsSorted([]int{-1}))
}

func TestRandomArray(t *testing.T) {
	arr := RandomArray(rand.New(rand.NewSource(1)), 1000, DefaultBound)
	require.Len(t, arr, 1000)
	for _, v := range arr {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, DefaultBound)
	}

	again := RandomArray(rand.New(rand.NewSource(1)), 1000, DefaultBound)
	assert.Equal(t, arr, again, "same seed should give the same array")
}

func TestLookup(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range []string{"quick", "Quick Sort", "QUICKSORT", " quick "} {
		a, ok := Lookup(name, rng)
		require.True(t, ok, name)
		assert.Equal(t, "Quick Sort", a.Name)
	}
	bogo, ok := Lookup("bogo", rng)
	require.True(t, ok)
	assert.True(t, bogo.Tiny)

	_, ok = Lookup("heap", rng)
	assert.False(t, ok)
}
