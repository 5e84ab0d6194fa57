// Package sorting provides two in-place comparison sorts for Go slices:
// a randomized quicksort and a top-down mergesort.
//
// # Algorithms
//
// [QuickSort] picks a uniformly random pivot inside every subrange, moves it
// to the end and runs a Lomuto partition. After each partition it recurses
// into the smaller side only and loops over the larger side, so the call
// depth stays O(log n) even when a partition degenerates (for example on
// slices made of one repeated value). Expected time is O(n log n).
//
// [MergeSort] splits [l, r] at m = l + (r-l)/2, sorts both halves and merges
// them through a single scratch buffer of len(v) allocated once per call.
// It is O(n log n) in the worst case and fully deterministic. On equal
// elements the merge takes the right-hand element first, so MergeSort is not
// stable; use [MergeSortStable] when equal elements must keep their order.
//
//	xs := []int{5, 3, 8, 1, 9, 2}
//	sorting.QuickSort(xs) // → [1 2 3 5 8 9]
//
//	type event struct{ At time.Time }
//	sorting.MergeSortFunc(events, func(a, b event) bool { return a.At.Before(b.At) })
//
// # Pivot randomness
//
// [QuickSort] and [QuickSortFunc] seed a fresh source per call from the
// runtime generator, so concurrent calls on different slices never share
// generator state. [QuickSortWith] accepts any math/rand/v2 Source; pair it
// with a [ChaChaSource] to get a reproducible pivot sequence from a seed.
//
// # Strategies
//
// [Manager] is a registry of named [Sorter] strategies with a default, for
// callers that choose the algorithm from configuration:
//
//	m, _ := sorting.NewDefaultManager[int](sorting.DefaultOptions())
//	_ = m.SetDefault(sorting.AlgorithmQuick)
//	_ = m.Sort(xs, func(a, b int) bool { return a < b })
//
// # Contracts
//
// The ordering function must be a strict weak order and must not modify the
// slice being sorted. None of the functions lock: the caller must hold the
// only reference to the slice for the duration of the call.
package sorting
