package sorting

import (
	"fmt"
	"math/rand/v2"
)

// Algorithm names a sort strategy registered with a [Manager].
type Algorithm string

const (
	// AlgorithmQuick selects the randomized quicksort.
	AlgorithmQuick Algorithm = "quicksort"
	// AlgorithmMerge selects the (unstable) mergesort.
	AlgorithmMerge Algorithm = "mergesort"
	// AlgorithmMergeStable selects the stable mergesort.
	AlgorithmMergeStable Algorithm = "mergesort-stable"
)

// Sorter is a sort strategy for slices of E.
//
// Implementations must be safe for concurrent use on distinct slices.
type Sorter[E any] interface {
	// Sort orders v in place, ascending according to less.
	Sort(v []E, less func(a, b E) bool)

	// Stable reports whether Sort keeps equal elements in their original
	// order.
	Stable() bool
}

// Options configures the built-in sorters.
type Options struct {
	// Seed makes quicksort pivots reproducible: every Sort call draws from a
	// fresh [ChaChaSource] built from Seed. When empty, each call uses an
	// unseeded [NewSource]. At most [MaxSeedSize] bytes.
	Seed []byte
}

// DefaultOptions returns Options with random pivots.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) validate() error {
	if len(o.Seed) > MaxSeedSize {
		return fmt.Errorf("%w: Seed is %d bytes; at most %d allowed",
			ErrInvalidOption, len(o.Seed), MaxSeedSize)
	}
	return nil
}

// QuickSorter is the [Sorter] for [AlgorithmQuick].
type QuickSorter[E any] struct {
	seed []byte
}

// NewQuickSorter validates opts and returns a QuickSorter.
func NewQuickSorter[E any](opts Options) (*QuickSorter[E], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &QuickSorter[E]{seed: append([]byte(nil), opts.Seed...)}, nil
}

// Sort implements [Sorter].
func (q *QuickSorter[E]) Sort(v []E, less func(a, b E) bool) {
	QuickSortWith(v, less, q.source())
}

// Stable implements [Sorter]. Quicksort is never stable.
func (q *QuickSorter[E]) Stable() bool { return false }

func (q *QuickSorter[E]) source() rand.Source {
	if len(q.seed) == 0 {
		return NewSource()
	}
	src, err := NewChaChaSource(q.seed)
	if err != nil {
		// The seed was checked by NewQuickSorter.
		panic(fmt.Sprintf("sorting: %v", err))
	}
	return src
}

// MergeSorter is the [Sorter] for [AlgorithmMerge].
type MergeSorter[E any] struct{}

// Sort implements [Sorter].
func (MergeSorter[E]) Sort(v []E, less func(a, b E) bool) { MergeSortFunc(v, less) }

// Stable implements [Sorter].
func (MergeSorter[E]) Stable() bool { return false }

// StableMergeSorter is the [Sorter] for [AlgorithmMergeStable].
type StableMergeSorter[E any] struct{}

// Sort implements [Sorter].
func (StableMergeSorter[E]) Sort(v []E, less func(a, b E) bool) { MergeSortStableFunc(v, less) }

// Stable implements [Sorter].
func (StableMergeSorter[E]) Stable() bool { return true }
