package sorting

import (
	"cmp"
	"fmt"
	"math/rand/v2"
)

// QuickSort sorts v in ascending order using [cmp.Less] and a random pivot
// source private to this call. The sort is not stable.
func QuickSort[S ~[]E, E cmp.Ordered](v S) {
	QuickSortWith(v, cmp.Less[E], nil)
}

// QuickSortFunc sorts v in ascending order as determined by less, using a
// random pivot source private to this call. The sort is not stable.
func QuickSortFunc[S ~[]E, E any](v S, less func(a, b E) bool) {
	QuickSortWith(v, less, nil)
}

// QuickSortWith sorts v like [QuickSortFunc], drawing pivots from src.
// A nil src is replaced by [NewSource]. The same src and input always
// produce the same sequence of swaps.
//
// src is used without locking and must not be shared with other goroutines
// during the call.
func QuickSortWith[S ~[]E, E any](v S, less func(a, b E) bool, src rand.Source) {
	if len(v) <= 1 {
		return
	}
	if src == nil {
		src = NewSource()
	}
	q := quicksorter[E]{v: []E(v), less: less, rng: rand.New(src)}
	q.sort(0, len(v)-1)
}

type quicksorter[E any] struct {
	v    []E
	less func(a, b E) bool
	rng  *rand.Rand
}

// sort orders the closed range [s, e]. Only the smaller partition is sorted
// recursively; the larger one is handled by the next loop iteration, which
// bounds the depth by log2(len(v)).
func (q *quicksorter[E]) sort(s, e int) {
	for s < e {
		p := q.partition(s, e)
		if p-s < e-p {
			q.sort(s, p-1)
			s = p + 1
		} else {
			q.sort(p+1, e)
			e = p - 1
		}
	}
}

// partition moves a random pivot of [s, e] to its final position and
// returns that position. Elements not greater than the pivot end up on its
// left.
func (q *quicksorter[E]) partition(s, e int) int {
	v := q.v
	if s < 0 || s > e || e >= len(v) {
		panic(fmt.Sprintf("sorting: partition range [%d, %d] out of bounds for length %d", s, e, len(v)))
	}

	if k := s + q.rng.IntN(e-s+1); k != e {
		v[k], v[e] = v[e], v[k]
	}

	pivot := v[e]
	i := s
	for j := s; j < e; j++ {
		if !q.less(pivot, v[j]) {
			v[i], v[j] = v[j], v[i]
			i++
		}
	}
	v[i], v[e] = v[e], v[i]
	return i
}
