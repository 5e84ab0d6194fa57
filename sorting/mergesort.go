package sorting

import "cmp"

// MergeSort sorts v in ascending order using [cmp.Less].
// Equal elements may be reordered; see [MergeSortStable].
func MergeSort[S ~[]E, E cmp.Ordered](v S) {
	MergeSortFunc(v, cmp.Less[E])
}

// MergeSortFunc sorts v in ascending order as determined by less.
// Equal elements may be reordered; see [MergeSortStableFunc].
func MergeSortFunc[S ~[]E, E any](v S, less func(a, b E) bool) {
	mergeSort([]E(v), less, false)
}

// MergeSortStable is like [MergeSort] but keeps equal elements in their
// original order.
func MergeSortStable[S ~[]E, E cmp.Ordered](v S) {
	MergeSortStableFunc(v, cmp.Less[E])
}

// MergeSortStableFunc is like [MergeSortFunc] but keeps equal elements in
// their original order.
func MergeSortStableFunc[S ~[]E, E any](v S, less func(a, b E) bool) {
	mergeSort([]E(v), less, true)
}

func mergeSort[E any](v []E, less func(a, b E) bool, stable bool) {
	if len(v) <= 1 {
		return
	}
	m := merger[E]{
		v:      v,
		tmp:    make([]E, len(v)),
		less:   less,
		stable: stable,
	}
	m.sort(0, len(v)-1)
}

// merger carries the state shared by every level of one MergeSort call.
// tmp is the only allocation and is reused by all merges.
type merger[E any] struct {
	v, tmp []E
	less   func(a, b E) bool
	stable bool
}

// sort orders the closed range [l, r].
func (m *merger[E]) sort(l, r int) {
	if l >= r {
		return
	}
	mid := l + (r-l)/2
	m.sort(l, mid)
	m.sort(mid+1, r)
	m.merge(l, mid, r)
}

// merge combines the sorted runs [l, mid] and [mid+1, r].
func (m *merger[E]) merge(l, mid, r int) {
	v, tmp := m.v, m.tmp
	i, j, k := l, mid+1, l
	for i <= mid && j <= r {
		if m.takeLeft(v[i], v[j]) {
			tmp[k] = v[i]
			i++
		} else {
			tmp[k] = v[j]
			j++
		}
		k++
	}
	k += copy(tmp[k:], v[i:mid+1])
	copy(tmp[k:], v[j:r+1])
	copy(v[l:r+1], tmp[l:r+1])
}

// takeLeft reports whether the left run's head goes next. Without stability
// a tie goes to the right run.
func (m *merger[E]) takeLeft(left, right E) bool {
	if m.stable {
		return !m.less(right, left)
	}
	return m.less(left, right)
}
