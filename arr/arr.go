package arr

// Filter returns the references in refs for which fn returns true, in their
// original order. The input slice is not modified.
//
// An empty input, or one where nothing matches, yields an empty non-nil slice.
func Filter[T any](refs []*T, fn func(*T) bool) []*T {
	out := make([]*T, 0, len(refs))
	for _, ref := range refs {
		if fn(ref) {
			out = append(out, ref)
		}
	}
	return out
}

// Reject returns the references for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](refs []*T, fn func(*T) bool) []*T {
	return Filter(refs, func(ref *T) bool { return !fn(ref) })
}

// Map applies fn to every reference and returns the results in input order.
// len(Map(refs, fn)) == len(refs) always holds.
//
// The output is allocated once, sized to the input.
func Map[T, R any](refs []*T, fn func(*T) R) []R {
	out := make([]R, len(refs))
	for i, ref := range refs {
		out[i] = fn(ref)
	}
	return out
}

// Refs returns a reference view over items: element i of the result is
// &items[i]. Writes through the view are visible in items.
//
// The view is tied to the current backing array of items; appending to items
// past its capacity detaches it.
func Refs[T any](items []T) []*T {
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

// Values dereferences every reference into a new slice of values.
// It panics if refs contains a nil pointer.
func Values[T any](refs []*T) []T {
	out := make([]T, len(refs))
	for i, ref := range refs {
		out[i] = *ref
	}
	return out
}
