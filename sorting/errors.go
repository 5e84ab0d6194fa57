package sorting

import "errors"

// Sentinel errors returned by sorting configuration and registry operations.
// Sorting itself never fails.
//
// Use [errors.Is] for comparisons:
//
//	if _, err := m.Sorter("timsort"); errors.Is(err, sorting.ErrAlgorithmNotFound) {
//	    // fall back to the default
//	}
var (
	// ErrInvalidOption is returned when an [Options] value or a seed falls
	// outside the allowed range.
	ErrInvalidOption = errors.New("sorting: invalid option value")

	// ErrAlgorithmNotFound is returned by [Manager.Sorter] and friends when
	// the requested algorithm has not been registered.
	ErrAlgorithmNotFound = errors.New("sorting: algorithm not found")

	// ErrEmptyAlgorithm is returned by [Manager.RegisterSorter] when the
	// supplied name is an empty string.
	ErrEmptyAlgorithm = errors.New("sorting: algorithm name must not be empty")

	// ErrNilSorter is returned by [Manager.RegisterSorter] when a nil
	// [Sorter] is supplied.
	ErrNilSorter = errors.New("sorting: sorter must not be nil")
)
