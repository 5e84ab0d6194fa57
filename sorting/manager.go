package sorting

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe registry of named [Sorter] strategies with a
// default.
//
// Register sorters with [Manager.RegisterSorter], pick a default with
// [Manager.SetDefault], then sort through [Manager.Sort]. All methods are
// safe for concurrent use: a [sync.RWMutex] serialises registration while
// lookups and sorts proceed in parallel.
type Manager[E any] struct {
	mu      sync.RWMutex
	sorters map[Algorithm]Sorter[E]
	def     Algorithm
}

// NewManager creates an empty Manager whose default is def. Sorters must be
// registered before any sort is dispatched through the Manager.
//
// Use [NewDefaultManager] to get all built-in sorters pre-registered.
func NewManager[E any](def Algorithm) *Manager[E] {
	return &Manager[E]{
		sorters: make(map[Algorithm]Sorter[E]),
		def:     def,
	}
}

// NewDefaultManager creates a Manager with [AlgorithmQuick],
// [AlgorithmMerge] and [AlgorithmMergeStable] registered. The default is
// [AlgorithmMerge].
func NewDefaultManager[E any](opts Options) (*Manager[E], error) {
	quick, err := NewQuickSorter[E](opts)
	if err != nil {
		return nil, fmt.Errorf("sorting: failed to create default quicksorter: %w", err)
	}

	m := NewManager[E](AlgorithmMerge)
	_ = m.RegisterSorter(AlgorithmQuick, quick)
	_ = m.RegisterSorter(AlgorithmMerge, MergeSorter[E]{})
	_ = m.RegisterSorter(AlgorithmMergeStable, StableMergeSorter[E]{})
	return m, nil
}

// RegisterSorter adds or replaces the sorter registered under name.
func (m *Manager[E]) RegisterSorter(name Algorithm, s Sorter[E]) error {
	if name == "" {
		return ErrEmptyAlgorithm
	}
	if s == nil {
		return ErrNilSorter
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sorters[name] = s
	return nil
}

// Sorter returns the sorter registered under name, or
// [ErrAlgorithmNotFound].
func (m *Manager[E]) Sorter(name Algorithm) (Sorter[E], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sorters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAlgorithmNotFound, name)
	}
	return s, nil
}

// HasSorter reports whether a sorter is registered under name.
func (m *Manager[E]) HasSorter(name Algorithm) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sorters[name]
	return ok
}

// SetDefault changes the algorithm used by [Manager.Sort]. The named sorter
// must already be registered.
func (m *Manager[E]) SetDefault(name Algorithm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sorters[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterSorter first",
			ErrAlgorithmNotFound, name)
	}
	m.def = name
	return nil
}

// Default returns the name of the default algorithm.
func (m *Manager[E]) Default() Algorithm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// Algorithms returns the registered names in ascending order.
func (m *Manager[E]) Algorithms() []Algorithm {
	m.mu.RLock()
	names := make([]Algorithm, 0, len(m.sorters))
	for name := range m.sorters {
		names = append(names, name)
	}
	m.mu.RUnlock()

	MergeSort(names)
	return names
}

// Sort orders v with the default sorter.
func (m *Manager[E]) Sort(v []E, less func(a, b E) bool) error {
	return m.SortWith(m.Default(), v, less)
}

// SortWith orders v with the sorter registered under name.
func (m *Manager[E]) SortWith(name Algorithm, v []E, less func(a, b E) bool) error {
	s, err := m.Sorter(name)
	if err != nil {
		return err
	}
	s.Sort(v, less)
	return nil
}
