package sorting_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/hasbyte1/go-algo-utils/sorting"
)

func draw(t *testing.T, seed []byte, n int) []uint64 {
	t.Helper()
	src, err := sorting.NewChaChaSource(seed)
	if err != nil {
		t.Fatalf("NewChaChaSource(%q): %v", seed, err)
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Uint64()
	}
	return out
}

func TestChaChaSource_SameSeedSameSequence(t *testing.T) {
	// 40 draws cross several 64-byte key stream blocks.
	a := draw(t, []byte("seed"), 40)
	b := draw(t, []byte("seed"), 40)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestChaChaSource_DifferentSeedsDiffer(t *testing.T) {
	a := draw(t, []byte("seed-a"), 4)
	b := draw(t, []byte("seed-b"), 4)
	if a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3] {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestChaChaSource_EmptySeed(t *testing.T) {
	a := draw(t, nil, 3)
	b := draw(t, []byte{}, 3)
	if a[0] != b[0] || a[1] != b[1] || a[2] != b[2] {
		t.Fatal("nil and empty seeds should be equivalent")
	}
}

func TestChaChaSource_MaxSeed(t *testing.T) {
	if _, err := sorting.NewChaChaSource(bytes.Repeat([]byte{1}, sorting.MaxSeedSize)); err != nil {
		t.Fatalf("NewChaChaSource(max seed): %v", err)
	}
}

func TestChaChaSource_SeedTooLong(t *testing.T) {
	_, err := sorting.NewChaChaSource(make([]byte, sorting.MaxSeedSize+1))
	if !errors.Is(err, sorting.ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestChaChaSource_UniformEnoughForPivots(t *testing.T) {
	src, _ := sorting.NewChaChaSource([]byte("uniform"))
	r := rand.New(src)
	var buckets [10]int
	for range 10_000 {
		buckets[r.IntN(len(buckets))]++
	}
	for i, c := range buckets {
		if c < 800 || c > 1200 {
			t.Fatalf("bucket %d has %d hits out of 10000", i, c)
		}
	}
}

func TestChaChaSource_ZeroValuePanics(t *testing.T) {
	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || !strings.HasPrefix(msg, "sorting: ") {
			t.Fatalf("expected a sorting: panic, got %v", r)
		}
	}()
	var src sorting.ChaChaSource
	src.Uint64()
}

func TestNewSource_Independent(t *testing.T) {
	a, b := sorting.NewSource(), sorting.NewSource()
	if a.Uint64() == b.Uint64() && a.Uint64() == b.Uint64() {
		t.Fatal("NewSource returned correlated sources")
	}
}
