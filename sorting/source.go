package sorting

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// MaxSeedSize is the longest seed accepted by [NewChaChaSource], in bytes.
// The seed is used as a BLAKE2b key, which caps it at 64 bytes.
const MaxSeedSize = blake2b.Size

// pivotStreamLabel is the message MACed under the seed to derive the ChaCha20
// key.
const pivotStreamLabel = "go-algo-utils/sorting pivot stream v1"

// NewSource returns a PCG source seeded from the runtime generator.
// Each call returns an independent source.
func NewSource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}

// ChaChaSource is a deterministic [rand.Source] backed by a ChaCha20 key
// stream. Two sources built from the same seed produce the same sequence.
//
// Only [NewChaChaSource] builds a usable ChaChaSource; Uint64 panics on the
// zero value. A ChaChaSource is not safe for concurrent use.
type ChaChaSource struct {
	cipher *chacha20.Cipher
	buf    [64]byte
	off    int
}

// NewChaChaSource derives a ChaCha20 key from seed with keyed BLAKE2b-256 and
// returns a source reading that key stream. An empty seed is valid.
// Returns [ErrInvalidOption] if seed is longer than [MaxSeedSize].
func NewChaChaSource(seed []byte) (*ChaChaSource, error) {
	if len(seed) > MaxSeedSize {
		return nil, fmt.Errorf("%w: seed is %d bytes; at most %d allowed",
			ErrInvalidOption, len(seed), MaxSeedSize)
	}
	h, err := blake2b.New256(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	h.Write([]byte(pivotStreamLabel))
	key := h.Sum(nil)

	c, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, fmt.Errorf("sorting: failed to initialise chacha20: %w", err)
	}
	s := &ChaChaSource{cipher: c}
	s.off = len(s.buf)
	return s, nil
}

// Uint64 returns the next 8 bytes of the key stream as a little-endian
// integer. It implements [rand.Source].
func (s *ChaChaSource) Uint64() uint64 {
	if s.cipher == nil {
		panic("sorting: ChaChaSource used without NewChaChaSource")
	}
	if s.off+8 > len(s.buf) {
		clear(s.buf[:])
		s.cipher.XORKeyStream(s.buf[:], s.buf[:])
		s.off = 0
	}
	n := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return n
}
