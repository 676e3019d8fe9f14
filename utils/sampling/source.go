// Package sampling implements a seeded, deterministic source of randomness.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/crypto/blake2b"
)

const bufferSize = 1024

// Source is a deterministic random source backed by the blake2b XOF.
// Two sources created from the same seed produce the same stream.
// A Source is not safe for concurrent use.
type Source struct {
	seed [32]byte
	xof  blake2b.XOF
	buf  [bufferSize]byte
	ptr  int
}

// NewSeed returns a fresh seed read from crypto/rand.
func NewSeed() (seed [32]byte) {
	if _, err := rand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("rand.Read: %w", err))
	}
	return
}

// NewSource creates a new Source from the given seed.
func NewSource(seed [32]byte) *Source {

	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)

	// Sanity check, this error should not happen.
	if err != nil {
		panic(fmt.Errorf("blake2b.NewXOF: %w", err))
	}

	if _, err = xof.Write(seed[:]); err != nil {
		panic(fmt.Errorf("blake2b.XOF.Write: %w", err))
	}

	return &Source{
		seed: seed,
		xof:  xof,
		ptr:  bufferSize,
	}
}

// Seed returns the seed of the source.
func (s *Source) Seed() [32]byte {
	return s.seed
}

// Read implements the [io.Reader] interface.
func (s *Source) Read(p []byte) (n int, err error) {
	return s.xof.Read(p)
}

// Uint64 returns a uniformly random uint64.
func (s *Source) Uint64() uint64 {
	if s.ptr == bufferSize {
		if _, err := s.xof.Read(s.buf[:]); err != nil {
			panic(fmt.Errorf("blake2b.XOF.Read: %w", err))
		}
		s.ptr = 0
	}
	x := binary.LittleEndian.Uint64(s.buf[s.ptr:])
	s.ptr += 8
	return x
}

// Uint64N returns a uniformly random integer in [0, n).
// n must be non-zero.
func (s *Source) Uint64N(n uint64) uint64 {
	bound := math.MaxUint64 - (math.MaxUint64 % n)
	for {
		if x := s.Uint64(); x < bound {
			return x % n
		}
	}
}

// NewSource derives a new independent Source whose seed is drawn from s.
func (s *Source) NewSource() *Source {
	var seed [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(seed[i*8:], s.Uint64())
	}
	return NewSource(seed)
}
