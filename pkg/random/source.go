package random

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// pcgStream separates the second PCG word from the seed so seed 0 still produces a useful stream.
const pcgStream = 0x9e3779b97f4a7c15

// Source is a seedable pseudo random engine.  All draws are serialized under a single lock so a Source may be
// handed to several builders of one session and still reproduce the same run for the same seed.
type Source struct {
	seed  int64
	lock  sync.Mutex
	rng   *rand.Rand
	draws uint64
}

func New(seed int64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewPCG(uint64(seed), uint64(seed)^pcgStream)),
	}
}

// Seed returns the seed the source was constructed with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Draws reports how many raw values have been taken from the source.
func (s *Source) Draws() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.draws
}

func (s *Source) Uint64() uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.draws++
	return s.rng.Uint64()
}

// Uint64n returns a value in [0,n).  n must be greater than zero.
func (s *Source) Uint64n(n uint64) uint64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.draws++
	return s.rng.Uint64N(n)
}

// Intn returns a value in [0,n).  n must be greater than zero.
func (s *Source) Intn(n int) int {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.draws++
	return s.rng.IntN(n)
}

// Between returns a value in the half open range [min,max).  When max <= min, min is returned.
func (s *Source) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(s.Uint64n(uint64(max)-uint64(min)))
}

// Float64 returns a value in [0.0,1.0).
func (s *Source) Float64() float64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.draws++
	return s.rng.Float64()
}

func (s *Source) Bool() bool {
	return s.Uint64()&1 == 1
}

// Index selects a random position within a collection of the given length.
func (s *Source) Index(length int) int {
	return s.Intn(length)
}

// Read fills p with pseudo random bytes.  It never fails and exists so the source can stand in where an io.Reader
// of random bytes is expected.
func (s *Source) Read(p []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(word[:], s.Uint64())
		copy(p[i:], word[:])
	}
	return len(p), nil
}

// Pick returns a random element of items.  items must not be empty.
func Pick[T any](s *Source, items []T) T {
	return items[s.Index(len(items))]
}
