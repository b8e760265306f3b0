package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource produces uniform reals in [0, 1).
// Every roll and simulation takes one so results can be reproduced from a seed.
type RandomSource interface {
	Float64() float64
}

// RandomSourceFunc adapts a plain function to RandomSource
type RandomSourceFunc func() float64

// Float64 calls f
func (f RandomSourceFunc) Float64() float64 { return f() }

type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
	}
	// top 53 bits fill the mantissa exactly
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// DefaultSource returns the unseeded source used when a request carries no seed
func DefaultSource() RandomSource { return cryptoSource{} }

type seededSource struct{ r *rand.Rand }

func (s *seededSource) Float64() float64 { return s.r.Float64() }

// NewSeededSource returns a deterministic source. It is not safe for concurrent use.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))} //nolint:gosec // Game logic randomness, not security critical
}

// NewStreamSource returns a deterministic source for one stream of a seeded batch.
// Streams with the same seed and different indices are independent of each other.
func NewStreamSource(seed, stream uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, stream))} //nolint:gosec // Game logic randomness, not security critical
}

// SourceFor picks a seeded source when seed is set and the default source otherwise
func SourceFor(seed *uint64) RandomSource {
	if seed == nil {
		return DefaultSource()
	}
	return NewSeededSource(*seed)
}
