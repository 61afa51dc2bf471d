// Package xoroshiro implements the xoroshiro128+ pseudo-random number
// generator: splitmix64 seed expansion, a 2^64-step jump for deriving
// non-overlapping parallel streams, and unbiased range reduction by
// rejection sampling. It is fast and statistically strong but not
// cryptographically secure.
package xoroshiro

import (
	"encoding/binary"
	"math/bits"
)

const (
	a = 55
	b = 14
	c = 36
)

// RandMax is the largest value the generator can output.
const RandMax uint64 = 1<<64 - 1

// Rng is a xoroshiro128+ generator. The zero value is degenerate (it can
// only ever output zero); obtain instances from New or seed them with Seed.
//
// An Rng is not safe for concurrent use. For parallel work, derive
// independent generators with Copy and Jump instead of sharing one instance.
type Rng struct {
	state [2]uint64
}

// Seed sets the state directly from the first 16 bytes of seed, interpreted
// as two little-endian words. The state must not be set to all zeroes.
func (rng *Rng) Seed(seed []byte) {
	rng.state[0] = binary.LittleEndian.Uint64(seed)
	rng.state[1] = binary.LittleEndian.Uint64(seed[8:])
}

// Copy returns a generator with the same state as rng. The two generators
// share nothing; advancing one has no effect on the other.
func (rng *Rng) Copy() *Rng {
	cp := *rng
	return &cp
}

// Uint64 advances the generator one step and returns the output for that
// step, the wrapping sum of the two state words. Every observation advances
// the sequence; there is no way to peek without advancing.
func (rng *Rng) Uint64() uint64 {
	result := rng.state[0] + rng.state[1]

	temp := rng.state[0] ^ rng.state[1]
	rng.state[0] = bits.RotateLeft64(rng.state[0], a) ^ temp ^ (temp << b)
	rng.state[1] = bits.RotateLeft64(temp, c)

	return result
}
