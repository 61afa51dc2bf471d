package xoroshiro

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// SplitMix64 expands a 64-bit value into well-mixed generator state
// material. All arithmetic wraps at 2^64.
func SplitMix64(n uint64) uint64 {
	n += 0x9E3779B97F4A7C15
	n = (n ^ (n >> 30)) * 0xBF58476D1CE4E5B9
	n = (n ^ (n >> 27)) * 0x94D049BB133111EB
	return n ^ (n >> 31)
}

// New returns a generator seeded from seed. A nonzero seed gives a
// reproducible sequence: the first state word is the splitmix64 expansion of
// the seed and the second is the seed itself. A zero seed is replaced by one
// read from the operating system's entropy source, giving a
// non-reproducible (but not cryptographically secure) sequence.
func New(seed uint64) *Rng {
	if seed == 0 {
		seed = entropySeed()
	}

	rng := Rng{}
	rng.state[0] = SplitMix64(seed)
	rng.state[1] = seed

	return &rng
}

// entropySeed draws a nonzero seed from crypto/rand, falling back to the
// wall clock if the entropy read fails.
func entropySeed() uint64 {
	var buf [8]byte

	var seed uint64
	if _, err := rand.Read(buf[:]); err != nil {
		seed = uint64(time.Now().UnixNano())
	} else {
		seed = binary.LittleEndian.Uint64(buf[:])
	}
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}

	return seed
}
