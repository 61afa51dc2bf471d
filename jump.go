package xoroshiro

// jump is the characteristic polynomial of 2^64 steps of the generator,
// packed into two 64-bit words, low bits first.
var jump = [2]uint64{0xBEAC0467EBA5FACB, 0xD86B048B86AA9922}

// Jump advances the generator by 2^64 steps. Calling Jump k times on the
// k-th of N copies of a generator yields N non-overlapping subsequences of
// length 2^64 each, suitable for parallel use.
func (rng *Rng) Jump() {
	var s0, s1 uint64

	for _, word := range jump {
		for bit := 0; bit < 64; bit++ {
			if word&(1<<bit) != 0 {
				s0 ^= rng.state[0]
				s1 ^= rng.state[1]
			}
			// The accumulation is conditional on the polynomial bit; the
			// state advance is not.
			rng.Uint64()
		}
	}

	rng.state[0] = s0
	rng.state[1] = s1
}
