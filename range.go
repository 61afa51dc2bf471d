package xoroshiro

// Range advances the generator as needed and returns a value drawn
// uniformly from the half-open interval [min, max). When min == max it
// returns min without consuming any output. When min > max it returns 0;
// callers that cannot rule out 0 as an in-range value must validate their
// bounds before calling.
//
// Raw outputs are reduced by equal-size buckets, and outputs from the
// oversized tail bucket are discarded and redrawn rather than wrapped, so
// the result carries no modulo bias.
func (rng *Rng) Range(min, max uint64) uint64 {
	if min == max {
		return min
	}
	if min > max {
		return 0
	}

	span := max - min
	bucket := RandMax / span
	// First raw value past the last full bucket.
	threshold := RandMax - RandMax%span

	for {
		r := rng.Uint64()
		if r >= threshold {
			continue
		}
		return min + r/bucket
	}
}
