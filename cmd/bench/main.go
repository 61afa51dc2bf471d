package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/renproject/xoroshiro"
)

func main() {
	defer profile.Start().Stop()

	const draws = 1 << 27

	rng := xoroshiro.New(0)

	// The sink stops the compiler from eliding the draw loops.
	var sink uint64

	start := time.Now()
	for i := 0; i < draws; i++ {
		sink ^= rng.Uint64()
	}
	report("raw", draws, time.Since(start))

	start = time.Now()
	for i := 0; i < draws; i++ {
		sink ^= rng.Range(0, 6)
	}
	report("range(0, 6)", draws, time.Since(start))

	start = time.Now()
	streams := partition(rng, 8)
	for _, stream := range streams {
		for i := 0; i < draws/8; i++ {
			sink ^= stream.Uint64()
		}
	}
	report("8 jumped streams", draws, time.Since(start))

	fmt.Printf("sink: %016x\n", sink)
}

func partition(rng *xoroshiro.Rng, n int) []*xoroshiro.Rng {
	streams := make([]*xoroshiro.Rng, n)
	for k := range streams {
		streams[k] = rng.Copy()
		for j := 0; j < k; j++ {
			streams[k].Jump()
		}
	}

	return streams
}

func report(name string, draws int, elapsed time.Duration) {
	rate := float64(draws) / elapsed.Seconds() / 1e6
	fmt.Printf("%-16v %v draws in %v (%.1f M draws/s)\n", name, draws, elapsed, rate)
}
