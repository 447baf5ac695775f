package sweep

import "math/rand"

// defaultRNGSeed is the parent seed used when Optimize receives a nil rng.
const defaultRNGSeed int64 = 1

// baseSeed draws the sweep's parent seed. A non-nil rng is advanced by
// exactly one Int63 call.
func baseSeed(rng *rand.Rand) int64 {
	if rng == nil {
		return defaultRNGSeed
	}
	return rng.Int63()
}

// deriveSeed mixes a parent seed and a stream id (the point index) into an
// independent 64-bit seed with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// pointRNG returns the private stream for point index i.
// math/rand.Rand is not goroutine-safe; each worker gets its own.
func pointRNG(parent int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, uint64(i))))
}
