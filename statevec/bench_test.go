package statevec_test

import (
	"testing"

	"github.com/katalvlaran/isingvqe/ansatz"
	"github.com/katalvlaran/isingvqe/lattice"
	"github.com/katalvlaran/isingvqe/statevec"
)

// benchmarkEvolve runs the full ansatz on a uniform size×size lattice.
// Complexity per op is O(2^(size²)).
func benchmarkEvolve(b *testing.B, size int) {
	lat, err := lattice.Uniform(size, lattice.Down)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	prog := ansatz.Build(lat, ansatz.Params{X: 0.3, H: 0.2, J: 0.7})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := statevec.Evolve(size, prog); err != nil {
			b.Fatalf("Evolve failed: %v", err)
		}
	}
}

func BenchmarkEvolve_2x2(b *testing.B) { benchmarkEvolve(b, 2) }
func BenchmarkEvolve_3x3(b *testing.B) { benchmarkEvolve(b, 3) }
func BenchmarkEvolve_4x4(b *testing.B) { benchmarkEvolve(b, 4) }
