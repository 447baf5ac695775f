// Package energy folds measurement outcomes into the classical Ising
// objective and aggregates them into an expectation estimate.
//
// Spin convention: outcome false (0) is spin-up +1, true (1) is spin-down −1.
//
//	E(s) = Σ field[i][j]·s[i][j]
//	     + Σ row[i][j]·s[i][j]·s[i+1][j]
//	     + Σ col[i][j]·s[i][j]·s[i][j+1]
//
// Every term is ±1, so E lies in [−Terms, +Terms] and shares the parity of
// Terms (see Bounds).
//
// Fold and Estimate are pure and deterministic; there is no randomness in
// this package.
package energy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/isingvqe/lattice"
	"github.com/katalvlaran/isingvqe/sampler"
	"github.com/katalvlaran/isingvqe/statevec"
)

var (
	// ErrSampleSize indicates a sample whose length is not L².
	ErrSampleSize = errors.New("energy: sample length does not match lattice")

	// ErrNoSamples indicates Estimate was given an empty sample set.
	ErrNoSamples = errors.New("energy: no samples")
)

// Fold returns the Ising energy of one outcome on lat.
// Complexity: O(L²).
func Fold(sample []bool, lat *lattice.Instance) (int, error) {
	if len(sample) != lat.Qubits() {
		return 0, fmt.Errorf("len=%d want %d: %w", len(sample), lat.Qubits(), ErrSampleSize)
	}
	n := lat.Size()
	spin := func(i, j int) int {
		if sample[lat.Qubit(i, j)] {
			return -1
		}
		return 1
	}

	e := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s := spin(i, j)
			e += lat.Field(i, j) * s
			if i+1 < n {
				e += lat.RowCoupling(i, j) * s * spin(i+1, j)
			}
			if j+1 < n {
				e += lat.ColCoupling(i, j) * s * spin(i, j+1)
			}
		}
	}

	return e, nil
}

// Bounds returns the inclusive range every Fold result falls into.
func Bounds(lat *lattice.Instance) (lo, hi int) {
	return -lat.Terms(), lat.Terms()
}

// Histogram counts samples per energy value.
type Histogram map[int]int

// Total returns the number of samples recorded.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Energies returns the recorded energy values in ascending order.
func (h Histogram) Energies() []int {
	keys := make([]int, 0, len(h))
	for e := range h {
		keys = append(keys, e)
	}
	sort.Ints(keys)
	return keys
}

// Mean returns the count-weighted mean energy, or 0 for an empty histogram.
// Summation runs in ascending energy order so the result is reproducible.
func (h Histogram) Mean() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}
	var sum float64
	for _, e := range h.Energies() {
		sum += float64(e) * float64(h[e])
	}
	return sum / float64(total)
}

// Result is the aggregated objective over a sample set.
type Result struct {
	Mean      float64
	Histogram Histogram
}

// Estimate folds every sample and returns the arithmetic mean energy plus
// the full empirical histogram.
// Complexity: O(N·L²).
func Estimate(samples []sampler.Sample, lat *lattice.Instance) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrNoSamples
	}
	h := make(Histogram)
	for i, s := range samples {
		e, err := Fold(s, lat)
		if err != nil {
			return Result{}, fmt.Errorf("sample %d: %w", i, err)
		}
		h[e]++
	}

	return Result{Mean: h.Mean(), Histogram: h}, nil
}

// Expectation returns the exact ⟨E⟩ = Σ p_k·E(k) over the basis states,
// using the statevec bit mapping. p must hold 2^(L²) probabilities;
// lattices with 63 or more sites fail with ErrSampleSize.
// Complexity: O(2^(L²)·L²).
func Expectation(p []float64, lat *lattice.Instance) (float64, error) {
	n := lat.Qubits()
	if n >= 63 {
		return 0, fmt.Errorf("%d qubits: basis does not fit in int: %w", n, ErrSampleSize)
	}
	if len(p) != 1<<n {
		return 0, fmt.Errorf("len(p)=%d want %d: %w", len(p), 1<<n, ErrSampleSize)
	}
	var sum float64
	for k, pk := range p {
		if pk == 0 {
			continue
		}
		e, err := Fold(statevec.Decode(k, n), lat)
		if err != nil {
			return 0, err
		}
		sum += pk * float64(e)
	}
	return sum, nil
}
