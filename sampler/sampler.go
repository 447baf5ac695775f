// Package sampler draws computational-basis measurement outcomes from a
// simulated state vector under the Born rule.
//
// Draw builds the cumulative distribution of |a_k|² once and then performs
// one binary search per repetition, consuming exactly one Float64 from the
// supplied *rand.Rand per draw. Same seed ⇒ same sequence of samples.
//
// math/rand.Rand is NOT goroutine-safe: give each worker its own stream.
//
// Complexity: O(2^n) to build the CDF plus O(reps·(n + log 2^n)) to draw
// and decode.
package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/isingvqe/statevec"
)

var (
	// ErrInvalidDistribution indicates Σ|a_k|² differs from 1 by more than
	// the tolerance; an upstream engine defect, not recoverable here.
	ErrInvalidDistribution = errors.New("sampler: probabilities do not sum to 1")

	// ErrRepetitions indicates a non-positive repetition count.
	ErrRepetitions = errors.New("sampler: repetitions must be >= 1")

	// ErrDimension is statevec.ErrDimension: the state does not hold L² qubits.
	ErrDimension = statevec.ErrDimension
)

// DefaultTolerance bounds |Σp − 1|.
const DefaultTolerance = 1e-9

// defaultSeed is used when Draw receives a nil *rand.Rand.
const defaultSeed int64 = 1

const panicToleranceInvalid = "sampler: WithTolerance: tol must be finite, non-negative"

// Option configures Draw.
type Option func(*options)

type options struct {
	tol float64
}

// WithTolerance overrides DefaultTolerance. Panics on negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}
	return func(o *options) { o.tol = tol }
}

// Sample is one measurement outcome: Sample[q] is the value read on qubit q.
type Sample []bool

// String renders the outcome qubit 0 first, e.g. "0110".
func (s Sample) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, b := range s {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Draw measures st reps times. size is the lattice side L; st must hold L²
// qubits. A nil rng uses a fixed default seed.
func Draw(st *statevec.State, size, reps int, rng *rand.Rand, opts ...Option) ([]Sample, error) {
	o := options{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if reps < 1 {
		return nil, fmt.Errorf("reps=%d: %w", reps, ErrRepetitions)
	}
	if st.NumQubits() != size*size {
		return nil, fmt.Errorf("state has %d qubits, lattice %d×%d needs %d: %w",
			st.NumQubits(), size, size, size*size, ErrDimension)
	}

	cdf, err := cumulative(st.Probabilities(), o.tol)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	n := st.NumQubits()
	out := make([]Sample, reps)
	for r := range out {
		out[r] = statevec.Decode(pick(cdf, rng.Float64()), n)
	}

	return out, nil
}

// Counts tallies outcomes by their String form. Keys list qubit 0 first,
// so a register where only qubit 0 reads 1 is "10"; this is the reverse of
// the rightmost-qubit-0 convention used by most circuit toolkits.
func Counts(samples []Sample) map[string]int {
	out := make(map[string]int)
	for _, s := range samples {
		out[s.String()]++
	}
	return out
}

// cumulative returns the running sum of p after checking it totals 1.
func cumulative(p []float64, tol float64) ([]float64, error) {
	cdf := make([]float64, len(p))
	var sum float64
	for k, v := range p {
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("p[%d]=%g: %w", k, v, ErrInvalidDistribution)
		}
		sum += v
		cdf[k] = sum
	}
	if math.Abs(sum-1) > tol {
		return nil, fmt.Errorf("sum=%.12g: %w", sum, ErrInvalidDistribution)
	}
	return cdf, nil
}

// pick maps u ∈ [0,1) to the first index whose cumulative mass exceeds
// u·total. Zero-probability indices are never selected.
func pick(cdf []float64, u float64) int {
	total := cdf[len(cdf)-1]
	target := u * total
	k := sort.Search(len(cdf), func(i int) bool { return cdf[i] > target })
	if k == len(cdf) {
		// u·total rounded up to total; fall back to the last index with mass.
		k = len(cdf) - 1
		for k > 0 && cdf[k] == cdf[k-1] {
			k--
		}
	}
	return k
}
