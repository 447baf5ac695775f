// SPDX-License-Identifier: MIT

package statevec

import "math"

// ---------- Defaults ----------

const (
	// DefaultMaxQubits caps the register size: 2^24 amplitudes are 256 MiB.
	DefaultMaxQubits = 24

	// DefaultNormEpsilon is the tolerance used by WithNormCheck when eps == 0.
	DefaultNormEpsilon = 1e-9
)

const (
	panicMaxQubitsInvalid = "statevec: WithMaxQubits: limit must be in [1, 62]"
	panicNormEpsInvalid   = "statevec: WithNormCheck: eps must be finite, non-negative"
)

// Option mutates Options.
type Option func(*Options)

// Options is the effective engine configuration.
type Options struct {
	maxQubits int     // DefaultMaxQubits
	normCheck bool    // off by default
	normEps   float64 // DefaultNormEpsilon
}

// WithMaxQubits sets the largest register Evolve will allocate.
// Panics when limit is outside [1, 62].
func WithMaxQubits(limit int) Option {
	if limit < 1 || limit > 62 {
		panic(panicMaxQubitsInvalid)
	}
	return func(o *Options) { o.maxQubits = limit }
}

// WithNormCheck verifies |‖ψ‖² − 1| ≤ eps after every operation and fails
// with ErrNormDrift otherwise. eps == 0 selects DefaultNormEpsilon.
// Costs one extra O(2^n) pass per operation.
func WithNormCheck(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicNormEpsInvalid)
	}
	if eps == 0 {
		eps = DefaultNormEpsilon
	}
	return func(o *Options) {
		o.normCheck = true
		o.normEps = eps
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{
		maxQubits: DefaultMaxQubits,
		normEps:   DefaultNormEpsilon,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
