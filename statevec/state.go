// SPDX-License-Identifier: MIT

package statevec

import "gonum.org/v1/gonum/cmplxs"

// State is a normalized n-qubit state vector. Index k is the basis state
// whose bit q is the value of qubit q.
type State struct {
	n    int
	amps []complex128
}

// NewState returns |0…0⟩ on n qubits.
func NewState(n int) *State {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &State{n: n, amps: amps}
}

// NumQubits returns n.
func (s *State) NumQubits() int { return s.n }

// Len returns 2^n.
func (s *State) Len() int { return len(s.amps) }

// Amplitude returns the amplitude of basis index k.
func (s *State) Amplitude(k int) complex128 { return s.amps[k] }

// Amplitudes returns a copy of the amplitude slice.
func (s *State) Amplitudes() []complex128 {
	return append([]complex128(nil), s.amps...)
}

// Probabilities returns |a_k|² for every basis index (Born rule).
func (s *State) Probabilities() []float64 {
	p := make([]float64, len(s.amps))
	cmplxs.Abs(p, s.amps)
	for k := range p {
		p[k] *= p[k]
	}
	return p
}

// Norm returns Σ|a_k|², the squared L2 norm of the amplitudes.
func (s *State) Norm() float64 {
	n := cmplxs.Norm(s.amps, 2)
	return n * n
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	return &State{n: s.n, amps: s.Amplitudes()}
}

// Fidelity returns |⟨s|t⟩|², or 0 when the register sizes differ.
func (s *State) Fidelity(t *State) float64 {
	if s.n != t.n {
		return 0
	}
	dot := cmplxs.Dot(s.amps, t.amps)
	return real(dot)*real(dot) + imag(dot)*imag(dot)
}

// Decode expands basis index k into n qubit values, qubit q = bit q of k.
func Decode(k, n int) []bool {
	out := make([]bool, n)
	for q := 0; q < n; q++ {
		out[q] = k&(1<<q) != 0
	}
	return out
}

// Encode is the inverse of Decode.
func Encode(bits []bool) int {
	k := 0
	for q, b := range bits {
		if b {
			k |= 1 << q
		}
	}
	return k
}
