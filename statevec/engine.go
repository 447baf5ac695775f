// SPDX-License-Identifier: MIT

package statevec

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isingvqe/circuit"
)

type (
	mat2 [2][2]complex128
	mat4 [4][4]complex128
)

// Evolve simulates prog on an L×L register (n = L² qubits) starting from
// |0…0⟩ and returns the final state.
// Every operation is validated before the state is allocated.
func Evolve(size int, prog circuit.Program, opts ...Option) (*State, error) {
	if size < 1 {
		return nil, fmt.Errorf("lattice size %d < 1: %w", size, ErrDimension)
	}
	return EvolveQubits(size*size, prog, opts...)
}

// EvolveQubits simulates prog on an n-qubit register starting from |0…0⟩.
func EvolveQubits(n int, prog circuit.Program, opts ...Option) (*State, error) {
	o := gatherOptions(opts)
	if n < 1 || n > o.maxQubits {
		return nil, fmt.Errorf("register of %d qubits outside [1, %d]: %w", n, o.maxQubits, ErrDimension)
	}
	for i, op := range prog {
		if err := validate(op, n); err != nil {
			return nil, fmt.Errorf("op %d %v: %w", i, op, err)
		}
	}

	s := NewState(n)
	for i, op := range prog {
		s.apply(op)
		if o.normCheck {
			if norm := s.Norm(); math.Abs(norm-1) > o.normEps {
				return nil, fmt.Errorf("after op %d %v norm=%.12g: %w", i, op, norm, ErrNormDrift)
			}
		}
	}

	return s, nil
}

// Apply runs a single operation on s in place after validating it.
func (s *State) Apply(op circuit.Operation) error {
	if err := validate(op, s.n); err != nil {
		return fmt.Errorf("%v: %w", op, err)
	}
	s.apply(op)
	return nil
}

func validate(op circuit.Operation, n int) error {
	switch op.Kind {
	case circuit.Hadamard, circuit.PauliX, circuit.ZRotation, circuit.XRotation:
		if op.A < 0 || op.A >= n {
			return fmt.Errorf("qubit %d not in [0, %d): %w", op.A, n, ErrDimension)
		}
	case circuit.ControlledZRotation, circuit.CNOT:
		if op.A < 0 || op.A >= n || op.B < 0 || op.B >= n {
			return fmt.Errorf("qubits (%d,%d) not in [0, %d): %w", op.A, op.B, n, ErrDimension)
		}
		if op.A == op.B {
			return ErrQubitCollision
		}
	default:
		return ErrUnknownOp
	}
	return nil
}

// apply assumes op was validated.
func (s *State) apply(op circuit.Operation) {
	switch op.Kind {
	case circuit.Hadamard:
		s.apply1(op.A, hadamard)
	case circuit.PauliX:
		s.apply1(op.A, pauliX)
	case circuit.ZRotation:
		s.apply1(op.A, zRotation(op.Angle))
	case circuit.XRotation:
		s.apply1(op.A, xRotation(op.Angle))
	case circuit.ControlledZRotation:
		s.apply2(op.A, op.B, controlledZ(op.Angle))
	case circuit.CNOT:
		s.apply2(op.A, op.B, cnot)
	}
}

// apply1 updates every pair (i, i|bit) with bit q of i clear.
func (s *State) apply1(q int, m mat2) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = m[0][0]*a0 + m[0][1]*a1
		s.amps[j] = m[1][0]*a0 + m[1][1]*a1
	}
}

// apply2 updates every group of four amplitudes sharing all bits except
// those of qubits a and b. Local index is (bit_a << 1) | bit_b.
func (s *State) apply2(a, b int, m mat4) {
	ba, bb := 1<<a, 1<<b
	var idx [4]int
	var v [4]complex128
	for i := range s.amps {
		if i&ba != 0 || i&bb != 0 {
			continue
		}
		idx = [4]int{i, i | bb, i | ba, i | ba | bb}
		for k := range idx {
			v[k] = s.amps[idx[k]]
		}
		for r := range idx {
			s.amps[idx[r]] = m[r][0]*v[0] + m[r][1]*v[1] + m[r][2]*v[2] + m[r][3]*v[3]
		}
	}
}
