// Package ansatz builds the fixed-structure variational circuit for a
// transverse-field Ising lattice from three rotation parameters.
//
// The program is emitted in four layers, in this exact order:
//
//  1. PrepareLayer:  H on every qubit (uniform superposition).
//  2. FieldLayer:    Z(h) on every site whose field is +1.
//  3. CouplingLayer: CZ(j) on every vertical bond, then every horizontal
//     bond; a bond with coupling −1 is wrapped in X on both qubits before
//     and after, which flips the sign of the interaction.
//  4. MixerLayer:    RX(x) on every qubit.
//
// Build is pure: the same lattice and Params always yield the same Program.
// Angles are in half-turns; there is no deferred symbolic binding, so a new
// Program is built for every parameter triple.
//
// Complexity: O(L²) operations per program.
package ansatz

import (
	"github.com/katalvlaran/isingvqe/circuit"
	"github.com/katalvlaran/isingvqe/lattice"
)

// Params is one point of the variational parameter space, in half-turns.
type Params struct {
	X float64 // mixer rotation
	H float64 // field rotation
	J float64 // coupling rotation
}

// Build returns the complete ansatz program for lat at p.
func Build(lat *lattice.Instance, p Params) circuit.Program {
	n := lat.Qubits()
	// H + Z + (≤5 per bond) + RX
	prog := make(circuit.Program, 0, 3*n+5*2*lat.Size()*(lat.Size()-1))
	prog = append(prog, PrepareLayer(lat)...)
	prog = append(prog, FieldLayer(lat, p.H)...)
	prog = append(prog, CouplingLayer(lat, p.J)...)
	prog = append(prog, MixerLayer(lat, p.X)...)

	return prog
}

// PrepareLayer emits one Hadamard per qubit in index order.
func PrepareLayer(lat *lattice.Instance) circuit.Program {
	prog := make(circuit.Program, 0, lat.Qubits())
	for q := 0; q < lat.Qubits(); q++ {
		prog = append(prog, circuit.H(q))
	}
	return prog
}

// FieldLayer emits Z(h) on each site with field +1, row-major.
func FieldLayer(lat *lattice.Instance, h float64) circuit.Program {
	var prog circuit.Program
	for i := 0; i < lat.Size(); i++ {
		for j := 0; j < lat.Size(); j++ {
			if lat.Field(i, j) == lattice.Up {
				prog = append(prog, circuit.Z(lat.Qubit(i, j), h))
			}
		}
	}
	return prog
}

// CouplingLayer emits the interaction for every bond in lattice.Bonds order.
// The CZ rotation is unconditional; only negative-coupling bonds (−1) get
// the surrounding X conjugation.
func CouplingLayer(lat *lattice.Instance, j float64) circuit.Program {
	var prog circuit.Program
	for _, b := range lat.Bonds() {
		a := lat.Qubit(b.A.Row, b.A.Col)
		c := lat.Qubit(b.B.Row, b.B.Col)
		flip := b.Coupling == lattice.Down
		if flip {
			prog = append(prog, circuit.X(a), circuit.X(c))
		}
		prog = append(prog, circuit.CZ(a, c, j))
		if flip {
			prog = append(prog, circuit.X(a), circuit.X(c))
		}
	}
	return prog
}

// MixerLayer emits RX(x) on every qubit in index order.
func MixerLayer(lat *lattice.Instance, x float64) circuit.Program {
	prog := make(circuit.Program, 0, lat.Qubits())
	for q := 0; q < lat.Qubits(); q++ {
		prog = append(prog, circuit.RX(q, x))
	}
	return prog
}
