// Package circuit defines the primitive operations a simulated quantum
// program is made of, as an eagerly materialized tagged variant.
//
// A Program is an ordered []Operation; order is significant because the
// operations do not commute. Qubits are plain integer indices; validating
// them against a register size is the simulator's job.
package circuit

import (
	"fmt"
	"strings"
)

// Kind tags an Operation.
type Kind int

const (
	// Hadamard on qubit A.
	Hadamard Kind = iota
	// PauliX (bit flip) on qubit A.
	PauliX
	// ZRotation applies diag(1, e^{iπθ}) to qubit A.
	ZRotation
	// XRotation applies cos(πθ/2)·I − i·sin(πθ/2)·X to qubit A.
	XRotation
	// ControlledZRotation applies the phase e^{iπθ} to |11⟩ of qubits A and B.
	ControlledZRotation
	// CNOT flips qubit B when qubit A is 1.
	CNOT
)

var kindNames = [...]string{"H", "X", "Z", "RX", "CZ", "CX"}

// String returns the short gate mnemonic.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Arity returns 1 for single-qubit kinds and 2 for two-qubit kinds.
func (k Kind) Arity() int {
	switch k {
	case ControlledZRotation, CNOT:
		return 2
	default:
		return 1
	}
}

// Parameterized reports whether the kind carries an angle.
func (k Kind) Parameterized() bool {
	return k == ZRotation || k == XRotation || k == ControlledZRotation
}

// Operation is one gate application. B is meaningful only for two-qubit
// kinds and Angle (in half-turns) only for parameterized kinds.
type Operation struct {
	Kind  Kind
	A, B  int
	Angle float64
}

// H returns a Hadamard on q.
func H(q int) Operation { return Operation{Kind: Hadamard, A: q} }

// X returns a Pauli-X on q.
func X(q int) Operation { return Operation{Kind: PauliX, A: q} }

// Z returns a Z-axis rotation by t half-turns on q.
func Z(q int, t float64) Operation { return Operation{Kind: ZRotation, A: q, Angle: t} }

// RX returns an X-axis rotation by t half-turns on q.
func RX(q int, t float64) Operation { return Operation{Kind: XRotation, A: q, Angle: t} }

// CZ returns a controlled Z rotation by t half-turns on (a, b).
func CZ(a, b int, t float64) Operation {
	return Operation{Kind: ControlledZRotation, A: a, B: b, Angle: t}
}

// CX returns a CNOT with control a and target b.
func CX(a, b int) Operation { return Operation{Kind: CNOT, A: a, B: b} }

// Qubits returns the qubits the operation touches, in (A, B) order.
func (op Operation) Qubits() []int {
	if op.Kind.Arity() == 2 {
		return []int{op.A, op.B}
	}
	return []int{op.A}
}

// String renders the operation as e.g. "CZ(0,2)^0.25".
func (op Operation) String() string {
	var sb strings.Builder
	sb.WriteString(op.Kind.String())
	if op.Kind.Arity() == 2 {
		fmt.Fprintf(&sb, "(%d,%d)", op.A, op.B)
	} else {
		fmt.Fprintf(&sb, "(%d)", op.A)
	}
	if op.Kind.Parameterized() {
		fmt.Fprintf(&sb, "^%g", op.Angle)
	}

	return sb.String()
}

// Program is an ordered operation list.
type Program []Operation

// Count returns how many operations of kind k the program contains.
func (p Program) Count(k Kind) int {
	n := 0
	for _, op := range p {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// String renders one operation per line.
func (p Program) String() string {
	lines := make([]string, len(p))
	for i, op := range p {
		lines[i] = op.String()
	}
	return strings.Join(lines, "\n")
}
