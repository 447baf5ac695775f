// Package statevec is a dense state-vector simulator for small registers.
//
// What:
//
//   - State holds 2^n complex128 amplitudes of an n-qubit register.
//   - Evolve starts from |0…0⟩ and applies a circuit.Program in order, each
//     operation as a unitary restricted to the qubits it touches.
//   - Decode/Encode fix the bit-to-qubit mapping shared with the sampler and
//     the energy folder: qubit q is bit q of the basis index (little-endian).
//
// Gate application:
//
//   - Single-qubit gates update every amplitude pair (i, i|1<<q) with i's
//     bit q clear via a 2×2 matrix.
//   - Two-qubit gates update every group of four amplitudes sharing all
//     other bits via a 4×4 matrix over the local basis |a b⟩, a being the
//     high local bit.
//   - All updates are in place; no per-gate allocation.
//
// Numeric semantics (θ in half-turns):
//
//	Z(θ)  = diag(1, e^{iπθ})
//	RX(θ) = cos(πθ/2)·I − i·sin(πθ/2)·X
//	CZ(θ) = diag(1, 1, 1, e^{iπθ})
//
// Errors:
//
//   - ErrDimension:      qubit index outside [0, n), or n beyond the limit.
//   - ErrQubitCollision: a two-qubit gate names the same qubit twice.
//   - ErrUnknownOp:      an operation kind the engine cannot apply.
//   - ErrNormDrift:      norm left tolerance (only with WithNormCheck).
//
// Complexity: O(2^n) time per gate, O(2^n) memory.
package statevec
