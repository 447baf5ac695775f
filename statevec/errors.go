// SPDX-License-Identifier: MIT

package statevec

import "errors"

var (
	// ErrDimension indicates a qubit index outside [0, n) or a register
	// larger than the configured qubit limit.
	ErrDimension = errors.New("statevec: qubit index out of range")

	// ErrQubitCollision indicates a two-qubit operation with A == B.
	ErrQubitCollision = errors.New("statevec: two-qubit operation on a single qubit")

	// ErrUnknownOp indicates an operation kind the engine does not implement.
	ErrUnknownOp = errors.New("statevec: unknown operation kind")

	// ErrNormDrift indicates the squared-magnitude sum left 1 by more than eps.
	ErrNormDrift = errors.New("statevec: state norm drifted")
)
