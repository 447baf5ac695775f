// SPDX-License-Identifier: MIT

package sweep

import (
	"errors"

	"github.com/katalvlaran/isingvqe/sampler"
)

var (
	// ErrEmptySweep indicates an axis with zero points.
	ErrEmptySweep = errors.New("sweep: axis has no points")

	// ErrInvalidAxis indicates a NaN or infinite axis bound.
	ErrInvalidAxis = errors.New("sweep: axis bound is not finite")

	// ErrCancelled indicates the context ended before every point was evaluated.
	ErrCancelled = errors.New("sweep: cancelled")

	// ErrNilLattice indicates Optimize or Evaluate received a nil instance.
	ErrNilLattice = errors.New("sweep: nil lattice")

	// ErrRepetitions is sampler.ErrRepetitions.
	ErrRepetitions = sampler.ErrRepetitions
)
