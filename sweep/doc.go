// Package sweep minimizes the estimated Ising energy by exhaustive grid
// search over the three ansatz parameters (x, h, j).
//
// What:
//
//   - Linspace / Axis expand (start, stop, count) into evenly spaced values,
//     both endpoints included; count == 1 yields just start.
//   - Grid enumerates the Cartesian product in a fixed order: x outer,
//     h middle, j inner. Point index = (ix·|H| + ih)·|J| + ij.
//   - Evaluate runs ansatz → statevec → sampler → energy for one point.
//   - Optimize evaluates every point on a bounded worker pool and returns
//     the full landscape plus the minimum.
//
// Determinism:
//
//   - The caller's *rand.Rand is consumed exactly once (Int63) to obtain a
//     base seed. Point i samples from its own stream seeded with
//     deriveSeed(base, i), so results never depend on worker count or
//     scheduling order.
//   - The minimum uses strict '<' in enumeration order: ties keep the
//     earliest point.
//
// Failure and cancellation:
//
//   - Any point error aborts the sweep; no partial landscape is returned.
//     When several points fail, the error of the lowest index is reported.
//   - Cancelling ctx stops scheduling new points. Optimize then returns the
//     points that completed (in index order) together with an error
//     wrapping ErrCancelled and ctx.Err().
//   - WithLimit(n) evaluates only the first n points in enumeration order.
//
// Errors:
//
//   - ErrEmptySweep:  an axis has no points.
//   - ErrInvalidAxis: an axis bound is NaN or ±Inf.
//   - ErrRepetitions: repetitions < 1.
//   - ErrCancelled:   ctx was cancelled before the sweep completed.
//   - Errors from lattice, statevec, sampler and energy pass through wrapped.
//
// Complexity: O(|X|·|H|·|J| · (ops·2^(L²) + reps·L²)) total work, spread
// over the workers.
package sweep
