// Package lattice describes an instance of the 2D Ising model with a
// transverse field on a square L×L grid of two-level systems.
//
// What:
//
//   - Instance holds the per-site field signs and the couplings between
//     vertically (row) and horizontally (col) adjacent sites, all in {+1,−1}.
//   - Sites are addressed by (row, col) and flattened row-major into a qubit
//     index row*L+col.
//   - Instances are immutable: New deep-copies its inputs and accessors
//     never expose internal slices.
//
// Shapes:
//
//	field[L][L]      one entry per site
//	row[L-1][L]      row[i][j] couples (i,j) with (i+1,j)
//	col[L][L-1]      col[i][j] couples (i,j) with (i,j+1)
//
// Constructors:
//
//   - New:     validate and copy three explicit grids.
//   - Uniform: every field and coupling set to the same sign.
//   - Random:  independent ±1 draws from a caller-supplied *rand.Rand.
//
// Errors:
//
//   - ErrInvalidInstance: a value outside {+1,−1}, a size < 1, or a grid
//     whose dimensions disagree with L. Returned errors wrap the sentinel
//     and name the offending cell or dimension.
//
// Complexity: all constructors are O(L²) time and memory.
package lattice
