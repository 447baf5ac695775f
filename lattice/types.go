// SPDX-License-Identifier: MIT

package lattice

// Up and Down are the only admissible field and coupling values.
const (
	Up   = 1
	Down = -1
)

// Site is a (Row, Col) position on the lattice.
type Site struct {
	Row, Col int
}

// Bond is a pair of adjacent sites together with its coupling sign.
// A is always the upper (vertical bond) or left (horizontal bond) site.
type Bond struct {
	A, B     Site
	Coupling int
}

// Instance is an immutable L×L Ising problem.
// field[i][j] is the transverse field sign at (i,j); row[i][j] couples
// (i,j) with (i+1,j); col[i][j] couples (i,j) with (i,j+1).
type Instance struct {
	size  int
	field [][]int
	row   [][]int
	col   [][]int
}
