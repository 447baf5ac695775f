// SPDX-License-Identifier: MIT

package statevec

import (
	"math"
	"math/cmplx"
)

var (
	hadamard = mat2{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}
	pauliX = mat2{
		{0, 1},
		{1, 0},
	}
	cnot = mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
)

// phase returns e^{iπt}.
func phase(t float64) complex128 {
	return cmplx.Exp(complex(0, math.Pi*t))
}

// zRotation is diag(1, e^{iπt}).
func zRotation(t float64) mat2 {
	return mat2{
		{1, 0},
		{0, phase(t)},
	}
}

// xRotation is cos(πt/2)·I − i·sin(πt/2)·X.
func xRotation(t float64) mat2 {
	c := complex(math.Cos(math.Pi*t/2), 0)
	s := complex(0, -math.Sin(math.Pi*t/2))
	return mat2{
		{c, s},
		{s, c},
	}
}

// controlledZ is diag(1, 1, 1, e^{iπt}).
func controlledZ(t float64) mat4 {
	return mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, phase(t)},
	}
}
