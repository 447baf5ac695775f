package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isingvqe/ansatz"
)

// Params is one (x, h, j) triple in half-turns.
type Params = ansatz.Params

// Axis is a discretized parameter interval.
type Axis struct {
	Start, Stop float64
	Count       int
}

// Values expands the axis; see Linspace.
func (a Axis) Values() ([]float64, error) {
	return Linspace(a.Start, a.Stop, a.Count)
}

// Linspace returns count evenly spaced values from start to stop inclusive.
// count == 1 returns [start]; count < 1 fails with ErrEmptySweep.
// The last value is exactly stop.
func Linspace(start, stop float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("count=%d: %w", count, ErrEmptySweep)
	}
	if !finite(start) || !finite(stop) {
		return nil, fmt.Errorf("[%g, %g]: %w", start, stop, ErrInvalidAxis)
	}
	out := make([]float64, count)
	if count == 1 {
		out[0] = start
		return out, nil
	}
	step := (stop - start) / float64(count-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[count-1] = stop

	return out, nil
}

// Grid holds the three axes of a sweep. Enumeration order is x outer,
// h middle, j inner.
type Grid struct {
	X, H, J []float64
}

// NewGrid expands three axes into a Grid.
func NewGrid(x, h, j Axis) (Grid, error) {
	xs, err := x.Values()
	if err != nil {
		return Grid{}, fmt.Errorf("x axis: %w", err)
	}
	hs, err := h.Values()
	if err != nil {
		return Grid{}, fmt.Errorf("h axis: %w", err)
	}
	js, err := j.Values()
	if err != nil {
		return Grid{}, fmt.Errorf("j axis: %w", err)
	}
	return Grid{X: xs, H: hs, J: js}, nil
}

// Validate fails with ErrEmptySweep if any axis is empty and with
// ErrInvalidAxis if any value is not finite.
func (g Grid) Validate() error {
	for _, ax := range []struct {
		name string
		vals []float64
	}{{"x", g.X}, {"h", g.H}, {"j", g.J}} {
		if len(ax.vals) == 0 {
			return fmt.Errorf("%s axis: %w", ax.name, ErrEmptySweep)
		}
		for i, v := range ax.vals {
			if !finite(v) {
				return fmt.Errorf("%s axis[%d]=%g: %w", ax.name, i, v, ErrInvalidAxis)
			}
		}
	}
	return nil
}

// Size returns |X|·|H|·|J|.
func (g Grid) Size() int { return len(g.X) * len(g.H) * len(g.J) }

// At returns the triple at enumeration index i.
func (g Grid) At(i int) Params {
	nh, nj := len(g.H), len(g.J)
	ij := i % nj
	ih := (i / nj) % nh
	ix := i / (nj * nh)
	return Params{X: g.X[ix], H: g.H[ih], J: g.J[ij]}
}

// Points enumerates every triple in index order.
func (g Grid) Points() []Params {
	out := make([]Params, 0, g.Size())
	for _, x := range g.X {
		for _, h := range g.H {
			for _, j := range g.J {
				out = append(out, Params{X: x, H: h, J: j})
			}
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
