package sweep

import (
	"sort"
	"time"

	"github.com/katalvlaran/isingvqe/energy"
)

// Point is one evaluated grid point.
type Point struct {
	Index     int              // enumeration index in the grid
	Params    Params           // (x, h, j)
	Value     float64          // mean sampled energy
	Histogram energy.Histogram // energy → count
}

// Result is the read-only outcome of a sweep.
type Result struct {
	// Points holds every evaluated point in enumeration order.
	Points []Point
	// Best is the first point with the smallest Value; zero when Points is empty.
	Best Point
	// GridSize is the size of the full grid, which may exceed len(Points)
	// under WithLimit or cancellation.
	GridSize int
	Elapsed  time.Duration

	byParams map[Params]int
}

func newResult(points []Point, gridSize int, elapsed time.Duration) *Result {
	r := &Result{
		Points:   points,
		GridSize: gridSize,
		Elapsed:  elapsed,
		byParams: make(map[Params]int, len(points)),
	}
	for i, p := range points {
		if i == 0 || p.Value < r.Best.Value {
			r.Best = p
		}
		if _, dup := r.byParams[p.Params]; !dup {
			r.byParams[p.Params] = i
		}
	}
	return r
}

// Len returns the number of evaluated points.
func (r *Result) Len() int { return len(r.Points) }

// Value looks up the objective of an evaluated triple. When an axis repeats
// a value, the earliest point wins.
func (r *Result) Value(p Params) (float64, bool) {
	i, ok := r.byParams[p]
	if !ok {
		return 0, false
	}
	return r.Points[i].Value, true
}

// Top returns up to k points ordered by Value, ties by Index.
func (r *Result) Top(k int) []Point {
	if k > len(r.Points) {
		k = len(r.Points)
	}
	if k <= 0 {
		return nil
	}
	sorted := append([]Point(nil), r.Points...)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Value < sorted[b].Value
	})
	return sorted[:k]
}
