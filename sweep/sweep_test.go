package sweep_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingvqe/lattice"
	"github.com/katalvlaran/isingvqe/statevec"
	"github.com/katalvlaran/isingvqe/sweep"
)

func uniform(t *testing.T, size int) *lattice.Instance {
	t.Helper()
	lat, err := lattice.Uniform(size, lattice.Up)
	require.NoError(t, err)
	return lat
}

//----------------------------------------------------------------------------//
// Axes and grid
//----------------------------------------------------------------------------//

func TestLinspace(t *testing.T) {
	cases := []struct {
		name        string
		start, stop float64
		count       int
		want        []float64
	}{
		{"Five", 0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"Single", 0.3, 9, 1, []float64{0.3}},
		{"Two", -1, 1, 2, []float64{-1, 1}},
		{"Descending", 1, 0, 3, []float64{1, 0.5, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sweep.Linspace(tc.start, tc.stop, tc.count)
			require.NoError(t, err)
			require.InDeltaSlice(t, tc.want, got, 1e-12)
			require.Equal(t, tc.start, got[0])
			require.Equal(t, tc.count == 1, len(got) == 1)
		})
	}
}

func TestLinspace_Errors(t *testing.T) {
	_, err := sweep.Linspace(0, 1, 0)
	require.ErrorIs(t, err, sweep.ErrEmptySweep)
	_, err = sweep.Linspace(math.NaN(), 1, 3)
	require.ErrorIs(t, err, sweep.ErrInvalidAxis)
	_, err = sweep.NewGrid(sweep.Axis{Count: 1}, sweep.Axis{Count: 0}, sweep.Axis{Count: 1})
	require.ErrorIs(t, err, sweep.ErrEmptySweep)
}

// TestGrid_Enumeration pins the x-outer, h-middle, j-inner order.
func TestGrid_Enumeration(t *testing.T) {
	g := sweep.Grid{X: []float64{0, 1}, H: []float64{10, 20, 30}, J: []float64{100, 200}}
	require.Equal(t, 12, g.Size())

	pts := g.Points()
	require.Len(t, pts, 12)
	assert.Equal(t, sweep.Params{X: 0, H: 10, J: 100}, pts[0])
	assert.Equal(t, sweep.Params{X: 0, H: 10, J: 200}, pts[1])
	assert.Equal(t, sweep.Params{X: 0, H: 20, J: 100}, pts[2])
	assert.Equal(t, sweep.Params{X: 1, H: 10, J: 100}, pts[6])
	assert.Equal(t, sweep.Params{X: 1, H: 30, J: 200}, pts[11])
	for i, p := range pts {
		require.Equal(t, p, g.At(i), "index %d", i)
	}
}

//----------------------------------------------------------------------------//
// Optimize
//----------------------------------------------------------------------------//

// TestOptimize_SinglePoint evaluates exactly one triple, which is both the
// optimum and the only entry. With all +1 and zero angles the objective is 0
// in expectation with sd ≈ 0.09 at 1000 repetitions.
func TestOptimize_SinglePoint(t *testing.T) {
	lat := uniform(t, 2)
	g, err := sweep.NewGrid(sweep.Axis{Count: 1}, sweep.Axis{Count: 1}, sweep.Axis{Count: 1})
	require.NoError(t, err)

	res, err := sweep.Optimize(context.Background(), lat, g, 1000, rand.New(rand.NewSource(1)), sweep.WithQuiet())
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	require.Equal(t, res.Points[0], res.Best)
	assert.Equal(t, sweep.Params{}, res.Best.Params)
	assert.Equal(t, 0, res.Best.Index)
	assert.InDelta(t, 0.0, res.Best.Value, 0.5)
	assert.Equal(t, 1000, res.Best.Histogram.Total())

	v, ok := res.Value(sweep.Params{})
	require.True(t, ok)
	assert.Equal(t, res.Best.Value, v)
	_, ok = res.Value(sweep.Params{X: 1})
	assert.False(t, ok)
}

// TestOptimize_WorkerCountInvariance checks identical landscapes for
// sequential and parallel runs from the same seed.
func TestOptimize_WorkerCountInvariance(t *testing.T) {
	lat, err := lattice.Random(2, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	g, err := sweep.NewGrid(
		sweep.Axis{Start: 0, Stop: 1, Count: 3},
		sweep.Axis{Start: -0.5, Stop: 0.5, Count: 3},
		sweep.Axis{Start: 0, Stop: 0.8, Count: 2},
	)
	require.NoError(t, err)

	run := func(workers int) *sweep.Result {
		res, err := sweep.Optimize(context.Background(), lat, g, 200,
			rand.New(rand.NewSource(99)), sweep.WithWorkers(workers), sweep.WithQuiet())
		require.NoError(t, err)
		return res
	}
	seq := run(1)
	par := run(4)
	again := run(4)

	require.Equal(t, g.Size(), seq.Len())
	require.Equal(t, seq.Points, par.Points)
	require.Equal(t, seq.Best, par.Best)
	require.Equal(t, par.Points, again.Points)
	for i, p := range seq.Points {
		require.Equal(t, i, p.Index)
		require.LessOrEqual(t, seq.Best.Value, p.Value)
	}
}

// TestOptimize_TieKeepsEarliest uses L=1 points whose outcome is certain:
// H, Z(0.5), RX(±0.5) lands on |0⟩ (E=+1) or |1⟩ (E=−1).
func TestOptimize_TieKeepsEarliest(t *testing.T) {
	lat := uniform(t, 1)
	g := sweep.Grid{X: []float64{0.5, -0.5, -0.5}, H: []float64{0.5}, J: []float64{0}}

	res, err := sweep.Optimize(context.Background(), lat, g, 50, nil, sweep.WithQuiet())
	require.NoError(t, err)
	require.Equal(t, 3, res.Len())
	assert.InDelta(t, 1.0, res.Points[0].Value, 1e-12)
	assert.InDelta(t, -1.0, res.Points[1].Value, 1e-12)
	assert.InDelta(t, -1.0, res.Points[2].Value, 1e-12)
	assert.Equal(t, 1, res.Best.Index)

	top := res.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Index)
	assert.Equal(t, 2, top[1].Index)
	assert.Len(t, res.Top(10), 3)
	assert.Nil(t, res.Top(0))
}

func TestOptimize_Limit(t *testing.T) {
	lat := uniform(t, 1)
	g := sweep.Grid{X: []float64{0.5, -0.5}, H: []float64{0.5}, J: []float64{0, 1}}

	res, err := sweep.Optimize(context.Background(), lat, g, 10, nil, sweep.WithLimit(2), sweep.WithQuiet())
	require.NoError(t, err)
	require.Equal(t, 2, res.Len())
	assert.Equal(t, 4, res.GridSize)
	assert.Equal(t, 0.5, res.Best.Params.X, "only x=0.5 points were evaluated")
}

// TestOptimize_AbortsOnPointError makes every evolution exceed the qubit cap.
func TestOptimize_AbortsOnPointError(t *testing.T) {
	lat := uniform(t, 2)
	g := sweep.Grid{X: []float64{0, 1}, H: []float64{0}, J: []float64{0}}

	res, err := sweep.Optimize(context.Background(), lat, g, 10, nil,
		sweep.WithEngineOptions(statevec.WithMaxQubits(2)), sweep.WithWorkers(1), sweep.WithQuiet())
	require.Nil(t, res)
	require.ErrorIs(t, err, statevec.ErrDimension)

	// Same failure with logging on: the abort goes through the error log
	// and the returned error names the lowest failing point.
	res, err = sweep.Optimize(context.Background(), lat, g, 10, nil,
		sweep.WithEngineOptions(statevec.WithMaxQubits(2)), sweep.WithWorkers(2))
	require.Nil(t, res)
	require.ErrorIs(t, err, statevec.ErrDimension)
	assert.Contains(t, err.Error(), "point 0:")
}

func TestOptimize_InputErrors(t *testing.T) {
	lat := uniform(t, 2)
	ok := sweep.Grid{X: []float64{0}, H: []float64{0}, J: []float64{0}}
	ctx := context.Background()

	_, err := sweep.Optimize(ctx, lat, sweep.Grid{X: []float64{0}, H: []float64{0}}, 10, nil)
	require.ErrorIs(t, err, sweep.ErrEmptySweep)

	_, err = sweep.Optimize(ctx, lat, sweep.Grid{X: []float64{math.Inf(1)}, H: []float64{0}, J: []float64{0}}, 10, nil)
	require.ErrorIs(t, err, sweep.ErrInvalidAxis)

	_, err = sweep.Optimize(ctx, lat, ok, 0, nil)
	require.ErrorIs(t, err, sweep.ErrRepetitions)

	_, err = sweep.Optimize(ctx, nil, ok, 10, nil)
	require.ErrorIs(t, err, sweep.ErrNilLattice)

	assert.Panics(t, func() { sweep.WithWorkers(0) })
	assert.Panics(t, func() { sweep.WithLimit(-1) })
}

// TestOptimize_ConsumesOneDraw checks the caller's rng advances by one Int63.
func TestOptimize_ConsumesOneDraw(t *testing.T) {
	lat := uniform(t, 1)
	g := sweep.Grid{X: []float64{0, 0.5}, H: []float64{0}, J: []float64{0}}

	used := rand.New(rand.NewSource(8))
	_, err := sweep.Optimize(context.Background(), lat, g, 5, used, sweep.WithQuiet())
	require.NoError(t, err)

	ref := rand.New(rand.NewSource(8))
	ref.Int63()
	assert.Equal(t, ref.Int63(), used.Int63())
}

//----------------------------------------------------------------------------//
// Evaluate and RNG streams
//----------------------------------------------------------------------------//

func TestEvaluate(t *testing.T) {
	lat := uniform(t, 1)
	p, err := sweep.Evaluate(lat, sweep.Params{X: -0.5, H: 0.5}, 20, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, p.Index)
	assert.InDelta(t, -1.0, p.Value, 1e-12)
	assert.Equal(t, map[int]int{-1: 20}, map[int]int(p.Histogram))

	_, err = sweep.Evaluate(nil, sweep.Params{}, 1, nil)
	require.True(t, errors.Is(err, sweep.ErrNilLattice))
}

func TestDeriveSeed(t *testing.T) {
	a := sweep.DeriveSeedForTest(42, 0)
	assert.Equal(t, a, sweep.DeriveSeedForTest(42, 0))
	assert.NotEqual(t, a, sweep.DeriveSeedForTest(42, 1))
	assert.NotEqual(t, a, sweep.DeriveSeedForTest(43, 0))

	r1 := sweep.PointRNGForTest(7, 3)
	r2 := sweep.PointRNGForTest(7, 3)
	for i := 0; i < 5; i++ {
		require.Equal(t, r1.Int63(), r2.Int63())
	}
}
