package sweep

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/theapemachine/errnie"

	"github.com/katalvlaran/isingvqe/ansatz"
	"github.com/katalvlaran/isingvqe/energy"
	"github.com/katalvlaran/isingvqe/lattice"
	"github.com/katalvlaran/isingvqe/sampler"
	"github.com/katalvlaran/isingvqe/statevec"
)

// Evaluate estimates the objective at a single point: it builds the ansatz,
// evolves it, draws reps samples from rng and folds them into a mean energy.
// The returned Point has Index -1; Optimize fills it in.
func Evaluate(lat *lattice.Instance, p Params, reps int, rng *rand.Rand, opts ...Option) (Point, error) {
	o := gatherOptions(opts)
	return evaluate(lat, p, reps, rng, o)
}

func evaluate(lat *lattice.Instance, p Params, reps int, rng *rand.Rand, o Options) (Point, error) {
	if lat == nil {
		return Point{}, ErrNilLattice
	}
	st, err := statevec.Evolve(lat.Size(), ansatz.Build(lat, p), o.engine...)
	if err != nil {
		return Point{}, fmt.Errorf("evolve %+v: %w", p, err)
	}
	samples, err := sampler.Draw(st, lat.Size(), reps, rng, o.sampler...)
	if err != nil {
		return Point{}, fmt.Errorf("sample %+v: %w", p, err)
	}
	est, err := energy.Estimate(samples, lat)
	if err != nil {
		return Point{}, fmt.Errorf("estimate %+v: %w", p, err)
	}

	return Point{Index: -1, Params: p, Value: est.Mean, Histogram: est.Histogram}, nil
}

// Optimize evaluates every point of grid (or the first WithLimit points) and
// returns the landscape and its minimum. rng seeds the per-point streams and
// is advanced exactly once; nil selects a fixed default seed.
//
// On a point failure Optimize returns (nil, err). On ctx cancellation it
// returns the completed points and an error wrapping ErrCancelled.
func Optimize(ctx context.Context, lat *lattice.Instance, grid Grid, reps int, rng *rand.Rand, opts ...Option) (*Result, error) {
	if lat == nil {
		return nil, ErrNilLattice
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if reps < 1 {
		return nil, fmt.Errorf("reps=%d: %w", reps, ErrRepetitions)
	}
	o := gatherOptions(opts)

	total := grid.Size()
	if o.limit > 0 && o.limit < total {
		total = o.limit
	}
	jobs := make([]job, total)
	for i := range jobs {
		jobs[i] = job{index: i, params: grid.At(i)}
	}

	base := baseSeed(rng)
	if !o.quiet {
		errnie.Info("sweep: L=%d points=%d/%d reps=%d workers=%d", lat.Size(), total, grid.Size(), reps, o.workers)
	}

	start := time.Now()
	out := runPool(ctx, o.workers, jobs, total, func(j job) (Point, error) {
		p, err := evaluate(lat, j.params, reps, pointRNG(base, j.index), o)
		p.Index = j.index
		return p, err
	})

	if i, err := out.firstError(); err != nil {
		err = fmt.Errorf("point %d: %w", i, err)
		if !o.quiet {
			errnie.Error(err)
		}
		return nil, err
	}

	res := newResult(out.completed(), grid.Size(), time.Since(start))
	if len(res.Points) < total {
		return res, fmt.Errorf("%w after %d/%d points: %w", ErrCancelled, len(res.Points), total, ctx.Err())
	}
	if !o.quiet {
		errnie.Info("sweep: best %+v = %.6f over %d points in %v", res.Best.Params, res.Best.Value, len(res.Points), res.Elapsed)
	}

	return res, nil
}
