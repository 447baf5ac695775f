// SPDX-License-Identifier: MIT

// Test bridge: exposes unexported helpers to package sweep_test only.

package sweep

import (
	"context"
	"math/rand"
)

// DeriveSeedForTest exposes deriveSeed.
func DeriveSeedForTest(parent int64, stream uint64) int64 {
	return deriveSeed(parent, stream)
}

// PointRNGForTest exposes pointRNG.
func PointRNGForTest(parent int64, i int) *rand.Rand {
	return pointRNG(parent, i)
}

// RunPoolForTest runs the worker pool over indices [0, n) with a caller
// supplied evaluation and returns completed indices and the first error.
func RunPoolForTest(ctx context.Context, workers, n int, eval func(i int) (float64, error)) ([]int, int, error) {
	jobs := make([]job, n)
	for i := range jobs {
		jobs[i] = job{index: i}
	}
	out := runPool(ctx, workers, jobs, n, func(j job) (Point, error) {
		v, err := eval(j.index)
		return Point{Index: j.index, Value: v}, err
	})
	var done []int
	for _, p := range out.completed() {
		done = append(done, p.Index)
	}
	i, err := out.firstError()
	return done, i, err
}
