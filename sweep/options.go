// SPDX-License-Identifier: MIT

package sweep

import (
	"runtime"

	"github.com/katalvlaran/isingvqe/sampler"
	"github.com/katalvlaran/isingvqe/statevec"
)

const (
	panicWorkersInvalid = "sweep: WithWorkers: workers must be >= 1"
	panicLimitInvalid   = "sweep: WithLimit: limit must be >= 1"
)

// Option configures Optimize and Evaluate.
type Option func(*Options)

// Options is the effective sweep configuration.
type Options struct {
	workers int // GOMAXPROCS by default
	limit   int // 0 = whole grid
	engine  []statevec.Option
	sampler []sampler.Option
	quiet   bool
}

// WithWorkers bounds the number of points evaluated concurrently.
// 1 makes the sweep sequential. Panics when workers < 1.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = workers }
}

// WithLimit evaluates only the first n points in enumeration order.
// Panics when n < 1.
func WithLimit(n int) Option {
	if n < 1 {
		panic(panicLimitInvalid)
	}
	return func(o *Options) { o.limit = n }
}

// WithEngineOptions forwards options to statevec.Evolve for every point.
func WithEngineOptions(opts ...statevec.Option) Option {
	return func(o *Options) { o.engine = append(o.engine, opts...) }
}

// WithSamplerOptions forwards options to sampler.Draw for every point.
func WithSamplerOptions(opts ...sampler.Option) Option {
	return func(o *Options) { o.sampler = append(o.sampler, opts...) }
}

// WithQuiet disables progress logging.
func WithQuiet() Option {
	return func(o *Options) { o.quiet = true }
}

func gatherOptions(opts []Option) Options {
	o := Options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
