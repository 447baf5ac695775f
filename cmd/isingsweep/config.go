package main

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/isingvqe/sweep"
)

// Config holds everything the command needs to run one sweep.
type Config struct {
	Size    int
	Seed    int64
	Random  bool
	X, H, J sweep.Axis
	Reps    int
	Workers int
	Limit   int
	Top     int
	Timeout time.Duration
	Verbose bool
}

// NewConfig returns the defaults: a 2×2 uniform lattice scanned on a
// 5×5×5 grid over one half-turn per axis.
func NewConfig() *Config {
	return &Config{
		Size:    2,
		Seed:    1,
		X:       sweep.Axis{Start: 0, Stop: 1, Count: 5},
		H:       sweep.Axis{Start: 0, Stop: 1, Count: 5},
		J:       sweep.Axis{Start: 0, Stop: 1, Count: 5},
		Reps:    1000,
		Workers: runtime.GOMAXPROCS(0),
		Top:     5,
		Timeout: 5 * time.Minute,
	}
}

// axisValue adapts sweep.Axis to flag.Value as "start:stop:count".
type axisValue struct{ a *sweep.Axis }

func (v axisValue) String() string {
	if v.a == nil {
		return ""
	}
	return fmt.Sprintf("%g:%g:%d", v.a.Start, v.a.Stop, v.a.Count)
}

func (v axisValue) Set(s string) error {
	a, err := parseAxis(s)
	if err != nil {
		return err
	}
	*v.a = a
	return nil
}

// parseAxis accepts "start:stop:count" or a single value "v" (count 1).
func parseAxis(s string) (sweep.Axis, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return sweep.Axis{}, fmt.Errorf("axis %q: %w", s, err)
		}
		return sweep.Axis{Start: v, Stop: v, Count: 1}, nil
	case 3:
		start, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return sweep.Axis{}, fmt.Errorf("axis %q start: %w", s, err)
		}
		stop, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return sweep.Axis{}, fmt.Errorf("axis %q stop: %w", s, err)
		}
		count, err := strconv.Atoi(parts[2])
		if err != nil {
			return sweep.Axis{}, fmt.Errorf("axis %q count: %w", s, err)
		}
		return sweep.Axis{Start: start, Stop: stop, Count: count}, nil
	default:
		return sweep.Axis{}, fmt.Errorf("axis %q: want start:stop:count", s)
	}
}

// parseFlags fills a Config from the command line.
func parseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	fs.IntVar(&cfg.Size, "size", cfg.Size, "lattice side length L")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for instance generation and sampling")
	fs.BoolVar(&cfg.Random, "random", cfg.Random, "use a random ±1 instance instead of all +1")
	fs.Var(axisValue{&cfg.X}, "x", "mixer axis start:stop:count (half-turns)")
	fs.Var(axisValue{&cfg.H}, "h", "field axis start:stop:count (half-turns)")
	fs.Var(axisValue{&cfg.J}, "j", "coupling axis start:stop:count (half-turns)")
	fs.IntVar(&cfg.Reps, "reps", cfg.Reps, "measurement repetitions per point")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent point evaluations")
	fs.IntVar(&cfg.Limit, "limit", cfg.Limit, "evaluate only the first N points (0 = all)")
	fs.IntVar(&cfg.Top, "top", cfg.Top, "number of best points to print")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort the sweep after this long")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("-workers must be >= 1, got %d", cfg.Workers)
	}
	if cfg.Limit < 0 {
		return nil, fmt.Errorf("-limit must be >= 0, got %d", cfg.Limit)
	}
	return cfg, nil
}
