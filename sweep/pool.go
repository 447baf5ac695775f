package sweep

import (
	"context"
	"sync"
)

// job is one grid point handed to a worker.
type job struct {
	index  int
	params Params
}

// slots collects per-index outcomes. Each index is written by exactly one
// worker, and readers only look after wg.Wait, so no lock is needed.
type slots struct {
	points []Point
	done   []bool
	errs   []error
}

// runPool evaluates jobs on up to workers goroutines. The first failing job
// cancels the pool; jobs not yet started when ctx ends are skipped.
// Returned slots are indexed by job.index.
func runPool(ctx context.Context, workers int, jobs []job, size int, eval func(job) (Point, error)) *slots {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := &slots{
		points: make([]Point, size),
		done:   make([]bool, size),
		errs:   make([]error, size),
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	queue := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				if ctx.Err() != nil {
					continue
				}
				p, err := eval(j)
				if err != nil {
					out.errs[j.index] = err
					cancel()
					continue
				}
				out.points[j.index] = p
				out.done[j.index] = true
			}
		}()
	}

feed:
	for _, j := range jobs {
		select {
		case queue <- j:
		case <-ctx.Done():
			break feed
		}
	}
	close(queue)
	wg.Wait()

	return out
}

// firstError returns the error of the lowest failing index, if any.
func (s *slots) firstError() (int, error) {
	for i, err := range s.errs {
		if err != nil {
			return i, err
		}
	}
	return -1, nil
}

// completed returns the finished points in index order.
func (s *slots) completed() []Point {
	out := make([]Point, 0, len(s.points))
	for i, ok := range s.done {
		if ok {
			out = append(out, s.points[i])
		}
	}
	return out
}
