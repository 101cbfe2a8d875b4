// Package frames drives a sweep of checkerboard frames over a set of
// angular offsets on a fixed-size worker pool.
package frames

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"confgrid/internal/logging"
)

// DefaultSpan is one period of the six-sector grid.
const DefaultSpan = math.Pi / 3

// Offsets returns n offsets i/n·span for i = 0..n-1.
func Offsets(n int, span float64) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n) * span
	}
	return out
}

// FrameError records the failure of one frame of a sweep.
type FrameError struct {
	Index  int
	Offset float64
	Err    error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d (offset %.4f): %v", e.Index, e.Offset, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// Result is the outcome of one frame. Err is nil when Value is valid.
type Result[T any] struct {
	Index  int
	Offset float64
	Value  T
	Err    error
}

// Map calls fn for every offset using at most workers goroutines; workers
// <= 0 means GOMAXPROCS. Results are indexed by input position whatever the
// completion order. A failing frame does not stop the others; every failure
// is returned as a *FrameError joined into the returned error. Frames not
// yet started when ctx is done fail with ctx.Err().
func Map[T any](ctx context.Context, offsets []float64, workers int, fn func(ctx context.Context, i int, offset float64) (T, error)) ([]Result[T], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := logging.Logger()
	results := make([]Result[T], len(offsets))

	var g errgroup.Group
	g.SetLimit(workers)
	start := time.Now()
	for i, off := range offsets {
		g.Go(func() error {
			r := Result[T]{Index: i, Offset: off}
			if err := ctx.Err(); err != nil {
				r.Err = &FrameError{Index: i, Offset: off, Err: err}
				results[i] = r
				return nil
			}
			t0 := time.Now()
			v, err := fn(ctx, i, off)
			if err != nil {
				r.Err = &FrameError{Index: i, Offset: off, Err: err}
				log.Warn("frame failed", "index", i, "offset", off, "err", err)
			} else {
				r.Value = v
				log.Debug("frame done", "index", i, "offset", off, "took", time.Since(t0))
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	log.Info("sweep finished", "frames", len(offsets), "failed", len(errs), "workers", workers, "took", time.Since(start))
	return results, errors.Join(errs...)
}

// Values returns the values of the successful results in index order.
func Values[T any](results []Result[T]) []T {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r.Value)
		}
	}
	return out
}
