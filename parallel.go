package osmcqi

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluateAll evaluates every segment on a bounded worker pool. Results keep
// the input order; dropped segments leave a nil entry. workers <= 0 picks
// the number of CPUs.
func (engine *Engine) EvaluateAll(ctx context.Context, segments []*Segment, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]*Result, len(segments))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i := range segments {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if result, ok := engine.Evaluate(segments[i]); ok {
				results[i] = result
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
