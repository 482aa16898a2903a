package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Batch runs independent jobs with at most limit running at once and
// returns their results in input order. Each job enumerates its own
// configuration set, so jobs share nothing but the cache.
//
// The first failing job cancels the rest and its error is returned.
// A limit below one uses DefaultBatchLimit.
func (r *Runner) Batch(ctx context.Context, jobs []Options, limit int) ([]*Result, error) {
	if limit < 1 {
		limit = DefaultBatchLimit
	}
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, opts := range jobs {
		g.Go(func() error {
			res, err := r.Run(ctx, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
