package pathfind

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bradleyschulz88/Epochs-of-Empires-sub001/model"
)

// ReachableAll computes the reachable set for every unit concurrently,
// returning results in input order. Queries share no mutable state and are
// idempotent, so running them in parallel is safe; concurrency is bounded
// by GOMAXPROCS. The first invalid unit cancels the batch.
func (f *Finder) ReachableAll(ctx context.Context, units []*model.Unit) ([]ReachableSet, error) {
	results := make([]ReachableSet, len(units))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, u := range units {
		i, u := i, u
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			set, err := f.ReachableTiles(u)
			if err != nil {
				return err
			}
			results[i] = set
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
