// Package fanout runs a function over a slice of items with bounded
// concurrency, keeping results in input order. The property details read and
// the readiness check both use it to issue independent calls side by side.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines and returns
// one Result per item, in input order. A failing item never cancels the
// others.
//
// Items still waiting for a worker when ctx is canceled record ctx.Err()
// without calling fn. Items already running finish; fn should honor ctx
// itself. An empty items slice yields an empty non-nil slice. A maxWorkers
// below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
