package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the settled outcome of one task.
type Result[T any] struct {
	Value T
	Err   error
}

// SettleAll runs fn for every item concurrently and waits for all of them.
// A failing item never cancels the others; results keep the order of items.
// limit <= 0 means no cap on concurrency.
func SettleAll[In, Out any](ctx context.Context, items []In, limit int, fn func(ctx context.Context, item In) (Out, error)) []Result[Out] {
	results := make([]Result[Out], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			v, err := fn(ctx, item)
			results[i] = Result[Out]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
