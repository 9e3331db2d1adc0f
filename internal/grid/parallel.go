package grid

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEachRow calls fn for rows [0, n). With more than one worker rows run
// concurrently; fn must only touch state owned by its row.
func forEachRow(ctx context.Context, n, workers int, fn func(y int)) error {
	if workers <= 1 {
		for y := 0; y < n; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(y)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < n; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
