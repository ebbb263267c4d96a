package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultSize is used when a pool is created with a non-positive size.
const DefaultSize = 4

// Pool is a Runner that keeps at most Size jobs in flight.
type Pool struct {
	size int
}

// NewPool returns a Pool of the given size.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	return &Pool{size: size}
}

// Size returns the maximum number of concurrent jobs.
func (p *Pool) Size() int {
	return p.size
}

// Run calls job for every index in [0, n) and waits for all of them.
// It returns the first job error, or ctx's error if ctx ends first.
func (p *Pool) Run(ctx context.Context, n int, job Job) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return job(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
