package workers

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// HashPool is a [Pool] backed by a weighted semaphore.
type HashPool struct {
	sem  *semaphore.Weighted
	size int
}

// NewHashPool returns a pool that allows at most size concurrent jobs.
// A size below one is treated as one.
func NewHashPool(size int) *HashPool {
	if size < 1 {
		size = 1
	}
	return &HashPool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size returns the maximum number of concurrent jobs.
func (p *HashPool) Size() int {
	return p.size
}

// Do implements [Pool].
func (p *HashPool) Do(ctx context.Context, job func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for hash worker: %w", err)
	}
	defer p.sem.Release(1)

	job()
	return nil
}
