package engine

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// workerPool is the persistent pool from §4.D/§5: P workers are spawned
// once, each owns a fixed contiguous range of star indices, and parks
// between frames on a counting semaphore. A buffered channel is used as
// that semaphore — the same channel-as-barrier idiom
// ethanchen438-golang_code/sandpiles/parallel.go uses for its per-
// generation goroutine fan-out, generalized here to a pool that is
// spawned once and reused across frames instead of once per generation.
// errgroup supervises the one-time spawn/cancel/join lifecycle.
type workerPool struct {
	size   int
	ranges []starRange
	start  chan struct{}
	finish chan struct{}
	cancel context.CancelFunc
	group  *errgroup.Group
}

type starRange struct {
	lo, hi int
}

// partitionCount returns P = min(hardware parallelism, N), per §4.D. A
// result of 1 tells the caller to skip pool creation entirely and use
// the inline path.
func partitionCount(n int) int {
	p := runtime.GOMAXPROCS(0)
	if p > n {
		p = n
	}
	if p < 1 {
		p = 1
	}
	return p
}

func partitionRanges(n, p int) []starRange {
	ranges := make([]starRange, p)
	for i := 0; i < p; i++ {
		ranges[i] = starRange{lo: n * i / p, hi: n * (i + 1) / p}
	}
	return ranges
}

// newWorkerPool spawns P workers, each blocked on the start semaphore
// until the frame driver wakes them. It returns ErrWorkerSpawn only in
// the case where the pool's own context is already done before spawn,
// which a fresh context derived from context.Background never is.
func newWorkerPool(w *World, p int) (*workerPool, error) {
	ctx, cancel := context.WithCancel(context.Background())
	if err := ctx.Err(); err != nil {
		cancel()
		return nil, ErrWorkerSpawn
	}

	g, gctx := errgroup.WithContext(ctx)
	pool := &workerPool{
		size:   p,
		ranges: partitionRanges(w.cfg.Stars, p),
		start:  make(chan struct{}, p),
		finish: make(chan struct{}, p),
		cancel: cancel,
		group:  g,
	}

	for i := 0; i < p; i++ {
		rng := pool.ranges[i]
		g.Go(func() error {
			return w.workerLoop(gctx, rng, pool.start, pool.finish)
		})
	}

	w.logger.Debug("worker pool started", zap.Int("workers", p), zap.Int("stars", w.cfg.Stars))
	return pool, nil
}

// workerLoop is the body of a single persistent worker: wait for the
// start signal, process the assigned star range, signal finish, and
// repeat until cancelled. It is the realization of §4.D's worker
// lifecycle and §5's "workers suspend only on the start semaphore"
// ordering guarantee.
func (w *World) workerLoop(ctx context.Context, rng starRange, start, finish <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-start:
		}

		for i := rng.lo; i < rng.hi; i++ {
			w.accelerateAndIntegrateVelocity(i)
		}

		select {
		case finish <- struct{}{}:
		case <-ctx.Done():
			return nil
		}
	}
}

// dispatch runs the acceleration phase for one frame: post P tokens to
// wake every worker, then wait for P finish tokens, per §4.E phase 4.
func (p *workerPool) dispatch() {
	for i := 0; i < p.size; i++ {
		p.start <- struct{}{}
	}
	for i := 0; i < p.size; i++ {
		<-p.finish
	}
}

// shutdown cancels every worker and waits for them to exit. Workers own
// no heap resources, so no drain beyond context cancellation is
// required, per §5's cancellation policy.
func (p *workerPool) shutdown() {
	p.cancel()
	_ = p.group.Wait()
}
