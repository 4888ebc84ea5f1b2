package driver

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// workerPool is a fixed set of goroutines that carry every blocking native
// call. Callers submit a unit of work and await its reply without blocking;
// once a unit starts it runs to completion even if the caller stops waiting.
type workerPool struct {
	size   int64
	tasks  chan func()
	closed chan struct{}
	once   sync.Once
	// live is held by every running worker; draining it is how Close waits
	// for in-flight work.
	live *semaphore.Weighted
}

func newWorkerPool(workers int) *workerPool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	p := &workerPool{
		size:   int64(workers),
		tasks:  make(chan func()),
		closed: make(chan struct{}),
		live:   semaphore.NewWeighted(int64(workers)),
	}
	for i := 0; i < workers; i++ {
		// Cannot fail: the semaphore starts with `workers` free slots.
		_ = p.live.Acquire(context.Background(), 1)
		go p.run()
	}
	return p
}

func (p *workerPool) run() {
	defer p.live.Release(1)
	for {
		select {
		case task := <-p.tasks:
			task()
		case <-p.closed:
			return
		}
	}
}

// submit hands a unit of work to the pool. It fails with a concurrency error
// when the pool is closed or ctx expires before a worker picks the unit up.
func (p *workerPool) submit(ctx context.Context, op string, task func()) error {
	select {
	case <-p.closed:
		return concErr(op, ErrPoolClosed)
	default:
	}
	select {
	case p.tasks <- task:
		return nil
	case <-p.closed:
		return concErr(op, ErrPoolClosed)
	case <-ctx.Done():
		return concErr(op, ctx.Err())
	}
}

// close stops accepting work and waits for running units to finish. Sending
// workers observe the closed channel; in-flight units complete first.
func (p *workerPool) close(ctx context.Context) error {
	p.once.Do(func() { close(p.closed) })
	if err := p.live.Acquire(ctx, p.size); err != nil {
		return concErr("pool close", err)
	}
	p.live.Release(p.size)
	return nil
}

// dispatch runs fn on a pool worker and awaits its result. A panic inside fn
// and a caller that is cut off by ctx both surface as a concurrency ("task
// join") error, never as a native database error.
func dispatch[T any](ctx context.Context, p *workerPool, op string, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	var zero T
	ch := make(chan result, 1)

	task := func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: concErr(op, fmt.Errorf("%w: panic in native call: %v", ErrTaskJoin, r))}
			}
		}()
		v, err := fn()
		ch <- result{v: v, err: err}
	}

	if err := p.submit(ctx, op, task); err != nil {
		return zero, err
	}
	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		// The unit keeps running to completion on its worker; only the await
		// is abandoned.
		return zero, concErr(op, fmt.Errorf("%w: %v", ErrTaskJoin, ctx.Err()))
	}
}
