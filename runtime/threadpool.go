package runtime

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type threadPoolResult struct {
	wg  sync.WaitGroup
	val interface{}
	err error
}

func newThreadPoolResult() *threadPoolResult {
	r := &threadPoolResult{}
	r.wg.Add(1)
	return r
}

func (r *threadPoolResult) resolve(v interface{}, err error) {
	r.val, r.err = v, err
	r.wg.Done()
}

func (r *threadPoolResult) wait() (interface{}, error) {
	r.wg.Wait()
	return r.val, r.err
}

// ThreadPool is a Runtime backed by a bounded pool of goroutines
// (spec §4.8): resolvers may execute in parallel with one another, so
// the executor must not assume a resolver's mutable receiver is
// goroutine-safe. Grounded on system/execution/execute.go's
// per-selection-set `errgroup.Group`, generalized to one shared
// bounded semaphore across the whole execution instead of an
// unbounded group per object.
type ThreadPool struct {
	sem *semaphore.Weighted
	ctx context.Context
}

// NewThreadPool returns a ThreadPool that runs at most maxConcurrency
// resolvers at once, cancelled when ctx is done.
func NewThreadPool(ctx context.Context, maxConcurrency int64) *ThreadPool {
	return &ThreadPool{sem: semaphore.NewWeighted(maxConcurrency), ctx: ctx}
}

func (p *ThreadPool) WrapValue(v interface{}) Deferred {
	r := newThreadPoolResult()
	r.resolve(v, nil)
	return r
}

func (p *ThreadPool) Submit(fn func() (interface{}, error)) Deferred {
	r := newThreadPoolResult()
	if err := p.sem.Acquire(p.ctx, 1); err != nil {
		r.resolve(nil, err)
		return r
	}
	go func() {
		defer p.sem.Release(1)
		v, err := fn()
		r.resolve(v, err)
	}()
	return r
}

func (p *ThreadPool) Gather(ds []Deferred) Deferred {
	r := newThreadPoolResult()
	go func() {
		out := make([]interface{}, len(ds))
		var g errgroup.Group
		for i, d := range ds {
			i, d := i, d
			g.Go(func() error {
				v, err := p.Await(d)
				if err != nil {
					return err
				}
				out[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			r.resolve(nil, err)
			return
		}
		r.resolve(out, nil)
	}()
	return r
}

func (p *ThreadPool) Map(d Deferred, fn func(interface{}) (interface{}, error)) Deferred {
	return p.Submit(func() (interface{}, error) {
		v, err := p.Await(d)
		if err != nil {
			return nil, err
		}
		return fn(v)
	})
}

func (p *ThreadPool) MapErr(d Deferred, fn func(error) (interface{}, error)) Deferred {
	return p.Submit(func() (interface{}, error) {
		v, err := p.Await(d)
		if err == nil {
			return v, nil
		}
		return fn(err)
	})
}

func (p *ThreadPool) Await(d Deferred) (interface{}, error) {
	return d.(*threadPoolResult).wait()
}
