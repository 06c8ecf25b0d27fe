package runtime

import (
	"context"

	"go.uber.org/atomic"
)

type cooperativeResult struct {
	thunk func() (interface{}, error)
	val   interface{}
	err   error
	done  bool
}

// Cooperative is a single-threaded Runtime whose Deferred wraps a
// suspended thunk: Submit records work without running it, and
// Await/Map/MapErr/Gather are the only points where pending work
// actually runs -- the "yield points" spec §4.8 describes. No two
// resolvers ever execute concurrently under this Runtime.
//
// Cancel flips an atomic flag checked at each yield point, giving the
// cooperative scheduler's checkpoints a cheap, lock-free cancellation
// signal (spec §4.8's per-field-boundary cancellation).
type Cooperative struct {
	cancelled atomic.Bool
}

// NewCooperative returns a fresh Cooperative runtime, not yet
// cancelled.
func NewCooperative() *Cooperative { return &Cooperative{} }

// Cancel marks every subsequent yield point as cancelled; work
// already resolved is unaffected.
func (c *Cooperative) Cancel() { c.cancelled.Store(true) }

func (c *Cooperative) run(r *cooperativeResult) {
	if r.done {
		return
	}
	if c.cancelled.Load() {
		r.err = context.Canceled
		r.done = true
		return
	}
	r.val, r.err = r.thunk()
	r.done = true
	r.thunk = nil
}

func (c *Cooperative) WrapValue(v interface{}) Deferred {
	return &cooperativeResult{val: v, done: true}
}

func (c *Cooperative) Submit(fn func() (interface{}, error)) Deferred {
	return &cooperativeResult{thunk: fn}
}

func (c *Cooperative) Gather(ds []Deferred) Deferred {
	return &cooperativeResult{thunk: func() (interface{}, error) {
		// Every ds[i] must run to completion regardless of an earlier
		// error: a Submit thunk is lazy, so skipping ds[i+1:] here
		// would leave sibling fields/list elements after a failing one
		// permanently unresolved, unlike Blocking (already eager) and
		// ThreadPool (errgroup waits for every goroutine).
		out := make([]interface{}, len(ds))
		var firstErr error
		for i, d := range ds {
			r := d.(*cooperativeResult)
			c.run(r)
			if r.err != nil {
				if firstErr == nil {
					firstErr = r.err
				}
				continue
			}
			out[i] = r.val
		}
		if firstErr != nil {
			return nil, firstErr
		}
		return out, nil
	}}
}

func (c *Cooperative) Map(d Deferred, fn func(interface{}) (interface{}, error)) Deferred {
	return &cooperativeResult{thunk: func() (interface{}, error) {
		r := d.(*cooperativeResult)
		c.run(r)
		if r.err != nil {
			return nil, r.err
		}
		return fn(r.val)
	}}
}

func (c *Cooperative) MapErr(d Deferred, fn func(error) (interface{}, error)) Deferred {
	return &cooperativeResult{thunk: func() (interface{}, error) {
		r := d.(*cooperativeResult)
		c.run(r)
		if r.err == nil {
			return r.val, nil
		}
		return fn(r.err)
	}}
}

func (c *Cooperative) Await(d Deferred) (interface{}, error) {
	r := d.(*cooperativeResult)
	c.run(r)
	return r.val, r.err
}
