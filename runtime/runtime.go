// Package runtime provides the executor's pluggable concurrency
// capability (spec §4.8): a Runtime abstracts over how a resolver's
// work is scheduled and joined, so the executor's field-execution
// code is identical whether it runs serially, cooperatively on one
// goroutine, or spread across a bounded pool. Grounded on
// system/execution/execute.go's direct use of
// golang.org/x/sync/errgroup for fan-out, generalized behind an
// interface so the executor no longer hard-codes one scheduling
// policy.
package runtime

// Deferred is an opaque asynchronous result produced by a Runtime. Its
// concrete type is Runtime-specific; callers only ever pass a Deferred
// back into the Runtime that produced it.
type Deferred interface{}

// Runtime is the executor's scheduling capability (spec §4.8).
type Runtime interface {
	// WrapValue lifts an already-known value into a resolved Deferred.
	WrapValue(v interface{}) Deferred
	// Submit schedules fn and returns a Deferred for its result.
	Submit(fn func() (interface{}, error)) Deferred
	// Gather joins ds into one Deferred of their values in order. Every
	// branch runs; if any fails, the result fails with a branch's error.
	Gather(ds []Deferred) Deferred
	// Map chains fn onto d's successful value.
	Map(d Deferred, fn func(interface{}) (interface{}, error)) Deferred
	// MapErr chains fn onto d's error, if any.
	MapErr(d Deferred, fn func(error) (interface{}, error)) Deferred
	// Await blocks (in whatever sense this Runtime defines blocking)
	// until d is resolved, then returns its value or error.
	Await(d Deferred) (interface{}, error)
}
