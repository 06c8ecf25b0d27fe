package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coregraph/graphql/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain verifies none of the Cooperative/ThreadPool scheduler
// goroutines exercised by this package's tests outlive the test run.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runtimes(ctx context.Context) map[string]runtime.Runtime {
	return map[string]runtime.Runtime{
		"Blocking":    runtime.NewBlocking(),
		"Cooperative": runtime.NewCooperative(),
		"ThreadPool":  runtime.NewThreadPool(ctx, 4),
	}
}

func TestRuntime_WrapValueAwaitsToTheSameValue(t *testing.T) {
	for name, rt := range runtimes(context.Background()) {
		t.Run(name, func(t *testing.T) {
			v, err := rt.Await(rt.WrapValue(42))
			require.NoError(t, err)
			assert.Equal(t, 42, v)
		})
	}
}

func TestRuntime_SubmitRunsAndReportsError(t *testing.T) {
	for name, rt := range runtimes(context.Background()) {
		t.Run(name, func(t *testing.T) {
			boom := errors.New("boom")
			d := rt.Submit(func() (interface{}, error) { return nil, boom })
			v, err := rt.Await(d)
			assert.Nil(t, v)
			assert.Equal(t, boom, err)
		})
	}
}

func TestRuntime_GatherPreservesOrderOnSuccess(t *testing.T) {
	for name, rt := range runtimes(context.Background()) {
		t.Run(name, func(t *testing.T) {
			var ds []runtime.Deferred
			for i := 0; i < 5; i++ {
				i := i
				ds = append(ds, rt.Submit(func() (interface{}, error) { return i, nil }))
			}
			v, err := rt.Await(rt.Gather(ds))
			require.NoError(t, err)
			assert.Equal(t, []interface{}{0, 1, 2, 3, 4}, v)
		})
	}
}

func TestRuntime_GatherShortCircuitsOnFirstError(t *testing.T) {
	for name, rt := range runtimes(context.Background()) {
		t.Run(name, func(t *testing.T) {
			boom := errors.New("boom")
			ds := []runtime.Deferred{
				rt.WrapValue(1),
				rt.Submit(func() (interface{}, error) { return nil, boom }),
				rt.WrapValue(3),
			}
			v, err := rt.Await(rt.Gather(ds))
			assert.Nil(t, v)
			assert.Error(t, err)
		})
	}
}

func TestRuntime_MapOnlyFiresOnSuccess(t *testing.T) {
	for name, rt := range runtimes(context.Background()) {
		t.Run(name, func(t *testing.T) {
			mapped := rt.Map(rt.WrapValue(2), func(v interface{}) (interface{}, error) {
				return v.(int) * 10, nil
			})
			v, err := rt.Await(mapped)
			require.NoError(t, err)
			assert.Equal(t, 20, v)

			boom := errors.New("boom")
			called := false
			errored := rt.Map(rt.Submit(func() (interface{}, error) { return nil, boom }), func(v interface{}) (interface{}, error) {
				called = true
				return v, nil
			})
			_, err = rt.Await(errored)
			assert.Equal(t, boom, err)
			assert.False(t, called, "Map's fn must not run when its input already failed")
		})
	}
}

func TestRuntime_MapErrOnlyFiresOnError(t *testing.T) {
	for name, rt := range runtimes(context.Background()) {
		t.Run(name, func(t *testing.T) {
			called := false
			recovered := rt.MapErr(rt.WrapValue(1), func(err error) (interface{}, error) {
				called = true
				return nil, err
			})
			v, err := rt.Await(recovered)
			require.NoError(t, err)
			assert.Equal(t, 1, v)
			assert.False(t, called, "MapErr's fn must not run when its input already succeeded")

			boom := errors.New("boom")
			swallowed := rt.MapErr(rt.Submit(func() (interface{}, error) { return nil, boom }), func(err error) (interface{}, error) {
				return "recovered", nil
			})
			v, err = rt.Await(swallowed)
			require.NoError(t, err)
			assert.Equal(t, "recovered", v)
		})
	}
}

func TestRuntime_GatherRunsEveryBranchDespiteAnEarlierError(t *testing.T) {
	for name, rt := range runtimes(context.Background()) {
		t.Run(name, func(t *testing.T) {
			boom := errors.New("boom")
			var ranAfterFailure bool
			ds := []runtime.Deferred{
				rt.Submit(func() (interface{}, error) { return nil, boom }),
				rt.Submit(func() (interface{}, error) {
					ranAfterFailure = true
					return 2, nil
				}),
			}
			_, err := rt.Await(rt.Gather(ds))
			assert.Equal(t, boom, err)
			assert.True(t, ranAfterFailure, "a sibling after a failing branch must still run, not be left unresolved")
		})
	}
}

func TestCooperative_CancelStopsFurtherWork(t *testing.T) {
	rt := runtime.NewCooperative()
	ran := false
	d := rt.Submit(func() (interface{}, error) {
		ran = true
		return "value", nil
	})
	rt.Cancel()
	_, err := rt.Await(d)
	assert.Error(t, err)
	assert.False(t, ran, "a cancelled Cooperative runtime must not run pending thunks")
}
