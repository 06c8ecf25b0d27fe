package executor_test

import (
	"context"
	"testing"
	"time"

	"github.com/coregraph/graphql/executor"
	"github.com/coregraph/graphql/schema"
	"github.com/coregraph/graphql/schemabuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_OneEventPerSourceValue(t *testing.T) {
	const sdl = `
		type Message { body: String! }
		type Subscription { messageAdded: Message! }
		type Query { noop: String! }
	`
	doc := mustParse(t, sdl)

	source := make(chan interface{}, 2)
	subResolvers := map[string]schema.SubscribeResolver{
		"messageAdded": func(ctx context.Context, src interface{}, args map[string]interface{}) (<-chan interface{}, error) {
			return source, nil
		},
	}
	resolvers := map[string]map[string]schema.Resolver{
		"Subscription": {
			// The root subscription field's normal Resolve runs once
			// per emitted event, same as any other field -- here it
			// just passes the event through as the field's value.
			"messageAdded": func(ctx context.Context, src interface{}, args map[string]interface{}) (interface{}, error) {
				return src, nil
			},
		},
		"Message": {
			"body": func(ctx context.Context, src interface{}, args map[string]interface{}) (interface{}, error) {
				return src.(string), nil
			},
		},
	}
	s, err := schemabuild.Build(doc,
		schemabuild.WithResolvers(resolvers),
		schemabuild.WithSubscriptionResolvers(subResolvers),
	)
	require.NoError(t, err)

	stream, err := executor.Subscribe(context.Background(), s, mustParse(t, `subscription { messageAdded { body } }`))
	require.NoError(t, err)
	defer stream.Close()

	source <- "hello"
	source <- "world"

	select {
	case result := <-stream.Events:
		assert.Empty(t, result.Errors)
		data, ok := result.Data.(interface{ Get(string) (interface{}, bool) })
		require.True(t, ok)
		msg, ok := data.Get("messageAdded")
		require.True(t, ok)
		inner, ok := msg.(interface{ Get(string) (interface{}, bool) })
		require.True(t, ok)
		body, _ := inner.Get("body")
		assert.Equal(t, "hello", body)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first subscription event")
	}

	select {
	case result := <-stream.Events:
		data, ok := result.Data.(interface{ Get(string) (interface{}, bool) })
		require.True(t, ok)
		msg, _ := data.Get("messageAdded")
		inner := msg.(interface{ Get(string) (interface{}, bool) })
		body, _ := inner.Get("body")
		assert.Equal(t, "world", body)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for second subscription event")
	}
}

func TestSubscribe_RequiresExactlyOneRootField(t *testing.T) {
	const sdl = `
		type Subscription { a: String! b: String! }
		type Query { noop: String! }
	`
	doc := mustParse(t, sdl)
	subResolvers := map[string]schema.SubscribeResolver{
		"a": func(ctx context.Context, src interface{}, args map[string]interface{}) (<-chan interface{}, error) {
			return make(chan interface{}), nil
		},
		"b": func(ctx context.Context, src interface{}, args map[string]interface{}) (<-chan interface{}, error) {
			return make(chan interface{}), nil
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithSubscriptionResolvers(subResolvers))
	require.NoError(t, err)

	_, serr := executor.Subscribe(context.Background(), s, mustParse(t, `subscription { a b }`))
	assert.Error(t, serr)
}

func TestSubscribe_CloseStopsEventDelivery(t *testing.T) {
	const sdl = `
		type Subscription { ticks: Int! }
		type Query { noop: String! }
	`
	doc := mustParse(t, sdl)
	source := make(chan interface{})
	subResolvers := map[string]schema.SubscribeResolver{
		"ticks": func(ctx context.Context, src interface{}, args map[string]interface{}) (<-chan interface{}, error) {
			return source, nil
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithSubscriptionResolvers(subResolvers))
	require.NoError(t, err)

	stream, err := executor.Subscribe(context.Background(), s, mustParse(t, `subscription { ticks }`))
	require.NoError(t, err)

	require.NoError(t, stream.Close())

	select {
	case _, ok := <-stream.Events:
		assert.False(t, ok, "Events should close once the subscription context is cancelled")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Events to close after Close")
	}
}
