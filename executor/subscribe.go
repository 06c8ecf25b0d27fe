package executor

import (
	"context"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/coerce"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/schema"
)

// SubscriptionStream is the subscription-initiation contract (spec
// §4.7/§4.8): one *Result per event the root field's source stream
// emits, each the product of a fresh, serial execution of the
// operation's selection set against that event as the field's source
// value. Close stops consuming the underlying source stream; it does
// not cancel an execution already in flight.
type SubscriptionStream struct {
	Events <-chan *Result
	cancel context.CancelFunc
}

// Close releases the subscription's underlying context, signaling the
// source-stream resolver (if it respects ctx.Done) to stop producing.
func (s *SubscriptionStream) Close() error {
	s.cancel()
	return nil
}

// Subscribe resolves a subscription operation's single root field to
// a source event stream, then drives one serial execution of the
// selection set per event (spec §4.7's "subscription...root field is
// resolved once to produce a source stream"). It does not carry
// events over any wire protocol -- WebSocket/SSE transport is an
// explicit non-goal (spec §1); callers drain Events themselves.
func Subscribe(ctx context.Context, s *schema.Schema, doc *ast.Document, opts ...Option) (*SubscriptionStream, error) {
	c := newConfig(opts)

	operation, fragments, err := selectOperation(doc, c.operationName)
	if err != nil {
		return nil, err
	}
	if operation.Operation != ast.Subscription {
		return nil, graphqlerr.New("Subscribe requires a subscription operation; got %q.", operation.Operation).WithKind(graphqlerr.KindExecution)
	}

	rootType, _, err := rootTypeFor(s, operation)
	if err != nil {
		return nil, err
	}

	variables, cerrs := coerce.Variables(s, operation.VariableDefinitions, c.variables)
	if len(cerrs) > 0 {
		return nil, coercionErrors(cerrs)[0]
	}

	groups := newCollector(s, fragments, variables).collect(rootType, operation.SelectionSet)
	if len(groups) != 1 {
		return nil, graphqlerr.New("Subscription operations must select exactly one top-level field.").WithKind(graphqlerr.KindValidation)
	}
	group := groups[0]
	first := group.Fields[0]
	fieldDef := fieldDefFor(rootType, first.Name.Value)
	if fieldDef == nil || fieldDef.Subscribe == nil {
		return nil, graphqlerr.New("Field %q has no subscription source stream resolver.", first.Name.Value).WithKind(graphqlerr.KindExecution)
	}

	args, cerrs := coerce.Arguments(s, fieldDef.Args, fieldDef.ArgOrder, first.Arguments, variables)
	if len(cerrs) > 0 {
		return nil, coercionErrors(cerrs)[0]
	}

	streamCtx, cancel := context.WithCancel(ctx)
	source, err2 := fieldDef.Subscribe(streamCtx, c.root, args)
	if err2 != nil {
		cancel()
		return nil, graphqlerr.Wrap(err2, "%s", err2.Error()).WithKind(graphqlerr.KindResolver)
	}

	out := make(chan *Result)
	go func() {
		defer close(out)
		defer cancel()
		for {
			select {
			case <-streamCtx.Done():
				return
			case event, ok := <-source:
				if !ok {
					return
				}
				st := &execState{
					schema:    s,
					doc:       doc,
					operation: operation,
					fragments: fragments,
					variables: variables,
					rt:        c.rt,
					collector: newCollector(s, fragments, variables),
					logger:    c.logger,
					requestID: newRequestID(),
				}
				eventGroups := st.collector.collect(rootType, operation.SelectionSet)
				deferred := st.executeSelectionSet(streamCtx, rootType, event, eventGroups, nil, true)
				data, derr := st.rt.Await(deferred)
				if derr != nil && derr != errNullBubble {
					st.addErr(nil, graphqlerr.Location{}, derr)
				}
				if derr != nil {
					data = nil
				}
				select {
				case out <- &Result{Data: data, Errors: st.errs}:
				case <-streamCtx.Done():
					return
				}
			}
		}
	}()

	return &SubscriptionStream{Events: out, cancel: cancel}, nil
}
