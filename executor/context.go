// Package executor drives a validated executable ast.Document to
// completion against a *schema.Schema (spec §4.7): collecting
// selection sets, coercing arguments, invoking resolvers, completing
// values against their declared types, and assembling a result with
// non-null propagation. Grounded on
// system/execution/execute.go's Executor.execute/executeObject/
// executeUnion/executeInterface/executeList and
// selections.go's ApplySelectionSet/Flatten, generalized to run
// behind the package runtime Runtime abstraction instead of a single
// hard-coded errgroup fan-out.
package executor

import (
	"errors"
	"sync"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/runtime"
	"github.com/coregraph/graphql/schema"
	"go.uber.org/zap"
)

// errNullBubble is an internal control-flow sentinel threaded through
// Runtime Deferreds: it means "a non-null position below here
// resolved to null", which the enclosing NonNull (or the whole
// response, per spec §4.7 non-null propagation) must also become
// null for. It is never itself recorded as a GraphQLError -- the
// originating completeValue call already recorded one.
var errNullBubble = errors.New("graphql: null bubbled to a non-nullable position")

// Result is one execution's outcome: the assembled data (nil if
// non-null propagation wiped out the whole response) plus every
// error collected along the way.
type Result struct {
	Data   interface{}     `json:"data"`
	Errors graphqlerr.List `json:"errors,omitempty"`
}

// execState is the mutable state shared by every field execution
// within a single Execute/Subscribe-event call: the fixed inputs
// (schema, document, coerced variables) plus the thread-safe error
// list every goroutine appends to (spec §5 "the executor... holds
// per-execution state: the error list, the path stack").
type execState struct {
	schema    *schema.Schema
	doc       *ast.Document
	operation *ast.OperationDefinition
	fragments map[string]*ast.FragmentDefinition
	variables map[string]interface{}
	rt        runtime.Runtime
	collector *collector
	logger    *zap.Logger
	requestID string

	mu   sync.Mutex
	errs graphqlerr.List
}

func (st *execState) addErr(path []interface{}, loc graphqlerr.Location, err error) {
	if err == nil || err == errNullBubble {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	ge, ok := err.(*graphqlerr.Error)
	if !ok {
		ge = graphqlerr.At(loc, "%v", err).WithKind(graphqlerr.KindExecution)
	}
	if ge.Path == nil && path != nil {
		ge.Path = append([]interface{}{}, path...)
	}
	st.errs = append(st.errs, ge)
	if st.logger != nil {
		st.logger.Debug("graphql: execution error", zap.Error(err), zap.Any("path", path))
	}
}

func extendPath(path []interface{}, elem interface{}) []interface{} {
	out := make([]interface{}, len(path)+1)
	copy(out, path)
	out[len(path)] = elem
	return out
}
