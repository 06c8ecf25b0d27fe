package executor

import (
	"context"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/runtime"
	"github.com/coregraph/graphql/schema"
)

// ResolveInfo carries everything a resolver needs beyond its
// (ctx, source, args) parameters: where it sits in the response, the
// schema and document it's running against, and the directives
// applied to its field selection (spec §4.7 step 3's ResolveInfo).
type ResolveInfo struct {
	FieldDef   *schema.Field
	ParentType schema.NamedType
	Path       []interface{}
	Schema     *schema.Schema
	Variables  map[string]interface{}
	Operation  *ast.OperationDefinition
	Fragments  map[string]*ast.FragmentDefinition
	Runtime    runtime.Runtime
	// RequestID identifies this Execute/Subscribe call for correlating
	// log lines and traces across every resolver it invokes.
	RequestID string

	directives []*schema.Directive
}

type infoKey struct{}

func withInfo(ctx context.Context, info *ResolveInfo) context.Context {
	return context.WithValue(ctx, infoKey{}, info)
}

// InfoFromContext recovers the ResolveInfo a resolver is running
// under. It returns nil outside of a resolver invoked by this
// package's executor.
func InfoFromContext(ctx context.Context) *ResolveInfo {
	info, _ := ctx.Value(infoKey{}).(*ResolveInfo)
	return info
}

// GetDirectiveArguments returns the coerced arguments of the named
// directive as applied to the field selection currently being
// resolved in the query document, or nil if that directive was not
// applied there. A directive applied more than once yields its first
// application's arguments. Directives on the field's SDL definition
// are not consulted, and a name the schema does not define also
// yields nil rather than an error.
func (info *ResolveInfo) GetDirectiveArguments(name string) map[string]interface{} {
	for _, d := range info.directives {
		if d.Name() == name {
			return d.Arguments
		}
	}
	return nil
}

// GetAllDirectiveArguments returns the arguments of every directive
// applied to the field selection currently being resolved in the
// query document, keyed by directive name. A directive applied more
// than once keeps only its last application's arguments, and
// directives on the field's SDL definition are not included.
func (info *ResolveInfo) GetAllDirectiveArguments() map[string]map[string]interface{} {
	out := make(map[string]map[string]interface{}, len(info.directives))
	for _, d := range info.directives {
		out[d.Name()] = d.Arguments
	}
	return out
}
