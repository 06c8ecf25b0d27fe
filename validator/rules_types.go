package validator

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
)

// RuleKnownTypeNames requires every bare type name referenced
// anywhere in the document -- a variable's type, a fragment's type
// condition, an SDL field/implements/union-member reference -- to
// name a type known to the schema (graphql-spec 5.8.1, 5.5.1.2).
func RuleKnownTypeNames(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			nt, ok := node.(*ast.NamedType)
			if !ok {
				return ast.Continue
			}
			name := nt.Name.Value
			if ctx.Schema.TypeByName(name) != nil {
				return ast.Continue
			}
			suggestion := graphqlerr.Suggest("Did you mean", ctx.Schema.TypeOrder, name)
			ctx.addErr(nt.Loc, "KnownTypeNames", `Unknown type %q.%s`, name, suggestion)
			return ast.Continue
		},
	}
}
