package validator

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/schema"
)

// RulePossibleFragmentSpreads rejects a fragment spread or inline
// fragment whose type condition can never overlap with the composite
// type of the selection set it's spread into -- e.g. spreading a
// `fragment F on Dog` inside a field typed `Cat` (graphql-spec
// 5.5.2.3).
func RulePossibleFragmentSpreads(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			switch n := node.(type) {
			case *ast.InlineFragment:
				if n.TypeCondition == nil {
					return ast.Continue
				}
				// TrackTypeInfo has already pushed a frame for this
				// node reflecting its own type condition; the
				// enclosing scope's type is one frame down.
				if len(ctx.typeInfo) < 2 {
					return ast.Continue
				}
				enclosing := ctx.typeInfo[len(ctx.typeInfo)-2].parentType
				fragType := ctx.Schema.TypeByName(n.TypeCondition.Name.Value)
				checkPossible(ctx, n.Loc, enclosing, fragType, n.TypeCondition.Name.Value)
			case *ast.FragmentSpread:
				enclosing := ctx.top().parentType
				frag := ctx.Fragments[n.Name.Value]
				if frag == nil || frag.TypeCondition == nil {
					return ast.Continue
				}
				fragType := ctx.Schema.TypeByName(frag.TypeCondition.Name.Value)
				checkPossible(ctx, n.Loc, enclosing, fragType, frag.TypeCondition.Name.Value)
			}
			return ast.Continue
		},
	}
}

// checkPossible reports an error unless the concrete object types
// possible under enclosing and under fragType share at least one
// member; an unknown name resolves as "no overlap found" is left to
// RuleKnownTypeNames, so a nil fragType here is silently skipped.
func checkPossible(ctx *Context, loc graphqlerr.Location, enclosing, fragType schema.NamedType, fragTypeName string) {
	if enclosing == nil || fragType == nil {
		return
	}
	enclosingPossible := ctx.Schema.PossibleTypes(enclosing)
	fragPossible := ctx.Schema.PossibleTypes(fragType)
	if enclosingPossible == nil || fragPossible == nil {
		return
	}
	for _, a := range enclosingPossible {
		for _, b := range fragPossible {
			if a == b {
				return
			}
		}
	}
	ctx.addErr(loc, "PossibleFragmentSpreads",
		"Fragment cannot be spread here as objects of type %q can never be of type %q.", enclosing.TypeName(), fragTypeName)
}
