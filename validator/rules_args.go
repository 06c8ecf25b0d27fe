package validator

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/schema"
)

// RuleKnownArgumentNames requires every argument applied to a field
// or directive to exist in that field's/directive's signature
// (graphql-spec 5.4.1).
func RuleKnownArgumentNames(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			arg, ok := node.(*ast.Argument)
			if !ok {
				return ast.Continue
			}
			frame := ctx.top()
			var names []string
			var owner string
			switch {
			case frame.directive != nil:
				for n := range frame.directive.Args {
					names = append(names, n)
				}
				owner = "directive @" + frame.directive.Name
				if _, ok := frame.directive.Args[arg.Name.Value]; ok {
					return ast.Continue
				}
			case frame.field != nil:
				names = frame.field.ArgOrder
				owner = "field " + frame.field.Name
				if _, ok := frame.field.Args[arg.Name.Value]; ok {
					return ast.Continue
				}
			default:
				return ast.Continue
			}
			suggestion := graphqlerr.Suggest("Did you mean", names, arg.Name.Value)
			ctx.addErr(arg.Loc, "KnownArgumentNames",
				`Unknown argument %q on %s.%s`, arg.Name.Value, owner, suggestion)
			return ast.Continue
		},
	}
}

// RuleProvidedRequiredArguments requires every NonNull argument
// without a default value on a field's or directive's signature to be
// supplied at the application site (graphql-spec 5.4.2.1).
func RuleProvidedRequiredArguments(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			switch n := node.(type) {
			case *ast.Field:
				frame := ctx.top()
				if frame.field != nil {
					checkRequiredArgs(ctx, n.Loc, "field "+frame.field.Name, frame.field.Args, frame.field.ArgOrder, n.Arguments)
				}
			case *ast.Directive:
				if def := ctx.top().directive; def != nil {
					checkRequiredArgs(ctx, n.Loc, "directive @"+def.Name, def.Args, def.ArgOrder, n.Arguments)
				}
			}
			return ast.Continue
		},
	}
}

func checkRequiredArgs(ctx *Context, loc graphqlerr.Location, owner string, defs map[string]*schema.Argument, order []string, given []*ast.Argument) {
	supplied := make(map[string]bool, len(given))
	for _, a := range given {
		supplied[a.Name.Value] = true
	}
	for _, name := range order {
		def := defs[name]
		if def == nil || def.HasDefault || supplied[name] {
			continue
		}
		if _, ok := def.Type.(*schema.NonNull); !ok {
			continue
		}
		ctx.addErr(loc, "ProvidedRequiredArguments",
			"Argument %q of type %q is required on %s, but it was not provided.", name, def.Type.String(), owner)
	}
}

// RuleUniqueArgumentNames rejects the same argument name applied
// twice to one field or directive (graphql-spec 5.4.2).
func RuleUniqueArgumentNames(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			var args []*ast.Argument
			switch n := node.(type) {
			case *ast.Field:
				args = n.Arguments
			case *ast.Directive:
				args = n.Arguments
			default:
				return ast.Continue
			}
			seen := make(map[string]bool)
			for _, a := range args {
				if seen[a.Name.Value] {
					ctx.addErr(a.Loc, "UniqueArgumentNames", "There can be only one argument named %q.", a.Name.Value)
				}
				seen[a.Name.Value] = true
			}
			return ast.Continue
		},
	}
}
