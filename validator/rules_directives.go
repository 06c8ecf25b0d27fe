package validator

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/schema"
)

// RuleKnownDirectives requires every `@name` application to reference
// a directive declared on the schema and to be used only at a
// location that directive's definition allows (graphql-spec 5.7.1,
// 5.7.2).
func RuleKnownDirectives(ctx *Context) ast.Visitor {
	var locs []schema.DirectiveLocation
	push := func(l schema.DirectiveLocation) { locs = append(locs, l) }
	pop := func() { locs = locs[:len(locs)-1] }
	top := func() schema.DirectiveLocation {
		if len(locs) == 0 {
			return ""
		}
		return locs[len(locs)-1]
	}
	return ast.Visitor{
		Enter: func(node ast.Node, childName string, _ int) ast.Action {
			switch n := node.(type) {
			case *ast.OperationDefinition:
				switch n.Operation {
				case ast.Query:
					push(schema.LocQuery)
				case ast.Mutation:
					push(schema.LocMutation)
				case ast.Subscription:
					push(schema.LocSubscription)
				default:
					push("")
				}
			case *ast.Field:
				push(schema.LocField)
			case *ast.FragmentDefinition:
				push(schema.LocFragmentDefinition)
			case *ast.FragmentSpread:
				push(schema.LocFragmentSpread)
			case *ast.InlineFragment:
				push(schema.LocInlineFragment)
			case *ast.VariableDefinition:
				push(schema.LocVariableDefinition)
			case *ast.SchemaDefinition:
				push(schema.LocSchema)
			case *ast.ScalarTypeDefinition:
				push(schema.LocScalar)
			case *ast.ObjectTypeDefinition:
				push(schema.LocObject)
			case *ast.FieldDefinition:
				push(schema.LocFieldDefinition)
			case *ast.InterfaceTypeDefinition:
				push(schema.LocInterface)
			case *ast.UnionTypeDefinition:
				push(schema.LocUnion)
			case *ast.EnumTypeDefinition:
				push(schema.LocEnum)
			case *ast.EnumValueDefinition:
				push(schema.LocEnumValue)
			case *ast.InputObjectTypeDefinition:
				push(schema.LocInputObject)
			case *ast.InputValueDefinition:
				if childName == "Fields" {
					push(schema.LocInputFieldDefinition)
				} else {
					push(schema.LocArgumentDefinition)
				}
			case *ast.DirectiveDefinition:
				push("")
			case *ast.Directive:
				def := ctx.Schema.DirectiveByName(n.Name.Value)
				if def == nil {
					ctx.addErr(n.Loc, "KnownDirectives", "Unknown directive %q.", n.Name.Value)
					return ast.Continue
				}
				if loc := top(); loc != "" && !def.AllowedAt(loc) {
					ctx.addErr(n.Loc, "KnownDirectives", "Directive %q may not be used on %s.", n.Name.Value, loc)
				}
			}
			return ast.Continue
		},
		Leave: func(node ast.Node, _ string, _ int) {
			switch node.(type) {
			case *ast.OperationDefinition, *ast.Field, *ast.FragmentDefinition, *ast.FragmentSpread,
				*ast.InlineFragment, *ast.VariableDefinition, *ast.SchemaDefinition, *ast.ScalarTypeDefinition,
				*ast.ObjectTypeDefinition, *ast.FieldDefinition, *ast.InterfaceTypeDefinition, *ast.UnionTypeDefinition,
				*ast.EnumTypeDefinition, *ast.EnumValueDefinition, *ast.InputObjectTypeDefinition,
				*ast.InputValueDefinition, *ast.DirectiveDefinition:
				pop()
			}
		},
	}
}

// RuleUniqueDirectivesPerLocation rejects the same non-repeatable
// directive applied twice at one location (graphql-spec 5.7.3).
func RuleUniqueDirectivesPerLocation(ctx *Context) ast.Visitor {
	check := func(dirs []*ast.Directive) {
		seen := make(map[string]bool)
		for _, d := range dirs {
			def := ctx.Schema.DirectiveByName(d.Name.Value)
			if def != nil && def.Repeatable {
				continue
			}
			if seen[d.Name.Value] {
				ctx.addErr(d.Loc, "UniqueDirectivesPerLocation",
					"The directive %q can only be used once at this location.", d.Name.Value)
			}
			seen[d.Name.Value] = true
		}
	}
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			switch n := node.(type) {
			case *ast.OperationDefinition:
				check(n.Directives)
			case *ast.Field:
				check(n.Directives)
			case *ast.FragmentDefinition:
				check(n.Directives)
			case *ast.FragmentSpread:
				check(n.Directives)
			case *ast.InlineFragment:
				check(n.Directives)
			case *ast.VariableDefinition:
				check(n.Directives)
			case *ast.SchemaDefinition:
				check(n.Directives)
			case *ast.ScalarTypeDefinition:
				check(n.Directives)
			case *ast.ObjectTypeDefinition:
				check(n.Directives)
			case *ast.FieldDefinition:
				check(n.Directives)
			case *ast.InterfaceTypeDefinition:
				check(n.Directives)
			case *ast.UnionTypeDefinition:
				check(n.Directives)
			case *ast.EnumTypeDefinition:
				check(n.Directives)
			case *ast.EnumValueDefinition:
				check(n.Directives)
			case *ast.InputObjectTypeDefinition:
				check(n.Directives)
			case *ast.InputValueDefinition:
				check(n.Directives)
			}
			return ast.Continue
		},
	}
}
