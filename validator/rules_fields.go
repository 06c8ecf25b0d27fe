package validator

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/schema"
)

// RuleFieldsOnCorrectType requires every selected field to exist on
// its parent composite type (spec §4.5, graphql-spec 5.3.1), always
// allowing the meta-fields `__typename`, and on the query root
// `__schema`/`__type`.
func RuleFieldsOnCorrectType(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			field, ok := node.(*ast.Field)
			if !ok {
				return ast.Continue
			}
			// TrackTypeInfo has already pushed this field's own frame, so
			// the selection set's type is on the frame beneath it.
			if len(ctx.typeInfo) < 2 {
				return ast.Continue
			}
			parent := ctx.typeInfo[len(ctx.typeInfo)-2].parentType
			name := field.Name.Value
			if name == "__typename" || (isMetaField(name) && parent == schema.NamedType(ctx.Schema.Query)) {
				return ast.Continue
			}
			if parent == nil {
				return ast.Continue
			}
			fields, ok := fieldsOf(parent)
			if !ok {
				ctx.addErr(field.Loc, "FieldsOnCorrectType",
					"Field %q selected on type %q which is not an object, interface, or union.",
					field.Name.Value, parent.TypeName())
				return ast.Continue
			}
			if _, ok := fields.Get(field.Name.Value); !ok {
				suggestion := graphqlerr.Suggest("Did you mean", fields.FieldOrder, field.Name.Value)
				ctx.addErr(field.Loc, "FieldsOnCorrectType",
					`Cannot query field %q on type %q.%s`, field.Name.Value, parent.TypeName(), suggestion)
			}
			return ast.Continue
		},
	}
}

func isMetaField(name string) bool {
	return name == "__typename" || name == "__schema" || name == "__type"
}

// RuleLeafFieldSelections requires a field whose type is a leaf
// (Scalar/Enum) to have no selection set, and a field whose type is
// composite to have one (graphql-spec 5.3.3).
func RuleLeafFieldSelections(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			field, ok := node.(*ast.Field)
			if !ok {
				return ast.Continue
			}
			f := ctx.top().field
			if f == nil {
				return ast.Continue
			}
			composite := schema.IsComposite(f.Type)
			switch {
			case composite && field.SelectionSet == nil:
				ctx.addErr(field.Loc, "ScalarLeafs",
					`Field %q of type %q must have a selection of subfields.`, field.Name.Value, f.Type.String())
			case !composite && field.SelectionSet != nil:
				ctx.addErr(field.Loc, "ScalarLeafs",
					`Field %q must not have a selection since type %q has no subfields.`, field.Name.Value, f.Type.String())
			}
			return ast.Continue
		},
	}
}

// RuleOverlappingFieldsCanBeMerged rejects two field selections in
// one selection set that share a response key but select different
// fields (a conservative approximation of graphql-spec 5.3.2). It
// does not compare the fields' return types or arguments, and it
// checks only the selection set's immediate fields, not fields
// merged in through fragments.
func RuleOverlappingFieldsCanBeMerged(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			set, ok := node.(*ast.SelectionSet)
			if !ok {
				return ast.Continue
			}
			byKey := make(map[string]*ast.Field)
			for _, sel := range set.Selections {
				f, ok := sel.(*ast.Field)
				if !ok {
					continue
				}
				key := f.ResponseKey()
				if prev, exists := byKey[key]; exists {
					if prev.Name.Value != f.Name.Value {
						ctx.addErr(f.Loc, "OverlappingFieldsCanBeMerged",
							`Fields %q conflict because %q and %q are different fields.`,
							key, prev.Name.Value, f.Name.Value)
					}
				} else {
					byKey[key] = f
				}
			}
			return ast.Continue
		},
	}
}
