package validator

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/schema"
)

// RuleValuesOfCorrectType requires every literal argument value to be
// assignable to its argument's declared type, recursing through
// lists and input objects by hand (graphql-spec 5.6.1) rather than
// relying on ast.Walk to revisit nested value nodes -- TrackTypeInfo
// already narrows Context.InputType() per List/ObjectField frame for
// other rules, but reusing that narrowing here would mean checking a
// ListValue/ObjectValue *container* node against its own *element*
// type, which is wrong. Checking from the Argument root down with our
// own recursion sidesteps that entirely.
func RuleValuesOfCorrectType(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			arg, ok := node.(*ast.Argument)
			if !ok {
				return ast.Continue
			}
			if def := ctx.top().argument; def != nil {
				checkValueOfType(ctx, def.Type, arg.Value)
			}
			return ast.Continue
		},
	}
}

func checkValueOfType(ctx *Context, t schema.Type, val ast.Value) {
	if _, isVar := val.(*ast.Variable); isVar {
		// A variable's compatibility with this position is checked by
		// RuleVariablesInAllowedPosition against its declared type --
		// its concrete runtime value isn't known at validation time.
		return
	}
	if nn, ok := t.(*schema.NonNull); ok {
		if _, isNull := val.(*ast.NullValue); isNull {
			ctx.addErr(val.Location(), "ValuesOfCorrectType", "Expected value of type %q, found null.", describeType(t))
			return
		}
		checkValueOfType(ctx, nn.Type, val)
		return
	}
	if _, isNull := val.(*ast.NullValue); isNull {
		return
	}
	switch v := t.(type) {
	case *schema.List:
		if list, ok := val.(*ast.ListValue); ok {
			for _, e := range list.Values {
				checkValueOfType(ctx, v.Type, e)
			}
			return
		}
		// A non-list literal coerces into a single-element list.
		checkValueOfType(ctx, v.Type, val)
	case *schema.Scalar:
		checkScalarLiteral(ctx, v, val)
	case *schema.Enum:
		ev, ok := val.(*ast.EnumValue)
		if !ok {
			ctx.addErr(val.Location(), "ValuesOfCorrectType", "Expected value of type %q, found %s.", v.Name, describeLiteral(val))
			return
		}
		if v.ValueByName(ev.Value) == nil {
			ctx.addErr(val.Location(), "ValuesOfCorrectType", "Value %q does not exist in enum %q.", ev.Value, v.Name)
		}
	case *schema.InputObject:
		obj, ok := val.(*ast.ObjectValue)
		if !ok {
			ctx.addErr(val.Location(), "ValuesOfCorrectType", "Expected value of type %q, found %s.", v.Name, describeLiteral(val))
			return
		}
		provided := make(map[string]bool, len(obj.Fields))
		for _, f := range obj.Fields {
			def, known := v.Fields[f.Name.Value]
			if !known {
				ctx.addErr(f.Loc, "ValuesOfCorrectType",
					"Field %q is not defined by input type %q.", f.Name.Value, v.Name)
				continue
			}
			provided[f.Name.Value] = true
			checkValueOfType(ctx, def.Type, f.Value)
		}
		for name, f := range v.Fields {
			if provided[name] || f.HasDefault || !schema.IsNonNull(f.Type) {
				continue
			}
			ctx.addErr(val.Location(), "ValuesOfCorrectType",
				"Field %q of required type %q was not provided.", name, f.Type.String())
		}
	}
}

func checkScalarLiteral(ctx *Context, s *schema.Scalar, val ast.Value) {
	bad := func() {
		ctx.addErr(val.Location(), "ValuesOfCorrectType", "Expected type %q, found %s.", s.Name, describeLiteral(val))
	}
	switch s.Name {
	case "Int":
		if _, ok := val.(*ast.IntValue); !ok {
			bad()
		}
	case "Float":
		switch val.(type) {
		case *ast.IntValue, *ast.FloatValue:
		default:
			bad()
		}
	case "String":
		if _, ok := val.(*ast.StringValue); !ok {
			bad()
		}
	case "ID":
		switch val.(type) {
		case *ast.StringValue, *ast.IntValue:
		default:
			bad()
		}
	case "Boolean":
		if _, ok := val.(*ast.BooleanValue); !ok {
			bad()
		}
	default:
		// A user-defined custom scalar's literal shape is whatever its
		// ParseValue accepts; enforcement is left to Literal() at
		// coercion time rather than duplicated here.
	}
}

func describeLiteral(val ast.Value) string {
	switch val.(type) {
	case *ast.IntValue:
		return "an int"
	case *ast.FloatValue:
		return "a float"
	case *ast.StringValue:
		return "a string"
	case *ast.BooleanValue:
		return "a boolean"
	case *ast.EnumValue:
		return "an enum value"
	case *ast.ListValue:
		return "a list"
	case *ast.ObjectValue:
		return "an object"
	case *ast.NullValue:
		return "null"
	default:
		return "a value"
	}
}

func describeType(t schema.Type) string {
	if t == nil {
		return "<unknown>"
	}
	return t.String()
}

// RuleUniqueInputFieldNames rejects an object-value literal that sets
// the same field name twice (graphql-spec 5.6.3).
func RuleUniqueInputFieldNames(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			obj, ok := node.(*ast.ObjectValue)
			if !ok {
				return ast.Continue
			}
			seen := make(map[string]bool, len(obj.Fields))
			for _, f := range obj.Fields {
				if seen[f.Name.Value] {
					ctx.addErr(f.Loc, "UniqueInputFieldNames", "There can be only one input field named %q.", f.Name.Value)
				}
				seen[f.Name.Value] = true
			}
			return ast.Continue
		},
	}
}
