package coerce

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/schema"
)

// Variables coerces raw, JSON-decoded variable values against an
// operation's declared VariableDefinitions (spec §4.6 "Variable
// coercion"). A variable absent from raw falls back to its default
// literal, then to nil if nullable; a NonNull variable that is
// missing or explicitly null is an error. Coercion continues past
// the first error to collect every problem in one pass.
func Variables(s *schema.Schema, defs []*ast.VariableDefinition, raw map[string]interface{}) (map[string]interface{}, []*Error) {
	out := make(map[string]interface{}, len(defs))
	var errs []*Error
	for _, vd := range defs {
		name := vd.Variable.Name.Value
		t := resolveASTType(s, vd.Type)
		if t == nil {
			errs = append(errs, newErr([]PathElement{name}, "unknown type %q", vd.Type.String()))
			continue
		}
		val, has := raw[name]
		if !has {
			if vd.DefaultValue != nil {
				dv, err := Literal(s, t, vd.DefaultValue, nil, []PathElement{name})
				if err != nil {
					errs = append(errs, err)
					continue
				}
				out[name] = dv
				continue
			}
			if schema.IsNonNull(t) {
				errs = append(errs, newErr([]PathElement{name}, "variable %q of required type %q was not provided", name, t.String()))
				continue
			}
			out[name] = nil
			continue
		}
		coerced, err := Value(s, t, val, []PathElement{name})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[name] = coerced
	}
	return out, errs
}

// resolveASTType mirrors the builder's own ast.Type -> schema.Type
// resolver (package schemabuild keeps its own unexported copy too --
// the logic is five lines and not worth an import just to share it).
func resolveASTType(s *schema.Schema, t ast.Type) schema.Type {
	switch n := t.(type) {
	case *ast.NonNullType:
		inner := resolveASTType(s, n.Type)
		if inner == nil {
			return nil
		}
		return &schema.NonNull{Type: inner}
	case *ast.ListType:
		inner := resolveASTType(s, n.Type)
		if inner == nil {
			return nil
		}
		return &schema.List{Type: inner}
	case *ast.NamedType:
		return s.TypeByName(n.Name.Value)
	}
	return nil
}
