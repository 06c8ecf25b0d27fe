package coerce

import (
	"strconv"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/schema"
)

// Literal coerces an AST value node against t (spec §4.6 "Literal
// coercion"). A Variable node resolves against vars (already-coerced
// variable values) rather than re-parsing; a missing variable
// coerces to nil regardless of vars presence, matching how an
// argument default applies when the caller omits the variable
// altogether.
func Literal(s *schema.Schema, t schema.Type, node ast.Value, vars map[string]interface{}, path []PathElement) (interface{}, *Error) {
	if v, ok := node.(*ast.Variable); ok {
		val, has := vars[v.Name.Value]
		if !has {
			return nil, nil
		}
		return val, nil
	}

	if nn, ok := t.(*schema.NonNull); ok {
		if _, isNull := node.(*ast.NullValue); isNull {
			return nil, newErr(path, "must not be null")
		}
		return Literal(s, nn.Type, node, vars, path)
	}
	if _, isNull := node.(*ast.NullValue); isNull {
		return nil, nil
	}

	switch v := t.(type) {
	case *schema.List:
		list, ok := node.(*ast.ListValue)
		if !ok {
			item, err := Literal(s, v.Type, node, vars, extend(path, 0))
			if err != nil {
				return nil, err
			}
			return []interface{}{item}, nil
		}
		out := make([]interface{}, len(list.Values))
		for i, elem := range list.Values {
			c, err := Literal(s, v.Type, elem, vars, extend(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil

	case *schema.Scalar:
		raw, err := literalToRaw(node)
		if err != nil {
			return nil, newErr(path, "%v", err)
		}
		c, perr := v.ParseValue(raw)
		if perr != nil {
			return nil, newErr(path, "%v", perr)
		}
		return c, nil

	case *schema.Enum:
		ev, ok := node.(*ast.EnumValue)
		if !ok {
			return nil, newErr(path, "expected an enum value literal for %q", v.Name)
		}
		val := v.ValueByName(ev.Value)
		if val == nil {
			return nil, newErr(path, "value %q is not a valid value for enum %q", ev.Value, v.Name)
		}
		return val.Value, nil

	case *schema.InputObject:
		obj, ok := node.(*ast.ObjectValue)
		if !ok {
			return nil, newErr(path, "expected an object literal for input type %q", v.Name)
		}
		byName := make(map[string]*ast.ObjectField, len(obj.Fields))
		for _, f := range obj.Fields {
			if _, known := v.Fields[f.Name.Value]; !known {
				return nil, newErr(extend(path, f.Name.Value), "field %q is not defined by input type %q", f.Name.Value, v.Name)
			}
			byName[f.Name.Value] = f
		}
		out := make(map[string]interface{}, len(v.FieldOrder))
		for _, fname := range v.FieldOrder {
			f := v.Fields[fname]
			fpath := extend(path, fname)
			field, has := byName[fname]
			if !has {
				if f.HasDefault {
					out[fname] = f.DefaultValue
				} else if schema.IsNonNull(f.Type) {
					return nil, newErr(fpath, "field %q of required type %q was not provided", fname, f.Type.String())
				} else {
					out[fname] = nil
				}
				continue
			}
			c, err := Literal(s, f.Type, field.Value, vars, fpath)
			if err != nil {
				return nil, err
			}
			out[fname] = c
		}
		return out, nil
	}
	return nil, newErr(path, "unsupported input type %q", t.String())
}

// literalToRaw turns a scalar-position AST value node into the plain
// Go value a Scalar.ParseValue expects, without knowing the target
// scalar (an IntValue might feed a custom scalar, not just Int/Float).
// IntValue/FloatValue nodes carry their source digits as a string
// (spec §3's Token shape); they are parsed into an actual numeric
// type here so a strict ParseValue (e.g. built-in Int's, which
// rejects a string per spec §8 scenario S5) still accepts an ordinary
// integer literal like `count: 3`.
func literalToRaw(node ast.Value) (interface{}, error) {
	switch v := node.(type) {
	case *ast.IntValue:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, newErr(nil, "invalid int literal %q", v.Value)
		}
		return n, nil
	case *ast.FloatValue:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, newErr(nil, "invalid float literal %q", v.Value)
		}
		return f, nil
	case *ast.StringValue:
		return v.Value, nil
	case *ast.BooleanValue:
		return v.Value, nil
	case *ast.NullValue:
		return nil, nil
	case *ast.EnumValue:
		return v.Value, nil
	case *ast.ListValue:
		out := make([]interface{}, len(v.Values))
		for i, e := range v.Values {
			r, err := literalToRaw(e)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case *ast.ObjectValue:
		out := make(map[string]interface{}, len(v.Fields))
		for _, f := range v.Fields {
			r, err := literalToRaw(f.Value)
			if err != nil {
				return nil, err
			}
			out[f.Name.Value] = r
		}
		return out, nil
	}
	return nil, newErr(nil, "unexpected value literal %T", node)
}
