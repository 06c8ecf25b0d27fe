package coerce

import "github.com/coregraph/graphql/schema"

// Value coerces a raw, JSON-decoded value against t (spec §4.6
// "Variable coercion"). NonNull rejects a nil raw value; a List target
// auto-wraps a non-list raw value as its sole element; an InputObject
// target rejects unknown fields and fills missing ones from their
// declared default, erroring on a missing required field.
func Value(s *schema.Schema, t schema.Type, raw interface{}, path []PathElement) (interface{}, *Error) {
	if nn, ok := t.(*schema.NonNull); ok {
		if raw == nil {
			return nil, newErr(path, "must not be null")
		}
		return Value(s, nn.Type, raw, path)
	}
	if raw == nil {
		return nil, nil
	}
	switch v := t.(type) {
	case *schema.List:
		items, ok := raw.([]interface{})
		if !ok {
			item, err := Value(s, v.Type, raw, extend(path, 0))
			if err != nil {
				return nil, err
			}
			return []interface{}{item}, nil
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			c, err := Value(s, v.Type, item, extend(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil

	case *schema.Scalar:
		c, err := v.ParseValue(raw)
		if err != nil {
			return nil, newErr(path, "%v", err)
		}
		return c, nil

	case *schema.Enum:
		name, ok := raw.(string)
		if !ok {
			return nil, newErr(path, "enum value must be a string, got %T", raw)
		}
		ev := v.ValueByName(name)
		if ev == nil {
			return nil, newErr(path, "value %q is not a valid value for enum %q", name, v.Name)
		}
		return ev.Value, nil

	case *schema.InputObject:
		obj, ok := raw.(map[string]interface{})
		if !ok {
			return nil, newErr(path, "expected object for input type %q, got %T", v.Name, raw)
		}
		for k := range obj {
			if _, known := v.Fields[k]; !known {
				return nil, newErr(extend(path, k), "field %q is not defined by input type %q", k, v.Name)
			}
		}
		out := make(map[string]interface{}, len(v.FieldOrder))
		for _, fname := range v.FieldOrder {
			f := v.Fields[fname]
			fv, has := obj[fname]
			fpath := extend(path, fname)
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
			c, err := Value(s, f.Type, fv, fpath)
			if err != nil {
				return nil, err
			}
			out[fname] = c
		}
		return out, nil
	}
	return nil, newErr(path, "unsupported input type %q", t.String())
}
