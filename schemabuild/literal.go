package schemabuild

import (
	"fmt"
	"strconv"

	"github.com/coregraph/graphql/ast"
)

// literalToGo converts a const value literal (default values,
// directive arguments in SDL) into a plain Go value. Variables are
// not legal here -- the SDL grammar only allows ConstValue in these
// positions (spec §5's default-value production).
func literalToGo(v ast.Value) (interface{}, error) {
	switch val := v.(type) {
	case *ast.IntValue:
		i, err := strconv.ParseInt(val.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid int literal %q", val.Value)
		}
		return int(i), nil
	case *ast.FloatValue:
		f, err := strconv.ParseFloat(val.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float literal %q", val.Value)
		}
		return f, nil
	case *ast.StringValue:
		return val.Value, nil
	case *ast.BooleanValue:
		return val.Value, nil
	case *ast.NullValue:
		return nil, nil
	case *ast.EnumValue:
		return val.Value, nil
	case *ast.ListValue:
		list := make([]interface{}, 0, len(val.Values))
		for _, item := range val.Values {
			v, err := literalToGo(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case *ast.ObjectValue:
		obj := make(map[string]interface{}, len(val.Fields))
		for _, f := range val.Fields {
			v, err := literalToGo(f.Value)
			if err != nil {
				return nil, err
			}
			obj[f.Name.Value] = v
		}
		return obj, nil
	case *ast.Variable:
		return nil, fmt.Errorf("variable $%s is not allowed here", val.Name.Value)
	}
	return nil, fmt.Errorf("unsupported literal %T", v)
}
