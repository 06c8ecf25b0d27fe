package schema

import (
	"fmt"
	"math"
	"strconv"
)

// Built-in scalars (spec §5.1): Int, Float, String, Boolean, ID.
// Serialize is deliberately more permissive than ParseValue -- a
// resolver may hand back a Go string or bool for a numeric field and
// still get a sane wire value out -- while ParseValue enforces the
// GraphQL spec's strict input-coercion rules (variables and literal
// arguments reject an Int given as the string "3", for instance),
// matching the reference implementation's serializeInt/coerceInt
// split.
var (
	Int = &Scalar{
		Name: "Int",
		Desc: "The `Int` scalar type represents non-fractional signed whole numeric values.",
		Serialize: func(v interface{}) (interface{}, error) {
			return serializeInt(v)
		},
		ParseValue: func(v interface{}) (interface{}, error) {
			return parseValueInt(v)
		},
	}
	Float = &Scalar{
		Name: "Float",
		Desc: "The `Float` scalar type represents signed double-precision fractional values.",
		Serialize: func(v interface{}) (interface{}, error) {
			return serializeFloat(v)
		},
		ParseValue: func(v interface{}) (interface{}, error) {
			return parseValueFloat(v)
		},
	}
	String = &Scalar{
		Name: "String",
		Desc: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
		Serialize: func(v interface{}) (interface{}, error) {
			return serializeString(v)
		},
		ParseValue: func(v interface{}) (interface{}, error) {
			return parseValueString(v)
		},
	}
	Boolean = &Scalar{
		Name: "Boolean",
		Desc: "The `Boolean` scalar type represents `true` or `false`.",
		Serialize: func(v interface{}) (interface{}, error) {
			return coerceBool(v)
		},
		ParseValue: func(v interface{}) (interface{}, error) {
			return parseValueBool(v)
		},
	}
	ID = &Scalar{
		Name: "ID",
		Desc: "The `ID` scalar type represents a unique identifier, often used to refetch an object or as the key for a cache.",
		Serialize: func(v interface{}) (interface{}, error) {
			return serializeString(v)
		},
		ParseValue: func(v interface{}) (interface{}, error) {
			return parseValueID(v)
		},
	}
)

// Builtins returns the five spec-mandated scalars, keyed by name.
func Builtins() map[string]*Scalar {
	return map[string]*Scalar{
		"Int": Int, "Float": Float, "String": String, "Boolean": Boolean, "ID": ID,
	}
}

// serializeInt is lenient: a resolver may legitimately return a
// numeric string or a bool for an Int field (e.g. a database driver
// that hands back decimal strings), so the wire value is still
// produced as long as it denotes a whole number in 32-bit range.
func serializeInt(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case int:
		return boundInt32(int64(n))
	case int32:
		return boundInt32(int64(n))
	case int64:
		return boundInt32(n)
	case float64:
		if n != math.Trunc(n) || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("not an integer: %v", n)
		}
		return boundInt32(int64(n))
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", n)
		}
		return boundInt32(int64(i))
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	}
	return nil, fmt.Errorf("cannot coerce %T to Int", v)
}

func boundInt32(n int64) (interface{}, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return nil, fmt.Errorf("int out of 32-bit range: %d", n)
	}
	return int(n), nil
}

// parseValueInt enforces the GraphQL spec's strict input coercion: an
// Int variable or literal argument must be an actual integer-typed
// number, never a string or bool, even one that "looks like" a
// number (spec §8 scenario S5).
func parseValueInt(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case int:
		return boundInt32(int64(n))
	case int32:
		return boundInt32(int64(n))
	case int64:
		return boundInt32(n)
	case float64:
		if n != math.Trunc(n) || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("Int cannot represent non-integer value: %v", n)
		}
		return boundInt32(int64(n))
	}
	return nil, fmt.Errorf("Int cannot represent non-integer value: %v", v)
}

func serializeFloat(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil, fmt.Errorf("not a float: %q", n)
		}
		return f, nil
	case bool:
		if n {
			return 1.0, nil
		}
		return 0.0, nil
	}
	return nil, fmt.Errorf("cannot coerce %T to Float", v)
}

// parseValueFloat requires an actual number, matching the strict
// input-coercion rule applied to Int above.
func parseValueFloat(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("Float cannot represent non-finite value: %v", n)
		}
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return nil, fmt.Errorf("Float cannot represent non-numeric value: %v", v)
}

func serializeString(v interface{}) (interface{}, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
		return fmt.Sprintf("%v", s), nil
	}
	return nil, fmt.Errorf("cannot coerce %T to String", v)
}

// parseValueString requires an actual string: the GraphQL spec's
// String input coercion does not stringify numbers or booleans.
func parseValueString(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("String cannot represent a non-string value: %v", v)
	}
	return s, nil
}

func coerceBool(v interface{}) (interface{}, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case int:
		return b != 0, nil
	case float64:
		return b != 0, nil
	}
	return nil, fmt.Errorf("cannot coerce %T to Boolean", v)
}

// parseValueBool requires an actual bool: input coercion does not
// treat 0/1 or "" as booleans.
func parseValueBool(v interface{}) (interface{}, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("Boolean cannot represent a non-boolean value: %v", v)
	}
	return b, nil
}

// parseValueID accepts string and integer inputs per spec §6 ("ID
// ...accepts string and integer inputs, serializes as string").
func parseValueID(v interface{}) (interface{}, error) {
	switch n := v.(type) {
	case string:
		return n, nil
	case int, int32, int64:
		return fmt.Sprintf("%v", n), nil
	}
	return nil, fmt.Errorf("ID cannot represent value: %v", v)
}
