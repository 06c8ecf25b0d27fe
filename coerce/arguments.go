package coerce

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/schema"
)

// Arguments coerces a field or directive's applied arguments against
// its declared Argument signature (spec §4.6, consumed by the
// executor's step 2 "coerce argument values"). Variable references in
// argument literals resolve against vars (already variable-coerced).
// An argument omitted from astArgs falls back to its declared
// default, then to nil if nullable.
func Arguments(s *schema.Schema, argDefs map[string]*schema.Argument, argOrder []string, astArgs []*ast.Argument, vars map[string]interface{}) (map[string]interface{}, []*Error) {
	byName := make(map[string]*ast.Argument, len(astArgs))
	for _, a := range astArgs {
		byName[a.Name.Value] = a
	}
	out := make(map[string]interface{}, len(argOrder))
	var errs []*Error
	for _, name := range argOrder {
		def := argDefs[name]
		path := []PathElement{name}
		applied, has := byName[name]
		if !has {
			if def.HasDefault {
				out[name] = def.DefaultValue
			} else if schema.IsNonNull(def.Type) {
				errs = append(errs, newErr(path, "argument %q of required type %q was not provided", name, def.Type.String()))
			} else {
				out[name] = nil
			}
			continue
		}
		c, err := Literal(s, def.Type, applied.Value, vars, path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[name] = c
	}
	return out, errs
}
