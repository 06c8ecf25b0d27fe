package schema

import "github.com/iancoleman/strcase"

// GoName derives the exported Go identifier a field/type's GraphQL
// name would map to under the default-resolver dispatch rule: a
// GraphQL field `createdAt` with no registered Resolver looks for a
// struct field or zero-argument-plus-context method named
// `CreatedAt` on the bound value (executor.defaultResolve). It is
// never used to invoke an arbitrary `interface{}`-typed field as a
// callable -- Go has no such idiom to accidentally trigger.
func GoName(graphqlName string) string {
	return strcase.ToCamel(graphqlName)
}
