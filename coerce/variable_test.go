package coerce_test

import (
	"testing"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/coerce"
	"github.com/coregraph/graphql/parser"
	"github.com/coregraph/graphql/schema"
	"github.com/coregraph/graphql/schemabuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func varDefsFor(t *testing.T, query string) (*schema.Schema, []*ast.VariableDefinition) {
	t.Helper()
	const sdl = `type Query { echo(name: String, count: Int!): String! }`
	schemaDoc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(schemaDoc)
	require.NoError(t, err)

	doc, perr := parser.Parse(query)
	require.Nil(t, perr)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	return s, op.VariableDefinitions
}

func TestVariables_MissingNonNullVariableIsAnError(t *testing.T) {
	s, defs := varDefsFor(t, `query($count: Int!) { echo(count: $count) }`)

	_, errs := coerce.Variables(s, defs, map[string]interface{}{})
	require.Len(t, errs, 1)
}

func TestVariables_MissingNullableVariableDefaultsToNil(t *testing.T) {
	s, defs := varDefsFor(t, `query($name: String) { echo(name: $name, count: 1) }`)

	out, errs := coerce.Variables(s, defs, map[string]interface{}{})
	require.Empty(t, errs)
	assert.Nil(t, out["name"])
}

func TestVariables_DefaultValueLiteralIsUsedWhenRawIsAbsent(t *testing.T) {
	s, defs := varDefsFor(t, `query($name: String = "fallback") { echo(name: $name, count: 1) }`)

	out, errs := coerce.Variables(s, defs, map[string]interface{}{})
	require.Empty(t, errs)
	assert.Equal(t, "fallback", out["name"])
}

func TestVariables_ProvidedValueOverridesDefault(t *testing.T) {
	s, defs := varDefsFor(t, `query($name: String = "fallback") { echo(name: $name, count: 1) }`)

	out, errs := coerce.Variables(s, defs, map[string]interface{}{"name": "explicit"})
	require.Empty(t, errs)
	assert.Equal(t, "explicit", out["name"])
}

func TestVariables_WrongScalarTypeIsAnError(t *testing.T) {
	s, defs := varDefsFor(t, `query($count: Int!) { echo(count: $count) }`)

	_, errs := coerce.Variables(s, defs, map[string]interface{}{"count": "not-an-int"})
	require.NotEmpty(t, errs)
}

func TestVariables_UnknownDeclaredTypeIsAnError(t *testing.T) {
	const sdl = `type Query { noop: String! }`
	schemaDoc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(schemaDoc)
	require.NoError(t, err)

	doc, perr := parser.Parse(`query($x: Ghost) { noop }`)
	require.Nil(t, perr)
	op := doc.Definitions[0].(*ast.OperationDefinition)

	_, errs := coerce.Variables(s, op.VariableDefinitions, map[string]interface{}{})
	require.NotEmpty(t, errs)
}
