package schemabuild_test

import (
	"context"
	"testing"

	"github.com/coregraph/graphql/parser"
	"github.com/coregraph/graphql/schema"
	"github.com/coregraph/graphql/schemabuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ValidSchemaResolvesRootTypesAndInterfaces(t *testing.T) {
	const sdl = `
		interface Pet { name: String! }
		type Dog implements Pet { name: String! woofs: Boolean! }
		type Query { pets: [Pet!]! }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	s, err := schemabuild.Build(doc)
	require.NoError(t, err)
	require.NotNil(t, s.Query)
	assert.Equal(t, "Query", s.Query.Name)

	dogType, ok := s.TypeByName("Dog").(*schema.Object)
	require.True(t, ok)
	require.Len(t, dogType.Interfaces, 1)
	assert.Equal(t, "Pet", dogType.Interfaces[0].Name)
}

func TestBuild_MissingQueryTypeIsAnError(t *testing.T) {
	const sdl = `type Mutation { noop: String! }`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	_, err := schemabuild.Build(doc)
	require.Error(t, err)
}

func TestBuild_ObjectFailingToImplementInterfaceIsAnError(t *testing.T) {
	const sdl = `
		interface Pet { name: String! }
		type Dog implements Pet { woofs: Boolean! }
		type Query { pets: [Pet!]! }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	_, err := schemabuild.Build(doc)
	require.Error(t, err)
}

func TestBuild_EmptyUnionIsAnError(t *testing.T) {
	const sdl = `
		union Pet
		type Query { pet: Pet }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	_, err := schemabuild.Build(doc)
	require.Error(t, err)
}

func TestBuild_CustomScalarRegistersSerializeAndParse(t *testing.T) {
	const sdl = `
		scalar UUID
		type Query { id: UUID! }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	serialize := func(v interface{}) (interface{}, error) { return v, nil }
	parseValue := func(v interface{}) (interface{}, error) { return v, nil }

	s, err := schemabuild.Build(doc, schemabuild.WithScalar("UUID", serialize, parseValue))
	require.NoError(t, err)

	uuidType, ok := s.TypeByName("UUID").(*schema.Scalar)
	require.True(t, ok)
	assert.NotNil(t, uuidType.Serialize)
	assert.NotNil(t, uuidType.ParseValue)
}

func TestBuild_InjectsIntrospectionSchemaField(t *testing.T) {
	const sdl = `type Query { noop: String! }`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	field, ok := s.Query.Fields.Get("__schema")
	require.True(t, ok)
	require.NotNil(t, field)
}

func TestBuild_TypeResolverIsWiredOntoInterface(t *testing.T) {
	const sdl = `
		interface Pet { name: String! }
		type Dog implements Pet { name: String! }
		type Query { pet: Pet }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	called := false
	resolve := func(ctx context.Context, value interface{}) *schema.Object {
		called = true
		return nil
	}
	s, err := schemabuild.Build(doc, schemabuild.WithTypeResolver("Pet", resolve))
	require.NoError(t, err)

	iface, ok := s.TypeByName("Pet").(*schema.Interface)
	require.True(t, ok)
	require.NotNil(t, iface.ResolveType)
	iface.ResolveType(context.Background(), nil)
	assert.True(t, called)
}
