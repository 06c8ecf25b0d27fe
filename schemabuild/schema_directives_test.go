package schemabuild_test

import (
	"testing"

	"github.com/coregraph/graphql/parser"
	"github.com/coregraph/graphql/schema"
	"github.com/coregraph/graphql/schemabuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_SchemaDirectiveRemovesAField(t *testing.T) {
	const sdl = `
		directive @hidden on FIELD_DEFINITION
		type Query { visible: String! secret: String! @hidden }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	impls := map[string]schemabuild.DirectiveImplementation{
		"hidden": {
			OnFieldDef: func(args map[string]interface{}, parent schema.NamedType, f *schema.Field) schemabuild.DirectiveResult {
				return schemabuild.Remove
			},
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithSchemaDirectives(impls))
	require.NoError(t, err)

	_, ok := s.Query.Fields.Get("visible")
	assert.True(t, ok)
	_, ok = s.Query.Fields.Get("secret")
	assert.False(t, ok, "a field hit by an @hidden removal must be gone")
}

func TestBuild_SchemaDirectiveRemovingATypePrunesDanglingReferences(t *testing.T) {
	const sdl = `
		directive @internal on OBJECT
		type Secret @internal { value: String! }
		type Widget { name: String! secret: Secret }
		type Query { widget: Widget! }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	impls := map[string]schemabuild.DirectiveImplementation{
		"internal": {
			OnObject: func(args map[string]interface{}, t *schema.Object) schemabuild.DirectiveResult {
				return schemabuild.Remove
			},
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithSchemaDirectives(impls))
	require.NoError(t, err)

	assert.Nil(t, s.TypeByName("Secret"))
	widget, ok := s.TypeByName("Widget").(*schema.Object)
	require.True(t, ok)
	_, ok = widget.Fields.Get("secret")
	assert.False(t, ok, "a field typed with a removed type must itself be pruned")
	_, ok = widget.Fields.Get("name")
	assert.True(t, ok)
}

func TestBuild_SchemaDirectiveCanRemoveAnArgumentAndAnEnumValue(t *testing.T) {
	const sdl = `
		directive @drop on ARGUMENT_DEFINITION | ENUM_VALUE
		enum Color { RED GREEN @drop BLUE }
		type Query { paint(shade: Color @drop): Boolean! }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	impls := map[string]schemabuild.DirectiveImplementation{
		"drop": {
			OnArgument: func(args map[string]interface{}, a *schema.Argument) schemabuild.DirectiveResult {
				return schemabuild.Remove
			},
			OnEnumValue: func(args map[string]interface{}, ev *schema.EnumValue) schemabuild.DirectiveResult {
				return schemabuild.Remove
			},
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithSchemaDirectives(impls))
	require.NoError(t, err)

	field, ok := s.Query.Fields.Get("paint")
	require.True(t, ok)
	_, hasArg := field.Args["shade"]
	assert.False(t, hasArg, "an @drop'd argument must be removed")

	colorType, ok := s.TypeByName("Color").(*schema.Enum)
	require.True(t, ok)
	var names []string
	for _, v := range colorType.Values {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"RED", "BLUE"}, names)
}

func TestBuild_NoSchemaDirectivesOptionLeavesDirectiveApplicationsInPlace(t *testing.T) {
	const sdl = `
		directive @hidden on FIELD_DEFINITION
		type Query { secret: String! @hidden }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	_, ok := s.Query.Fields.Get("secret")
	assert.True(t, ok, "without WithSchemaDirectives, no implementation runs and nothing is removed")
}

func TestBuild_InputObjectNonNullCycleIsAnError(t *testing.T) {
	const sdl = `
		input A { b: B! }
		input B { a: A! }
		type Query { noop(a: A): Boolean! }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	_, err := schemabuild.Build(doc)
	require.Error(t, err)
}

func TestBuild_InputObjectCycleBrokenByNullabilityBuildsFine(t *testing.T) {
	const sdl = `
		input A { b: B! }
		input B { a: A }
		type Query { noop(a: A): Boolean! }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	_, err := schemabuild.Build(doc)
	require.NoError(t, err)
}

func TestBuild_InputObjectCycleThroughAListIsNotACycle(t *testing.T) {
	const sdl = `
		input A { bs: [B!]! }
		input B { a: A! }
		type Query { noop(a: A): Boolean! }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	_, err := schemabuild.Build(doc)
	require.NoError(t, err)
}
