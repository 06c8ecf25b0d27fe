package executor_test

import (
	"context"
	"testing"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/executor"
	"github.com/coregraph/graphql/parser"
	"github.com/coregraph/graphql/schema"
	"github.com/coregraph/graphql/schemabuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dog and Cat exercise both the default "no resolver registered"
// dispatch (a field named "name" maps to the exported Go struct field
// Name) and the fallback abstract-type resolution that matches a
// value's Go type name against an Object's GraphQL name.
type Dog struct {
	Name  string
	Woofs bool
}

type Cat struct {
	Name  string
	Meows bool
}

func buildPetSchema(t *testing.T) *schema.Schema {
	t.Helper()
	const sdl = `
		interface Pet { name: String! }
		type Dog implements Pet { name: String! woofs: Boolean! }
		type Cat implements Pet { name: String! meows: Boolean! }
		type Query { pets: [Pet!]! }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)

	resolvers := map[string]map[string]schema.Resolver{
		"Query": {
			"pets": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				return []interface{}{
					Dog{Name: "Odie", Woofs: true},
					Cat{Name: "Garfield", Meows: false},
				}, nil
			},
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithResolvers(resolvers))
	require.NoError(t, err)
	return s
}

func mustParse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc, perr := parser.Parse(src)
	require.Nil(t, perr)
	return doc
}

func TestExecute_AbstractTypeResolvesByGoName(t *testing.T) {
	s := buildPetSchema(t)
	doc := mustParse(t, `{
		pets {
			name
			... on Dog { woofs }
			... on Cat { meows }
		}
	}`)

	result := executor.Execute(context.Background(), s, doc)
	assert.Empty(t, result.Errors)

	data, ok := result.Data.(interface{ Get(string) (interface{}, bool) })
	require.True(t, ok, "expected orderedMap-shaped data")
	pets, ok := data.Get("pets")
	require.True(t, ok)
	list, ok := pets.([]interface{})
	require.True(t, ok)
	require.Len(t, list, 2)
}

func TestExecute_ParallelQueryFieldsAllRun(t *testing.T) {
	const sdl = `type Query { a: String! b: String! }`
	doc := mustParse(t, sdl)
	var calls []string
	resolvers := map[string]map[string]schema.Resolver{
		"Query": {
			"a": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				calls = append(calls, "a")
				return "A", nil
			},
			"b": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				calls = append(calls, "b")
				return "B", nil
			},
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithResolvers(resolvers))
	require.NoError(t, err)

	result := executor.Execute(context.Background(), s, mustParse(t, `{ a b }`))
	assert.Empty(t, result.Errors)
	assert.ElementsMatch(t, []string{"a", "b"}, calls)
}

func TestExecute_NonNullViolationNullsNearestNullableAncestor(t *testing.T) {
	const sdl = `
		type Inner { broken: String! }
		type Query { inner: Inner safe: String! }
	`
	doc := mustParse(t, sdl)
	resolvers := map[string]map[string]schema.Resolver{
		"Query": {
			"inner": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				return struct{}{}, nil
			},
			"safe": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				return "ok", nil
			},
		},
		"Inner": {
			"broken": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				return nil, nil
			},
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithResolvers(resolvers))
	require.NoError(t, err)

	result := executor.Execute(context.Background(), s, mustParse(t, `{ inner { broken } safe }`))
	require.Len(t, result.Errors, 1)

	data, ok := result.Data.(interface{ Get(string) (interface{}, bool) })
	require.True(t, ok)
	inner, ok := data.Get("inner")
	require.True(t, ok)
	assert.Nil(t, inner, "the NonNull violation inside Inner.broken should null out Query.inner, not the whole response")

	safe, ok := data.Get("safe")
	require.True(t, ok)
	assert.Equal(t, "ok", safe, "sibling fields must be unaffected by the sibling's NonNull violation")
}

func TestExecute_MutationFieldsRunSeriallyInOrder(t *testing.T) {
	const sdl = `type Mutation { first: String! second: String! } type Query { noop: String! }`
	doc := mustParse(t, sdl)
	var order []string
	resolvers := map[string]map[string]schema.Resolver{
		"Mutation": {
			"first": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				order = append(order, "first")
				return "1", nil
			},
			"second": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				order = append(order, "second")
				return "2", nil
			},
		},
		"Query": {
			"noop": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				return "", nil
			},
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithResolvers(resolvers))
	require.NoError(t, err)

	result := executor.Execute(context.Background(), s, mustParse(t, `mutation { first second }`))
	assert.Empty(t, result.Errors)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestExecute_ResolverPanicBecomesFieldError(t *testing.T) {
	const sdl = `type Query { boom: String }`
	doc := mustParse(t, sdl)
	resolvers := map[string]map[string]schema.Resolver{
		"Query": {
			"boom": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				panic("kaboom")
			},
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithResolvers(resolvers))
	require.NoError(t, err)

	result := executor.Execute(context.Background(), s, mustParse(t, `{ boom }`))
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "kaboom")
}

func TestExecute_TypenameIsAlwaysAvailable(t *testing.T) {
	const sdl = `type Query { self: Query }`
	doc := mustParse(t, sdl)
	resolvers := map[string]map[string]schema.Resolver{
		"Query": {
			"self": func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
				return struct{}{}, nil
			},
		},
	}
	s, err := schemabuild.Build(doc, schemabuild.WithResolvers(resolvers))
	require.NoError(t, err)

	result := executor.Execute(context.Background(), s, mustParse(t, `{ __typename self { __typename } }`))
	assert.Empty(t, result.Errors)
}
