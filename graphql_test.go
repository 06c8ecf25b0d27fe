package graphql_test

import (
	"context"
	"encoding/json"
	"testing"

	graphql "github.com/coregraph/graphql"
	"github.com/coregraph/graphql/schema"
	"github.com/coregraph/graphql/schemabuild"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
)

// keyedData exposes the ordered response-key view executor.Result's
// data carries (see executor.orderedMap) without this package
// importing executor's internal type; the JSON transport spec §1
// explicitly leaves to an external caller is exactly this kind of
// Keys()/Get() walk.
type keyedData interface {
	Keys() []string
	Get(string) (interface{}, bool)
}

func toPlain(v interface{}) interface{} {
	switch t := v.(type) {
	case keyedData:
		out := make(map[string]interface{}, len(t.Keys()))
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			out[k] = toPlain(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = toPlain(e)
		}
		return out
	default:
		return v
	}
}

func toJSON(t *testing.T, result *graphql.Result) string {
	t.Helper()
	shape := map[string]interface{}{"data": toPlain(result.Data)}
	if len(result.Errors) > 0 {
		shape["errors"] = result.Errors
	}
	b, err := json.Marshal(shape)
	require.NoError(t, err)
	return string(b)
}

func assertJSONEqual(t *testing.T, result *graphql.Result, expected string) {
	t.Helper()
	if diff := pretty.Compare(toJSON(t, result), expected); diff != "" {
		t.Errorf("unexpected response shape (-got +want):\n%s", diff)
	}
}

// S1 from spec §8: a scalar argument with a default, resolved by a
// plain function resolver.
func TestScenario_Hello(t *testing.T) {
	s, err := graphql.BuildSchema(
		`type Query { hello(value: String = "world"): String! }`,
		schemabuild.WithResolvers(map[string]map[string]schema.Resolver{
			"Query": {
				"hello": func(ctx context.Context, root interface{}, args map[string]interface{}) (interface{}, error) {
					return "Hello " + args["value"].(string) + "!", nil
				},
			},
		}),
	)
	require.NoError(t, err)

	result := graphql.Execute(context.Background(), s, `{ hello(value: "Foo") }`)
	assertJSONEqual(t, result, `{"data":{"hello":"Hello Foo!"}}`)
}

// S2 from spec §8: a NonNull violation two levels deep nulls the
// entire response because the violated position's only nullable
// ancestor is the top-level data object itself.
func TestScenario_NullPropagationWipesData(t *testing.T) {
	s, err := graphql.BuildSchema(
		`type Query { a: A! } type A { b: String! }`,
		schemabuild.WithResolvers(map[string]map[string]schema.Resolver{
			"Query": {
				"a": func(ctx context.Context, root interface{}, args map[string]interface{}) (interface{}, error) {
					return map[string]interface{}{}, nil
				},
			},
		}),
	)
	require.NoError(t, err)

	result := graphql.Execute(context.Background(), s, `{ a { b } }`)
	require.Nil(t, result.Data)
	require.Len(t, result.Errors, 1)
	require.Equal(t, []interface{}{"a", "b"}, result.Errors[0].Path)
}

// S3 from spec §8: @skip(if: $s) removes "x" from the response
// entirely rather than nulling it.
func TestScenario_FragmentSkip(t *testing.T) {
	s, err := graphql.BuildSchema(
		`type Query { x: Int y: Int }`,
		schemabuild.WithResolvers(map[string]map[string]schema.Resolver{
			"Query": {
				"x": func(ctx context.Context, root interface{}, args map[string]interface{}) (interface{}, error) {
					return 1, nil
				},
				"y": func(ctx context.Context, root interface{}, args map[string]interface{}) (interface{}, error) {
					return 2, nil
				},
			},
		}),
	)
	require.NoError(t, err)

	result := graphql.Execute(context.Background(), s, `query Q($s: Boolean!) { x @skip(if: $s) y }`,
		graphql.WithVariables(map[string]interface{}{"s": true}))
	assertJSONEqual(t, result, `{"data":{"y":2}}`)
}

// S4 from spec §8: a two-field mutation executes its top-level fields
// strictly serially in document order, deterministically, regardless
// of runtime.
func TestScenario_MutationFieldsRunSerially(t *testing.T) {
	s, err := graphql.BuildSchema(
		`type Mutation { inc: Int } type Query { _: Int }`,
		schemabuild.WithResolvers(map[string]map[string]schema.Resolver{
			"Mutation": {
				"inc": func() func(ctx context.Context, root interface{}, args map[string]interface{}) (interface{}, error) {
					count := 0
					return func(ctx context.Context, root interface{}, args map[string]interface{}) (interface{}, error) {
						count++
						return count, nil
					}
				}(),
			},
		}),
	)
	require.NoError(t, err)

	result := graphql.Execute(context.Background(), s, `mutation { a: inc b: inc }`)
	assertJSONEqual(t, result, `{"data":{"a":1,"b":2}}`)
}

// S5 from spec §8: an invalid variable value fails coercion before
// any resolver runs, reporting the error's path into the input object.
func TestScenario_VariableCoercionErrorPath(t *testing.T) {
	s, err := graphql.BuildSchema(
		`input I { n: Int! } type Query { f(i: I!): Int }`,
		schemabuild.WithResolvers(map[string]map[string]schema.Resolver{
			"Query": {
				"f": func(ctx context.Context, root interface{}, args map[string]interface{}) (interface{}, error) {
					t.Fatal("resolver must not run when variable coercion fails")
					return nil, nil
				},
			},
		}),
	)
	require.NoError(t, err)

	result := graphql.Execute(context.Background(), s, `query Q($i: I!) { f(i: $i) }`,
		graphql.WithVariables(map[string]interface{}{"i": map[string]interface{}{"n": "3"}}))
	require.Nil(t, result.Data)
	require.NotEmpty(t, result.Errors)
	require.Equal(t, []interface{}{"i", "n"}, result.Errors[0].Path)
}
