package ast_test

import (
	"testing"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// ignoreLocations treats every graphqlerr.Location as equal to every
// other one, since Print/re-parse does not preserve source offsets
// (spec §8: "print_ast(parse(S)) re-parses to a structurally equal
// AST").
var ignoreLocations = cmp.Comparer(func(a, b graphqlerr.Location) bool { return true })

func assertRoundTrips(t *testing.T, source string) {
	t.Helper()
	doc, err := parser.Parse(source)
	require.Nil(t, err, "parse %q: %v", source, err)

	printed := ast.Print(doc)
	reparsed, err := parser.Parse(printed)
	require.Nil(t, err, "reparse of printed output %q: %v", printed, err)

	if diff := cmp.Diff(doc, reparsed, ignoreLocations); diff != "" {
		t.Errorf("print/reparse mismatch for %q (-orig +reparsed):\n%s", source, diff)
	}
}

func TestPrintAST_RoundTrips(t *testing.T) {
	sources := []string{
		`{ hello }`,
		`query Greet($name: String = "world") { hello(value: $name) @include(if: true) }`,
		`mutation { a: inc b: inc }`,
		`{ ...Frag }
fragment Frag on Query { x y }`,
		`{ x @skip(if: true) y }`,
		`query { list(values: [1, 2, 3]) obj(i: {n: 1, s: "a"}) }`,
		`subscription Sub { onEvent { id } }`,
		`{ a(b: null, c: ENUM_VALUE) }`,
		`{ block(s: """
  indented
  text
""") }`,
	}
	for _, s := range sources {
		s := s
		t.Run(s, func(t *testing.T) { assertRoundTrips(t, s) })
	}
}

func TestPrintAST_RoundTripsSDL(t *testing.T) {
	sdl := `
"""A greeting service."""
schema {
  query: Query
}

type Query {
  hello(value: String = "world"): String!
  a: A!
}

type A {
  b: String!
}

interface Node {
  id: ID!
}

type Thing implements Node {
  id: ID!
}

union Search = Query | A

enum Color {
  RED
  GREEN
  BLUE @deprecated(reason: "no longer used")
}

input Filter {
  n: Int!
}

directive @tag(name: String!) repeatable on FIELD_DEFINITION
`
	doc, err := parser.Parse(sdl)
	require.Nil(t, err)

	printed := ast.Print(doc)
	reparsed, err := parser.Parse(printed)
	require.Nil(t, err, "reparse of printed SDL %q: %v", printed, err)

	if diff := cmp.Diff(doc, reparsed, ignoreLocations); diff != "" {
		t.Errorf("SDL print/reparse mismatch (-orig +reparsed):\n%s", diff)
	}
}
