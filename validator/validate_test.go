package validator_test

import (
	"testing"

	"github.com/coregraph/graphql/parser"
	"github.com/coregraph/graphql/schema"
	"github.com/coregraph/graphql/schemabuild"
	"github.com/coregraph/graphql/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestSchema(t *testing.T) *schema.Schema {
	t.Helper()
	const sdl = `
		type Dog { name: String! owner: Human }
		type Human { name: String! dogs: [Dog!]! }
		union Pet = Dog
		type Query { dog: Dog human: Human }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)
	return s
}

func TestValidate_ValidQueryHasNoErrors(t *testing.T) {
	s := buildTestSchema(t)
	doc, perr := parser.Parse(`{ dog { name owner { name } } }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, doc, validator.AllRules...)
	assert.Empty(t, errs)
}

func TestValidate_UnknownFieldIsRejected(t *testing.T) {
	s := buildTestSchema(t)
	doc, perr := parser.Parse(`{ dog { bark } }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, doc, validator.RuleFieldsOnCorrectType)
	require.NotEmpty(t, errs)
}

func TestValidate_LeafFieldMustNotHaveSelectionSet(t *testing.T) {
	s := buildTestSchema(t)
	doc, perr := parser.Parse(`{ dog { name { nested } } }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, doc, validator.RuleLeafFieldSelections)
	require.NotEmpty(t, errs)
}

func TestValidate_UnusedVariableIsRejected(t *testing.T) {
	s := buildTestSchema(t)
	doc, perr := parser.Parse(`query($unused: String) { dog { name } }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, doc, validator.RuleNoUnusedVariables)
	require.NotEmpty(t, errs)
}

func TestValidate_DuplicateOperationNamesAreRejected(t *testing.T) {
	s := buildTestSchema(t)
	doc, perr := parser.Parse(`
		query Same { dog { name } }
		query Same { human { name } }
	`)
	require.Nil(t, perr)

	errs := validator.Validate(s, doc, validator.RuleUniqueOperationNames)
	require.NotEmpty(t, errs)
}

func TestValidate_SubscriptionMustHaveExactlyOneRootField(t *testing.T) {
	const sdl = `
		type Dog { name: String! }
		type Subscription { a: Dog b: Dog }
		type Query { dog: Dog }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`subscription { a { name } b { name } }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RuleSingleFieldSubscriptions)
	require.NotEmpty(t, errs)
}

func TestValidate_UnknownTypeNameInFragmentIsRejected(t *testing.T) {
	s := buildTestSchema(t)
	doc, perr := parser.Parse(`
		{ dog { ...frag } }
		fragment frag on Ghost { name }
	`)
	require.Nil(t, perr)

	errs := validator.Validate(s, doc, validator.RuleKnownTypeNames)
	require.NotEmpty(t, errs)
}

func TestValidate_TypeSystemDefinitionInDocumentIsRejected(t *testing.T) {
	s := buildTestSchema(t)
	doc, perr := parser.Parse(`
		{ dog { name } }
		scalar Foo
	`)
	require.Nil(t, perr)

	errs := validator.Validate(s, doc, validator.RuleExecutableDefinitions)
	require.NotEmpty(t, errs)
}

func TestValidate_SecondAnonymousOperationIsRejected(t *testing.T) {
	s := buildTestSchema(t)
	doc, perr := parser.Parse(`
		{ dog { name } }
		{ human { name } }
	`)
	require.Nil(t, perr)

	errs := validator.Validate(s, doc, validator.RuleLoneAnonymousOperation)
	require.NotEmpty(t, errs)
}

func TestValidate_LoneAnonymousOperationIsValid(t *testing.T) {
	s := buildTestSchema(t)
	doc, perr := parser.Parse(`{ dog { name } }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, doc, validator.RuleLoneAnonymousOperation)
	assert.Empty(t, errs)
}

func TestValidate_MissingRequiredArgumentIsRejected(t *testing.T) {
	const sdl = `
		type Dog { name: String! }
		type Query { dog(id: ID!): Dog }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`{ dog { name } }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RuleProvidedRequiredArguments)
	require.NotEmpty(t, errs)
}

func TestValidate_RequiredArgumentWithDefaultIsNotRequired(t *testing.T) {
	const sdl = `
		type Dog { name: String! }
		type Query { dog(id: ID! = "1"): Dog }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`{ dog { name } }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RuleProvidedRequiredArguments)
	assert.Empty(t, errs)
}

func TestValidate_ImpossibleFragmentSpreadIsRejected(t *testing.T) {
	const sdl = `
		type Dog { name: String! }
		type Human { name: String! }
		type Query { dog: Dog }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`
		{ dog { ...onHuman } }
		fragment onHuman on Human { name }
	`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RulePossibleFragmentSpreads)
	require.NotEmpty(t, errs)
}

func TestValidate_InlineFragmentOnImplementingTypeIsValid(t *testing.T) {
	const sdl = `
		interface Node { id: ID! }
		type Dog implements Node { id: ID! name: String! }
		type Query { node: Node }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`{ node { ... on Dog { name } } }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RulePossibleFragmentSpreads)
	assert.Empty(t, errs)
}

func TestValidate_UnknownEnumValueIsRejected(t *testing.T) {
	const sdl = `
		enum Color { RED GREEN BLUE }
		type Query { byColor(c: Color!): String }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`{ byColor(c: PURPLE) }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RuleValuesOfCorrectType)
	require.NotEmpty(t, errs)
}

func TestValidate_IntLiteralForStringArgumentIsRejected(t *testing.T) {
	const sdl = `type Query { greet(name: String!): String }`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`{ greet(name: 5) }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RuleValuesOfCorrectType)
	require.NotEmpty(t, errs)
}

func TestValidate_DuplicateInputObjectFieldIsRejected(t *testing.T) {
	const sdl = `
		input Filter { n: Int }
		type Query { search(f: Filter): String }
	`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`{ search(f: {n: 1, n: 2}) }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RuleUniqueInputFieldNames)
	require.NotEmpty(t, errs)
}

func TestValidate_NonNullVariableForNullableArgIsValid(t *testing.T) {
	const sdl = `type Query { greet(name: String): String }`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`query($name: String!) { greet(name: $name) }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RuleVariablesInAllowedPosition)
	assert.Empty(t, errs)
}

func TestValidate_NullableVariableForNonNullArgWithoutDefaultIsRejected(t *testing.T) {
	const sdl = `type Query { greet(name: String!): String }`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`query($name: String) { greet(name: $name) }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RuleVariablesInAllowedPosition)
	require.NotEmpty(t, errs)
}

func TestValidate_NullableVariableWithDefaultForNonNullArgIsValid(t *testing.T) {
	const sdl = `type Query { greet(name: String!): String }`
	doc, perr := parser.Parse(sdl)
	require.Nil(t, perr)
	s, err := schemabuild.Build(doc)
	require.NoError(t, err)

	q, perr := parser.Parse(`query($name: String = "x") { greet(name: $name) }`)
	require.Nil(t, perr)

	errs := validator.Validate(s, q, validator.RuleVariablesInAllowedPosition)
	assert.Empty(t, errs)
}
