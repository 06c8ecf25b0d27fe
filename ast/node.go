// Package ast defines the typed abstract syntax tree produced by
// package parser for both the GraphQL query language and the schema
// definition language (spec §3, §4.1-§4.3).
package ast

import "github.com/coregraph/graphql/graphqlerr"

// Kind tags every concrete node type with its grammar production
// name, mirroring the teacher's internal/kinds package.
type Kind string

const (
	KindDocument  Kind = "Document"
	KindOperation Kind = "OperationDefinition"
	KindVarDef    Kind = "VariableDefinition"
	KindSelSet    Kind = "SelectionSet"
	KindField     Kind = "Field"
	KindFragSpr   Kind = "FragmentSpread"
	KindInlineFrg Kind = "InlineFragment"
	KindFragDef   Kind = "FragmentDefinition"

	KindIntValue     Kind = "IntValue"
	KindFloatValue   Kind = "FloatValue"
	KindStringValue  Kind = "StringValue"
	KindBooleanValue Kind = "BooleanValue"
	KindNullValue    Kind = "NullValue"
	KindEnumValue    Kind = "EnumValue"
	KindListValue    Kind = "ListValue"
	KindObjectValue  Kind = "ObjectValue"
	KindObjectField  Kind = "ObjectField"
	KindVariable     Kind = "Variable"

	KindNamedType  Kind = "NamedType"
	KindListType   Kind = "ListType"
	KindNonNull    Kind = "NonNullType"

	KindArgument  Kind = "Argument"
	KindDirective Kind = "Directive"

	KindSchemaDef      Kind = "SchemaDefinition"
	KindScalarDef      Kind = "ScalarTypeDefinition"
	KindObjectDef      Kind = "ObjectTypeDefinition"
	KindInterfaceDef   Kind = "InterfaceTypeDefinition"
	KindUnionDef       Kind = "UnionTypeDefinition"
	KindEnumDef        Kind = "EnumTypeDefinition"
	KindEnumValueDef   Kind = "EnumValueDefinition"
	KindInputObjectDef Kind = "InputObjectTypeDefinition"
	KindFieldDef       Kind = "FieldDefinition"
	KindInputValueDef  Kind = "InputValueDefinition"
	KindDirectiveDef   Kind = "DirectiveDefinition"
	KindOpTypeDef      Kind = "OperationTypeDefinition"

	KindSchemaExt      Kind = "SchemaExtension"
	KindScalarExt      Kind = "ScalarTypeExtension"
	KindObjectExt      Kind = "ObjectTypeExtension"
	KindInterfaceExt   Kind = "InterfaceTypeExtension"
	KindUnionExt       Kind = "UnionTypeExtension"
	KindEnumExt        Kind = "EnumTypeExtension"
	KindInputObjectExt Kind = "InputObjectTypeExtension"
)

// Node is the root of the AST sum type. Every concrete node
// implements Kind (its grammar tag, used by visitors to dispatch
// without a type switch) and Location (its source position, absent
// -- zero value -- when parsed with NoLocation).
type Node interface {
	Kind() Kind
	Location() graphqlerr.Location
}

// Name is a NAME token used as an identifier; shared by every node
// that carries one (operations, fields, types, arguments...).
type Name struct {
	Value string
	Loc   graphqlerr.Location
}

func (n *Name) Kind() Kind                    { return "Name" }
func (n *Name) Location() graphqlerr.Location { return n.Loc }

// OperationType distinguishes the three root operation kinds.
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// Document is the root node produced by a successful parse (spec §3).
type Document struct {
	Definitions []Definition
	Loc         graphqlerr.Location
}

func (d *Document) Kind() Kind                    { return KindDocument }
func (d *Document) Location() graphqlerr.Location { return d.Loc }

// Definition is any top-level member of a Document: an executable
// definition (operation/fragment) or a type-system definition/
// extension (SDL).
type Definition interface {
	Node
	isDefinition()
}

// ExecutableDefinition is the subset of Definition that can appear in
// a query-language document.
type ExecutableDefinition interface {
	Definition
	isExecutableDefinition()
}

// TypeSystemDefinition is the subset of Definition that can appear in
// an SDL document.
type TypeSystemDefinition interface {
	Definition
	isTypeSystemDefinition()
}
