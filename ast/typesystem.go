package ast

import "github.com/coregraph/graphql/graphqlerr"

// Description is the optional string/block-string literal
// immediately preceding a type-system definition (graphql-spec PR
// 466, spec §6).
type Description struct {
	Value string
	Block bool
}

// InputValueDefinition backs both argument definitions and
// input-object field definitions -- the grammar production is
// shared, per spec §3's InputValue.
type InputValueDefinition struct {
	Description  *Description
	Name         *Name
	Type         Type
	DefaultValue Value
	Directives   []*Directive
	Loc          graphqlerr.Location
}

func (d *InputValueDefinition) Kind() Kind                    { return KindInputValueDef }
func (d *InputValueDefinition) Location() graphqlerr.Location { return d.Loc }

// FieldDefinition declares one field of an object or interface type.
type FieldDefinition struct {
	Description *Description
	Name        *Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
	Loc         graphqlerr.Location
}

func (d *FieldDefinition) Kind() Kind                    { return KindFieldDef }
func (d *FieldDefinition) Location() graphqlerr.Location { return d.Loc }

// OperationTypeDefinition is one `query: Type` / `mutation: Type` /
// `subscription: Type` line inside a `schema { ... }` block.
type OperationTypeDefinition struct {
	Operation OperationType
	Type      *NamedType
	Loc       graphqlerr.Location
}

func (d *OperationTypeDefinition) Kind() Kind                    { return KindOpTypeDef }
func (d *OperationTypeDefinition) Location() graphqlerr.Location { return d.Loc }

// SchemaDefinition declares the root operation types and any
// schema-level directives.
type SchemaDefinition struct {
	Description    *Description
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
	Loc            graphqlerr.Location
}

func (d *SchemaDefinition) Kind() Kind                    { return KindSchemaDef }
func (d *SchemaDefinition) Location() graphqlerr.Location { return d.Loc }
func (d *SchemaDefinition) isDefinition()                 {}
func (d *SchemaDefinition) isTypeSystemDefinition()       {}

// ScalarTypeDefinition declares a custom scalar.
type ScalarTypeDefinition struct {
	Description *Description
	Name        *Name
	Directives  []*Directive
	Loc         graphqlerr.Location
}

func (d *ScalarTypeDefinition) Kind() Kind                    { return KindScalarDef }
func (d *ScalarTypeDefinition) Location() graphqlerr.Location { return d.Loc }
func (d *ScalarTypeDefinition) isDefinition()                 {}
func (d *ScalarTypeDefinition) isTypeSystemDefinition()       {}

// ObjectTypeDefinition declares an object type, optionally
// implementing interfaces (graphql-spec PR 373 style `implements A & B`).
type ObjectTypeDefinition struct {
	Description *Description
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
	Loc         graphqlerr.Location
}

func (d *ObjectTypeDefinition) Kind() Kind                    { return KindObjectDef }
func (d *ObjectTypeDefinition) Location() graphqlerr.Location { return d.Loc }
func (d *ObjectTypeDefinition) isDefinition()                 {}
func (d *ObjectTypeDefinition) isTypeSystemDefinition()       {}

// InterfaceTypeDefinition declares an interface type; it may itself
// implement other interfaces (graphql-spec PR 373).
type InterfaceTypeDefinition struct {
	Description *Description
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
	Loc         graphqlerr.Location
}

func (d *InterfaceTypeDefinition) Kind() Kind                    { return KindInterfaceDef }
func (d *InterfaceTypeDefinition) Location() graphqlerr.Location { return d.Loc }
func (d *InterfaceTypeDefinition) isDefinition()                 {}
func (d *InterfaceTypeDefinition) isTypeSystemDefinition()       {}

// UnionTypeDefinition declares a union of object types.
type UnionTypeDefinition struct {
	Description *Description
	Name        *Name
	Directives  []*Directive
	Types       []*NamedType
	Loc         graphqlerr.Location
}

func (d *UnionTypeDefinition) Kind() Kind                    { return KindUnionDef }
func (d *UnionTypeDefinition) Location() graphqlerr.Location { return d.Loc }
func (d *UnionTypeDefinition) isDefinition()                 {}
func (d *UnionTypeDefinition) isTypeSystemDefinition()       {}

// EnumValueDefinition declares one member of an enum type.
type EnumValueDefinition struct {
	Description *Description
	Name        *Name
	Directives  []*Directive
	Loc         graphqlerr.Location
}

func (d *EnumValueDefinition) Kind() Kind                    { return KindEnumValueDef }
func (d *EnumValueDefinition) Location() graphqlerr.Location { return d.Loc }

// EnumTypeDefinition declares an enum type.
type EnumTypeDefinition struct {
	Description *Description
	Name        *Name
	Directives  []*Directive
	Values      []*EnumValueDefinition
	Loc         graphqlerr.Location
}

func (d *EnumTypeDefinition) Kind() Kind                    { return KindEnumDef }
func (d *EnumTypeDefinition) Location() graphqlerr.Location { return d.Loc }
func (d *EnumTypeDefinition) isDefinition()                 {}
func (d *EnumTypeDefinition) isTypeSystemDefinition()       {}

// InputObjectTypeDefinition declares an input object type.
type InputObjectTypeDefinition struct {
	Description *Description
	Name        *Name
	Directives  []*Directive
	Fields      []*InputValueDefinition
	Loc         graphqlerr.Location
}

func (d *InputObjectTypeDefinition) Kind() Kind                    { return KindInputObjectDef }
func (d *InputObjectTypeDefinition) Location() graphqlerr.Location { return d.Loc }
func (d *InputObjectTypeDefinition) isDefinition()                 {}
func (d *InputObjectTypeDefinition) isTypeSystemDefinition()       {}

// DirectiveDefinition declares a directive, its argument signature,
// its legal locations, and whether it may be applied more than once
// per location (graphql-spec PR 472 `repeatable`).
type DirectiveDefinition struct {
	Description *Description
	Name        *Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []*Name
	Loc         graphqlerr.Location
}

func (d *DirectiveDefinition) Kind() Kind                    { return KindDirectiveDef }
func (d *DirectiveDefinition) Location() graphqlerr.Location { return d.Loc }
func (d *DirectiveDefinition) isDefinition()                 {}
func (d *DirectiveDefinition) isTypeSystemDefinition()       {}

// --- Extensions --------------------------------------------------

// SchemaExtension adds operation types/directives to an existing
// schema definition.
type SchemaExtension struct {
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
	Loc            graphqlerr.Location
}

func (d *SchemaExtension) Kind() Kind                    { return KindSchemaExt }
func (d *SchemaExtension) Location() graphqlerr.Location { return d.Loc }
func (d *SchemaExtension) isDefinition()                 {}
func (d *SchemaExtension) isTypeSystemDefinition()       {}

// ScalarTypeExtension adds directives to an existing scalar.
type ScalarTypeExtension struct {
	Name       *Name
	Directives []*Directive
	Loc        graphqlerr.Location
}

func (d *ScalarTypeExtension) Kind() Kind                    { return KindScalarExt }
func (d *ScalarTypeExtension) Location() graphqlerr.Location { return d.Loc }
func (d *ScalarTypeExtension) isDefinition()                 {}
func (d *ScalarTypeExtension) isTypeSystemDefinition()       {}

// ObjectTypeExtension adds interfaces/directives/fields to an
// existing object type.
type ObjectTypeExtension struct {
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
	Loc        graphqlerr.Location
}

func (d *ObjectTypeExtension) Kind() Kind                    { return KindObjectExt }
func (d *ObjectTypeExtension) Location() graphqlerr.Location { return d.Loc }
func (d *ObjectTypeExtension) isDefinition()                 {}
func (d *ObjectTypeExtension) isTypeSystemDefinition()       {}

// InterfaceTypeExtension adds interfaces/directives/fields to an
// existing interface type.
type InterfaceTypeExtension struct {
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
	Loc        graphqlerr.Location
}

func (d *InterfaceTypeExtension) Kind() Kind                    { return KindInterfaceExt }
func (d *InterfaceTypeExtension) Location() graphqlerr.Location { return d.Loc }
func (d *InterfaceTypeExtension) isDefinition()                 {}
func (d *InterfaceTypeExtension) isTypeSystemDefinition()       {}

// UnionTypeExtension adds member types/directives to an existing
// union.
type UnionTypeExtension struct {
	Name       *Name
	Directives []*Directive
	Types      []*NamedType
	Loc        graphqlerr.Location
}

func (d *UnionTypeExtension) Kind() Kind                    { return KindUnionExt }
func (d *UnionTypeExtension) Location() graphqlerr.Location { return d.Loc }
func (d *UnionTypeExtension) isDefinition()                 {}
func (d *UnionTypeExtension) isTypeSystemDefinition()       {}

// EnumTypeExtension adds values/directives to an existing enum.
type EnumTypeExtension struct {
	Name       *Name
	Directives []*Directive
	Values     []*EnumValueDefinition
	Loc        graphqlerr.Location
}

func (d *EnumTypeExtension) Kind() Kind                    { return KindEnumExt }
func (d *EnumTypeExtension) Location() graphqlerr.Location { return d.Loc }
func (d *EnumTypeExtension) isDefinition()                 {}
func (d *EnumTypeExtension) isTypeSystemDefinition()       {}

// InputObjectTypeExtension adds fields/directives to an existing
// input object type.
type InputObjectTypeExtension struct {
	Name       *Name
	Directives []*Directive
	Fields     []*InputValueDefinition
	Loc        graphqlerr.Location
}

func (d *InputObjectTypeExtension) Kind() Kind                    { return KindInputObjectExt }
func (d *InputObjectTypeExtension) Location() graphqlerr.Location { return d.Loc }
func (d *InputObjectTypeExtension) isDefinition()                 {}
func (d *InputObjectTypeExtension) isTypeSystemDefinition()       {}

var (
	_ TypeSystemDefinition = (*SchemaDefinition)(nil)
	_ TypeSystemDefinition = (*ScalarTypeDefinition)(nil)
	_ TypeSystemDefinition = (*ObjectTypeDefinition)(nil)
	_ TypeSystemDefinition = (*InterfaceTypeDefinition)(nil)
	_ TypeSystemDefinition = (*UnionTypeDefinition)(nil)
	_ TypeSystemDefinition = (*EnumTypeDefinition)(nil)
	_ TypeSystemDefinition = (*InputObjectTypeDefinition)(nil)
	_ TypeSystemDefinition = (*DirectiveDefinition)(nil)
	_ TypeSystemDefinition = (*SchemaExtension)(nil)
	_ TypeSystemDefinition = (*ScalarTypeExtension)(nil)
	_ TypeSystemDefinition = (*ObjectTypeExtension)(nil)
	_ TypeSystemDefinition = (*InterfaceTypeExtension)(nil)
	_ TypeSystemDefinition = (*UnionTypeExtension)(nil)
	_ TypeSystemDefinition = (*EnumTypeExtension)(nil)
	_ TypeSystemDefinition = (*InputObjectTypeExtension)(nil)
)
