// Package schema is the materialized, resolved type system (spec
// §5): the product of building an SDL document, as opposed to
// package ast's unresolved syntax tree. It is grounded on the
// teacher's flat type.go/definitions.go, generalized to carry
// descriptions, deprecation, and applied directives end to end.
package schema

import (
	"context"
	"fmt"
)

// TypeResolver picks the concrete Object type backing a value
// returned for an abstract (Interface/Union) position (spec §4.7
// step 5's "resolve_type callback"). Returning nil tells the
// executor to fall back to scanning PossibleTypes for an assignable
// match (spec §4.7's is_type_of-free assignability check).
type TypeResolver func(ctx context.Context, value interface{}) *Object

// Type is the root of the schema-level type sum (Scalar, Object,
// Interface, Union, Enum, InputObject, List, NonNull).
type Type interface {
	fmt.Stringer
	isType()
}

// NamedType is the subset of Type that carries a name in the
// type system (everything except List and NonNull).
type NamedType interface {
	Type
	TypeName() string
	Description() string
}

// Scalar is a leaf type with custom serialize/parse behavior (spec
// §5.1). Built-in scalars (Int, Float, String, Boolean, ID) and
// user-defined custom scalars (package scalars) share this shape.
type Scalar struct {
	Name       string
	Desc       string
	Directives []*Directive
	Serialize  func(interface{}) (interface{}, error)
	ParseValue func(interface{}) (interface{}, error)
}

func (s *Scalar) String() string      { return s.Name }
func (s *Scalar) isType()             {}
func (s *Scalar) TypeName() string    { return s.Name }
func (s *Scalar) Description() string { return s.Desc }

// Object is an object type: a name, the interfaces it implements,
// and its fields (spec §5.2).
type Object struct {
	Name       string
	Desc       string
	Interfaces []*Interface
	Fields     FieldMap
	Directives []*Directive
	GoName     string
}

func (o *Object) String() string      { return o.Name }
func (o *Object) isType()             {}
func (o *Object) TypeName() string    { return o.Name }
func (o *Object) Description() string { return o.Desc }

// Interface describes fields common to a set of possible object
// types (spec §5.3).
type Interface struct {
	Name       string
	Desc       string
	Interfaces []*Interface
	Fields     FieldMap
	Directives []*Directive
	// PossibleTypes is populated by the builder: every Object that
	// declares this interface in its Interfaces list.
	PossibleTypes []*Object
	ResolveType   TypeResolver
}

func (i *Interface) String() string      { return i.Name }
func (i *Interface) isType()              {}
func (i *Interface) TypeName() string     { return i.Name }
func (i *Interface) Description() string  { return i.Desc }

// Union is one of a fixed set of Object types (spec §5.4).
type Union struct {
	Name        string
	Desc        string
	Types       []*Object
	Directives  []*Directive
	ResolveType TypeResolver
}

func (u *Union) String() string      { return u.Name }
func (u *Union) isType()              {}
func (u *Union) TypeName() string     { return u.Name }
func (u *Union) Description() string  { return u.Desc }

// EnumValue is one member of an Enum, with an optional distinct
// internal value (defaults to its own Name) and deprecation.
type EnumValue struct {
	Name             string
	Value            interface{}
	Desc             string
	Directives       []*Directive
	DeprecationReason string
}

// Enum is a closed set of named values, serialized as strings on the
// wire (spec §5.5).
type Enum struct {
	Name       string
	Desc       string
	Values     []*EnumValue
	Directives []*Directive
}

func (e *Enum) String() string      { return e.Name }
func (e *Enum) isType()              {}
func (e *Enum) TypeName() string     { return e.Name }
func (e *Enum) Description() string  { return e.Desc }

// ValueByName looks up one of the enum's values by its GraphQL name.
func (e *Enum) ValueByName(name string) *EnumValue {
	for _, v := range e.Values {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// InputField is one field of an InputObject.
type InputField struct {
	Name         string
	Type         Type
	DefaultValue interface{}
	HasDefault   bool
	Desc         string
	Directives   []*Directive
}

// InputObject is a structured collection of input fields usable as
// an argument or variable type (spec §5.6).
type InputObject struct {
	Name       string
	Desc       string
	Fields     map[string]*InputField
	FieldOrder []string
	Directives []*Directive
	GoName     string
}

func (i *InputObject) String() string      { return i.Name }
func (i *InputObject) isType()              {}
func (i *InputObject) TypeName() string     { return i.Name }
func (i *InputObject) Description() string  { return i.Desc }

// List is `[T]`: a list of another type, itself possibly wrapped in
// NonNull.
type List struct {
	Type Type
}

func (l *List) String() string { return "[" + l.Type.String() + "]" }
func (l *List) isType()         {}

// NonNull is `T!`: its wrapped Type must never be Null or missing.
type NonNull struct {
	Type Type
}

func (n *NonNull) String() string { return n.Type.String() + "!" }
func (n *NonNull) isType()         {}

var (
	_ NamedType = (*Scalar)(nil)
	_ NamedType = (*Object)(nil)
	_ NamedType = (*Interface)(nil)
	_ NamedType = (*Union)(nil)
	_ NamedType = (*Enum)(nil)
	_ NamedType = (*InputObject)(nil)
	_ Type      = (*List)(nil)
	_ Type      = (*NonNull)(nil)
)

// NamedOf unwraps List/NonNull wrappers down to the underlying named
// type, e.g. `[[String!]!]` -> the String scalar.
func NamedOf(t Type) NamedType {
	for {
		switch v := t.(type) {
		case *List:
			t = v.Type
		case *NonNull:
			t = v.Type
		case NamedType:
			return v
		default:
			return nil
		}
	}
}

// IsNonNull reports whether t is a NonNull wrapper.
func IsNonNull(t Type) bool {
	_, ok := t.(*NonNull)
	return ok
}

// IsComposite reports whether t's named type is Object, Interface,
// or Union -- the kinds that carry selection sets (spec §5.9).
func IsComposite(t Type) bool {
	switch NamedOf(t).(type) {
	case *Object, *Interface, *Union:
		return true
	}
	return false
}

// IsInputType reports whether t's named type is legal in an input
// position: Scalar, Enum, or InputObject.
func IsInputType(t Type) bool {
	switch v := t.(type) {
	case *List:
		return IsInputType(v.Type)
	case *NonNull:
		return IsInputType(v.Type)
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

// IsOutputType reports whether t's named type is legal in a field's
// return position: Scalar, Object, Interface, Union, or Enum.
func IsOutputType(t Type) bool {
	switch v := t.(type) {
	case *List:
		return IsOutputType(v.Type)
	case *NonNull:
		return IsOutputType(v.Type)
	case *Scalar, *Object, *Interface, *Union, *Enum:
		return true
	}
	return false
}
