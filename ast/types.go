package ast

import "github.com/coregraph/graphql/graphqlerr"

// Type is the sum type of type references as they appear in the
// grammar: a bare name, a list, or a non-null wrapper (spec §3
// "Types"). It is distinct from package schema's materialized type
// system -- these nodes are unresolved names until the builder
// (package schemabuild) looks them up.
type Type interface {
	Node
	isTypeNode()
	String() string
}

// NamedType is a bare type reference, e.g. `String`.
type NamedType struct {
	Name *Name
	Loc  graphqlerr.Location
}

func (t *NamedType) Kind() Kind                    { return KindNamedType }
func (t *NamedType) Location() graphqlerr.Location { return t.Loc }
func (t *NamedType) isTypeNode()                   {}
func (t *NamedType) String() string                { return t.Name.Value }

// ListType is `[ Type ]`.
type ListType struct {
	Type Type
	Loc  graphqlerr.Location
}

func (t *ListType) Kind() Kind                    { return KindListType }
func (t *ListType) Location() graphqlerr.Location { return t.Loc }
func (t *ListType) isTypeNode()                   {}
func (t *ListType) String() string                { return "[" + t.Type.String() + "]" }

// NonNullType is `Type !`, where Type is itself Named or List (never
// another NonNull -- the grammar forbids `T!!`).
type NonNullType struct {
	Type Type
	Loc  graphqlerr.Location
}

func (t *NonNullType) Kind() Kind                    { return KindNonNull }
func (t *NonNullType) Location() graphqlerr.Location { return t.Loc }
func (t *NonNullType) isTypeNode()                   {}
func (t *NonNullType) String() string                { return t.Type.String() + "!" }

var (
	_ Type = (*NamedType)(nil)
	_ Type = (*ListType)(nil)
	_ Type = (*NonNullType)(nil)
)
