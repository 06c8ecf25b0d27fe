package ast

import "github.com/coregraph/graphql/graphqlerr"

// Argument is a `name: Value` pair on a field, directive, or
// directive-definition application.
type Argument struct {
	Name  *Name
	Value Value
	Loc   graphqlerr.Location
}

func (a *Argument) Kind() Kind                    { return KindArgument }
func (a *Argument) Location() graphqlerr.Location { return a.Loc }

// Directive is an `@name(args)` application. It appears both in
// executable documents (on fields, fragments, variable definitions)
// and in SDL (on type-system definitions), so it lives alongside the
// other shared executable nodes rather than in typesystem.go.
type Directive struct {
	Name      *Name
	Arguments []*Argument
	Loc       graphqlerr.Location
}

func (d *Directive) Kind() Kind                    { return KindDirective }
func (d *Directive) Location() graphqlerr.Location { return d.Loc }

// VariableDefinition declares `$name: Type = default` on an
// operation, with directives on the declaration itself (graphql-spec
// PR 510, spec §4.2).
type VariableDefinition struct {
	Variable     *Variable
	Type         Type
	DefaultValue Value
	Directives   []*Directive
	Loc          graphqlerr.Location
}

func (v *VariableDefinition) Kind() Kind                    { return KindVarDef }
func (v *VariableDefinition) Location() graphqlerr.Location { return v.Loc }

// Selection is one member of a SelectionSet: a Field, a
// FragmentSpread, or an InlineFragment.
type Selection interface {
	Node
	isSelection()
}

// SelectionSet is the brace-delimited body following a composite
// field or fragment/operation.
type SelectionSet struct {
	Selections []Selection
	Loc        graphqlerr.Location
}

func (s *SelectionSet) Kind() Kind                    { return KindSelSet }
func (s *SelectionSet) Location() graphqlerr.Location { return s.Loc }

// Field is a single field selection, optionally aliased, with
// arguments, directives, and (for composite types) a nested
// SelectionSet.
type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
	Loc          graphqlerr.Location
}

func (f *Field) Kind() Kind                    { return KindField }
func (f *Field) Location() graphqlerr.Location { return f.Loc }
func (f *Field) isSelection()                  {}

// ResponseKey is the alias if present, else the field name -- the
// key under which this field's result appears in the response.
func (f *Field) ResponseKey() string {
	if f.Alias != nil {
		return f.Alias.Value
	}
	return f.Name.Value
}

// FragmentSpread is a `...Name` reference to a named fragment.
type FragmentSpread struct {
	Name       *Name
	Directives []*Directive
	Loc        graphqlerr.Location
}

func (f *FragmentSpread) Kind() Kind                    { return KindFragSpr }
func (f *FragmentSpread) Location() graphqlerr.Location { return f.Loc }
func (f *FragmentSpread) isSelection()                  {}

// InlineFragment is a `... [on Type] { ... }` fragment with no name.
type InlineFragment struct {
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Loc           graphqlerr.Location
}

func (f *InlineFragment) Kind() Kind                    { return KindInlineFrg }
func (f *InlineFragment) Location() graphqlerr.Location { return f.Loc }
func (f *InlineFragment) isSelection()                  {}

// FragmentDefinition declares a reusable named fragment.
type FragmentDefinition struct {
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Loc           graphqlerr.Location
}

func (f *FragmentDefinition) Kind() Kind                    { return KindFragDef }
func (f *FragmentDefinition) Location() graphqlerr.Location { return f.Loc }
func (f *FragmentDefinition) isDefinition()                 {}
func (f *FragmentDefinition) isExecutableDefinition()       {}

// OperationDefinition is `query|mutation|subscription [Name] (...) { ... }`,
// or the shorthand anonymous-query form (Operation == Query, Name ==
// nil, VariableDefinitions == nil).
type OperationDefinition struct {
	Operation           OperationType
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
	Loc                 graphqlerr.Location
}

func (o *OperationDefinition) Kind() Kind                    { return KindOperation }
func (o *OperationDefinition) Location() graphqlerr.Location { return o.Loc }
func (o *OperationDefinition) isDefinition()                 {}
func (o *OperationDefinition) isExecutableDefinition()       {}

var (
	_ ExecutableDefinition = (*OperationDefinition)(nil)
	_ ExecutableDefinition = (*FragmentDefinition)(nil)
	_ Selection            = (*Field)(nil)
	_ Selection            = (*FragmentSpread)(nil)
	_ Selection            = (*InlineFragment)(nil)
)
