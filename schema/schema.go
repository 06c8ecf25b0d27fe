package schema

// Schema is the fully built, validated type system: root operation
// types plus every named type and directive reachable from them
// (spec §5.8). It is produced by package schemabuild and consumed
// read-only by package validator and package executor.
type Schema struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object
	Desc         string
	Directives   []*Directive

	Types          map[string]NamedType
	TypeOrder      []string
	DirectiveDefs  map[string]*DirectiveDefinition
	DirectiveOrder []string
}

// New returns an empty Schema with initialized maps, ready for the
// builder to populate.
func New() *Schema {
	return &Schema{
		Types:         make(map[string]NamedType),
		DirectiveDefs: make(map[string]*DirectiveDefinition),
	}
}

// AddType registers t under its name, preserving first-seen order.
func (s *Schema) AddType(t NamedType) {
	name := t.TypeName()
	if _, exists := s.Types[name]; !exists {
		s.TypeOrder = append(s.TypeOrder, name)
	}
	s.Types[name] = t
}

// AddDirectiveDef registers a directive definition under its name.
func (s *Schema) AddDirectiveDef(d *DirectiveDefinition) {
	if _, exists := s.DirectiveDefs[d.Name]; !exists {
		s.DirectiveOrder = append(s.DirectiveOrder, d.Name)
	}
	s.DirectiveDefs[d.Name] = d
}

// RemoveType drops name from Types and TypeOrder. Used by the schema
// builder's directive-implementation "remove" sentinel (spec §4.4
// step 5); callers are responsible for cleaning up any dangling
// reference the removal leaves behind elsewhere in the schema.
func (s *Schema) RemoveType(name string) {
	if _, ok := s.Types[name]; !ok {
		return
	}
	delete(s.Types, name)
	for i, n := range s.TypeOrder {
		if n == name {
			s.TypeOrder = append(s.TypeOrder[:i], s.TypeOrder[i+1:]...)
			break
		}
	}
}

// TypeByName looks up a named type, or nil.
func (s *Schema) TypeByName(name string) NamedType {
	return s.Types[name]
}

// DirectiveByName looks up a directive definition, or nil.
func (s *Schema) DirectiveByName(name string) *DirectiveDefinition {
	return s.DirectiveDefs[name]
}

// IsSubType reports whether possible is a valid runtime type for
// abstract (an Interface or Union), per spec §5.9's abstract-type
// membership rule.
func (s *Schema) IsSubType(abstract NamedType, possible *Object) bool {
	switch a := abstract.(type) {
	case *Interface:
		for _, p := range a.PossibleTypes {
			if p == possible {
				return true
			}
		}
		return false
	case *Union:
		for _, t := range a.Types {
			if t == possible {
				return true
			}
		}
		return false
	}
	return false
}

// PossibleTypes enumerates the concrete Object types that satisfy an
// abstract type (Interface or Union), or a one-element slice
// containing t itself if t is already an Object.
func (s *Schema) PossibleTypes(t NamedType) []*Object {
	switch v := t.(type) {
	case *Object:
		return []*Object{v}
	case *Interface:
		return v.PossibleTypes
	case *Union:
		return v.Types
	}
	return nil
}
