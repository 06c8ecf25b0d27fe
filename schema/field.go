package schema

import "context"

// Resolver produces a field's value. It receives the already-coerced
// argument map and the parent's resolved value; resolver dispatch
// concurrency is governed by the executor's package runtime, not by
// this signature (spec §7.3). A panic inside a Resolver is recovered
// by the executor and reported as a KindResolver error at the
// field's path, the same contract as the teacher's FieldResolve.
type Resolver func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error)

// SubscribeResolver produces the source event stream for a
// subscription's single root field (spec §4.7 "subscription...root
// field is resolved once to produce a source stream"). Each value it
// emits drives one execution of the operation's selection set, using
// that value as the source for the normal Resolver.
type SubscribeResolver func(ctx context.Context, source interface{}, args map[string]interface{}) (<-chan interface{}, error)

// Field is one member of an Object's or Interface's field map: its
// return type, its argument signature, its resolver, and the
// metadata (description, deprecation, directives) surfaced by
// introspection.
type Field struct {
	Name              string
	Type              Type
	Args              map[string]*Argument
	ArgOrder          []string
	Resolve           Resolver
	Subscribe         SubscribeResolver
	Desc              string
	DeprecationReason string
	Directives        []*Directive
	// GoMethod is the Go name (schema.GoName of the field name) under
	// which the executor's default resolver looks up an exported
	// struct field or method when the field has no Resolve.
	GoMethod string
}

// IsDeprecated reports whether the field carries a deprecation
// reason (spec §5.2's `@deprecated`).
func (f *Field) IsDeprecated() bool { return f.DeprecationReason != "" }

// FieldMap is an Object's or Interface's fields, keyed by GraphQL
// name, with FieldOrder preserving SDL declaration order for
// deterministic printing and introspection (spec §6's print_schema).
type FieldMap struct {
	byName     map[string]*Field
	FieldOrder []string
}

// NewFieldMap returns an empty, ready-to-use FieldMap.
func NewFieldMap() FieldMap {
	return FieldMap{byName: make(map[string]*Field)}
}

// Set registers f under its Name, appending to FieldOrder the first
// time a given name is set.
func (m *FieldMap) Set(f *Field) {
	if m.byName == nil {
		m.byName = make(map[string]*Field)
	}
	if _, exists := m.byName[f.Name]; !exists {
		m.FieldOrder = append(m.FieldOrder, f.Name)
	}
	m.byName[f.Name] = f
}

// Get looks up a field by name.
func (m FieldMap) Get(name string) (*Field, bool) {
	f, ok := m.byName[name]
	return f, ok
}

// Len reports the number of fields.
func (m FieldMap) Len() int { return len(m.byName) }

// Delete removes name from the map and from FieldOrder, if present.
func (m *FieldMap) Delete(name string) {
	if _, ok := m.byName[name]; !ok {
		return
	}
	delete(m.byName, name)
	for i, n := range m.FieldOrder {
		if n == name {
			m.FieldOrder = append(m.FieldOrder[:i], m.FieldOrder[i+1:]...)
			break
		}
	}
}

// Argument is one entry of a Field's or Directive's argument
// signature.
type Argument struct {
	Name         string
	Type         Type
	DefaultValue interface{}
	HasDefault   bool
	Desc         string
	Directives   []*Directive
}
