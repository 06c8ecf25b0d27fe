package schemabuild

import (
	"strings"

	"github.com/coregraph/graphql/schema"
)

// validate runs the structural schema-validity checks spec §5.8
// requires before a Schema is usable: every composite type has at
// least one field, every union has at least one member, every enum
// has at least one value, and every object honestly implements the
// interfaces it declares.
func (b *builder) validate() {
	for _, name := range b.schema.TypeOrder {
		switch t := b.schema.TypeByName(name).(type) {
		case *schema.Object:
			if t.Fields.Len() == 0 {
				b.addErr("Type %q must define one or more fields.", t.Name)
			}
			for _, iface := range t.Interfaces {
				b.checkImplements(t, iface)
			}
		case *schema.Interface:
			if t.Fields.Len() == 0 {
				b.addErr("Interface %q must define one or more fields.", t.Name)
			}
		case *schema.Union:
			if len(t.Types) == 0 {
				b.addErr("Union %q must define one or more member types.", t.Name)
			}
		case *schema.Enum:
			if len(t.Values) == 0 {
				b.addErr("Enum %q must define one or more values.", t.Name)
			}
		case *schema.InputObject:
			if len(t.FieldOrder) == 0 {
				b.addErr("Input object %q must define one or more fields.", t.Name)
			}
		}
	}
	b.checkInputObjectCycles()
}

// checkInputObjectCycles rejects an input-object field graph
// containing a cycle built entirely of unbreakable edges -- a
// required (non-null, no default) field pointing directly at another
// input object, never through a List. Such a type could never be
// instantiated: every attempt to supply a value recurses forever
// (spec §3 invariant vii).
func (b *builder) checkInputObjectCycles() {
	const (
		white = iota
		gray
		black
	)
	color := make(map[string]int)
	var path []string
	reported := make(map[string]bool)

	var visit func(name string)
	visit = func(name string) {
		color[name] = gray
		path = append(path, name)
		if io, ok := b.schema.TypeByName(name).(*schema.InputObject); ok {
			for _, fname := range io.FieldOrder {
				target, unbreakable := requiredInputObjectEdge(io.Fields[fname])
				if !unbreakable {
					continue
				}
				switch color[target.Name] {
				case white:
					visit(target.Name)
				case gray:
					if !reported[target.Name] {
						reported[target.Name] = true
						cycle := append(cyclePath(path, target.Name), target.Name)
						b.addErr("Input object %q has a non-null cycle with no breakable edge: %s.",
							target.Name, strings.Join(cycle, " -> "))
					}
				}
			}
		}
		path = path[:len(path)-1]
		color[name] = black
	}

	for _, name := range b.schema.TypeOrder {
		if _, ok := b.schema.TypeByName(name).(*schema.InputObject); ok && color[name] == white {
			visit(name)
		}
	}
}

// cyclePath returns the suffix of path starting at start, copied so
// the caller may safely mutate the original slice afterward.
func cyclePath(path []string, start string) []string {
	for i, n := range path {
		if n == start {
			out := make([]string, len(path)-i)
			copy(out, path[i:])
			return out
		}
	}
	return append([]string(nil), path...)
}

// requiredInputObjectEdge reports whether f is an unbreakable edge
// straight to another input object: non-null, with no default value,
// and not boxed in a List (a list can always be empty, so it never
// forces infinite nesting).
func requiredInputObjectEdge(f *schema.InputField) (*schema.InputObject, bool) {
	if f == nil || f.HasDefault {
		return nil, false
	}
	nn, ok := f.Type.(*schema.NonNull)
	if !ok {
		return nil, false
	}
	io, ok := nn.Type.(*schema.InputObject)
	if !ok {
		return nil, false
	}
	return io, true
}

// checkImplements enforces that obj's fields are a superset of
// iface's, with covariant return types for object fields (spec
// §5.3's interface-conformance rule).
func (b *builder) checkImplements(obj *schema.Object, iface *schema.Interface) {
	for _, name := range iface.Fields.FieldOrder {
		ifaceField, _ := iface.Fields.Get(name)
		objField, ok := obj.Fields.Get(name)
		if !ok {
			b.addErr("Type %q must implement field %q from interface %q.", obj.Name, name, iface.Name)
			continue
		}
		if !isValidImplementationType(objField.Type, ifaceField.Type) {
			b.addErr("Type %q field %q has type %q, not compatible with interface %q's %q.",
				obj.Name, name, objField.Type.String(), iface.Name, ifaceField.Type.String())
		}
	}
}

// isValidImplementationType reports whether sub may stand in for
// super in an interface's field signature: identical, a NonNull
// wrapping the expected type, a covariant object/interface/union
// narrowing, or element-wise covariant inside matching List wrappers.
func isValidImplementationType(sub, super schema.Type) bool {
	if subNN, ok := sub.(*schema.NonNull); ok {
		if superNN, ok := super.(*schema.NonNull); ok {
			return isValidImplementationType(subNN.Type, superNN.Type)
		}
		return isValidImplementationType(subNN.Type, super)
	}
	if subList, ok := sub.(*schema.List); ok {
		superList, ok := super.(*schema.List)
		if !ok {
			return false
		}
		return isValidImplementationType(subList.Type, superList.Type)
	}
	if sub == super {
		return true
	}
	subObj, subIsObj := sub.(*schema.Object)
	switch superT := super.(type) {
	case *schema.Interface:
		if !subIsObj {
			return false
		}
		for _, p := range superT.PossibleTypes {
			if p == subObj {
				return true
			}
		}
	case *schema.Union:
		if !subIsObj {
			return false
		}
		for _, p := range superT.Types {
			if p == subObj {
				return true
			}
		}
	}
	return false
}
