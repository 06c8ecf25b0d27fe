package schemabuild

import "github.com/coregraph/graphql/schema"

// DirectiveResult is returned by a DirectiveImplementation hook to
// steer the builder (spec §4.4 step 5).
type DirectiveResult int

const (
	// Keep leaves the element exactly as phase2Fill built it.
	Keep DirectiveResult = iota
	// Remove drops the element the hook was invoked for. Removing a
	// type also removes whatever in the schema would otherwise
	// dangle-reference it: fields typed with it, union members,
	// interfaces an object no longer implements.
	Remove
)

// DirectiveImplementation exposes one hook per schema location a
// directive may be applied to (spec §4.4 step 5's on_object,
// on_field, on_argument, on_interface, on_union, on_enum,
// on_enum_value, on_input_object, on_input_field, on_scalar,
// on_schema). A directive with no hook for a location it's applied
// at is simply not run there -- applying it still resolved into the
// element's Directives list during phase2Fill.
type DirectiveImplementation struct {
	OnSchema      func(args map[string]interface{}, s *schema.Schema) DirectiveResult
	OnScalar      func(args map[string]interface{}, t *schema.Scalar) DirectiveResult
	OnObject      func(args map[string]interface{}, t *schema.Object) DirectiveResult
	OnFieldDef    func(args map[string]interface{}, parent schema.NamedType, f *schema.Field) DirectiveResult
	OnArgument    func(args map[string]interface{}, a *schema.Argument) DirectiveResult
	OnInterface   func(args map[string]interface{}, t *schema.Interface) DirectiveResult
	OnUnion       func(args map[string]interface{}, t *schema.Union) DirectiveResult
	OnEnum        func(args map[string]interface{}, t *schema.Enum) DirectiveResult
	OnEnumValue   func(args map[string]interface{}, ev *schema.EnumValue) DirectiveResult
	OnInputObject func(args map[string]interface{}, t *schema.InputObject) DirectiveResult
	OnInputField  func(args map[string]interface{}, f *schema.InputField) DirectiveResult
}

// applySchemaDirectives runs every registered directive implementation
// against its applications in the built schema, honors "remove"
// decisions, and then sweeps the schema for references left dangling
// by a removal. Types run in TypeOrder; within a type, fields and
// arguments run in declaration order (FieldOrder, ArgOrder); a repeatable
// directive applied more than once to the same element is invoked
// once per application, in the source order applyDirectives already
// resolved its Directives list into.
func (b *builder) applySchemaDirectives() {
	if len(b.schemaDirectives) == 0 {
		return
	}

	for _, d := range b.schema.Directives {
		b.runHook(d, func(impl DirectiveImplementation) DirectiveResult {
			if impl.OnSchema == nil {
				return Keep
			}
			return impl.OnSchema(d.Arguments, b.schema)
		})
	}

	removedTypes := make(map[string]bool)
	for _, name := range append([]string(nil), b.schema.TypeOrder...) {
		t := b.schema.TypeByName(name)
		if t == nil {
			continue
		}
		if b.applyTypeDirectives(t) == Remove {
			b.schema.RemoveType(name)
			removedTypes[name] = true
			continue
		}
		b.applyMemberDirectives(t)
	}

	b.sweepDanglingReferences(removedTypes)
}

// applyTypeDirectives runs the location-appropriate hook for each
// directive applied directly to t and reports Remove if any
// application asked to drop t itself.
func (b *builder) applyTypeDirectives(t schema.NamedType) DirectiveResult {
	switch v := t.(type) {
	case *schema.Scalar:
		return b.runEach(v.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
			if impl.OnScalar == nil {
				return Keep
			}
			return impl.OnScalar(d.Arguments, v)
		})
	case *schema.Object:
		return b.runEach(v.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
			if impl.OnObject == nil {
				return Keep
			}
			return impl.OnObject(d.Arguments, v)
		})
	case *schema.Interface:
		return b.runEach(v.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
			if impl.OnInterface == nil {
				return Keep
			}
			return impl.OnInterface(d.Arguments, v)
		})
	case *schema.Union:
		return b.runEach(v.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
			if impl.OnUnion == nil {
				return Keep
			}
			return impl.OnUnion(d.Arguments, v)
		})
	case *schema.Enum:
		return b.runEach(v.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
			if impl.OnEnum == nil {
				return Keep
			}
			return impl.OnEnum(d.Arguments, v)
		})
	case *schema.InputObject:
		return b.runEach(v.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
			if impl.OnInputObject == nil {
				return Keep
			}
			return impl.OnInputObject(d.Arguments, v)
		})
	}
	return Keep
}

// applyMemberDirectives runs field/argument/enum-value/input-field
// hooks for a type that survived applyTypeDirectives, removing any
// member whose own directive application asked to drop it.
func (b *builder) applyMemberDirectives(t schema.NamedType) {
	switch v := t.(type) {
	case *schema.Object:
		b.applyFieldMapDirectives(v, &v.Fields)
	case *schema.Interface:
		b.applyFieldMapDirectives(v, &v.Fields)
	case *schema.Enum:
		kept := v.Values[:0]
		for _, ev := range v.Values {
			if b.runEach(ev.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
				if impl.OnEnumValue == nil {
					return Keep
				}
				return impl.OnEnumValue(d.Arguments, ev)
			}) == Remove {
				continue
			}
			kept = append(kept, ev)
		}
		v.Values = kept
	case *schema.InputObject:
		for _, name := range append([]string(nil), v.FieldOrder...) {
			f := v.Fields[name]
			if b.runEach(f.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
				if impl.OnInputField == nil {
					return Keep
				}
				return impl.OnInputField(d.Arguments, f)
			}) == Remove {
				delete(v.Fields, name)
				v.FieldOrder = removeString(v.FieldOrder, name)
			}
		}
	}
}

func (b *builder) applyFieldMapDirectives(parent schema.NamedType, fields *schema.FieldMap) {
	for _, name := range append([]string(nil), fields.FieldOrder...) {
		f, _ := fields.Get(name)
		if f == nil {
			continue
		}
		if b.runEach(f.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
			if impl.OnFieldDef == nil {
				return Keep
			}
			return impl.OnFieldDef(d.Arguments, parent, f)
		}) == Remove {
			fields.Delete(name)
			continue
		}
		for _, argName := range append([]string(nil), f.ArgOrder...) {
			a := f.Args[argName]
			if b.runEach(a.Directives, func(impl DirectiveImplementation, d *schema.Directive) DirectiveResult {
				if impl.OnArgument == nil {
					return Keep
				}
				return impl.OnArgument(d.Arguments, a)
			}) == Remove {
				delete(f.Args, argName)
				f.ArgOrder = removeString(f.ArgOrder, argName)
			}
		}
	}
}

// runEach invokes fn once per directive in dirs, in order, stopping
// (and reporting Remove) as soon as one application asks to drop the
// element -- later applications on an already-removed element would
// be meaningless.
func (b *builder) runEach(dirs []*schema.Directive, fn func(DirectiveImplementation, *schema.Directive) DirectiveResult) DirectiveResult {
	result := Keep
	for _, d := range dirs {
		b.runHook(d, func(impl DirectiveImplementation) DirectiveResult {
			r := fn(impl, d)
			if r == Remove {
				result = Remove
			}
			return r
		})
		if result == Remove {
			break
		}
	}
	return result
}

func (b *builder) runHook(d *schema.Directive, fn func(DirectiveImplementation) DirectiveResult) {
	impl, ok := b.schemaDirectives[d.Name()]
	if !ok {
		return
	}
	fn(impl)
}

func removeString(ss []string, s string) []string {
	for i, v := range ss {
		if v == s {
			return append(ss[:i], ss[i+1:]...)
		}
	}
	return ss
}

// sweepDanglingReferences drops whatever a type removal left
// unresolvable: fields typed with a removed type, union members and
// interface-implements edges pointing at one, and any field argument
// or input-object field whose type still names one.
func (b *builder) sweepDanglingReferences(removed map[string]bool) {
	if len(removed) == 0 {
		return
	}
	refersToRemoved := func(t schema.Type) bool {
		named := schema.NamedOf(t)
		return named != nil && removed[named.TypeName()]
	}
	for _, name := range b.schema.TypeOrder {
		switch v := b.schema.TypeByName(name).(type) {
		case *schema.Object:
			b.pruneFields(&v.Fields, refersToRemoved)
			v.Interfaces = pruneInterfaces(v.Interfaces, removed)
		case *schema.Interface:
			b.pruneFields(&v.Fields, refersToRemoved)
			v.Interfaces = pruneInterfaces(v.Interfaces, removed)
			v.PossibleTypes = prunePossibleTypes(v.PossibleTypes, removed)
		case *schema.Union:
			var kept []*schema.Object
			for _, obj := range v.Types {
				if !removed[obj.Name] {
					kept = append(kept, obj)
				}
			}
			v.Types = kept
		case *schema.InputObject:
			for _, fname := range append([]string(nil), v.FieldOrder...) {
				f := v.Fields[fname]
				if refersToRemoved(f.Type) {
					delete(v.Fields, fname)
					v.FieldOrder = removeString(v.FieldOrder, fname)
				}
			}
		}
	}
}

func (b *builder) pruneFields(fields *schema.FieldMap, refersToRemoved func(schema.Type) bool) {
	for _, name := range append([]string(nil), fields.FieldOrder...) {
		f, _ := fields.Get(name)
		if f == nil {
			continue
		}
		if refersToRemoved(f.Type) {
			fields.Delete(name)
			continue
		}
		for argName, a := range f.Args {
			if refersToRemoved(a.Type) {
				delete(f.Args, argName)
				f.ArgOrder = removeString(f.ArgOrder, argName)
			}
		}
	}
}

func pruneInterfaces(ifaces []*schema.Interface, removed map[string]bool) []*schema.Interface {
	var kept []*schema.Interface
	for _, iface := range ifaces {
		if !removed[iface.Name] {
			kept = append(kept, iface)
		}
	}
	return kept
}

func prunePossibleTypes(objs []*schema.Object, removed map[string]bool) []*schema.Object {
	var kept []*schema.Object
	for _, obj := range objs {
		if !removed[obj.Name] {
			kept = append(kept, obj)
		}
	}
	return kept
}
