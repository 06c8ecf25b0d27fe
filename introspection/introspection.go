// Package introspection builds the meta-schema (spec §6's "schema
// introspection") and wires its __schema/__type root fields onto an
// already-built *schema.Schema. Grounded on the teacher's own
// introspection.go: a __Type{OfType} wrapper carrying whichever
// concrete schema.Type it describes, a __TypeKind enum switched on
// that concrete type, and __Field/__InputValue/__EnumValue/__Directive
// satellite types built the same way -- generalized from the
// teacher's schemabuilder.Object/FieldFunc registration to this port's
// FieldMap-and-Resolver shape.
package introspection

import (
	"context"
	"fmt"
	"sort"

	"github.com/coregraph/graphql/schema"
)

// TypeKind names one of the eight shapes a __Type can describe.
type TypeKind string

const (
	KindScalar      TypeKind = "SCALAR"
	KindObject      TypeKind = "OBJECT"
	KindInterface   TypeKind = "INTERFACE"
	KindUnion       TypeKind = "UNION"
	KindEnum        TypeKind = "ENUM"
	KindInputObject TypeKind = "INPUT_OBJECT"
	KindList        TypeKind = "LIST"
	KindNonNull     TypeKind = "NON_NULL"
)

// typeRef is the source value behind a __Type selection: whichever
// schema.Type it was asked to describe, List and NonNull included.
type typeRef struct{ t schema.Type }

func kindOf(t schema.Type) TypeKind {
	switch t.(type) {
	case *schema.Object:
		return KindObject
	case *schema.Interface:
		return KindInterface
	case *schema.Union:
		return KindUnion
	case *schema.Scalar:
		return KindScalar
	case *schema.Enum:
		return KindEnum
	case *schema.InputObject:
		return KindInputObject
	case *schema.List:
		return KindList
	case *schema.NonNull:
		return KindNonNull
	}
	return ""
}

// inputValueRef is the shared source value behind a __InputValue
// selection, built from either a field/directive Argument or an
// InputObject field -- the two places spec §5 stores "a name, a type,
// and an optional default" together.
type inputValueRef struct {
	name         string
	desc         string
	typ          schema.Type
	defaultValue interface{}
	hasDefault   bool
}

func inputValueFromArg(name string, a *schema.Argument) inputValueRef {
	return inputValueRef{name: name, desc: a.Desc, typ: a.Type, defaultValue: a.DefaultValue, hasDefault: a.HasDefault}
}

func inputValueFromField(f *schema.InputField) inputValueRef {
	return inputValueRef{name: f.Name, desc: f.Desc, typ: f.Type, defaultValue: f.DefaultValue, hasDefault: f.HasDefault}
}

// fieldRef is the source value behind a __Field selection.
type fieldRef struct {
	name string
	f    *schema.Field
}

// enumValueRef is the source value behind a __EnumValue selection.
type enumValueRef struct{ v *schema.EnumValue }

// directiveRef is the source value behind a __Directive selection.
type directiveRef struct{ d *schema.DirectiveDefinition }

func includeDeprecated(args map[string]interface{}) bool {
	v, _ := args["includeDeprecated"].(bool)
	return v
}

func fieldArgs(fd *schema.Field) []inputValueRef {
	out := make([]inputValueRef, 0, len(fd.ArgOrder))
	for _, name := range fd.ArgOrder {
		out = append(out, inputValueFromArg(name, fd.Args[name]))
	}
	return out
}

func directiveArgs(d *schema.DirectiveDefinition) []inputValueRef {
	out := make([]inputValueRef, 0, len(d.ArgOrder))
	for _, name := range d.ArgOrder {
		out = append(out, inputValueFromArg(name, d.Args[name]))
	}
	return out
}

// newTypeObject builds the __Type object (spec's "at the core of the
// type introspection system"): kind/name/description plus the
// modifier-aware ofType, and the OBJECT/INTERFACE/UNION/ENUM/
// INPUT_OBJECT satellite selections, each null unless the concrete
// kind supports it.
func newTypeObject(fieldObj, inputValueObj, enumValueObj *schema.Object) *schema.Object {
	t := &schema.Object{Name: "__Type", Fields: schema.NewFieldMap()}

	resolve := func(fn func(ref typeRef) (interface{}, error)) schema.Resolver {
		return func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return fn(source.(typeRef))
		}
	}

	t.Fields.Set(&schema.Field{Name: "kind", Type: &schema.NonNull{Type: typeKindEnum},
		Resolve: resolve(func(ref typeRef) (interface{}, error) { return kindOf(ref.t), nil })})
	t.Fields.Set(&schema.Field{Name: "name", Type: schema.String,
		Resolve: resolve(func(ref typeRef) (interface{}, error) {
			if n, ok := ref.t.(schema.NamedType); ok {
				return n.TypeName(), nil
			}
			return nil, nil
		})})
	t.Fields.Set(&schema.Field{Name: "description", Type: schema.String,
		Resolve: resolve(func(ref typeRef) (interface{}, error) {
			if n, ok := ref.t.(schema.NamedType); ok {
				return n.Description(), nil
			}
			return nil, nil
		})})
	t.Fields.Set(&schema.Field{
		Name: "fields",
		Type: &schema.List{Type: &schema.NonNull{Type: fieldObj}},
		Args: map[string]*schema.Argument{"includeDeprecated": {Name: "includeDeprecated", Type: schema.Boolean, DefaultValue: false, HasDefault: true}},
		ArgOrder: []string{"includeDeprecated"},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			ref := source.(typeRef)
			var fm schema.FieldMap
			switch v := ref.t.(type) {
			case *schema.Object:
				fm = v.Fields
			case *schema.Interface:
				fm = v.Fields
			default:
				return nil, nil
			}
			want := includeDeprecated(args)
			out := make([]fieldRef, 0, fm.Len())
			for _, name := range fm.FieldOrder {
				f, _ := fm.Get(name)
				if f.IsDeprecated() && !want {
					continue
				}
				out = append(out, fieldRef{name: name, f: f})
			}
			return out, nil
		},
	})
	t.Fields.Set(&schema.Field{
		Name: "interfaces", Type: &schema.List{Type: &schema.NonNull{Type: t}},
		Resolve: resolve(func(ref typeRef) (interface{}, error) {
			var ifaces []*schema.Interface
			switch v := ref.t.(type) {
			case *schema.Object:
				ifaces = v.Interfaces
			case *schema.Interface:
				ifaces = v.Interfaces
			default:
				return nil, nil
			}
			out := make([]typeRef, len(ifaces))
			for i, iface := range ifaces {
				out[i] = typeRef{iface}
			}
			return out, nil
		}),
	})
	t.Fields.Set(&schema.Field{
		Name: "possibleTypes", Type: &schema.List{Type: &schema.NonNull{Type: t}},
		Resolve: resolve(func(ref typeRef) (interface{}, error) {
			var objs []*schema.Object
			switch v := ref.t.(type) {
			case *schema.Union:
				objs = v.Types
			case *schema.Interface:
				objs = v.PossibleTypes
			default:
				return nil, nil
			}
			out := make([]typeRef, len(objs))
			for i, o := range objs {
				out[i] = typeRef{o}
			}
			sort.Slice(out, func(i, j int) bool { return out[i].t.String() < out[j].t.String() })
			return out, nil
		}),
	})
	t.Fields.Set(&schema.Field{
		Name: "enumValues", Type: &schema.List{Type: &schema.NonNull{Type: enumValueObj}},
		Args: map[string]*schema.Argument{"includeDeprecated": {Name: "includeDeprecated", Type: schema.Boolean, DefaultValue: false, HasDefault: true}},
		ArgOrder: []string{"includeDeprecated"},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			ref := source.(typeRef)
			e, ok := ref.t.(*schema.Enum)
			if !ok {
				return nil, nil
			}
			want := includeDeprecated(args)
			out := make([]enumValueRef, 0, len(e.Values))
			for _, v := range e.Values {
				if v.DeprecationReason != "" && !want {
					continue
				}
				out = append(out, enumValueRef{v})
			}
			return out, nil
		},
	})
	t.Fields.Set(&schema.Field{
		Name: "inputFields", Type: &schema.List{Type: &schema.NonNull{Type: inputValueObj}},
		Resolve: resolve(func(ref typeRef) (interface{}, error) {
			io, ok := ref.t.(*schema.InputObject)
			if !ok {
				return nil, nil
			}
			out := make([]inputValueRef, 0, len(io.FieldOrder))
			for _, name := range io.FieldOrder {
				out = append(out, inputValueFromField(io.Fields[name]))
			}
			return out, nil
		}),
	})
	t.Fields.Set(&schema.Field{
		Name: "ofType", Type: t,
		Resolve: resolve(func(ref typeRef) (interface{}, error) {
			switch v := ref.t.(type) {
			case *schema.List:
				return typeRef{v.Type}, nil
			case *schema.NonNull:
				return typeRef{v.Type}, nil
			}
			return nil, nil
		}),
	})
	return t
}

var typeKindEnum = &schema.Enum{
	Name: "__TypeKind",
	Values: []*schema.EnumValue{
		{Name: string(KindScalar), Value: KindScalar},
		{Name: string(KindObject), Value: KindObject},
		{Name: string(KindInterface), Value: KindInterface},
		{Name: string(KindUnion), Value: KindUnion},
		{Name: string(KindEnum), Value: KindEnum},
		{Name: string(KindInputObject), Value: KindInputObject},
		{Name: string(KindList), Value: KindList},
		{Name: string(KindNonNull), Value: KindNonNull},
	},
}

func newInputValueObject(typeObj *schema.Object) *schema.Object {
	o := &schema.Object{Name: "__InputValue", Fields: schema.NewFieldMap()}
	o.Fields.Set(&schema.Field{Name: "name", Type: &schema.NonNull{Type: schema.String},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(inputValueRef).name, nil
		}})
	o.Fields.Set(&schema.Field{Name: "description", Type: schema.String,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(inputValueRef).desc, nil
		}})
	o.Fields.Set(&schema.Field{Name: "type", Type: &schema.NonNull{Type: typeObj},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return typeRef{source.(inputValueRef).typ}, nil
		}})
	o.Fields.Set(&schema.Field{Name: "defaultValue", Type: schema.String,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			iv := source.(inputValueRef)
			if !iv.hasDefault {
				return nil, nil
			}
			return literalString(iv.defaultValue), nil
		}})
	return o
}

func newFieldObject(typeObj, inputValueObj *schema.Object) *schema.Object {
	o := &schema.Object{Name: "__Field", Fields: schema.NewFieldMap()}
	o.Fields.Set(&schema.Field{Name: "name", Type: &schema.NonNull{Type: schema.String},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(fieldRef).name, nil
		}})
	o.Fields.Set(&schema.Field{Name: "description", Type: schema.String,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(fieldRef).f.Desc, nil
		}})
	o.Fields.Set(&schema.Field{Name: "args", Type: &schema.NonNull{Type: &schema.List{Type: &schema.NonNull{Type: inputValueObj}}},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return fieldArgs(source.(fieldRef).f), nil
		}})
	o.Fields.Set(&schema.Field{Name: "type", Type: &schema.NonNull{Type: typeObj},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return typeRef{source.(fieldRef).f.Type}, nil
		}})
	o.Fields.Set(&schema.Field{Name: "isDeprecated", Type: &schema.NonNull{Type: schema.Boolean},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(fieldRef).f.IsDeprecated(), nil
		}})
	o.Fields.Set(&schema.Field{Name: "deprecationReason", Type: schema.String,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(fieldRef).f.DeprecationReason, nil
		}})
	return o
}

func newEnumValueObject() *schema.Object {
	o := &schema.Object{Name: "__EnumValue", Fields: schema.NewFieldMap()}
	o.Fields.Set(&schema.Field{Name: "name", Type: &schema.NonNull{Type: schema.String},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(enumValueRef).v.Name, nil
		}})
	o.Fields.Set(&schema.Field{Name: "description", Type: schema.String,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(enumValueRef).v.Desc, nil
		}})
	o.Fields.Set(&schema.Field{Name: "isDeprecated", Type: &schema.NonNull{Type: schema.Boolean},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(enumValueRef).v.DeprecationReason != "", nil
		}})
	o.Fields.Set(&schema.Field{Name: "deprecationReason", Type: schema.String,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(enumValueRef).v.DeprecationReason, nil
		}})
	return o
}

func newDirectiveObject(inputValueObj *schema.Object) *schema.Object {
	o := &schema.Object{Name: "__Directive", Fields: schema.NewFieldMap()}
	o.Fields.Set(&schema.Field{Name: "name", Type: &schema.NonNull{Type: schema.String},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(directiveRef).d.Name, nil
		}})
	o.Fields.Set(&schema.Field{Name: "description", Type: schema.String,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(directiveRef).d.Desc, nil
		}})
	o.Fields.Set(&schema.Field{Name: "locations", Type: &schema.NonNull{Type: &schema.List{Type: &schema.NonNull{Type: directiveLocationEnum}}},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			locs := source.(directiveRef).d.Locations
			out := make([]string, len(locs))
			for i, l := range locs {
				out[i] = string(l)
			}
			return out, nil
		}})
	o.Fields.Set(&schema.Field{Name: "args", Type: &schema.NonNull{Type: &schema.List{Type: &schema.NonNull{Type: inputValueObj}}},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return directiveArgs(source.(directiveRef).d), nil
		}})
	o.Fields.Set(&schema.Field{Name: "isRepeatable", Type: &schema.NonNull{Type: schema.Boolean},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(directiveRef).d.Repeatable, nil
		}})
	return o
}

var directiveLocationEnum = &schema.Enum{
	Name: "__DirectiveLocation",
	Values: []*schema.EnumValue{
		{Name: string(schema.LocQuery), Value: schema.LocQuery},
		{Name: string(schema.LocMutation), Value: schema.LocMutation},
		{Name: string(schema.LocSubscription), Value: schema.LocSubscription},
		{Name: string(schema.LocField), Value: schema.LocField},
		{Name: string(schema.LocFragmentDefinition), Value: schema.LocFragmentDefinition},
		{Name: string(schema.LocFragmentSpread), Value: schema.LocFragmentSpread},
		{Name: string(schema.LocInlineFragment), Value: schema.LocInlineFragment},
		{Name: string(schema.LocVariableDefinition), Value: schema.LocVariableDefinition},
		{Name: string(schema.LocSchema), Value: schema.LocSchema},
		{Name: string(schema.LocScalar), Value: schema.LocScalar},
		{Name: string(schema.LocObject), Value: schema.LocObject},
		{Name: string(schema.LocFieldDefinition), Value: schema.LocFieldDefinition},
		{Name: string(schema.LocArgumentDefinition), Value: schema.LocArgumentDefinition},
		{Name: string(schema.LocInterface), Value: schema.LocInterface},
		{Name: string(schema.LocUnion), Value: schema.LocUnion},
		{Name: string(schema.LocEnum), Value: schema.LocEnum},
		{Name: string(schema.LocEnumValue), Value: schema.LocEnumValue},
		{Name: string(schema.LocInputObject), Value: schema.LocInputObject},
		{Name: string(schema.LocInputFieldDefinition), Value: schema.LocInputFieldDefinition},
	},
}

func newSchemaObject(typeObj, directiveObj *schema.Object) *schema.Object {
	o := &schema.Object{Name: "__Schema", Fields: schema.NewFieldMap()}
	o.Fields.Set(&schema.Field{Name: "description", Type: schema.String,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return source.(*schema.Schema).Desc, nil
		}})
	o.Fields.Set(&schema.Field{Name: "types", Type: &schema.NonNull{Type: &schema.List{Type: &schema.NonNull{Type: typeObj}}},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			s := source.(*schema.Schema)
			out := make([]typeRef, 0, len(s.TypeOrder))
			for _, name := range s.TypeOrder {
				out = append(out, typeRef{s.Types[name]})
			}
			return out, nil
		}})
	o.Fields.Set(&schema.Field{Name: "queryType", Type: &schema.NonNull{Type: typeObj},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return typeRef{source.(*schema.Schema).Query}, nil
		}})
	o.Fields.Set(&schema.Field{Name: "mutationType", Type: typeObj,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			s := source.(*schema.Schema)
			if s.Mutation == nil {
				return nil, nil
			}
			return typeRef{s.Mutation}, nil
		}})
	o.Fields.Set(&schema.Field{Name: "subscriptionType", Type: typeObj,
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			s := source.(*schema.Schema)
			if s.Subscription == nil {
				return nil, nil
			}
			return typeRef{s.Subscription}, nil
		}})
	o.Fields.Set(&schema.Field{Name: "directives", Type: &schema.NonNull{Type: &schema.List{Type: &schema.NonNull{Type: directiveObj}}},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			s := source.(*schema.Schema)
			out := make([]directiveRef, 0, len(s.DirectiveOrder))
			for _, name := range s.DirectiveOrder {
				out = append(out, directiveRef{s.DirectiveDefs[name]})
			}
			return out, nil
		}})
	return o
}

// Inject builds the __schema/__type meta-types and registers them
// into s, adding __schema and __type(name:) fields to s.Query (spec
// §6: "accessible from the meta-fields __schema and __type which are
// accessible from the type of the root of a query operation").
// schemabuild.Build calls it on every schema it builds, once
// validation succeeds.
func Inject(s *schema.Schema) {
	enumValueObj := newEnumValueObject()
	inputValueObj := newInputValueObject(nil) // patched below once typeObj exists
	fieldObj := newFieldObject(nil, inputValueObj)
	typeObj := newTypeObject(fieldObj, inputValueObj, enumValueObj)
	directiveObj := newDirectiveObject(inputValueObj)
	schemaObj := newSchemaObject(typeObj, directiveObj)

	patchTypeRefField(inputValueObj, "type", typeObj)
	patchTypeRefField(fieldObj, "type", typeObj)

	for _, t := range []*schema.Object{schemaObj, typeObj, fieldObj, inputValueObj, enumValueObj, directiveObj} {
		s.AddType(t)
	}
	s.AddType(typeKindEnum)
	s.AddType(directiveLocationEnum)

	s.Query.Fields.Set(&schema.Field{
		Name: "__schema", Type: &schema.NonNull{Type: schemaObj},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			return s, nil
		},
	})
	s.Query.Fields.Set(&schema.Field{
		Name: "__type", Type: typeObj,
		Args:     map[string]*schema.Argument{"name": {Name: "name", Type: &schema.NonNull{Type: schema.String}}},
		ArgOrder: []string{"name"},
		Resolve: func(ctx context.Context, source interface{}, args map[string]interface{}) (interface{}, error) {
			name, _ := args["name"].(string)
			t := s.TypeByName(name)
			if t == nil {
				return nil, nil
			}
			return typeRef{t}, nil
		},
	})
}

// patchTypeRefField rewrites a field built with a nil forward
// reference once the real __Type object exists -- __InputValue.type
// and __Field.type both point back at __Type, which itself embeds
// __Field/__InputValue, so one side of the cycle has to be resolved
// after construction.
func patchTypeRefField(o *schema.Object, name string, typeObj *schema.Object) {
	f, ok := o.Fields.Get(name)
	if !ok {
		return
	}
	f.Type = &schema.NonNull{Type: typeObj}
}

func literalString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
