// Package schemabuild turns an SDL ast.Document into a validated
// *schema.Schema (spec §5.8). Construction is two-phase to let type
// definitions reference each other regardless of declaration order:
// phase one registers a placeholder NamedType for every definition,
// phase two resolves every reference against those placeholders and
// fills in fields, interfaces, union members, and enum values.
package schemabuild

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/introspection"
	"github.com/coregraph/graphql/schema"
)

// Option configures a Build call.
type Option func(*builder)

// WithResolvers registers field resolvers, keyed by GraphQL type
// name then field name. A field with no registered resolver falls
// back to the executor's default dispatch on the parent value: a map
// entry under the field name, then an exported struct field, then an
// exported method, both named schema.GoName(field).
func WithResolvers(resolvers map[string]map[string]schema.Resolver) Option {
	return func(b *builder) { b.resolvers = resolvers }
}

// WithScalar registers a custom scalar's serialize/parse behavior
// for a `scalar Name` SDL declaration (spec §5.1, package scalars).
func WithScalar(name string, serialize, parseValue func(interface{}) (interface{}, error)) Option {
	return func(b *builder) {
		b.customScalars[name] = &schema.Scalar{Name: name, Serialize: serialize, ParseValue: parseValue}
	}
}

// WithSubscriptionResolvers registers the source-stream resolvers for
// Subscription fields (spec §4.7/§4.8's subscription initiation
// contract), keyed by field name on the schema's Subscription type.
func WithSubscriptionResolvers(resolvers map[string]schema.SubscribeResolver) Option {
	return func(b *builder) { b.subscriptionResolvers = resolvers }
}

// WithTypeResolver registers the schema.TypeResolver used to pick a
// value's concrete Object type at an Interface or Union position
// (spec §4.4 step 4's "default type resolvers from interface/union
// configuration"). Without one, the executor falls back to scanning
// PossibleTypes for an assignable match.
func WithTypeResolver(abstractTypeName string, resolve schema.TypeResolver) Option {
	return func(b *builder) { b.typeResolvers[abstractTypeName] = resolve }
}

// WithDirective registers an extra directive definition beyond
// @include/@skip/@deprecated (e.g. a custom schema directive),
// resolved during phase two alongside argument default values.
func WithDirective(def *ast.DirectiveDefinition) Option {
	return func(b *builder) { b.extraDirectiveDefs = append(b.extraDirectiveDefs, def) }
}

// WithSchemaDirectives registers directive implementations, keyed by
// directive name, run against the built schema after phase2Fill
// (spec §4.4 step 5). A directive named here should also have a
// definition -- built in, declared in the SDL, or added via
// WithDirective -- or its applications were already rejected as
// unknown by applyDirectives before the hooks ever run.
func WithSchemaDirectives(impls map[string]DirectiveImplementation) Option {
	return func(b *builder) { b.schemaDirectives = impls }
}

type builder struct {
	doc                 *ast.Document
	schema              *schema.Schema
	resolvers           map[string]map[string]schema.Resolver
	customScalars       map[string]*schema.Scalar
	extraDirectiveDefs  []*ast.DirectiveDefinition
	typeResolvers       map[string]schema.TypeResolver
	subscriptionResolvers map[string]schema.SubscribeResolver
	schemaDirectives    map[string]DirectiveImplementation

	objectDefs    map[string]*ast.ObjectTypeDefinition
	interfaceDefs map[string]*ast.InterfaceTypeDefinition
	unionDefs     map[string]*ast.UnionTypeDefinition
	enumDefs      map[string]*ast.EnumTypeDefinition
	inputDefs     map[string]*ast.InputObjectTypeDefinition
	scalarDefs    map[string]*ast.ScalarTypeDefinition
	directiveDefs map[string]*ast.DirectiveDefinition
	schemaDef     *ast.SchemaDefinition

	errs graphqlerr.List
}

// Build constructs a *schema.Schema from doc. doc may contain only
// type-system definitions; executable definitions (if present, e.g.
// because a caller parsed a combined file) are ignored.
func Build(doc *ast.Document, opts ...Option) (*schema.Schema, error) {
	b := &builder{
		doc:           doc,
		schema:        schema.New(),
		customScalars: make(map[string]*schema.Scalar),
		typeResolvers: make(map[string]schema.TypeResolver),
		objectDefs:    make(map[string]*ast.ObjectTypeDefinition),
		interfaceDefs: make(map[string]*ast.InterfaceTypeDefinition),
		unionDefs:     make(map[string]*ast.UnionTypeDefinition),
		enumDefs:      make(map[string]*ast.EnumTypeDefinition),
		inputDefs:     make(map[string]*ast.InputObjectTypeDefinition),
		scalarDefs:    make(map[string]*ast.ScalarTypeDefinition),
		directiveDefs: make(map[string]*ast.DirectiveDefinition),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.collect()
	b.phase1Placeholders()
	b.phase2Directives()
	b.phase2Fill()
	b.resolveRootTypes()
	b.applySchemaDirectives()
	b.validate()
	if len(b.errs) > 0 {
		return nil, b.errs
	}
	introspection.Inject(b.schema)
	return b.schema, nil
}

func (b *builder) addErr(format string, args ...interface{}) {
	b.errs = append(b.errs, graphqlerr.New(format, args...).WithKind(graphqlerr.KindSchemaBuild))
}

// collect partitions doc's definitions by kind. Extensions (`extend
// type ...`) are not supported by this builder -- see DESIGN.md.
func (b *builder) collect() {
	for _, def := range b.doc.Definitions {
		switch d := def.(type) {
		case *ast.SchemaDefinition:
			b.schemaDef = d
		case *ast.ScalarTypeDefinition:
			b.scalarDefs[d.Name.Value] = d
		case *ast.ObjectTypeDefinition:
			b.objectDefs[d.Name.Value] = d
		case *ast.InterfaceTypeDefinition:
			b.interfaceDefs[d.Name.Value] = d
		case *ast.UnionTypeDefinition:
			b.unionDefs[d.Name.Value] = d
		case *ast.EnumTypeDefinition:
			b.enumDefs[d.Name.Value] = d
		case *ast.InputObjectTypeDefinition:
			b.inputDefs[d.Name.Value] = d
		case *ast.DirectiveDefinition:
			b.directiveDefs[d.Name.Value] = d
		}
	}
	for _, d := range b.extraDirectiveDefs {
		b.directiveDefs[d.Name.Value] = d
	}
}

// phase1Placeholders registers an empty NamedType for every
// definition so later field-type lookups always succeed, even for
// forward/cyclic references.
func (b *builder) phase1Placeholders() {
	for _, scalar := range schema.Builtins() {
		b.schema.AddType(scalar)
	}
	for name, scalar := range b.customScalars {
		if scalar.Desc == "" {
			if def, ok := b.scalarDefs[name]; ok && def.Description != nil {
				scalar.Desc = def.Description.Value
			}
		}
		b.schema.AddType(scalar)
	}
	for name, def := range b.scalarDefs {
		if _, exists := b.schema.Types[name]; exists {
			continue
		}
		desc := ""
		if def.Description != nil {
			desc = def.Description.Value
		}
		b.schema.AddType(&schema.Scalar{
			Name: name, Desc: desc,
			Serialize:  func(v interface{}) (interface{}, error) { return v, nil },
			ParseValue: func(v interface{}) (interface{}, error) { return v, nil },
		})
	}
	for name, def := range b.objectDefs {
		desc := ""
		if def.Description != nil {
			desc = def.Description.Value
		}
		b.schema.AddType(&schema.Object{Name: name, Desc: desc, Fields: schema.NewFieldMap(), GoName: schema.GoName(name)})
	}
	for name, def := range b.interfaceDefs {
		desc := ""
		if def.Description != nil {
			desc = def.Description.Value
		}
		b.schema.AddType(&schema.Interface{Name: name, Desc: desc, Fields: schema.NewFieldMap()})
	}
	for name, def := range b.unionDefs {
		desc := ""
		if def.Description != nil {
			desc = def.Description.Value
		}
		b.schema.AddType(&schema.Union{Name: name, Desc: desc})
	}
	for name, def := range b.enumDefs {
		desc := ""
		if def.Description != nil {
			desc = def.Description.Value
		}
		b.schema.AddType(&schema.Enum{Name: name, Desc: desc})
	}
	for name, def := range b.inputDefs {
		desc := ""
		if def.Description != nil {
			desc = def.Description.Value
		}
		b.schema.AddType(&schema.InputObject{Name: name, Desc: desc, Fields: make(map[string]*schema.InputField), GoName: schema.GoName(name)})
	}
}

// resolveNamed looks up a NamedType reference by ast name,
// recording an error on miss.
func (b *builder) resolveNamed(name *ast.Name) schema.NamedType {
	t := b.schema.TypeByName(name.Value)
	if t == nil {
		b.addErr("Unknown type %q.", name.Value)
	}
	return t
}

// resolveType walks an ast.Type reference into a schema.Type,
// including List/NonNull wrappers.
func (b *builder) resolveType(t ast.Type) schema.Type {
	switch v := t.(type) {
	case *ast.NamedType:
		named := b.resolveNamed(v.Name)
		if named == nil {
			return nil
		}
		return named
	case *ast.ListType:
		inner := b.resolveType(v.Type)
		if inner == nil {
			return nil
		}
		return &schema.List{Type: inner}
	case *ast.NonNullType:
		inner := b.resolveType(v.Type)
		if inner == nil {
			return nil
		}
		return &schema.NonNull{Type: inner}
	}
	return nil
}

func (b *builder) resolveRootTypes() {
	asObject := func(name string) *schema.Object {
		t := b.schema.TypeByName(name)
		if t == nil {
			return nil
		}
		obj, ok := t.(*schema.Object)
		if !ok {
			b.addErr("%q must be an object type to serve as a root operation type.", name)
			return nil
		}
		return obj
	}
	if b.schemaDef != nil {
		for _, ot := range b.schemaDef.OperationTypes {
			obj := asObject(ot.Type.Name.Value)
			switch ot.Operation {
			case ast.Query:
				b.schema.Query = obj
			case ast.Mutation:
				b.schema.Mutation = obj
			case ast.Subscription:
				b.schema.Subscription = obj
			}
		}
		if b.schemaDef.Description != nil {
			b.schema.Desc = b.schemaDef.Description.Value
		}
		dirs, _ := b.applyDirectives(b.schemaDef.Directives)
		b.schema.Directives = dirs
	} else {
		if _, ok := b.objectDefs["Query"]; ok {
			b.schema.Query = asObject("Query")
		}
		if _, ok := b.objectDefs["Mutation"]; ok {
			b.schema.Mutation = asObject("Mutation")
		}
		if _, ok := b.objectDefs["Subscription"]; ok {
			b.schema.Subscription = asObject("Subscription")
		}
	}
	if b.schema.Query == nil {
		b.addErr("Schema must define a Query type.")
	}
}
