package schemabuild

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/schema"
)

// phase2Directives resolves every directive definition -- the three
// built-ins plus any declared in the document or passed via
// WithDirective -- before phase2Fill needs to look any of them up to
// apply a `@deprecated`/custom directive application.
func (b *builder) phase2Directives() {
	include := *schema.IncludeDirective
	include.Args = map[string]*schema.Argument{
		"if": {Name: "if", Type: &schema.NonNull{Type: schema.Boolean}, Desc: "Included when true."},
	}
	include.ArgOrder = []string{"if"}
	b.schema.AddDirectiveDef(&include)

	skip := *schema.SkipDirective
	skip.Args = map[string]*schema.Argument{
		"if": {Name: "if", Type: &schema.NonNull{Type: schema.Boolean}, Desc: "Skipped when true."},
	}
	skip.ArgOrder = []string{"if"}
	b.schema.AddDirectiveDef(&skip)

	deprecated := *schema.DeprecatedDirective
	deprecated.Args = map[string]*schema.Argument{
		"reason": {Name: "reason", Type: schema.String, Desc: "Explains why this element was deprecated.",
			DefaultValue: schema.DefaultDeprecationReason, HasDefault: true},
	}
	deprecated.ArgOrder = []string{"reason"}
	b.schema.AddDirectiveDef(&deprecated)

	for name, def := range b.directiveDefs {
		desc := ""
		if def.Description != nil {
			desc = def.Description.Value
		}
		dd := &schema.DirectiveDefinition{Name: name, Desc: desc, Repeatable: def.Repeatable}
		for _, loc := range def.Locations {
			dd.Locations = append(dd.Locations, schema.DirectiveLocation(loc.Value))
		}
		dd.Args, dd.ArgOrder = b.resolveArgDefs(def.Arguments)
		b.schema.AddDirectiveDef(dd)
	}
}

// resolveArgDefs resolves an InputValueDefinition list into argument
// maps shared by fields and directives.
func (b *builder) resolveArgDefs(defs []*ast.InputValueDefinition) (map[string]*schema.Argument, []string) {
	args := make(map[string]*schema.Argument, len(defs))
	var order []string
	for _, d := range defs {
		t := b.resolveType(d.Type)
		if t == nil {
			continue
		}
		a := &schema.Argument{Name: d.Name.Value, Type: t}
		if d.Description != nil {
			a.Desc = d.Description.Value
		}
		if d.DefaultValue != nil {
			v, err := literalToGo(d.DefaultValue)
			if err != nil {
				b.addErr("argument %q: %s", d.Name.Value, err)
			} else {
				a.DefaultValue = v
				a.HasDefault = true
			}
		}
		a.Directives, _ = b.applyDirectives(d.Directives)
		args[d.Name.Value] = a
		order = append(order, d.Name.Value)
	}
	return args, order
}

// applyDirectives resolves a field/enum-value's `@directive(...)`
// applications, special-casing `@deprecated` into the dedicated
// DeprecationReason field that introspection and the printer read
// (spec §5.2, §5.5), and returns the full resolved list, which the
// caller stores in the element's Directives for the schema-directive
// hooks.
func (b *builder) applyDirectives(dirs []*ast.Directive) ([]*schema.Directive, string) {
	var resolved []*schema.Directive
	deprecationReason := ""
	for _, d := range dirs {
		def := b.schema.DirectiveByName(d.Name.Value)
		if def == nil {
			b.addErr("Unknown directive %q.", d.Name.Value)
			continue
		}
		args := make(map[string]interface{}, len(d.Arguments))
		for _, arg := range d.Arguments {
			v, err := literalToGo(arg.Value)
			if err != nil {
				b.addErr("directive @%s argument %q: %s", d.Name.Value, arg.Name.Value, err)
				continue
			}
			args[arg.Name.Value] = v
		}
		for name, argDef := range def.Args {
			if _, ok := args[name]; !ok && argDef.HasDefault {
				args[name] = argDef.DefaultValue
			}
		}
		resolved = append(resolved, &schema.Directive{Definition: def, Arguments: args})
		if d.Name.Value == "deprecated" {
			if reason, ok := args["reason"].(string); ok {
				deprecationReason = reason
			} else {
				deprecationReason = schema.DefaultDeprecationReason
			}
		}
	}
	return resolved, deprecationReason
}
