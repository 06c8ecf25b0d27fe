// Package validator checks a parsed executable ast.Document against
// a *schema.Schema before execution (spec §4.5). Each rule is an
// ast.Visitor produced from a shared Context that tracks the current
// type, parent type, field definition, argument definition, and
// directive definition as the walk descends -- the same shared
// type-info/addErr pattern the teacher's system/validation package
// uses, generalized to this package's AST and schema types.
package validator

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/schema"
)

// Rule builds one Visitor bound to ctx. Rules are independent and
// their resulting visitors are composed with ast.Chain, so a rule
// must not rely on another rule's side effects beyond what Context
// itself exposes.
type Rule func(ctx *Context) ast.Visitor

// Context is shared, mutable traversal state: the schema being
// validated against, the document's fragment table, and a typeInfo
// stack updated by trackTypeInfo as the walk enters/leaves nodes.
type Context struct {
	Schema    *schema.Schema
	Document  *ast.Document
	Fragments map[string]*ast.FragmentDefinition

	Errors graphqlerr.List

	typeInfo typeInfoStack
}

// NewContext builds a Context over doc, indexing its fragment
// definitions for FragmentSpread lookups.
func NewContext(s *schema.Schema, doc *ast.Document) *Context {
	ctx := &Context{Schema: s, Document: doc, Fragments: make(map[string]*ast.FragmentDefinition)}
	for _, def := range doc.Definitions {
		if frag, ok := def.(*ast.FragmentDefinition); ok {
			ctx.Fragments[frag.Name.Value] = frag
		}
	}
	return ctx
}

func (c *Context) addErr(loc graphqlerr.Location, rule, format string, args ...interface{}) {
	c.Errors = append(c.Errors, graphqlerr.At(loc, format, args...).WithKind(graphqlerr.KindValidation).WithRule(rule))
}

// --- type info -------------------------------------------------------

type typeInfoFrame struct {
	typ        schema.Type       // current output type (selection set's type)
	parentType schema.NamedType  // composite type the current selection set is on
	field      *schema.Field     // current field definition, if any
	inputType  schema.Type       // expected type for the current value position
	directive  *schema.DirectiveDefinition
	argument   *schema.Argument
}

type typeInfoStack []typeInfoFrame

func (c *Context) pushType(frame typeInfoFrame) { c.typeInfo = append(c.typeInfo, frame) }
func (c *Context) popType()                     { c.typeInfo = c.typeInfo[:len(c.typeInfo)-1] }

func (c *Context) top() typeInfoFrame {
	if len(c.typeInfo) == 0 {
		return typeInfoFrame{}
	}
	return c.typeInfo[len(c.typeInfo)-1]
}

// Type returns the current field's output type, List/NonNull
// wrappers included.
func (c *Context) Type() schema.Type { return c.top().typ }

// ParentType returns the composite type the innermost selection set
// selects against.
func (c *Context) ParentType() schema.NamedType { return c.top().parentType }

// FieldDef returns the schema.Field for the innermost Field node.
func (c *Context) FieldDef() *schema.Field { return c.top().field }

// InputType returns the expected type at the current value/argument
// position.
func (c *Context) InputType() schema.Type { return c.top().inputType }

// Directive returns the DirectiveDefinition for the innermost
// Directive node.
func (c *Context) Directive() *schema.DirectiveDefinition { return c.top().directive }

// Argument returns the Argument definition for the innermost
// Argument node (on a field, or on a directive if Directive is set).
func (c *Context) Argument() *schema.Argument { return c.top().argument }

// TrackTypeInfo builds the visitor that keeps ctx's type info current
// as the walk enters and leaves nodes, so that every rule sees correct
// Context accessors: it must be the first visitor in the Chain passed
// to Validate.
func TrackTypeInfo(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			switch n := node.(type) {
			case *ast.OperationDefinition:
				var parent *schema.Object
				switch n.Operation {
				case ast.Query:
					parent = ctx.Schema.Query
				case ast.Mutation:
					parent = ctx.Schema.Mutation
				case ast.Subscription:
					parent = ctx.Schema.Subscription
				}
				frame := typeInfoFrame{}
				if parent != nil {
					frame.typ = parent
					frame.parentType = parent
				}
				ctx.pushType(frame)
			case *ast.FragmentDefinition:
				frame := typeInfoFrame{}
				if n.TypeCondition != nil {
					if t := ctx.Schema.TypeByName(n.TypeCondition.Name.Value); t != nil {
						frame.typ = t
						frame.parentType = t
					}
				}
				ctx.pushType(frame)
			case *ast.InlineFragment:
				frame := ctx.top()
				if n.TypeCondition != nil {
					if t := ctx.Schema.TypeByName(n.TypeCondition.Name.Value); t != nil {
						frame.typ = t
						frame.parentType = t
					}
				}
				ctx.pushType(frame)
			case *ast.Field:
				parent := ctx.top().parentType
				frame := typeInfoFrame{parentType: parent}
				if parent != nil {
					if fields, ok := fieldsOf(parent); ok {
						if f, ok := fields.Get(n.Name.Value); ok {
							frame.field = f
							frame.typ = f.Type
							frame.parentType = schema.NamedOf(f.Type)
						}
					}
				}
				ctx.pushType(frame)
			case *ast.Directive:
				frame := ctx.top()
				frame.directive = ctx.Schema.DirectiveByName(n.Name.Value)
				frame.argument = nil
				ctx.pushType(frame)
			case *ast.Argument:
				frame := ctx.top()
				frame.argument = nil
				if frame.directive != nil {
					frame.argument = frame.directive.Args[n.Name.Value]
				} else if frame.field != nil {
					frame.argument = frame.field.Args[n.Name.Value]
				}
				if frame.argument != nil {
					frame.inputType = frame.argument.Type
				}
				ctx.pushType(frame)
			case *ast.ListValue:
				frame := ctx.top()
				if lt, ok := unwrapList(frame.inputType); ok {
					frame.inputType = lt
				}
				ctx.pushType(frame)
			case *ast.ObjectField:
				frame := ctx.top()
				frame.inputType = inputFieldType(frame.inputType, n.Name.Value)
				ctx.pushType(frame)
			case *ast.VariableDefinition:
				ctx.pushType(typeInfoFrame{})
			}
			return ast.Continue
		},
		Leave: func(node ast.Node, _ string, _ int) {
			switch node.(type) {
			case *ast.OperationDefinition, *ast.FragmentDefinition, *ast.InlineFragment,
				*ast.Field, *ast.Directive, *ast.Argument, *ast.ListValue, *ast.ObjectField,
				*ast.VariableDefinition:
				ctx.popType()
			}
		},
	}
}

func fieldsOf(t schema.NamedType) (schema.FieldMap, bool) {
	switch v := t.(type) {
	case *schema.Object:
		return v.Fields, true
	case *schema.Interface:
		return v.Fields, true
	}
	return schema.FieldMap{}, false
}

func unwrapList(t schema.Type) (schema.Type, bool) {
	if nn, ok := t.(*schema.NonNull); ok {
		t = nn.Type
	}
	if lt, ok := t.(*schema.List); ok {
		return lt.Type, true
	}
	return nil, false
}

func inputFieldType(t schema.Type, fieldName string) schema.Type {
	if nn, ok := t.(*schema.NonNull); ok {
		t = nn.Type
	}
	io, ok := t.(*schema.InputObject)
	if !ok {
		return nil
	}
	if f, ok := io.Fields[fieldName]; ok {
		return f.Type
	}
	return nil
}
