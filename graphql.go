// Package graphql is the thin façade over this module's heavier
// internals (lexer, parser, schema, schemabuild, validator, executor):
// parse a query or an SDL document, build a schema from it, validate a
// query against that schema, execute or subscribe to an operation,
// and print an AST or a schema back to text. Grounded on the
// teacher's own flat root package, where graphql.go/execute.go/
// parser.go/schema.go/introspection.go all lived together as a facade
// over schemabuilder/execution/internal.
package graphql

import (
	"context"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/executor"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/parser"
	"github.com/coregraph/graphql/schema"
	"github.com/coregraph/graphql/schemabuild"
	"github.com/coregraph/graphql/validator"
)

// Parse turns source GraphQL text -- a query/mutation/subscription
// document or an SDL document -- into an *ast.Document.
func Parse(source string) (*ast.Document, error) {
	doc, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Schema, Option, and the With* constructors are re-exported so
// callers building a schema don't need to import package schemabuild
// directly for the common path.
type (
	Schema = schema.Schema
	Option = schemabuild.Option
)

var (
	WithResolvers             = schemabuild.WithResolvers
	WithScalar                = schemabuild.WithScalar
	WithSubscriptionResolvers = schemabuild.WithSubscriptionResolvers
	WithTypeResolver          = schemabuild.WithTypeResolver
	WithDirective             = schemabuild.WithDirective
)

// BuildSchema parses an SDL document and builds it into a validated
// *Schema, wiring resolvers and directives via opts.
func BuildSchema(sdl string, opts ...Option) (*Schema, error) {
	doc, err := Parse(sdl)
	if err != nil {
		return nil, err
	}
	return schemabuild.Build(doc, opts...)
}

// Validate runs the full validation rule set (spec §5's ~20 rules)
// against an already-parsed executable document.
func Validate(s *Schema, doc *ast.Document) graphqlerr.List {
	return validator.Validate(s, doc, validator.AllRules...)
}

// ExecuteOption and the With* constructors re-export package
// executor's Execute/Subscribe configuration.
type ExecuteOption = executor.Option

var (
	WithVariables     = executor.WithVariables
	WithOperationName = executor.WithOperationName
	WithRoot          = executor.WithRoot
	WithRuntime       = executor.WithRuntime
	WithLogger        = executor.WithLogger
)

// Result is one execution's outcome.
type Result = executor.Result

// SubscriptionStream is a live subscription's event channel.
type SubscriptionStream = executor.SubscriptionStream

// Execute parses, validates, and runs a query/mutation document
// against s in one call -- the common case for a caller that doesn't
// need to inspect validation errors separately from execution errors.
func Execute(ctx context.Context, s *Schema, source string, opts ...ExecuteOption) *Result {
	doc, perr := Parse(source)
	if perr != nil {
		return &Result{Errors: graphqlerr.List{perr.(*graphqlerr.Error)}}
	}
	if errs := Validate(s, doc); len(errs) > 0 {
		return &Result{Errors: errs}
	}
	return executor.Execute(ctx, s, doc, opts...)
}

// Subscribe parses, validates, and initiates a subscription operation
// against s. See executor.Subscribe for the source-stream contract.
func Subscribe(ctx context.Context, s *Schema, source string, opts ...ExecuteOption) (*SubscriptionStream, error) {
	doc, perr := Parse(source)
	if perr != nil {
		return nil, perr
	}
	if errs := Validate(s, doc); len(errs) > 0 {
		return nil, errs
	}
	return executor.Subscribe(ctx, s, doc, opts...)
}

// PrintAST renders an AST node back to GraphQL text (spec §6).
func PrintAST(node ast.Node) string { return ast.Print(node) }

// PrintSchema renders a built Schema back to SDL text (spec §6).
func PrintSchema(s *Schema) string { return schema.Print(s) }
