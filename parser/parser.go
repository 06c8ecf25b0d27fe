// Package parser turns a token stream from package lexer into the
// typed ast produced by package ast, for both the GraphQL query
// language and the schema definition language (spec §4.2, §4.4). It
// is a straightforward recursive-descent parser with one token of
// lookahead, grounded on the teacher's hand-rolled system/parser.go.
package parser

import (
	"strings"

	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/lexer"
)

// parseError is the panic payload carrying a ready-made
// *graphqlerr.Error back to the Parse/ParseValue recover boundary,
// mirroring package lexer's syntaxError.
type parseError struct{ err *graphqlerr.Error }

// Parser holds one token of lookahead over a lexer.Lexer.
type Parser struct {
	lex *lexer.Lexer
	tok lexer.Token
}

func newParser(source string) *Parser {
	p := &Parser{lex: lexer.New(source)}
	p.advance()
	return p
}

func (p *Parser) advance() {
	tok, err := p.lex.Advance()
	if err != nil {
		panic(parseError{err})
	}
	p.tok = tok
}

func (p *Parser) loc() graphqlerr.Location {
	return graphqlerr.Location{Line: p.tok.Line, Column: p.tok.Column}
}

func (p *Parser) fail(format string, args ...interface{}) {
	panic(parseError{graphqlerr.At(p.loc(), format, args...).WithKind(graphqlerr.KindSyntax)})
}

// expect consumes the current token if it has the given kind,
// returning it; otherwise it fails with a syntax error.
func (p *Parser) expect(kind lexer.Kind) lexer.Token {
	tok := p.tok
	if tok.Kind != kind {
		p.fail("Expected %s, found %s.", kind, tok)
	}
	p.advance()
	return tok
}

func (p *Parser) skip(kind lexer.Kind) bool {
	if p.tok.Kind == kind {
		p.advance()
		return true
	}
	return false
}

// isKeyword reports whether the current token is the NAME keyword.
func (p *Parser) isKeyword(word string) bool {
	return p.tok.Kind == lexer.Name && p.tok.Value == word
}

// expectKeyword consumes the current NAME token if its value is
// word, else fails.
func (p *Parser) expectKeyword(word string) {
	if !p.isKeyword(word) {
		p.fail(`Expected "%s", found %s.`, word, p.tok)
	}
	p.advance()
}

// Parse parses a full document, accepting any mix of executable
// definitions and type-system definitions/extensions (spec §4.2 and
// §4.4 share one Document production).
func Parse(source string) (doc *ast.Document, err *graphqlerr.Error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				err = pe.err
				return
			}
			panic(r)
		}
	}()
	if strings.TrimSpace(source) == "" {
		return nil, graphqlerr.New("Syntax Error: Unexpected <EOF>.").WithKind(graphqlerr.KindSyntax)
	}
	p := newParser(source)
	return p.parseDocument(), nil
}

// ParseValue parses a single, possibly variable-containing, value
// literal -- used by callers (e.g. directive default-argument tests)
// that need to parse a value without a surrounding document.
func ParseValue(source string) (val ast.Value, err *graphqlerr.Error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				err = pe.err
				return
			}
			panic(r)
		}
	}()
	p := newParser(source)
	val = p.parseValueLiteral(false)
	p.expect(lexer.EOF)
	return val, nil
}

// ParseType parses a single type reference, e.g. `[String!]!`.
func ParseType(source string) (t ast.Type, err *graphqlerr.Error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				err = pe.err
				return
			}
			panic(r)
		}
	}()
	p := newParser(source)
	t = p.parseType()
	p.expect(lexer.EOF)
	return t, nil
}

func (p *Parser) parseDocument() *ast.Document {
	loc := p.loc()
	var defs []ast.Definition
	for p.tok.Kind != lexer.EOF {
		defs = append(defs, p.parseDefinition())
	}
	return &ast.Document{Definitions: defs, Loc: loc}
}

func (p *Parser) parseDefinition() ast.Definition {
	if p.tok.Kind == lexer.BraceL {
		return p.parseOperationDefinition()
	}
	if p.tok.Kind == lexer.Name {
		switch p.tok.Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
			return p.parseTypeSystemDefinition(nil)
		case "extend":
			return p.parseTypeSystemExtension()
		}
	}
	if p.tok.Kind == lexer.String || p.tok.Kind == lexer.BlockString {
		desc := p.parseDescription()
		return p.parseTypeSystemDefinition(desc)
	}
	p.fail("Unexpected %s.", p.tok)
	panic("unreachable")
}

// --- Executable definitions ---------------------------------------

func (p *Parser) parseOperationDefinition() *ast.OperationDefinition {
	loc := p.loc()
	if p.tok.Kind == lexer.BraceL {
		return &ast.OperationDefinition{Operation: ast.Query, SelectionSet: p.parseSelectionSet(), Loc: loc}
	}
	op := ast.OperationType(p.tok.Value)
	p.advance()
	def := &ast.OperationDefinition{Operation: op, Loc: loc}
	if p.tok.Kind == lexer.Name {
		def.Name = p.parseName()
	}
	def.VariableDefinitions = p.parseVariableDefinitions()
	def.Directives = p.parseDirectives(false)
	def.SelectionSet = p.parseSelectionSet()
	return def
}

func (p *Parser) parseVariableDefinitions() []*ast.VariableDefinition {
	if p.tok.Kind != lexer.ParenL {
		return nil
	}
	p.advance()
	var defs []*ast.VariableDefinition
	for p.tok.Kind != lexer.ParenR {
		defs = append(defs, p.parseVariableDefinition())
	}
	p.advance()
	return defs
}

func (p *Parser) parseVariableDefinition() *ast.VariableDefinition {
	loc := p.loc()
	v := p.parseVariable()
	p.expect(lexer.Colon)
	t := p.parseType()
	var def ast.Value
	if p.skip(lexer.Equals) {
		def = p.parseValueLiteral(true)
	}
	directives := p.parseDirectives(true)
	return &ast.VariableDefinition{Variable: v, Type: t, DefaultValue: def, Directives: directives, Loc: loc}
}

func (p *Parser) parseVariable() *ast.Variable {
	loc := p.loc()
	p.expect(lexer.Dollar)
	return &ast.Variable{Name: p.parseName(), Loc: loc}
}

func (p *Parser) parseSelectionSet() *ast.SelectionSet {
	loc := p.loc()
	p.expect(lexer.BraceL)
	var sels []ast.Selection
	for p.tok.Kind != lexer.BraceR {
		sels = append(sels, p.parseSelection())
	}
	p.advance()
	return &ast.SelectionSet{Selections: sels, Loc: loc}
}

func (p *Parser) parseSelection() ast.Selection {
	if p.tok.Kind == lexer.Spread {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *Parser) parseField() *ast.Field {
	loc := p.loc()
	nameOrAlias := p.parseName()
	var alias, name *ast.Name
	if p.skip(lexer.Colon) {
		alias = nameOrAlias
		name = p.parseName()
	} else {
		name = nameOrAlias
	}
	var args []*ast.Argument
	if p.tok.Kind == lexer.ParenL {
		args = p.parseArguments(false)
	}
	directives := p.parseDirectives(false)
	var sel *ast.SelectionSet
	if p.tok.Kind == lexer.BraceL {
		sel = p.parseSelectionSet()
	}
	return &ast.Field{Alias: alias, Name: name, Arguments: args, Directives: directives, SelectionSet: sel, Loc: loc}
}

func (p *Parser) parseArguments(constOnly bool) []*ast.Argument {
	p.expect(lexer.ParenL)
	var args []*ast.Argument
	for p.tok.Kind != lexer.ParenR {
		loc := p.loc()
		name := p.parseName()
		p.expect(lexer.Colon)
		val := p.parseValueLiteral(constOnly)
		args = append(args, &ast.Argument{Name: name, Value: val, Loc: loc})
	}
	p.advance()
	return args
}

func (p *Parser) parseFragment() ast.Selection {
	loc := p.loc()
	p.expect(lexer.Spread)
	if p.tok.Kind == lexer.Name && p.tok.Value != "on" {
		name := p.parseFragmentName()
		directives := p.parseDirectives(false)
		return &ast.FragmentSpread{Name: name, Directives: directives, Loc: loc}
	}
	var cond *ast.NamedType
	if p.isKeyword("on") {
		p.advance()
		cond = p.parseNamedType()
	}
	directives := p.parseDirectives(false)
	sel := p.parseSelectionSet()
	return &ast.InlineFragment{TypeCondition: cond, Directives: directives, SelectionSet: sel, Loc: loc}
}

func (p *Parser) parseFragmentDefinition() *ast.FragmentDefinition {
	loc := p.loc()
	p.expectKeyword("fragment")
	name := p.parseFragmentName()
	p.expectKeyword("on")
	cond := p.parseNamedType()
	directives := p.parseDirectives(false)
	sel := p.parseSelectionSet()
	return &ast.FragmentDefinition{Name: name, TypeCondition: cond, Directives: directives, SelectionSet: sel, Loc: loc}
}

// parseFragmentName parses a Name that must not be the keyword "on".
func (p *Parser) parseFragmentName() *ast.Name {
	if p.isKeyword("on") {
		p.fail(`Unexpected Name "on".`)
	}
	return p.parseName()
}

func (p *Parser) parseName() *ast.Name {
	loc := p.loc()
	tok := p.expect(lexer.Name)
	return &ast.Name{Value: tok.Value, Loc: loc}
}

// --- Values --------------------------------------------------------

func (p *Parser) parseValueLiteral(constOnly bool) ast.Value {
	loc := p.loc()
	switch p.tok.Kind {
	case lexer.BracketL:
		return p.parseList(constOnly)
	case lexer.BraceL:
		return p.parseObject(constOnly)
	case lexer.Dollar:
		if constOnly {
			p.fail("Unexpected %s.", p.tok)
		}
		return p.parseVariable()
	case lexer.Int:
		v := p.tok.Value
		p.advance()
		return &ast.IntValue{Value: v, Loc: loc}
	case lexer.Float:
		v := p.tok.Value
		p.advance()
		return &ast.FloatValue{Value: v, Loc: loc}
	case lexer.String:
		v := p.tok.Value
		p.advance()
		return &ast.StringValue{Value: v, Loc: loc}
	case lexer.BlockString:
		v := p.tok.Value
		p.advance()
		return &ast.StringValue{Value: v, Block: true, Loc: loc}
	case lexer.Name:
		switch p.tok.Value {
		case "true":
			p.advance()
			return &ast.BooleanValue{Value: true, Loc: loc}
		case "false":
			p.advance()
			return &ast.BooleanValue{Value: false, Loc: loc}
		case "null":
			p.advance()
			return &ast.NullValue{Loc: loc}
		default:
			v := p.tok.Value
			p.advance()
			return &ast.EnumValue{Value: v, Loc: loc}
		}
	}
	p.fail("Unexpected %s.", p.tok)
	panic("unreachable")
}

func (p *Parser) parseList(constOnly bool) *ast.ListValue {
	loc := p.loc()
	p.expect(lexer.BracketL)
	var vals []ast.Value
	for p.tok.Kind != lexer.BracketR {
		vals = append(vals, p.parseValueLiteral(constOnly))
	}
	p.advance()
	return &ast.ListValue{Values: vals, Loc: loc}
}

func (p *Parser) parseObject(constOnly bool) *ast.ObjectValue {
	loc := p.loc()
	p.expect(lexer.BraceL)
	var fields []*ast.ObjectField
	for p.tok.Kind != lexer.BraceR {
		fields = append(fields, p.parseObjectField(constOnly))
	}
	p.advance()
	return &ast.ObjectValue{Fields: fields, Loc: loc}
}

func (p *Parser) parseObjectField(constOnly bool) *ast.ObjectField {
	loc := p.loc()
	name := p.parseName()
	p.expect(lexer.Colon)
	val := p.parseValueLiteral(constOnly)
	return &ast.ObjectField{Name: name, Value: val, Loc: loc}
}

// --- Types -----------------------------------------------------------

func (p *Parser) parseType() ast.Type {
	loc := p.loc()
	var t ast.Type
	if p.skip(lexer.BracketL) {
		inner := p.parseType()
		p.expect(lexer.BracketR)
		t = &ast.ListType{Type: inner, Loc: loc}
	} else {
		t = p.parseNamedType()
	}
	if p.skip(lexer.Bang) {
		return &ast.NonNullType{Type: t, Loc: loc}
	}
	return t
}

func (p *Parser) parseNamedType() *ast.NamedType {
	loc := p.loc()
	return &ast.NamedType{Name: p.parseName(), Loc: loc}
}

// --- Directives ------------------------------------------------------

func (p *Parser) parseDirectives(constOnly bool) []*ast.Directive {
	var dirs []*ast.Directive
	for p.tok.Kind == lexer.At {
		dirs = append(dirs, p.parseDirective(constOnly))
	}
	return dirs
}

func (p *Parser) parseDirective(constOnly bool) *ast.Directive {
	loc := p.loc()
	p.expect(lexer.At)
	name := p.parseName()
	var args []*ast.Argument
	if p.tok.Kind == lexer.ParenL {
		args = p.parseArguments(constOnly)
	}
	return &ast.Directive{Name: name, Arguments: args, Loc: loc}
}
