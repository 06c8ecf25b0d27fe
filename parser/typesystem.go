package parser

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/graphqlerr"
	"github.com/coregraph/graphql/lexer"
)

// parseDescription consumes an optional leading string/block-string
// literal preceding a type-system definition (graphql-spec PR 466).
func (p *Parser) parseDescription() *ast.Description {
	switch p.tok.Kind {
	case lexer.String:
		v := p.tok.Value
		p.advance()
		return &ast.Description{Value: v}
	case lexer.BlockString:
		v := p.tok.Value
		p.advance()
		return &ast.Description{Value: v, Block: true}
	}
	return nil
}

// parseTypeSystemDefinition dispatches on the current keyword; desc
// is the description already consumed by the caller, if any.
func (p *Parser) parseTypeSystemDefinition(desc *ast.Description) ast.TypeSystemDefinition {
	if p.tok.Kind != lexer.Name {
		p.fail("Unexpected %s.", p.tok)
	}
	switch p.tok.Value {
	case "schema":
		return p.parseSchemaDefinition(desc)
	case "scalar":
		return p.parseScalarTypeDefinition(desc)
	case "type":
		return p.parseObjectTypeDefinition(desc)
	case "interface":
		return p.parseInterfaceTypeDefinition(desc)
	case "union":
		return p.parseUnionTypeDefinition(desc)
	case "enum":
		return p.parseEnumTypeDefinition(desc)
	case "input":
		return p.parseInputObjectTypeDefinition(desc)
	case "directive":
		return p.parseDirectiveDefinition(desc)
	}
	p.fail("Unexpected %s.", p.tok)
	panic("unreachable")
}

func (p *Parser) parseTypeSystemExtension() ast.TypeSystemDefinition {
	loc := p.loc()
	p.expectKeyword("extend")
	if p.tok.Kind != lexer.Name {
		p.fail("Unexpected %s.", p.tok)
	}
	switch p.tok.Value {
	case "schema":
		return p.parseSchemaExtension(loc)
	case "scalar":
		return p.parseScalarTypeExtension(loc)
	case "type":
		return p.parseObjectTypeExtension(loc)
	case "interface":
		return p.parseInterfaceTypeExtension(loc)
	case "union":
		return p.parseUnionTypeExtension(loc)
	case "enum":
		return p.parseEnumTypeExtension(loc)
	case "input":
		return p.parseInputObjectTypeExtension(loc)
	}
	p.fail("Unexpected %s.", p.tok)
	panic("unreachable")
}

// --- Schema ----------------------------------------------------------

func (p *Parser) parseSchemaDefinition(desc *ast.Description) *ast.SchemaDefinition {
	loc := p.loc()
	p.expectKeyword("schema")
	directives := p.parseDirectives(true)
	ops := p.parseOperationTypeDefinitions()
	return &ast.SchemaDefinition{Description: desc, Directives: directives, OperationTypes: ops, Loc: loc}
}

func (p *Parser) parseSchemaExtension(loc graphqlerr.Location) *ast.SchemaExtension {
	p.expectKeyword("schema")
	directives := p.parseDirectives(true)
	var ops []*ast.OperationTypeDefinition
	if p.tok.Kind == lexer.BraceL {
		ops = p.parseOperationTypeDefinitions()
	} else if len(directives) == 0 {
		p.fail("Unexpected %s.", p.tok)
	}
	return &ast.SchemaExtension{Directives: directives, OperationTypes: ops, Loc: loc}
}

func (p *Parser) parseOperationTypeDefinitions() []*ast.OperationTypeDefinition {
	p.expect(lexer.BraceL)
	var defs []*ast.OperationTypeDefinition
	for p.tok.Kind != lexer.BraceR {
		defs = append(defs, p.parseOperationTypeDefinition())
	}
	p.advance()
	return defs
}

func (p *Parser) parseOperationTypeDefinition() *ast.OperationTypeDefinition {
	loc := p.loc()
	if p.tok.Kind != lexer.Name {
		p.fail("Unexpected %s.", p.tok)
	}
	op := ast.OperationType(p.tok.Value)
	switch op {
	case ast.Query, ast.Mutation, ast.Subscription:
	default:
		p.fail("Unexpected %s.", p.tok)
	}
	p.advance()
	p.expect(lexer.Colon)
	t := p.parseNamedType()
	return &ast.OperationTypeDefinition{Operation: op, Type: t, Loc: loc}
}

// --- Scalar ------------------------------------------------------------

func (p *Parser) parseScalarTypeDefinition(desc *ast.Description) *ast.ScalarTypeDefinition {
	loc := p.loc()
	p.expectKeyword("scalar")
	name := p.parseName()
	directives := p.parseDirectives(true)
	return &ast.ScalarTypeDefinition{Description: desc, Name: name, Directives: directives, Loc: loc}
}

func (p *Parser) parseScalarTypeExtension(loc graphqlerr.Location) *ast.ScalarTypeExtension {
	p.expectKeyword("scalar")
	name := p.parseName()
	directives := p.parseDirectives(true)
	if len(directives) == 0 {
		p.fail("Unexpected %s.", p.tok)
	}
	return &ast.ScalarTypeExtension{Name: name, Directives: directives, Loc: loc}
}

// --- Object ------------------------------------------------------------

func (p *Parser) parseObjectTypeDefinition(desc *ast.Description) *ast.ObjectTypeDefinition {
	loc := p.loc()
	p.expectKeyword("type")
	name := p.parseName()
	ifaces := p.parseImplementsInterfaces()
	directives := p.parseDirectives(true)
	fields := p.parseFieldsDefinition()
	return &ast.ObjectTypeDefinition{Description: desc, Name: name, Interfaces: ifaces, Directives: directives, Fields: fields, Loc: loc}
}

func (p *Parser) parseObjectTypeExtension(loc graphqlerr.Location) *ast.ObjectTypeExtension {
	p.expectKeyword("type")
	name := p.parseName()
	ifaces := p.parseImplementsInterfaces()
	directives := p.parseDirectives(true)
	var fields []*ast.FieldDefinition
	if p.tok.Kind == lexer.BraceL {
		fields = p.parseFieldsDefinition()
	} else if len(ifaces) == 0 && len(directives) == 0 {
		p.fail("Unexpected %s.", p.tok)
	}
	return &ast.ObjectTypeExtension{Name: name, Interfaces: ifaces, Directives: directives, Fields: fields, Loc: loc}
}

// parseImplementsInterfaces accepts `implements A & B`, tolerating a
// leading `&` (graphql-spec PR 373 permits either form).
func (p *Parser) parseImplementsInterfaces() []*ast.NamedType {
	if !p.isKeyword("implements") {
		return nil
	}
	p.advance()
	p.skip(lexer.Amp)
	var ifaces []*ast.NamedType
	for {
		ifaces = append(ifaces, p.parseNamedType())
		if !p.skip(lexer.Amp) {
			break
		}
	}
	return ifaces
}

func (p *Parser) parseFieldsDefinition() []*ast.FieldDefinition {
	if p.tok.Kind != lexer.BraceL {
		return nil
	}
	p.advance()
	var fields []*ast.FieldDefinition
	for p.tok.Kind != lexer.BraceR {
		fields = append(fields, p.parseFieldDefinition())
	}
	p.advance()
	return fields
}

func (p *Parser) parseFieldDefinition() *ast.FieldDefinition {
	loc := p.loc()
	desc := p.parseDescription()
	name := p.parseName()
	args := p.parseArgumentsDefinition()
	p.expect(lexer.Colon)
	t := p.parseType()
	directives := p.parseDirectives(true)
	return &ast.FieldDefinition{Description: desc, Name: name, Arguments: args, Type: t, Directives: directives, Loc: loc}
}

func (p *Parser) parseArgumentsDefinition() []*ast.InputValueDefinition {
	if p.tok.Kind != lexer.ParenL {
		return nil
	}
	p.advance()
	var args []*ast.InputValueDefinition
	for p.tok.Kind != lexer.ParenR {
		args = append(args, p.parseInputValueDefinition())
	}
	p.advance()
	return args
}

func (p *Parser) parseInputValueDefinition() *ast.InputValueDefinition {
	loc := p.loc()
	desc := p.parseDescription()
	name := p.parseName()
	p.expect(lexer.Colon)
	t := p.parseType()
	var def ast.Value
	if p.skip(lexer.Equals) {
		def = p.parseValueLiteral(true)
	}
	directives := p.parseDirectives(true)
	return &ast.InputValueDefinition{Description: desc, Name: name, Type: t, DefaultValue: def, Directives: directives, Loc: loc}
}

// --- Interface ---------------------------------------------------------

func (p *Parser) parseInterfaceTypeDefinition(desc *ast.Description) *ast.InterfaceTypeDefinition {
	loc := p.loc()
	p.expectKeyword("interface")
	name := p.parseName()
	ifaces := p.parseImplementsInterfaces()
	directives := p.parseDirectives(true)
	fields := p.parseFieldsDefinition()
	return &ast.InterfaceTypeDefinition{Description: desc, Name: name, Interfaces: ifaces, Directives: directives, Fields: fields, Loc: loc}
}

func (p *Parser) parseInterfaceTypeExtension(loc graphqlerr.Location) *ast.InterfaceTypeExtension {
	p.expectKeyword("interface")
	name := p.parseName()
	ifaces := p.parseImplementsInterfaces()
	directives := p.parseDirectives(true)
	var fields []*ast.FieldDefinition
	if p.tok.Kind == lexer.BraceL {
		fields = p.parseFieldsDefinition()
	} else if len(ifaces) == 0 && len(directives) == 0 {
		p.fail("Unexpected %s.", p.tok)
	}
	return &ast.InterfaceTypeExtension{Name: name, Interfaces: ifaces, Directives: directives, Fields: fields, Loc: loc}
}

// --- Union ---------------------------------------------------------------

func (p *Parser) parseUnionTypeDefinition(desc *ast.Description) *ast.UnionTypeDefinition {
	loc := p.loc()
	p.expectKeyword("union")
	name := p.parseName()
	directives := p.parseDirectives(true)
	types := p.parseUnionMemberTypes()
	return &ast.UnionTypeDefinition{Description: desc, Name: name, Directives: directives, Types: types, Loc: loc}
}

func (p *Parser) parseUnionTypeExtension(loc graphqlerr.Location) *ast.UnionTypeExtension {
	p.expectKeyword("union")
	name := p.parseName()
	directives := p.parseDirectives(true)
	types := p.parseUnionMemberTypes()
	if len(directives) == 0 && len(types) == 0 {
		p.fail("Unexpected %s.", p.tok)
	}
	return &ast.UnionTypeExtension{Name: name, Directives: directives, Types: types, Loc: loc}
}

func (p *Parser) parseUnionMemberTypes() []*ast.NamedType {
	if p.tok.Kind != lexer.Equals {
		return nil
	}
	p.advance()
	p.skip(lexer.Pipe)
	var types []*ast.NamedType
	for {
		types = append(types, p.parseNamedType())
		if !p.skip(lexer.Pipe) {
			break
		}
	}
	return types
}

// --- Enum ----------------------------------------------------------------

func (p *Parser) parseEnumTypeDefinition(desc *ast.Description) *ast.EnumTypeDefinition {
	loc := p.loc()
	p.expectKeyword("enum")
	name := p.parseName()
	directives := p.parseDirectives(true)
	values := p.parseEnumValuesDefinition()
	return &ast.EnumTypeDefinition{Description: desc, Name: name, Directives: directives, Values: values, Loc: loc}
}

func (p *Parser) parseEnumTypeExtension(loc graphqlerr.Location) *ast.EnumTypeExtension {
	p.expectKeyword("enum")
	name := p.parseName()
	directives := p.parseDirectives(true)
	var values []*ast.EnumValueDefinition
	if p.tok.Kind == lexer.BraceL {
		values = p.parseEnumValuesDefinition()
	} else if len(directives) == 0 {
		p.fail("Unexpected %s.", p.tok)
	}
	return &ast.EnumTypeExtension{Name: name, Directives: directives, Values: values, Loc: loc}
}

func (p *Parser) parseEnumValuesDefinition() []*ast.EnumValueDefinition {
	if p.tok.Kind != lexer.BraceL {
		return nil
	}
	p.advance()
	var values []*ast.EnumValueDefinition
	for p.tok.Kind != lexer.BraceR {
		values = append(values, p.parseEnumValueDefinition())
	}
	p.advance()
	return values
}

func (p *Parser) parseEnumValueDefinition() *ast.EnumValueDefinition {
	loc := p.loc()
	desc := p.parseDescription()
	name := p.parseName()
	directives := p.parseDirectives(true)
	return &ast.EnumValueDefinition{Description: desc, Name: name, Directives: directives, Loc: loc}
}

// --- Input object ----------------------------------------------------------

func (p *Parser) parseInputObjectTypeDefinition(desc *ast.Description) *ast.InputObjectTypeDefinition {
	loc := p.loc()
	p.expectKeyword("input")
	name := p.parseName()
	directives := p.parseDirectives(true)
	fields := p.parseInputFieldsDefinition()
	return &ast.InputObjectTypeDefinition{Description: desc, Name: name, Directives: directives, Fields: fields, Loc: loc}
}

func (p *Parser) parseInputObjectTypeExtension(loc graphqlerr.Location) *ast.InputObjectTypeExtension {
	p.expectKeyword("input")
	name := p.parseName()
	directives := p.parseDirectives(true)
	var fields []*ast.InputValueDefinition
	if p.tok.Kind == lexer.BraceL {
		fields = p.parseInputFieldsDefinition()
	} else if len(directives) == 0 {
		p.fail("Unexpected %s.", p.tok)
	}
	return &ast.InputObjectTypeExtension{Name: name, Directives: directives, Fields: fields, Loc: loc}
}

func (p *Parser) parseInputFieldsDefinition() []*ast.InputValueDefinition {
	if p.tok.Kind != lexer.BraceL {
		return nil
	}
	p.advance()
	var fields []*ast.InputValueDefinition
	for p.tok.Kind != lexer.BraceR {
		fields = append(fields, p.parseInputValueDefinition())
	}
	p.advance()
	return fields
}

// --- Directive definition ---------------------------------------------------

func (p *Parser) parseDirectiveDefinition(desc *ast.Description) *ast.DirectiveDefinition {
	loc := p.loc()
	p.expectKeyword("directive")
	p.expect(lexer.At)
	name := p.parseName()
	args := p.parseArgumentsDefinition()
	repeatable := false
	if p.isKeyword("repeatable") {
		repeatable = true
		p.advance()
	}
	p.expectKeyword("on")
	locs := p.parseDirectiveLocations()
	return &ast.DirectiveDefinition{Description: desc, Name: name, Arguments: args, Repeatable: repeatable, Locations: locs, Loc: loc}
}

func (p *Parser) parseDirectiveLocations() []*ast.Name {
	p.skip(lexer.Pipe)
	var locs []*ast.Name
	for {
		locs = append(locs, p.parseDirectiveLocation())
		if !p.skip(lexer.Pipe) {
			break
		}
	}
	return locs
}

var validDirectiveLocations = map[string]bool{
	"QUERY": true, "MUTATION": true, "SUBSCRIPTION": true, "FIELD": true,
	"FRAGMENT_DEFINITION": true, "FRAGMENT_SPREAD": true, "INLINE_FRAGMENT": true,
	"VARIABLE_DEFINITION": true,
	"SCHEMA": true, "SCALAR": true, "OBJECT": true, "FIELD_DEFINITION": true,
	"ARGUMENT_DEFINITION": true, "INTERFACE": true, "UNION": true, "ENUM": true,
	"ENUM_VALUE": true, "INPUT_OBJECT": true, "INPUT_FIELD_DEFINITION": true,
}

func (p *Parser) parseDirectiveLocation() *ast.Name {
	loc := p.loc()
	if p.tok.Kind != lexer.Name || !validDirectiveLocations[p.tok.Value] {
		p.fail("Unexpected %s.", p.tok)
	}
	v := p.tok.Value
	p.advance()
	return &ast.Name{Value: v, Loc: loc}
}
