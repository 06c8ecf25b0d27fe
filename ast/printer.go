package ast

import (
	"strconv"
	"strings"
)

// Print renders node back to GraphQL source text (spec §6
// `print_ast`). Re-parsing the output of Print on a valid document
// yields a structurally equal AST (spec §8).
func Print(node Node) string {
	var b strings.Builder
	printNode(&b, node, 0)
	return b.String()
}

func indent(b *strings.Builder, level int) {
	for i := 0; i < level; i++ {
		b.WriteString("  ")
	}
}

func printNode(b *strings.Builder, node Node, level int) {
	switch n := node.(type) {
	case *Document:
		for i, d := range n.Definitions {
			if i > 0 {
				b.WriteString("\n\n")
			}
			printNode(b, d, 0)
		}
	case *OperationDefinition:
		shorthand := n.Name == nil && len(n.VariableDefinitions) == 0 && len(n.Directives) == 0 && n.Operation == Query
		if !shorthand {
			b.WriteString(string(n.Operation))
			if n.Name != nil {
				b.WriteByte(' ')
				b.WriteString(n.Name.Value)
			}
			if len(n.VariableDefinitions) > 0 {
				b.WriteByte('(')
				for i, vd := range n.VariableDefinitions {
					if i > 0 {
						b.WriteString(", ")
					}
					printVariableDefinition(b, vd)
				}
				b.WriteByte(')')
			}
			printDirectives(b, n.Directives)
			b.WriteByte(' ')
		}
		printNode(b, n.SelectionSet, level)
	case *VariableDefinition:
		printVariableDefinition(b, n)
	case *SelectionSet:
		b.WriteString("{\n")
		for _, s := range n.Selections {
			indent(b, level+1)
			printNode(b, s, level+1)
			b.WriteByte('\n')
		}
		indent(b, level)
		b.WriteByte('}')
	case *Field:
		if n.Alias != nil {
			b.WriteString(n.Alias.Value)
			b.WriteString(": ")
		}
		b.WriteString(n.Name.Value)
		if len(n.Arguments) > 0 {
			b.WriteByte('(')
			for i, a := range n.Arguments {
				if i > 0 {
					b.WriteString(", ")
				}
				printNode(b, a, level)
			}
			b.WriteByte(')')
		}
		printDirectives(b, n.Directives)
		if n.SelectionSet != nil {
			b.WriteByte(' ')
			printNode(b, n.SelectionSet, level)
		}
	case *FragmentSpread:
		b.WriteString("...")
		b.WriteString(n.Name.Value)
		printDirectives(b, n.Directives)
	case *InlineFragment:
		b.WriteString("...")
		if n.TypeCondition != nil {
			b.WriteString(" on ")
			b.WriteString(n.TypeCondition.Name.Value)
		}
		printDirectives(b, n.Directives)
		b.WriteByte(' ')
		printNode(b, n.SelectionSet, level)
	case *FragmentDefinition:
		b.WriteString("fragment ")
		b.WriteString(n.Name.Value)
		b.WriteString(" on ")
		b.WriteString(n.TypeCondition.Name.Value)
		printDirectives(b, n.Directives)
		b.WriteByte(' ')
		printNode(b, n.SelectionSet, level)
	case *Argument:
		b.WriteString(n.Name.Value)
		b.WriteString(": ")
		printNode(b, n.Value, level)
	case *Directive:
		b.WriteByte('@')
		b.WriteString(n.Name.Value)
		if len(n.Arguments) > 0 {
			b.WriteByte('(')
			for i, a := range n.Arguments {
				if i > 0 {
					b.WriteString(", ")
				}
				printNode(b, a, level)
			}
			b.WriteByte(')')
		}
	case *Variable:
		b.WriteByte('$')
		b.WriteString(n.Name.Value)
	case *IntValue:
		b.WriteString(n.Value)
	case *FloatValue:
		b.WriteString(n.Value)
	case *StringValue:
		if n.Block {
			b.WriteString(`"""`)
			b.WriteString(n.Value)
			b.WriteString(`"""`)
		} else {
			b.WriteString(strconv.Quote(n.Value))
		}
	case *BooleanValue:
		if n.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *NullValue:
		b.WriteString("null")
	case *EnumValue:
		b.WriteString(n.Value)
	case *ListValue:
		b.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			printNode(b, v, level)
		}
		b.WriteByte(']')
	case *ObjectValue:
		b.WriteByte('{')
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name.Value)
			b.WriteString(": ")
			printNode(b, f.Value, level)
		}
		b.WriteByte('}')
	case *NamedType:
		b.WriteString(n.Name.Value)
	case *ListType:
		b.WriteByte('[')
		printNode(b, n.Type, level)
		b.WriteByte(']')
	case *NonNullType:
		printNode(b, n.Type, level)
		b.WriteByte('!')

	// SDL
	case *SchemaDefinition:
		printDescription(b, n.Description, level)
		b.WriteString("schema")
		printDirectives(b, n.Directives)
		b.WriteString(" {\n")
		for _, ot := range n.OperationTypes {
			indent(b, level+1)
			b.WriteString(string(ot.Operation))
			b.WriteString(": ")
			b.WriteString(ot.Type.Name.Value)
			b.WriteByte('\n')
		}
		b.WriteString("}")
	case *ScalarTypeDefinition:
		printDescription(b, n.Description, level)
		b.WriteString("scalar ")
		b.WriteString(n.Name.Value)
		printDirectives(b, n.Directives)
	case *ObjectTypeDefinition:
		printDescription(b, n.Description, level)
		b.WriteString("type ")
		b.WriteString(n.Name.Value)
		printImplements(b, n.Interfaces)
		printDirectives(b, n.Directives)
		printFieldDefs(b, n.Fields, level)
	case *InterfaceTypeDefinition:
		printDescription(b, n.Description, level)
		b.WriteString("interface ")
		b.WriteString(n.Name.Value)
		printImplements(b, n.Interfaces)
		printDirectives(b, n.Directives)
		printFieldDefs(b, n.Fields, level)
	case *UnionTypeDefinition:
		printDescription(b, n.Description, level)
		b.WriteString("union ")
		b.WriteString(n.Name.Value)
		printDirectives(b, n.Directives)
		if len(n.Types) > 0 {
			b.WriteString(" = ")
			for i, t := range n.Types {
				if i > 0 {
					b.WriteString(" | ")
				}
				b.WriteString(t.Name.Value)
			}
		}
	case *EnumTypeDefinition:
		printDescription(b, n.Description, level)
		b.WriteString("enum ")
		b.WriteString(n.Name.Value)
		printDirectives(b, n.Directives)
		b.WriteString(" {\n")
		for _, v := range n.Values {
			printDescription(b, v.Description, level+1)
			indent(b, level+1)
			b.WriteString(v.Name.Value)
			printDirectives(b, v.Directives)
			b.WriteByte('\n')
		}
		b.WriteString("}")
	case *InputObjectTypeDefinition:
		printDescription(b, n.Description, level)
		b.WriteString("input ")
		b.WriteString(n.Name.Value)
		printDirectives(b, n.Directives)
		b.WriteString(" {\n")
		for _, f := range n.Fields {
			printDescription(b, f.Description, level+1)
			indent(b, level+1)
			printInputValue(b, f)
			b.WriteByte('\n')
		}
		b.WriteString("}")
	case *DirectiveDefinition:
		printDescription(b, n.Description, level)
		b.WriteString("directive @")
		b.WriteString(n.Name.Value)
		if len(n.Arguments) > 0 {
			b.WriteByte('(')
			for i, a := range n.Arguments {
				if i > 0 {
					b.WriteString(", ")
				}
				printInputValue(b, a)
			}
			b.WriteByte(')')
		}
		if n.Repeatable {
			b.WriteString(" repeatable")
		}
		b.WriteString(" on ")
		for i, l := range n.Locations {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(l.Value)
		}
	default:
		// Extensions and any node otherwise unhandled: best-effort,
		// callers needing exact extension round-tripping should use
		// Walk directly.
	}
}

func printFieldDefs(b *strings.Builder, fields []*FieldDefinition, level int) {
	b.WriteString(" {\n")
	for _, f := range fields {
		printDescription(b, f.Description, level+1)
		indent(b, level+1)
		b.WriteString(f.Name.Value)
		if len(f.Arguments) > 0 {
			b.WriteByte('(')
			for i, a := range f.Arguments {
				if i > 0 {
					b.WriteString(", ")
				}
				printInputValue(b, a)
			}
			b.WriteByte(')')
		}
		b.WriteString(": ")
		b.WriteString(f.Type.String())
		printDirectives(b, f.Directives)
		b.WriteByte('\n')
	}
	b.WriteString("}")
}

func printInputValue(b *strings.Builder, v *InputValueDefinition) {
	b.WriteString(v.Name.Value)
	b.WriteString(": ")
	b.WriteString(v.Type.String())
	if v.DefaultValue != nil {
		b.WriteString(" = ")
		printNode(b, v.DefaultValue, 0)
	}
	printDirectives(b, v.Directives)
}

func printImplements(b *strings.Builder, ifaces []*NamedType) {
	if len(ifaces) == 0 {
		return
	}
	b.WriteString(" implements ")
	for i, it := range ifaces {
		if i > 0 {
			b.WriteString(" & ")
		}
		b.WriteString(it.Name.Value)
	}
}

func printDirectives(b *strings.Builder, directives []*Directive) {
	for _, d := range directives {
		b.WriteByte(' ')
		printNode(b, d, 0)
	}
}

func printDescription(b *strings.Builder, d *Description, level int) {
	if d == nil {
		return
	}
	indent(b, level)
	if d.Block {
		b.WriteString(`"""`)
		b.WriteString(d.Value)
		b.WriteString("\"\"\"\n")
	} else {
		b.WriteString(strconv.Quote(d.Value))
		b.WriteByte('\n')
	}
}

func printVariableDefinition(b *strings.Builder, vd *VariableDefinition) {
	b.WriteByte('$')
	b.WriteString(vd.Variable.Name.Value)
	b.WriteString(": ")
	b.WriteString(vd.Type.String())
	if vd.DefaultValue != nil {
		b.WriteString(" = ")
		printNode(b, vd.DefaultValue, 0)
	}
	printDirectives(b, vd.Directives)
}
