package schema

import (
	"sort"
	"strconv"
	"strings"
)

// Print renders s back to SDL text (spec §6 `print_schema`), with
// types and directives emitted in a deterministic order: root
// operation types first, then every named type and directive
// definition sorted by name -- independent of build-time discovery
// order, so two schemas with the same shape print identically (spec
// §8's printer-determinism property).
func Print(s *Schema) string {
	var b strings.Builder
	printSchemaDefinition(&b, s)

	names := make([]string, 0, len(s.Types))
	for n := range s.Types {
		if isBuiltinName(n) {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		b.WriteString("\n\n")
		printNamedType(&b, s.Types[n])
	}

	dnames := make([]string, 0, len(s.DirectiveDefs))
	for n := range s.DirectiveDefs {
		if isBuiltinDirective(n) {
			continue
		}
		dnames = append(dnames, n)
	}
	sort.Strings(dnames)
	for _, n := range dnames {
		b.WriteString("\n\n")
		printDirectiveDefinition(&b, s.DirectiveDefs[n])
	}
	return b.String()
}

func isBuiltinName(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID",
		"__Schema", "__Type", "__Field", "__InputValue", "__EnumValue", "__Directive", "__TypeKind", "__DirectiveLocation":
		return true
	}
	return false
}

func isBuiltinDirective(name string) bool {
	switch name {
	case "include", "skip", "deprecated":
		return true
	}
	return false
}

func printSchemaDefinition(b *strings.Builder, s *Schema) {
	b.WriteString("schema {\n")
	if s.Query != nil {
		b.WriteString("  query: " + s.Query.Name + "\n")
	}
	if s.Mutation != nil {
		b.WriteString("  mutation: " + s.Mutation.Name + "\n")
	}
	if s.Subscription != nil {
		b.WriteString("  subscription: " + s.Subscription.Name + "\n")
	}
	b.WriteString("}")
}

func printNamedType(b *strings.Builder, t NamedType) {
	switch v := t.(type) {
	case *Scalar:
		printDescription(b, v.Desc)
		b.WriteString("scalar " + v.Name)
	case *Object:
		printDescription(b, v.Desc)
		b.WriteString("type " + v.Name)
		printInterfaceList(b, v.Interfaces)
		printFields(b, v.Fields)
	case *Interface:
		printDescription(b, v.Desc)
		b.WriteString("interface " + v.Name)
		printInterfaceList(b, v.Interfaces)
		printFields(b, v.Fields)
	case *Union:
		printDescription(b, v.Desc)
		b.WriteString("union " + v.Name)
		if len(v.Types) > 0 {
			b.WriteString(" = ")
			for i, m := range v.Types {
				if i > 0 {
					b.WriteString(" | ")
				}
				b.WriteString(m.Name)
			}
		}
	case *Enum:
		printDescription(b, v.Desc)
		b.WriteString("enum " + v.Name + " {\n")
		for _, ev := range v.Values {
			printFieldDescription(b, ev.Desc)
			b.WriteString("  " + ev.Name)
			printDeprecated(b, ev.DeprecationReason)
			b.WriteString("\n")
		}
		b.WriteString("}")
	case *InputObject:
		printDescription(b, v.Desc)
		b.WriteString("input " + v.Name + " {\n")
		for _, name := range v.FieldOrder {
			f := v.Fields[name]
			printFieldDescription(b, f.Desc)
			b.WriteString("  " + name + ": " + f.Type.String())
			if f.HasDefault {
				b.WriteString(" = " + printDefault(f.DefaultValue))
			}
			b.WriteString("\n")
		}
		b.WriteString("}")
	}
}

func printInterfaceList(b *strings.Builder, ifaces []*Interface) {
	if len(ifaces) == 0 {
		return
	}
	b.WriteString(" implements ")
	for i, it := range ifaces {
		if i > 0 {
			b.WriteString(" & ")
		}
		b.WriteString(it.Name)
	}
}

func printFields(b *strings.Builder, fields FieldMap) {
	b.WriteString(" {\n")
	for _, name := range fields.FieldOrder {
		f, _ := fields.Get(name)
		printFieldDescription(b, f.Desc)
		b.WriteString("  " + name)
		if len(f.ArgOrder) > 0 {
			b.WriteString("(")
			for i, argName := range f.ArgOrder {
				if i > 0 {
					b.WriteString(", ")
				}
				a := f.Args[argName]
				b.WriteString(argName + ": " + a.Type.String())
				if a.HasDefault {
					b.WriteString(" = " + printDefault(a.DefaultValue))
				}
			}
			b.WriteString(")")
		}
		b.WriteString(": " + f.Type.String())
		printDeprecated(b, f.DeprecationReason)
		b.WriteString("\n")
	}
	b.WriteString("}")
}

func printDirectiveDefinition(b *strings.Builder, d *DirectiveDefinition) {
	printDescription(b, d.Desc)
	b.WriteString("directive @" + d.Name)
	if len(d.ArgOrder) > 0 {
		b.WriteString("(")
		for i, argName := range d.ArgOrder {
			if i > 0 {
				b.WriteString(", ")
			}
			a := d.Args[argName]
			b.WriteString(argName + ": " + a.Type.String())
		}
		b.WriteString(")")
	}
	if d.Repeatable {
		b.WriteString(" repeatable")
	}
	b.WriteString(" on ")
	for i, loc := range d.Locations {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(string(loc))
	}
}

func printDeprecated(b *strings.Builder, reason string) {
	if reason == "" {
		return
	}
	b.WriteString(" @deprecated")
	if reason != DefaultDeprecationReason {
		b.WriteString("(reason: " + strconv.Quote(reason) + ")")
	}
}

func printDescription(b *strings.Builder, desc string) {
	if desc == "" {
		return
	}
	b.WriteString(strconv.Quote(desc))
	b.WriteString("\n")
}

func printFieldDescription(b *strings.Builder, desc string) {
	if desc == "" {
		return
	}
	b.WriteString("  " + strconv.Quote(desc) + "\n")
}

func printDefault(v interface{}) string {
	switch n := v.(type) {
	case string:
		return strconv.Quote(n)
	case bool:
		if n {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case nil:
		return "null"
	default:
		return "null"
	}
}
