package ast

import "github.com/coregraph/graphql/graphqlerr"

// Value is the sum type of literal/variable positions accepted by
// arguments, list elements, object fields, and default values
// (spec §3 "Values").
type Value interface {
	Node
	isValue()
}

// Variable is a `$name` reference inside a value position.
type Variable struct {
	Name *Name
	Loc  graphqlerr.Location
}

func (v *Variable) Kind() Kind                    { return KindVariable }
func (v *Variable) Location() graphqlerr.Location { return v.Loc }
func (v *Variable) isValue()                      {}

// IntValue carries its decimal digits verbatim; the grammar
// guarantees no leading zero and no trailing NameStart/Digit/'.'.
type IntValue struct {
	Value string
	Loc   graphqlerr.Location
}

func (v *IntValue) Kind() Kind                    { return KindIntValue }
func (v *IntValue) Location() graphqlerr.Location { return v.Loc }
func (v *IntValue) isValue()                      {}

// FloatValue carries its source text verbatim (fractional and/or
// exponent part present).
type FloatValue struct {
	Value string
	Loc   graphqlerr.Location
}

func (v *FloatValue) Kind() Kind                    { return KindFloatValue }
func (v *FloatValue) Location() graphqlerr.Location { return v.Loc }
func (v *FloatValue) isValue()                      {}

// StringValue holds the decoded (escape-resolved) string. Block
// reports whether the literal was written as a `"""..."""` block
// string, whose value has already had BlockStringValue dedent
// applied by the lexer.
type StringValue struct {
	Value string
	Block bool
	Loc   graphqlerr.Location
}

func (v *StringValue) Kind() Kind                    { return KindStringValue }
func (v *StringValue) Location() graphqlerr.Location { return v.Loc }
func (v *StringValue) isValue()                      {}

// BooleanValue is `true` or `false`.
type BooleanValue struct {
	Value bool
	Loc   graphqlerr.Location
}

func (v *BooleanValue) Kind() Kind                    { return KindBooleanValue }
func (v *BooleanValue) Location() graphqlerr.Location { return v.Loc }
func (v *BooleanValue) isValue()                      {}

// NullValue is the literal `null`.
type NullValue struct {
	Loc graphqlerr.Location
}

func (v *NullValue) Kind() Kind                    { return KindNullValue }
func (v *NullValue) Location() graphqlerr.Location { return v.Loc }
func (v *NullValue) isValue()                      {}

// EnumValue is a bare NAME in a value position that is neither
// `true`, `false`, nor `null`.
type EnumValue struct {
	Value string
	Loc   graphqlerr.Location
}

func (v *EnumValue) Kind() Kind                    { return KindEnumValue }
func (v *EnumValue) Location() graphqlerr.Location { return v.Loc }
func (v *EnumValue) isValue()                      {}

// ListValue is `[ Value* ]`.
type ListValue struct {
	Values []Value
	Loc    graphqlerr.Location
}

func (v *ListValue) Kind() Kind                    { return KindListValue }
func (v *ListValue) Location() graphqlerr.Location { return v.Loc }
func (v *ListValue) isValue()                      {}

// ObjectField is one `name: Value` pair inside an ObjectValue.
type ObjectField struct {
	Name  *Name
	Value Value
	Loc   graphqlerr.Location
}

func (f *ObjectField) Kind() Kind                    { return KindObjectField }
func (f *ObjectField) Location() graphqlerr.Location { return f.Loc }

// ObjectValue is `{ ObjectField* }`.
type ObjectValue struct {
	Fields []*ObjectField
	Loc    graphqlerr.Location
}

func (v *ObjectValue) Kind() Kind                    { return KindObjectValue }
func (v *ObjectValue) Location() graphqlerr.Location { return v.Loc }
func (v *ObjectValue) isValue()                      {}

var (
	_ Value = (*Variable)(nil)
	_ Value = (*IntValue)(nil)
	_ Value = (*FloatValue)(nil)
	_ Value = (*StringValue)(nil)
	_ Value = (*BooleanValue)(nil)
	_ Value = (*NullValue)(nil)
	_ Value = (*EnumValue)(nil)
	_ Value = (*ListValue)(nil)
	_ Value = (*ObjectValue)(nil)
)
