package schema

// DirectiveLocation names one of the places a directive definition
// may legally be applied (spec §5.7, mirrors the teacher's
// DirectiveLocation constants).
type DirectiveLocation string

const (
	LocQuery              DirectiveLocation = "QUERY"
	LocMutation            DirectiveLocation = "MUTATION"
	LocSubscription        DirectiveLocation = "SUBSCRIPTION"
	LocField               DirectiveLocation = "FIELD"
	LocFragmentDefinition  DirectiveLocation = "FRAGMENT_DEFINITION"
	LocFragmentSpread      DirectiveLocation = "FRAGMENT_SPREAD"
	LocInlineFragment      DirectiveLocation = "INLINE_FRAGMENT"
	LocVariableDefinition  DirectiveLocation = "VARIABLE_DEFINITION"

	LocSchema               DirectiveLocation = "SCHEMA"
	LocScalar               DirectiveLocation = "SCALAR"
	LocObject               DirectiveLocation = "OBJECT"
	LocFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocInterface            DirectiveLocation = "INTERFACE"
	LocUnion                DirectiveLocation = "UNION"
	LocEnum                 DirectiveLocation = "ENUM"
	LocEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// DefaultDeprecationReason is used when `@deprecated` is applied
// without an explicit `reason` argument.
const DefaultDeprecationReason = "No longer supported"

// DirectiveDefinition is a named, located directive signature, as
// declared by `directive @name(...) on LOC | LOC` (spec §5.7).
type DirectiveDefinition struct {
	Name        string
	Desc        string
	Locations   []DirectiveLocation
	Args        map[string]*Argument
	ArgOrder    []string
	Repeatable  bool
}

// AllowedAt reports whether this directive may be applied at loc.
func (d *DirectiveDefinition) AllowedAt(loc DirectiveLocation) bool {
	for _, l := range d.Locations {
		if l == loc {
			return true
		}
	}
	return false
}

// Directive is one `@name(args)` application, resolved against its
// DirectiveDefinition and carrying its coerced argument values
// (spec §5.7, §7.6 GetDirectiveArguments).
type Directive struct {
	Definition *DirectiveDefinition
	Arguments  map[string]interface{}
}

// Name is a convenience accessor equal to Definition.Name.
func (d *Directive) Name() string { return d.Definition.Name }

// IncludeDirective is the built-in `@include(if: Boolean!)`.
var IncludeDirective = &DirectiveDefinition{
	Name: "include",
	Desc: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Locations: []DirectiveLocation{
		LocField, LocFragmentSpread, LocInlineFragment,
	},
}

// SkipDirective is the built-in `@skip(if: Boolean!)`.
var SkipDirective = &DirectiveDefinition{
	Name: "skip",
	Desc: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Locations: []DirectiveLocation{
		LocField, LocFragmentSpread, LocInlineFragment,
	},
}

// DeprecatedDirective is the built-in `@deprecated(reason: String)`.
var DeprecatedDirective = &DirectiveDefinition{
	Name: "deprecated",
	Desc: "Marks an element of a GraphQL schema as no longer supported.",
	Locations: []DirectiveLocation{
		LocFieldDefinition, LocEnumValue,
	},
}
