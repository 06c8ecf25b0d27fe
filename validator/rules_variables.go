package validator

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/schema"
)

// resolveType looks up t against s, mirroring schemabuild's own
// resolver but read-only: an unknown name resolves to nil rather than
// registering an error (callers report their own diagnostics).
func resolveType(s *schema.Schema, t ast.Type) schema.Type {
	switch n := t.(type) {
	case *ast.NonNullType:
		inner := resolveType(s, n.Type)
		if inner == nil {
			return nil
		}
		return &schema.NonNull{Type: inner}
	case *ast.ListType:
		inner := resolveType(s, n.Type)
		if inner == nil {
			return nil
		}
		return &schema.List{Type: inner}
	case *ast.NamedType:
		return s.TypeByName(n.Name.Value)
	}
	return nil
}

// RuleVariablesAreInputTypes requires every `$var: Type` declaration
// to name an input type (Scalar, Enum, or InputObject, through any
// List/NonNull wrapping) (graphql-spec 5.8.2).
func RuleVariablesAreInputTypes(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			vd, ok := node.(*ast.VariableDefinition)
			if !ok {
				return ast.Continue
			}
			t := resolveType(ctx.Schema, vd.Type)
			if t == nil {
				ctx.addErr(vd.Loc, "VariablesAreInputTypes", "Unknown type %q.", vd.Type.String())
				return ast.Continue
			}
			if !schema.IsInputType(t) {
				ctx.addErr(vd.Loc, "VariablesAreInputTypes",
					"Variable %q cannot be of non-input type %q.", vd.Variable.Name.Value, vd.Type.String())
			}
			return ast.Continue
		},
	}
}

// RuleNoUndefinedVariables requires every `$var` used within an
// operation to be declared on that operation (graphql-spec 5.8.3).
func RuleNoUndefinedVariables(ctx *Context) ast.Visitor {
	var declared map[string]bool
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			switch n := node.(type) {
			case *ast.OperationDefinition:
				declared = make(map[string]bool, len(n.VariableDefinitions))
				for _, vd := range n.VariableDefinitions {
					declared[vd.Variable.Name.Value] = true
				}
			case *ast.Variable:
				if declared != nil && !declared[n.Name.Value] {
					ctx.addErr(n.Loc, "NoUndefinedVariables", "Variable %q is not defined.", n.Name.Value)
				}
			}
			return ast.Continue
		},
	}
}

// RuleNoUnusedVariables requires every `$var` declared on an
// operation to be referenced somewhere within it, directly or via a
// spread fragment (graphql-spec 5.8.4).
func RuleNoUnusedVariables(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			op, ok := node.(*ast.OperationDefinition)
			if !ok || len(op.VariableDefinitions) == 0 {
				return ast.Continue
			}
			used := make(map[string]bool)
			visited := make(map[string]bool)
			markDirectives := func(dirs []*ast.Directive) {
				for _, d := range dirs {
					for _, a := range d.Arguments {
						markVars(a.Value, used)
					}
				}
			}
			markDirectives(op.Directives)
			var walkSel func(sel *ast.SelectionSet)
			walkSel = func(sel *ast.SelectionSet) {
				if sel == nil {
					return
				}
				for _, s := range sel.Selections {
					switch v := s.(type) {
					case *ast.Field:
						for _, a := range v.Arguments {
							markVars(a.Value, used)
						}
						markDirectives(v.Directives)
						walkSel(v.SelectionSet)
					case *ast.InlineFragment:
						markDirectives(v.Directives)
						walkSel(v.SelectionSet)
					case *ast.FragmentSpread:
						markDirectives(v.Directives)
						if visited[v.Name.Value] {
							continue
						}
						visited[v.Name.Value] = true
						if frag := ctx.Fragments[v.Name.Value]; frag != nil {
							walkSel(frag.SelectionSet)
						}
					}
				}
			}
			walkSel(op.SelectionSet)
			for _, vd := range op.VariableDefinitions {
				name := vd.Variable.Name.Value
				if !used[name] {
					opName := "<anonymous>"
					if op.Name != nil {
						opName = op.Name.Value
					}
					ctx.addErr(vd.Loc, "NoUnusedVariables", "Variable \"$%s\" is never used in operation %q.", name, opName)
				}
			}
			return ast.Continue
		},
	}
}

// RuleVariablesInAllowedPosition requires each `$variable` usage to be
// compatible with the declared type of the location it's used in --
// same type, a narrower (non-null) variable feeding a wider location,
// or a nullable variable with a non-null default feeding a non-null
// location (graphql-spec 5.8.5).
func RuleVariablesInAllowedPosition(ctx *Context) ast.Visitor {
	var varDefs map[string]*ast.VariableDefinition
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			switch n := node.(type) {
			case *ast.OperationDefinition:
				varDefs = make(map[string]*ast.VariableDefinition, len(n.VariableDefinitions))
				for _, vd := range n.VariableDefinitions {
					varDefs[vd.Variable.Name.Value] = vd
				}
			case *ast.Variable:
				vd, ok := varDefs[n.Name.Value]
				if !ok {
					return ast.Continue
				}
				locType := ctx.InputType()
				if locType == nil {
					return ast.Continue
				}
				varType := resolveType(ctx.Schema, vd.Type)
				if varType == nil {
					return ast.Continue
				}
				if !isVariableUsageAllowed(varType, vd, locType) {
					ctx.addErr(n.Loc, "VariablesInAllowedPosition",
						"Variable \"$%s\" of type %q cannot be used for type %q.", n.Name.Value, vd.Type.String(), locType.String())
				}
			}
			return ast.Continue
		},
	}
}

func isVariableUsageAllowed(varType schema.Type, varDef *ast.VariableDefinition, locType schema.Type) bool {
	if nn, ok := locType.(*schema.NonNull); ok {
		if _, varIsNonNull := varType.(*schema.NonNull); !varIsNonNull {
			if !hasNonNullDefault(varDef) {
				return false
			}
			return isTypeSubTypeOf(varType, nn.Type)
		}
	}
	return isTypeSubTypeOf(varType, locType)
}

func hasNonNullDefault(varDef *ast.VariableDefinition) bool {
	if varDef.DefaultValue == nil {
		return false
	}
	_, isNull := varDef.DefaultValue.(*ast.NullValue)
	return !isNull
}

// isTypeSubTypeOf reports whether a value of maybeSubType is always
// usable where superType is expected: identical, a non-null of a
// compatible inner type, or a list whose element type recursively
// satisfies the same relation.
func isTypeSubTypeOf(maybeSubType, superType schema.Type) bool {
	if sup, ok := superType.(*schema.NonNull); ok {
		sub, ok := maybeSubType.(*schema.NonNull)
		if !ok {
			return false
		}
		return isTypeSubTypeOf(sub.Type, sup.Type)
	}
	if sub, ok := maybeSubType.(*schema.NonNull); ok {
		return isTypeSubTypeOf(sub.Type, superType)
	}
	if supList, ok := superType.(*schema.List); ok {
		subList, ok := maybeSubType.(*schema.List)
		if !ok {
			return false
		}
		return isTypeSubTypeOf(subList.Type, supList.Type)
	}
	if _, ok := maybeSubType.(*schema.List); ok {
		return false
	}
	subNamed, ok1 := maybeSubType.(schema.NamedType)
	supNamed, ok2 := superType.(schema.NamedType)
	return ok1 && ok2 && subNamed.TypeName() == supNamed.TypeName()
}

func markVars(v ast.Value, used map[string]bool) {
	switch val := v.(type) {
	case *ast.Variable:
		used[val.Name.Value] = true
	case *ast.ListValue:
		for _, e := range val.Values {
			markVars(e, used)
		}
	case *ast.ObjectValue:
		for _, f := range val.Fields {
			markVars(f.Value, used)
		}
	}
}
