package validator

import "github.com/coregraph/graphql/ast"

// RuleExecutableDefinitions requires every top-level definition in the
// document to be an operation or a fragment -- a document handed to
// the validator/executor must not carry SDL type-system definitions
// (graphql-spec 5.1.1).
func RuleExecutableDefinitions(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			doc, ok := node.(*ast.Document)
			if !ok {
				return ast.Continue
			}
			for _, def := range doc.Definitions {
				switch def.(type) {
				case *ast.OperationDefinition, *ast.FragmentDefinition:
				default:
					ctx.addErr(def.Location(), "ExecutableDefinitions",
						"The %q definition is not executable.", def.Kind())
				}
			}
			return ast.Continue
		},
	}
}

// RuleSingleFieldSubscriptions requires a subscription operation to
// select exactly one field (spec §4.5, graphql-spec 6.2.3.1).
func RuleSingleFieldSubscriptions(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			op, ok := node.(*ast.OperationDefinition)
			if !ok || op.Operation != ast.Subscription {
				return ast.Continue
			}
			if n := countNonIntrospectionSelections(ctx, op.SelectionSet); n != 1 {
				name := "<anonymous>"
				if op.Name != nil {
					name = op.Name.Value
				}
				ctx.addErr(op.Loc, "SingleFieldSubscriptions",
					"Subscription %q must select only one top level field.", name)
			}
			return ast.Continue
		},
	}
}

func countNonIntrospectionSelections(ctx *Context, set *ast.SelectionSet) int {
	n := 0
	for _, sel := range set.Selections {
		if f, ok := sel.(*ast.Field); ok {
			if f.Name.Value == "__typename" {
				continue
			}
			n++
		} else {
			n++
		}
	}
	return n
}

// RuleKnownFragmentNames requires every `...Name` spread to
// reference a fragment defined somewhere in the document.
func RuleKnownFragmentNames(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			spread, ok := node.(*ast.FragmentSpread)
			if !ok {
				return ast.Continue
			}
			if _, ok := ctx.Fragments[spread.Name.Value]; !ok {
				ctx.addErr(spread.Loc, "KnownFragmentNames", "Unknown fragment %q.", spread.Name.Value)
			}
			return ast.Continue
		},
	}
}

// RuleNoUnusedFragments requires every fragment defined in the
// document to be spread somewhere reachable from an operation.
func RuleNoUnusedFragments(ctx *Context) ast.Visitor {
	used := make(map[string]bool)
	inOperation := false
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			switch n := node.(type) {
			case *ast.OperationDefinition:
				inOperation = true
			case *ast.FragmentDefinition:
				inOperation = false
			case *ast.FragmentSpread:
				// Spreads inside fragments count only once their
				// fragment is reached, in the closure below.
				if inOperation {
					used[n.Name.Value] = true
				}
			}
			return ast.Continue
		},
		Leave: func(node ast.Node, _ string, _ int) {
			if _, ok := node.(*ast.Document); !ok {
				return
			}
			changed := true
			for changed {
				changed = false
				for name := range used {
					frag := ctx.Fragments[name]
					if frag == nil {
						continue
					}
					ast.Walk(ast.Visitor{Enter: func(n ast.Node, _ string, _ int) ast.Action {
						if sp, ok := n.(*ast.FragmentSpread); ok && !used[sp.Name.Value] {
							used[sp.Name.Value] = true
							changed = true
						}
						return ast.Continue
					}}, frag.SelectionSet)
				}
			}
			for name, frag := range ctx.Fragments {
				if !used[name] {
					ctx.addErr(frag.Loc, "NoUnusedFragments", "Fragment %q is never used.", name)
				}
			}
		},
	}
}

// RuleNoFragmentCycles rejects a fragment that spreads itself,
// directly or transitively.
func RuleNoFragmentCycles(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			frag, ok := node.(*ast.FragmentDefinition)
			if !ok {
				return ast.Continue
			}
			visited := map[string]bool{frag.Name.Value: true}
			path := []string{frag.Name.Value}
			var walk func(sel *ast.SelectionSet) bool
			walk = func(sel *ast.SelectionSet) bool {
				for _, s := range sel.Selections {
					switch v := s.(type) {
					case *ast.FragmentSpread:
						if v.Name.Value == frag.Name.Value {
							ctx.addErr(frag.Loc, "NoFragmentCycles",
								"Cannot spread fragment %q within itself.", frag.Name.Value)
							return true
						}
						if visited[v.Name.Value] {
							continue
						}
						visited[v.Name.Value] = true
						if other := ctx.Fragments[v.Name.Value]; other != nil {
							path = append(path, v.Name.Value)
							if walk(other.SelectionSet) {
								return true
							}
							path = path[:len(path)-1]
						}
					case *ast.InlineFragment:
						if walk(v.SelectionSet) {
							return true
						}
					case *ast.Field:
						if v.SelectionSet != nil && walk(v.SelectionSet) {
							return true
						}
					}
				}
				return false
			}
			walk(frag.SelectionSet)
			return ast.Continue
		},
	}
}

// RuleUniqueFragmentNames rejects two fragment definitions sharing a
// name.
func RuleUniqueFragmentNames(ctx *Context) ast.Visitor {
	seen := make(map[string]bool)
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			frag, ok := node.(*ast.FragmentDefinition)
			if !ok {
				return ast.Continue
			}
			if seen[frag.Name.Value] {
				ctx.addErr(frag.Loc, "UniqueFragmentNames", "There can be only one fragment named %q.", frag.Name.Value)
			}
			seen[frag.Name.Value] = true
			return ast.Continue
		},
	}
}

// RuleUniqueOperationNames rejects two named operations sharing a
// name.
func RuleUniqueOperationNames(ctx *Context) ast.Visitor {
	seen := make(map[string]bool)
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			op, ok := node.(*ast.OperationDefinition)
			if !ok || op.Name == nil {
				return ast.Continue
			}
			if seen[op.Name.Value] {
				ctx.addErr(op.Loc, "UniqueOperationNames", "There can be only one operation named %q.", op.Name.Value)
			}
			seen[op.Name.Value] = true
			return ast.Continue
		},
	}
}

// RuleLoneAnonymousOperation rejects an anonymous operation when the
// document defines more than one operation, since there would be no
// way to address the anonymous one when several are present
// (graphql-spec 5.2.2.1).
func RuleLoneAnonymousOperation(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			doc, ok := node.(*ast.Document)
			if !ok {
				return ast.Continue
			}
			var anonymous []*ast.OperationDefinition
			total := 0
			for _, def := range doc.Definitions {
				if op, ok := def.(*ast.OperationDefinition); ok {
					total++
					if op.Name == nil {
						anonymous = append(anonymous, op)
					}
				}
			}
			if total > 1 {
				for _, op := range anonymous {
					ctx.addErr(op.Loc, "LoneAnonymousOperation",
						"This anonymous operation must be the only defined operation.")
				}
			}
			return ast.Continue
		},
	}
}

// RuleUniqueVariableNames rejects a `$x` declared twice on the same
// operation.
func RuleUniqueVariableNames(ctx *Context) ast.Visitor {
	return ast.Visitor{
		Enter: func(node ast.Node, _ string, _ int) ast.Action {
			op, ok := node.(*ast.OperationDefinition)
			if !ok {
				return ast.Continue
			}
			seen := make(map[string]bool)
			for _, vd := range op.VariableDefinitions {
				name := vd.Variable.Name.Value
				if seen[name] {
					ctx.addErr(vd.Loc, "UniqueVariableNames", "There can be only one variable named \"$%s\".", name)
				}
				seen[name] = true
			}
			return ast.Continue
		},
	}
}
