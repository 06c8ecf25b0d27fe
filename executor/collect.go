package executor

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/coerce"
	"github.com/coregraph/graphql/schema"
	lru "github.com/hashicorp/golang-lru/v2"
)

// fieldGroup is every selection within one selection set that shares
// a response key, merged per spec §4.7 collect_fields -- two aliases
// of the same field name are distinct groups, but a field selected
// twice (directly and via a fragment) is one group with merged
// sub-selections.
type fieldGroup struct {
	ResponseKey string
	Fields      []*ast.Field
}

type collectKey struct {
	typeName string
	set      *ast.SelectionSet
}

// collector implements collect_fields (spec §4.7): walking a
// selection set, expanding fragments, honoring @skip/@include, and
// grouping by response key in first-occurrence order. Grounded on
// selections.go's ApplySelectionSet/Flatten, restructured as a single
// recursive accumulator instead of a two-pass flatten-then-group.
//
// Results are memoized per (runtime type, *ast.SelectionSet) for the
// lifetime of one execution: @skip/@include depend on the coerced
// variable map, which is fixed for that lifetime, so the cache never
// observes two different answers for the same key. The LRU bound
// exists only to cap memory on pathological fragment nesting, not to
// evict live results early.
type collector struct {
	schema    *schema.Schema
	fragments map[string]*ast.FragmentDefinition
	variables map[string]interface{}
	cache     *lru.Cache[collectKey, []*fieldGroup]
}

func newCollector(s *schema.Schema, fragments map[string]*ast.FragmentDefinition, variables map[string]interface{}) *collector {
	cache, _ := lru.New[collectKey, []*fieldGroup](256)
	return &collector{schema: s, fragments: fragments, variables: variables, cache: cache}
}

func (c *collector) collect(objType schema.NamedType, set *ast.SelectionSet) []*fieldGroup {
	key := collectKey{typeName: objType.TypeName(), set: set}
	if cached, ok := c.cache.Get(key); ok {
		return cached
	}
	groups := map[string]*fieldGroup{}
	var order []string
	c.collectInto(objType, set, map[string]bool{}, &order, groups)
	out := make([]*fieldGroup, len(order))
	for i, k := range order {
		out[i] = groups[k]
	}
	c.cache.Add(key, out)
	return out
}

func (c *collector) collectInto(objType schema.NamedType, set *ast.SelectionSet, visitedFragments map[string]bool, order *[]string, groups map[string]*fieldGroup) {
	if set == nil {
		return
	}
	for _, sel := range set.Selections {
		if !c.shouldInclude(selectionDirectives(sel)) {
			continue
		}
		switch s := sel.(type) {
		case *ast.Field:
			key := s.ResponseKey()
			g, ok := groups[key]
			if !ok {
				g = &fieldGroup{ResponseKey: key}
				groups[key] = g
				*order = append(*order, key)
			}
			g.Fields = append(g.Fields, s)
		case *ast.InlineFragment:
			if s.TypeCondition != nil && !c.fragmentApplies(objType, s.TypeCondition.Name.Value) {
				continue
			}
			c.collectInto(objType, s.SelectionSet, visitedFragments, order, groups)
		case *ast.FragmentSpread:
			name := s.Name.Value
			if visitedFragments[name] {
				continue
			}
			visitedFragments[name] = true
			frag, ok := c.fragments[name]
			if !ok {
				continue
			}
			if frag.TypeCondition != nil && !c.fragmentApplies(objType, frag.TypeCondition.Name.Value) {
				continue
			}
			c.collectInto(objType, frag.SelectionSet, visitedFragments, order, groups)
		}
	}
}

// fragmentApplies decides whether a fragment's type condition
// applies to a concrete runtime type (spec §4.7's "expanding
// fragments whose type condition matches, or carrying forward
// possible spreads on an abstract type").
func (c *collector) fragmentApplies(objType schema.NamedType, condName string) bool {
	if condName == objType.TypeName() {
		return true
	}
	obj, ok := objType.(*schema.Object)
	if !ok {
		return false
	}
	switch cond := c.schema.TypeByName(condName).(type) {
	case *schema.Interface:
		for _, iface := range obj.Interfaces {
			if iface.Name == condName {
				return true
			}
		}
	case *schema.Union:
		for _, t := range cond.Types {
			if t == obj {
				return true
			}
		}
	}
	return false
}

func selectionDirectives(sel ast.Selection) []*ast.Directive {
	switch s := sel.(type) {
	case *ast.Field:
		return s.Directives
	case *ast.InlineFragment:
		return s.Directives
	case *ast.FragmentSpread:
		return s.Directives
	}
	return nil
}

func findDirective(dirs []*ast.Directive, name string) *ast.Directive {
	for _, d := range dirs {
		if d.Name.Value == name {
			return d
		}
	}
	return nil
}

// shouldInclude evaluates @skip/@include against the coerced
// variable map (spec §4.7). Validation guarantees both directives'
// `if` argument is present and boolean-typed by the time execution
// runs, so a missing/malformed argument here degrades to "include".
func (c *collector) shouldInclude(dirs []*ast.Directive) bool {
	if skip := findDirective(dirs, "skip"); skip != nil {
		if v, ok := boolArg(skip, c.variables); ok && v {
			return false
		}
	}
	if include := findDirective(dirs, "include"); include != nil {
		v, ok := boolArg(include, c.variables)
		return !ok || v
	}
	return true
}

func boolArg(d *ast.Directive, vars map[string]interface{}) (bool, bool) {
	for _, a := range d.Arguments {
		if a.Name.Value != "if" {
			continue
		}
		v, err := coerce.Literal(nil, schema.Boolean, a.Value, vars, nil)
		if err != nil {
			return false, false
		}
		b, ok := v.(bool)
		return b, ok
	}
	return false, false
}

// mergedSelectionSet concatenates every occurrence's sub-selections
// into one set, as collect_fields requires when a composite field is
// selected more than once (spec §4.7).
func mergedSelectionSet(fields []*ast.Field) *ast.SelectionSet {
	var sels []ast.Selection
	for _, f := range fields {
		if f.SelectionSet != nil {
			sels = append(sels, f.SelectionSet.Selections...)
		}
	}
	if sels == nil {
		return nil
	}
	return &ast.SelectionSet{Selections: sels, Loc: fields[0].Loc}
}
