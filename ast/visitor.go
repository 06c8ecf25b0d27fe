package ast

// Action is returned by a Visitor's Enter callback to steer the walk
// (spec §4.3).
type Action int

const (
	// Continue descends into the node's children as usual.
	Continue Action = iota
	// SkipChildren visits Leave for the current node but does not
	// descend into its children.
	SkipChildren
	// Stop halts the walk entirely; no further Enter/Leave callbacks
	// fire, including Leave for the current node.
	Stop
	// Delete removes the current node from the tree. Only meaningful
	// to Transform; Walk ignores it like Continue since a read-only
	// walk has nowhere to record the removal.
	Delete
	// Replace substitutes the current node with the Node a
	// TransformVisitor callback returned alongside this action. Only
	// meaningful to Transform.
	Replace
)

// Visitor is invoked once per node in document order: Enter before
// its children, Leave after. ChildName/ChildIndex, when non-empty,
// identify which field of the parent the node was reached through
// (spec §4.3's on_child), letting a visitor distinguish e.g. a
// Field's Arguments from its Directives without a type switch.
type Visitor struct {
	Enter func(node Node, childName string, childIndex int) Action
	Leave func(node Node, childName string, childIndex int)
}

// Walk traverses node and every descendant in document order,
// invoking v's Enter/Leave callbacks. It returns Stop if the walk was
// halted early.
func Walk(v Visitor, node Node) Action {
	return walk(v, node, "", -1)
}

func walk(v Visitor, node Node, childName string, childIndex int) Action {
	if node == nil {
		return Continue
	}
	action := Continue
	if v.Enter != nil {
		action = v.Enter(node, childName, childIndex)
	}
	if action == Stop {
		return Stop
	}
	if action != SkipChildren {
		if walkChildren(v, node) == Stop {
			return Stop
		}
	}
	if v.Leave != nil {
		v.Leave(node, childName, childIndex)
	}
	return Continue
}

func walkList(v Visitor, name string, nodes []Node) Action {
	for i, n := range nodes {
		if walk(v, n, name, i) == Stop {
			return Stop
		}
	}
	return Continue
}

// walkChildren dispatches by concrete type to visit each child field.
// A node kind without a case here, such as the type-system extension
// definitions, walks as a leaf.
func walkChildren(v Visitor, node Node) Action {
	switch n := node.(type) {
	case *Document:
		defs := make([]Node, len(n.Definitions))
		for i, d := range n.Definitions {
			defs[i] = d
		}
		return walkList(v, "Definitions", defs)
	case *OperationDefinition:
		if n.Name != nil {
			if walk(v, n.Name, "Name", -1) == Stop {
				return Stop
			}
		}
		for i, vd := range n.VariableDefinitions {
			if walk(v, vd, "VariableDefinitions", i) == Stop {
				return Stop
			}
		}
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		return walk(v, n.SelectionSet, "SelectionSet", -1)
	case *VariableDefinition:
		if walk(v, n.Variable, "Variable", -1) == Stop {
			return Stop
		}
		if walk(v, n.Type, "Type", -1) == Stop {
			return Stop
		}
		if n.DefaultValue != nil {
			if walk(v, n.DefaultValue, "DefaultValue", -1) == Stop {
				return Stop
			}
		}
		return walkDirectives(v, n.Directives)
	case *SelectionSet:
		sels := make([]Node, len(n.Selections))
		for i, s := range n.Selections {
			sels[i] = s
		}
		return walkList(v, "Selections", sels)
	case *Field:
		if n.Alias != nil {
			if walk(v, n.Alias, "Alias", -1) == Stop {
				return Stop
			}
		}
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		for i, a := range n.Arguments {
			if walk(v, a, "Arguments", i) == Stop {
				return Stop
			}
		}
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		if n.SelectionSet != nil {
			return walk(v, n.SelectionSet, "SelectionSet", -1)
		}
		return Continue
	case *FragmentSpread:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		return walkDirectives(v, n.Directives)
	case *InlineFragment:
		if n.TypeCondition != nil {
			if walk(v, n.TypeCondition, "TypeCondition", -1) == Stop {
				return Stop
			}
		}
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		return walk(v, n.SelectionSet, "SelectionSet", -1)
	case *FragmentDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		if walk(v, n.TypeCondition, "TypeCondition", -1) == Stop {
			return Stop
		}
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		return walk(v, n.SelectionSet, "SelectionSet", -1)
	case *Argument:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		return walk(v, n.Value, "Value", -1)
	case *Directive:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		for i, a := range n.Arguments {
			if walk(v, a, "Arguments", i) == Stop {
				return Stop
			}
		}
		return Continue
	case *ListValue:
		vals := make([]Node, len(n.Values))
		for i, val := range n.Values {
			vals[i] = val
		}
		return walkList(v, "Values", vals)
	case *ObjectValue:
		for i, f := range n.Fields {
			if walk(v, f, "Fields", i) == Stop {
				return Stop
			}
		}
		return Continue
	case *ObjectField:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		return walk(v, n.Value, "Value", -1)
	case *Variable:
		return walk(v, n.Name, "Name", -1)
	case *ListType:
		return walk(v, n.Type, "Type", -1)
	case *NonNullType:
		return walk(v, n.Type, "Type", -1)
	case *NamedType:
		return walk(v, n.Name, "Name", -1)

	// Type-system nodes.
	case *SchemaDefinition:
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		for i, ot := range n.OperationTypes {
			if walk(v, ot, "OperationTypes", i) == Stop {
				return Stop
			}
		}
		return Continue
	case *OperationTypeDefinition:
		return walk(v, n.Type, "Type", -1)
	case *ScalarTypeDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		return walkDirectives(v, n.Directives)
	case *ObjectTypeDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		for i, it := range n.Interfaces {
			if walk(v, it, "Interfaces", i) == Stop {
				return Stop
			}
		}
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		for i, f := range n.Fields {
			if walk(v, f, "Fields", i) == Stop {
				return Stop
			}
		}
		return Continue
	case *InterfaceTypeDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		for i, it := range n.Interfaces {
			if walk(v, it, "Interfaces", i) == Stop {
				return Stop
			}
		}
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		for i, f := range n.Fields {
			if walk(v, f, "Fields", i) == Stop {
				return Stop
			}
		}
		return Continue
	case *UnionTypeDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		for i, t := range n.Types {
			if walk(v, t, "Types", i) == Stop {
				return Stop
			}
		}
		return Continue
	case *EnumTypeDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		for i, ev := range n.Values {
			if walk(v, ev, "Values", i) == Stop {
				return Stop
			}
		}
		return Continue
	case *EnumValueDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		return walkDirectives(v, n.Directives)
	case *InputObjectTypeDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		if walkDirectives(v, n.Directives) == Stop {
			return Stop
		}
		for i, f := range n.Fields {
			if walk(v, f, "Fields", i) == Stop {
				return Stop
			}
		}
		return Continue
	case *FieldDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		for i, a := range n.Arguments {
			if walk(v, a, "Arguments", i) == Stop {
				return Stop
			}
		}
		if walk(v, n.Type, "Type", -1) == Stop {
			return Stop
		}
		return walkDirectives(v, n.Directives)
	case *InputValueDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		if walk(v, n.Type, "Type", -1) == Stop {
			return Stop
		}
		if n.DefaultValue != nil {
			if walk(v, n.DefaultValue, "DefaultValue", -1) == Stop {
				return Stop
			}
		}
		return walkDirectives(v, n.Directives)
	case *DirectiveDefinition:
		if walk(v, n.Name, "Name", -1) == Stop {
			return Stop
		}
		for i, a := range n.Arguments {
			if walk(v, a, "Arguments", i) == Stop {
				return Stop
			}
		}
		for i, l := range n.Locations {
			if walk(v, l, "Locations", i) == Stop {
				return Stop
			}
		}
		return Continue
	default:
		// Extensions and leaves (Name, values): no children to
		// dispatch generically, or none at all.
		return Continue
	}
}

func walkDirectives(v Visitor, directives []*Directive) Action {
	for i, d := range directives {
		if walk(v, d, "Directives", i) == Stop {
			return Stop
		}
	}
	return Continue
}

// TransformVisitor is the tree-rewriting counterpart of Visitor. Enter
// and Leave steer the walk with the same Action sentinels Visitor
// uses, plus Delete (drop the current node) and Replace (substitute
// the returned Node for it); the returned Node is only consulted when
// the action is Replace. Transform rebuilds the tree bottom-up from
// these decisions, reusing any subtree Enter/Leave left untouched
// (spec §4.3: "Transformers use the same protocol and produce a new
// tree").
type TransformVisitor struct {
	Enter func(node Node, childName string, childIndex int) (Action, Node)
	Leave func(node Node, childName string, childIndex int) (Action, Node)
}

// Transform walks node with tv in document order and returns the
// resulting tree, or nil if node itself was deleted.
func Transform(tv TransformVisitor, node Node) Node {
	out, _ := transformNode(tv, node, "", -1)
	return out
}

func transformNode(tv TransformVisitor, node Node, childName string, childIndex int) (Node, Action) {
	if node == nil {
		return nil, Continue
	}
	action := Continue
	if tv.Enter != nil {
		var repl Node
		action, repl = tv.Enter(node, childName, childIndex)
		switch action {
		case Stop:
			return node, Stop
		case Delete:
			return nil, Continue
		case Replace:
			node = repl
			if node == nil {
				return nil, Continue
			}
		}
	}
	if action != SkipChildren && action != Replace {
		child, childAction := transformChildren(tv, node)
		node = child
		if childAction == Stop {
			return node, Stop
		}
	}
	if node != nil && tv.Leave != nil {
		lAction, lRepl := tv.Leave(node, childName, childIndex)
		switch lAction {
		case Stop:
			return node, Stop
		case Delete:
			return nil, Continue
		case Replace:
			return lRepl, Continue
		}
	}
	return node, Continue
}

// transformList visits each node in nodes and returns the surviving,
// possibly-replaced set in order; a deleted element is simply
// dropped.
func transformList(tv TransformVisitor, name string, nodes []Node) ([]Node, Action) {
	out := make([]Node, 0, len(nodes))
	for i, n := range nodes {
		child, action := transformNode(tv, n, name, i)
		if child != nil {
			out = append(out, child)
		}
		if action == Stop {
			return out, Stop
		}
	}
	return out, Continue
}

func transformDirectives(tv TransformVisitor, directives []*Directive) ([]*Directive, Action) {
	nodes := make([]Node, len(directives))
	for i, d := range directives {
		nodes[i] = d
	}
	out, action := transformList(tv, "Directives", nodes)
	result := make([]*Directive, len(out))
	for i, n := range out {
		result[i] = n.(*Directive)
	}
	return result, action
}

// transformChildren rebuilds node's children via tv and returns a
// shallow copy of node reflecting any deletion/replacement, or node
// itself unchanged for leaves. It mirrors walkChildren's dispatch;
// node kinds with no children (values, names, extensions) pass
// through untouched.
func transformChildren(tv TransformVisitor, node Node) (Node, Action) {
	switch n := node.(type) {
	case *Document:
		defs := make([]Node, len(n.Definitions))
		for i, d := range n.Definitions {
			defs[i] = d
		}
		out, action := transformList(tv, "Definitions", defs)
		cp := *n
		cp.Definitions = make([]Definition, len(out))
		for i, d := range out {
			cp.Definitions[i] = d.(Definition)
		}
		return &cp, action
	case *OperationDefinition:
		cp := *n
		if cp.Name != nil {
			child, action := transformNode(tv, cp.Name, "Name", -1)
			if action == Stop {
				return &cp, Stop
			}
			if child == nil {
				cp.Name = nil
			} else {
				cp.Name = child.(*Name)
			}
		}
		vds := make([]Node, len(cp.VariableDefinitions))
		for i, vd := range cp.VariableDefinitions {
			vds[i] = vd
		}
		vdsOut, action := transformList(tv, "VariableDefinitions", vds)
		cp.VariableDefinitions = make([]*VariableDefinition, len(vdsOut))
		for i, vd := range vdsOut {
			cp.VariableDefinitions[i] = vd.(*VariableDefinition)
		}
		if action == Stop {
			return &cp, Stop
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		ss, action := transformNode(tv, cp.SelectionSet, "SelectionSet", -1)
		if ss != nil {
			cp.SelectionSet = ss.(*SelectionSet)
		} else {
			cp.SelectionSet = nil
		}
		return &cp, action
	case *VariableDefinition:
		cp := *n
		if v, action := transformNode(tv, cp.Variable, "Variable", -1); true {
			if v != nil {
				cp.Variable = v.(*Variable)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		if t, action := transformNode(tv, cp.Type, "Type", -1); true {
			if t != nil {
				cp.Type = t.(Type)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		if cp.DefaultValue != nil {
			v, action := transformNode(tv, cp.DefaultValue, "DefaultValue", -1)
			if v != nil {
				cp.DefaultValue = v.(Value)
			} else {
				cp.DefaultValue = nil
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		return &cp, action
	case *SelectionSet:
		sels := make([]Node, len(n.Selections))
		for i, s := range n.Selections {
			sels[i] = s
		}
		out, action := transformList(tv, "Selections", sels)
		cp := *n
		cp.Selections = make([]Selection, len(out))
		for i, s := range out {
			cp.Selections[i] = s.(Selection)
		}
		return &cp, action
	case *Field:
		cp := *n
		if cp.Alias != nil {
			a, action := transformNode(tv, cp.Alias, "Alias", -1)
			if a != nil {
				cp.Alias = a.(*Name)
			} else {
				cp.Alias = nil
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		args := make([]Node, len(cp.Arguments))
		for i, a := range cp.Arguments {
			args[i] = a
		}
		argsOut, action := transformList(tv, "Arguments", args)
		cp.Arguments = make([]*Argument, len(argsOut))
		for i, a := range argsOut {
			cp.Arguments[i] = a.(*Argument)
		}
		if action == Stop {
			return &cp, Stop
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		if cp.SelectionSet != nil {
			ss, action := transformNode(tv, cp.SelectionSet, "SelectionSet", -1)
			if ss != nil {
				cp.SelectionSet = ss.(*SelectionSet)
			} else {
				cp.SelectionSet = nil
			}
			return &cp, action
		}
		return &cp, Continue
	case *FragmentSpread:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		return &cp, action
	case *InlineFragment:
		cp := *n
		if cp.TypeCondition != nil {
			tc, action := transformNode(tv, cp.TypeCondition, "TypeCondition", -1)
			if tc != nil {
				cp.TypeCondition = tc.(*NamedType)
			} else {
				cp.TypeCondition = nil
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		ss, action := transformNode(tv, cp.SelectionSet, "SelectionSet", -1)
		if ss != nil {
			cp.SelectionSet = ss.(*SelectionSet)
		} else {
			cp.SelectionSet = nil
		}
		return &cp, action
	case *FragmentDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		if tc, action := transformNode(tv, cp.TypeCondition, "TypeCondition", -1); true {
			if tc != nil {
				cp.TypeCondition = tc.(*NamedType)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		ss, action := transformNode(tv, cp.SelectionSet, "SelectionSet", -1)
		if ss != nil {
			cp.SelectionSet = ss.(*SelectionSet)
		} else {
			cp.SelectionSet = nil
		}
		return &cp, action
	case *Argument:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		v, action := transformNode(tv, cp.Value, "Value", -1)
		if v != nil {
			cp.Value = v.(Value)
		}
		return &cp, action
	case *Directive:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		args := make([]Node, len(cp.Arguments))
		for i, a := range cp.Arguments {
			args[i] = a
		}
		out, action := transformList(tv, "Arguments", args)
		cp.Arguments = make([]*Argument, len(out))
		for i, a := range out {
			cp.Arguments[i] = a.(*Argument)
		}
		return &cp, action
	case *ListValue:
		vals := make([]Node, len(n.Values))
		for i, val := range n.Values {
			vals[i] = val
		}
		out, action := transformList(tv, "Values", vals)
		cp := *n
		cp.Values = make([]Value, len(out))
		for i, val := range out {
			cp.Values[i] = val.(Value)
		}
		return &cp, action
	case *ObjectValue:
		fields := make([]Node, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = f
		}
		out, action := transformList(tv, "Fields", fields)
		cp := *n
		cp.Fields = make([]*ObjectField, len(out))
		for i, f := range out {
			cp.Fields[i] = f.(*ObjectField)
		}
		return &cp, action
	case *ObjectField:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		v, action := transformNode(tv, cp.Value, "Value", -1)
		if v != nil {
			cp.Value = v.(Value)
		}
		return &cp, action
	case *Variable:
		cp := *n
		name, action := transformNode(tv, cp.Name, "Name", -1)
		if name != nil {
			cp.Name = name.(*Name)
		}
		return &cp, action
	case *ListType:
		cp := *n
		t, action := transformNode(tv, cp.Type, "Type", -1)
		if t != nil {
			cp.Type = t.(Type)
		}
		return &cp, action
	case *NonNullType:
		cp := *n
		t, action := transformNode(tv, cp.Type, "Type", -1)
		if t != nil {
			cp.Type = t.(Type)
		}
		return &cp, action
	case *NamedType:
		cp := *n
		name, action := transformNode(tv, cp.Name, "Name", -1)
		if name != nil {
			cp.Name = name.(*Name)
		}
		return &cp, action

	// Type-system nodes.
	case *SchemaDefinition:
		cp := *n
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		ots := make([]Node, len(cp.OperationTypes))
		for i, ot := range cp.OperationTypes {
			ots[i] = ot
		}
		out, action := transformList(tv, "OperationTypes", ots)
		cp.OperationTypes = make([]*OperationTypeDefinition, len(out))
		for i, ot := range out {
			cp.OperationTypes[i] = ot.(*OperationTypeDefinition)
		}
		return &cp, action
	case *OperationTypeDefinition:
		cp := *n
		t, action := transformNode(tv, cp.Type, "Type", -1)
		if t != nil {
			cp.Type = t.(*NamedType)
		}
		return &cp, action
	case *ScalarTypeDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		return &cp, action
	case *ObjectTypeDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		ifaces := make([]Node, len(cp.Interfaces))
		for i, it := range cp.Interfaces {
			ifaces[i] = it
		}
		ifacesOut, action := transformList(tv, "Interfaces", ifaces)
		cp.Interfaces = make([]*NamedType, len(ifacesOut))
		for i, it := range ifacesOut {
			cp.Interfaces[i] = it.(*NamedType)
		}
		if action == Stop {
			return &cp, Stop
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		fields := make([]Node, len(cp.Fields))
		for i, f := range cp.Fields {
			fields[i] = f
		}
		out, action := transformList(tv, "Fields", fields)
		cp.Fields = make([]*FieldDefinition, len(out))
		for i, f := range out {
			cp.Fields[i] = f.(*FieldDefinition)
		}
		return &cp, action
	case *InterfaceTypeDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		ifaces := make([]Node, len(cp.Interfaces))
		for i, it := range cp.Interfaces {
			ifaces[i] = it
		}
		ifacesOut, action := transformList(tv, "Interfaces", ifaces)
		cp.Interfaces = make([]*NamedType, len(ifacesOut))
		for i, it := range ifacesOut {
			cp.Interfaces[i] = it.(*NamedType)
		}
		if action == Stop {
			return &cp, Stop
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		fields := make([]Node, len(cp.Fields))
		for i, f := range cp.Fields {
			fields[i] = f
		}
		out, action := transformList(tv, "Fields", fields)
		cp.Fields = make([]*FieldDefinition, len(out))
		for i, f := range out {
			cp.Fields[i] = f.(*FieldDefinition)
		}
		return &cp, action
	case *UnionTypeDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		types := make([]Node, len(cp.Types))
		for i, t := range cp.Types {
			types[i] = t
		}
		out, action := transformList(tv, "Types", types)
		cp.Types = make([]*NamedType, len(out))
		for i, t := range out {
			cp.Types[i] = t.(*NamedType)
		}
		return &cp, action
	case *EnumTypeDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		values := make([]Node, len(cp.Values))
		for i, ev := range cp.Values {
			values[i] = ev
		}
		out, action := transformList(tv, "Values", values)
		cp.Values = make([]*EnumValueDefinition, len(out))
		for i, ev := range out {
			cp.Values[i] = ev.(*EnumValueDefinition)
		}
		return &cp, action
	case *EnumValueDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		return &cp, action
	case *InputObjectTypeDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		if action == Stop {
			return &cp, Stop
		}
		fields := make([]Node, len(cp.Fields))
		for i, f := range cp.Fields {
			fields[i] = f
		}
		out, action := transformList(tv, "Fields", fields)
		cp.Fields = make([]*InputValueDefinition, len(out))
		for i, f := range out {
			cp.Fields[i] = f.(*InputValueDefinition)
		}
		return &cp, action
	case *FieldDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		args := make([]Node, len(cp.Arguments))
		for i, a := range cp.Arguments {
			args[i] = a
		}
		out, action := transformList(tv, "Arguments", args)
		cp.Arguments = make([]*InputValueDefinition, len(out))
		for i, a := range out {
			cp.Arguments[i] = a.(*InputValueDefinition)
		}
		if action == Stop {
			return &cp, Stop
		}
		t, action := transformNode(tv, cp.Type, "Type", -1)
		if t != nil {
			cp.Type = t.(Type)
		}
		if action == Stop {
			return &cp, Stop
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		return &cp, action
	case *InputValueDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		t, action := transformNode(tv, cp.Type, "Type", -1)
		if t != nil {
			cp.Type = t.(Type)
		}
		if action == Stop {
			return &cp, Stop
		}
		if cp.DefaultValue != nil {
			v, action := transformNode(tv, cp.DefaultValue, "DefaultValue", -1)
			if v != nil {
				cp.DefaultValue = v.(Value)
			} else {
				cp.DefaultValue = nil
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		dirs, action := transformDirectives(tv, cp.Directives)
		cp.Directives = dirs
		return &cp, action
	case *DirectiveDefinition:
		cp := *n
		if name, action := transformNode(tv, cp.Name, "Name", -1); true {
			if name != nil {
				cp.Name = name.(*Name)
			}
			if action == Stop {
				return &cp, Stop
			}
		}
		args := make([]Node, len(cp.Arguments))
		for i, a := range cp.Arguments {
			args[i] = a
		}
		out, action := transformList(tv, "Arguments", args)
		cp.Arguments = make([]*InputValueDefinition, len(out))
		for i, a := range out {
			cp.Arguments[i] = a.(*InputValueDefinition)
		}
		if action == Stop {
			return &cp, Stop
		}
		locs := make([]Node, len(cp.Locations))
		for i, l := range cp.Locations {
			locs[i] = l
		}
		locsOut, action := transformList(tv, "Locations", locs)
		cp.Locations = make([]*Name, len(locsOut))
		for i, l := range locsOut {
			cp.Locations[i] = l.(*Name)
		}
		return &cp, action
	default:
		// Extensions and leaves (Name, values): no children to
		// dispatch generically, or none at all.
		return node, Continue
	}
}

// Chain composes several visitors into one: on Enter they fire in
// the given order, on Leave in reverse order (spec §4.3). If any
// visitor's Enter returns Stop, the chain stops immediately without
// invoking later visitors for that node; if one returns SkipChildren,
// later visitors in the chain still run (they may want the node even
// if an earlier visitor doesn't want its children), but the net
// action for the walk is the strongest of the two (Stop > SkipChildren
// > Continue).
func Chain(visitors ...Visitor) Visitor {
	return Visitor{
		Enter: func(node Node, childName string, childIndex int) Action {
			result := Continue
			for _, vis := range visitors {
				if vis.Enter == nil {
					continue
				}
				switch vis.Enter(node, childName, childIndex) {
				case Stop:
					return Stop
				case SkipChildren:
					if result == Continue {
						result = SkipChildren
					}
				}
			}
			return result
		},
		Leave: func(node Node, childName string, childIndex int) {
			for i := len(visitors) - 1; i >= 0; i-- {
				if visitors[i].Leave != nil {
					visitors[i].Leave(node, childName, childIndex)
				}
			}
		},
	}
}
