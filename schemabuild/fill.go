package schemabuild

import (
	"github.com/coregraph/graphql/ast"
	"github.com/coregraph/graphql/schema"
)

// phase2Fill resolves every type reference and populates the
// placeholders phase1Placeholders created, now that every name in
// the document is present in the schema's type map.
func (b *builder) phase2Fill() {
	for name, def := range b.objectDefs {
		obj := b.schema.TypeByName(name).(*schema.Object)
		b.fillObject(obj, def)
	}
	for name, def := range b.interfaceDefs {
		iface := b.schema.TypeByName(name).(*schema.Interface)
		b.fillInterface(iface, def)
		iface.ResolveType = b.typeResolvers[name]
	}
	b.linkPossibleTypes()
	for name, def := range b.unionDefs {
		u := b.schema.TypeByName(name).(*schema.Union)
		b.fillUnion(u, def)
		u.ResolveType = b.typeResolvers[name]
	}
	for name, def := range b.enumDefs {
		e := b.schema.TypeByName(name).(*schema.Enum)
		b.fillEnum(e, def)
	}
	for name, def := range b.inputDefs {
		io := b.schema.TypeByName(name).(*schema.InputObject)
		b.fillInputObject(io, def)
	}
}

func (b *builder) fillObject(obj *schema.Object, def *ast.ObjectTypeDefinition) {
	for _, ifaceRef := range def.Interfaces {
		t := b.resolveNamed(ifaceRef.Name)
		if iface, ok := t.(*schema.Interface); ok {
			obj.Interfaces = append(obj.Interfaces, iface)
		}
	}
	dirs, _ := b.applyDirectives(def.Directives)
	obj.Directives = dirs
	for _, fd := range def.Fields {
		f := b.fillFieldDefinition(obj.Name, fd)
		if f != nil {
			obj.Fields.Set(f)
		}
	}
}

func (b *builder) fillInterface(iface *schema.Interface, def *ast.InterfaceTypeDefinition) {
	for _, ifaceRef := range def.Interfaces {
		t := b.resolveNamed(ifaceRef.Name)
		if parent, ok := t.(*schema.Interface); ok {
			iface.Interfaces = append(iface.Interfaces, parent)
		}
	}
	dirs, _ := b.applyDirectives(def.Directives)
	iface.Directives = dirs
	for _, fd := range def.Fields {
		f := b.fillFieldDefinition(iface.Name, fd)
		if f != nil {
			iface.Fields.Set(f)
		}
	}
}

// linkPossibleTypes populates every Interface's PossibleTypes from
// the objects that declared it (spec §5.3's abstract-type contract).
func (b *builder) linkPossibleTypes() {
	for _, name := range b.schema.TypeOrder {
		obj, ok := b.schema.TypeByName(name).(*schema.Object)
		if !ok {
			continue
		}
		for _, iface := range obj.Interfaces {
			iface.PossibleTypes = append(iface.PossibleTypes, obj)
		}
	}
}

func (b *builder) fillUnion(u *schema.Union, def *ast.UnionTypeDefinition) {
	dirs, _ := b.applyDirectives(def.Directives)
	u.Directives = dirs
	for _, ref := range def.Types {
		t := b.resolveNamed(ref.Name)
		if obj, ok := t.(*schema.Object); ok {
			u.Types = append(u.Types, obj)
		} else if t != nil {
			b.addErr("Union %q member %q must be an object type.", u.Name, ref.Name.Value)
		}
	}
}

func (b *builder) fillEnum(e *schema.Enum, def *ast.EnumTypeDefinition) {
	dirs, _ := b.applyDirectives(def.Directives)
	e.Directives = dirs
	for _, vd := range def.Values {
		vdirs, reason := b.applyDirectives(vd.Directives)
		desc := ""
		if vd.Description != nil {
			desc = vd.Description.Value
		}
		e.Values = append(e.Values, &schema.EnumValue{
			Name: vd.Name.Value, Value: vd.Name.Value, Desc: desc,
			Directives: vdirs, DeprecationReason: reason,
		})
	}
}

func (b *builder) fillInputObject(io *schema.InputObject, def *ast.InputObjectTypeDefinition) {
	dirs, _ := b.applyDirectives(def.Directives)
	io.Directives = dirs
	for _, fd := range def.Fields {
		t := b.resolveType(fd.Type)
		if t == nil {
			continue
		}
		f := &schema.InputField{Name: fd.Name.Value, Type: t}
		if fd.Description != nil {
			f.Desc = fd.Description.Value
		}
		if fd.DefaultValue != nil {
			v, err := literalToGo(fd.DefaultValue)
			if err != nil {
				b.addErr("input field %s.%s: %s", io.Name, fd.Name.Value, err)
			} else {
				f.DefaultValue = v
				f.HasDefault = true
			}
		}
		fdirs, _ := b.applyDirectives(fd.Directives)
		f.Directives = fdirs
		if _, exists := io.Fields[f.Name]; !exists {
			io.FieldOrder = append(io.FieldOrder, f.Name)
		}
		io.Fields[f.Name] = f
	}
}

// fillFieldDefinition resolves one FieldDefinition into a
// schema.Field, wiring its resolver from b.resolvers if one was
// registered for typeName.fieldName.
func (b *builder) fillFieldDefinition(typeName string, fd *ast.FieldDefinition) *schema.Field {
	t := b.resolveType(fd.Type)
	if t == nil {
		return nil
	}
	f := &schema.Field{Name: fd.Name.Value, Type: t, GoMethod: schema.GoName(fd.Name.Value)}
	if fd.Description != nil {
		f.Desc = fd.Description.Value
	}
	f.Args, f.ArgOrder = b.resolveArgDefs(fd.Arguments)
	dirs, reason := b.applyDirectives(fd.Directives)
	f.Directives = dirs
	f.DeprecationReason = reason
	if perType, ok := b.resolvers[typeName]; ok {
		f.Resolve = perType[fd.Name.Value]
	}
	if typeName == "Subscription" && b.subscriptionResolvers != nil {
		f.Subscribe = b.subscriptionResolvers[fd.Name.Value]
	}
	return f
}
