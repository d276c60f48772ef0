/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package convert

import (
	"fmt"
	"reflect"

	"github.com/untillpro/goutils/logger"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

// # Implements:
//   - Converter
type converter struct {
	reg      schemas.Registry
	pkg      string
	resolver Resolver
	overlay  map[reflect.Type]schemas.DataKind
}

func (c *converter) Convert(t reflect.Type) (schemas.Type, error) {
	if t == nil {
		return nil, schemas.ErrValidation("nil type")
	}
	t = c.resolver.ConcreteType(t)

	if existing := c.resolver.Descriptor(t); existing != nil {
		return existing, nil
	}

	if isEnumType(t) {
		return c.convertEnum(t)
	}

	if t.Kind() != reflect.Struct {
		return nil, schemas.ErrValidation("type «%v» must be a record struct or an enumeration declarer", t)
	}

	name, err := c.typeName(t)
	if err != nil {
		return nil, err
	}
	if c.reg.Type(name) != nil {
		return nil, schemas.ErrConflict("name «%v» is already used by another type", name)
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("compiling record «%v» from type «%v»", name, t))
	}

	s, err := c.convertStruct(t, c.reg.Add(name, t))
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (c *converter) ConvertValue(val any) (schemas.Type, error) {
	return c.Convert(reflect.TypeOf(val))
}

func (c *converter) convertEnum(t reflect.Type) (schemas.Type, error) {
	name, err := c.typeName(t)
	if err != nil {
		return nil, err
	}
	if c.reg.Type(name) != nil {
		return nil, schemas.ErrConflict("name «%v» is already used by another type", name)
	}

	vv := enumValues(t)
	if ok, err := schemas.ValidEnumValues(vv); !ok {
		return nil, fmt.Errorf("enum «%v»: %w", name, err)
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("compiling enum «%v» from type «%v»", name, t))
	}

	return c.reg.AddEnum(name, t, vv...), nil
}

// Compiles struct fields into the forward-declared schema. Every
// failure unwinds the declaration, so no partial schema stays
// registered.
func (c *converter) convertStruct(t reflect.Type, b schemas.SchemaBuilder) (schemas.Schema, error) {
	abandon := func(err error) (schemas.Schema, error) {
		b.Abandon()
		return nil, err
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, skip := fieldName(sf)
		if skip {
			continue
		}
		if ok, err := schemas.ValidIdent(name); !ok {
			return abandon(fmt.Errorf("field «%s» of «%v»: %w", sf.Name, t, err))
		}
		if b.Field(name) != nil {
			return abandon(schemas.ErrAlreadyExists("field «%s» of «%v»", name, t))
		}
		if err := c.addField(b, name, sf.Type); err != nil {
			return abandon(fmt.Errorf("«%v»: %w", t, err))
		}
	}

	defaults := fieldDefaults(t)
	for n := range defaults {
		if b.Field(n) == nil {
			return abandon(schemas.ErrNotFound("defaulted field «%s» of «%v»", n, t))
		}
	}

	members := make(map[string]bool)
	for _, u := range unionDecls(t) {
		if ok, err := schemas.ValidIdent(u.Name); !ok {
			return abandon(fmt.Errorf("union group of «%v»: %w", t, err))
		}
		if b.UnionGroup(u.Name) != nil {
			return abandon(schemas.ErrConflict("union group «%s» of «%v» is redeclared", u.Name, t))
		}
		b.AddUnion(u.Name, u.Members...)
		for _, m := range u.Members {
			members[m] = true
		}
	}

	for _, n := range c.resolver.OptionalFields(t) {
		if v, ok := defaults[n]; ok {
			// union members with defaults are rejected by Build
			b.SetFieldDefault(n, v)
			continue
		}
		if members[n] {
			// nullable union member: absence is expressed by the group
			continue
		}
		b.SetFieldOptional(n)
	}

	return b.Build()
}

func (c *converter) addField(b schemas.SchemaBuilder, name string, ft reflect.Type) error {
	ft = c.resolver.ConcreteType(ft)

	// exact matches win over container unwrapping: JSONDict is a map itself
	if k, ok := c.overlay[ft]; ok {
		b.AddField(name, k, true)
		return nil
	}
	if k, ok := builtinScalars[ft]; ok {
		b.AddField(name, k, true)
		return nil
	}

	cont := schemas.ContainerKind_None
	switch {
	case (ft.Kind() == reflect.Slice) && (ft.Elem().Kind() == reflect.Uint8):
		b.AddField(name, schemas.DataKind_bytes, true)
		return nil
	case ft.Kind() == reflect.Slice:
		cont = schemas.ContainerKind_List
		ft = c.resolver.ConcreteType(ft.Elem())
	case ft.Kind() == reflect.Map:
		if ft.Key().Kind() != reflect.String {
			return schemas.ErrResolve("field «%s»: map key type «%v» must be string", name, ft.Key())
		}
		cont = schemas.ContainerKind_Map
		ft = c.resolver.ConcreteType(ft.Elem())
	}

	kind, ref, err := c.resolveType(b, ft)
	if err != nil {
		return fmt.Errorf("field «%s»: %w", name, err)
	}

	if ref == schemas.NullQName {
		b.AddField(name, kind, true)
	} else {
		b.AddRefField(name, kind, ref, true)
	}
	if cont != schemas.ContainerKind_None {
		b.SetFieldContainer(name, cont)
	}
	return nil
}

// Resolves a bare (container-free) field type: caller overlay, compiled
// types, enumeration declarers, built-in scalars, nested records and
// named scalar kinds, in that order
func (c *converter) resolveType(b schemas.SchemaBuilder, ft reflect.Type) (kind schemas.DataKind, ref schemas.QName, err error) {
	if k, ok := c.overlay[ft]; ok {
		return k, schemas.NullQName, nil
	}

	if existing := c.resolver.Descriptor(ft); existing != nil {
		return refDataKind(existing.Kind()), existing.QName(), nil
	}

	if isEnumType(ft) {
		e, err := c.nestedEnum(b, ft)
		if err != nil {
			return schemas.DataKind_null, schemas.NullQName, err
		}
		return schemas.DataKind_Enum, e.QName(), nil
	}

	if k, ok := builtinScalars[ft]; ok {
		return k, schemas.NullQName, nil
	}

	if ft.Kind() == reflect.Struct {
		n, err := c.nestedRecord(b, ft)
		if err != nil {
			return schemas.DataKind_null, schemas.NullQName, err
		}
		return schemas.DataKind_Record, n.QName(), nil
	}

	if k, ok := kindScalars[ft.Kind()]; ok {
		return k, schemas.NullQName, nil
	}

	return schemas.DataKind_null, schemas.NullQName, schemas.ErrResolve("type «%v» has no schema mapping", ft)
}

// Compiles an owned nested record schema for a struct type reached
// through a field of the parent
func (c *converter) nestedRecord(b schemas.SchemaBuilder, ft reflect.Type) (schemas.Schema, error) {
	local, err := c.localName(b, ft)
	if err != nil {
		return nil, err
	}
	return c.convertStruct(ft, b.AddNested(local, ft))
}

// Compiles an owned nested enumeration for an enumeration declarer
// type reached through a field of the parent
func (c *converter) nestedEnum(b schemas.SchemaBuilder, ft reflect.Type) (schemas.Enum, error) {
	local, err := c.localName(b, ft)
	if err != nil {
		return nil, err
	}
	vv := enumValues(ft)
	if ok, err := schemas.ValidEnumValues(vv); !ok {
		return nil, fmt.Errorf("enum «%v»: %w", ft, err)
	}
	return b.AddNestedEnum(local, ft, vv...), nil
}

func (c *converter) localName(b schemas.SchemaBuilder, ft reflect.Type) (string, error) {
	local := ft.Name()
	if local == "" {
		return "", schemas.ErrValidation("nested type «%v» must be named", ft)
	}
	if ok, err := schemas.ValidIdent(local); !ok {
		return "", err
	}
	if (b.Nested(local) != nil) || (b.NestedEnum(local) != nil) {
		return "", schemas.ErrConflict("nested type name «%s» in %v is already used", local, b)
	}
	return local, nil
}

func (c *converter) typeName(t reflect.Type) (schemas.QName, error) {
	if t.Name() == "" {
		return schemas.NullQName, schemas.ErrValidation("type «%v» must be named", t)
	}
	name := schemas.NewQName(c.pkg, t.Name())
	if ok, err := schemas.ValidQName(name); !ok {
		return schemas.NullQName, err
	}
	return name, nil
}

func refDataKind(k schemas.TypeKind) schemas.DataKind {
	if k == schemas.TypeKind_Enum {
		return schemas.DataKind_Enum
	}
	return schemas.DataKind_Record
}
