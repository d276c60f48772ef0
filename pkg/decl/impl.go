/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package decl

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

// Scalar kind names accepted in field type declarations
var scalarKinds = func() map[string]schemas.DataKind {
	m := make(map[string]schemas.DataKind)
	for k := schemas.DataKind_int32; k < schemas.DataKind_Record; k++ {
		m[k.TrimString()] = k
	}
	return m
}()

// The declaration is validated completely before the registry is
// touched, so a rejected package never leaves partial entries behind.
// Declared types sorted by name: map declarations carry no order.
func compile(reg schemas.Registry, pkg *PackageDecl) ([]schemas.Type, error) {
	if err := validatePackage(reg, pkg); err != nil {
		return nil, err
	}

	enumNames := sortedKeys(pkg.Enums)
	typeNames := sortedKeys(pkg.Types)

	types := make([]schemas.Type, 0, len(enumNames)+len(typeNames))

	for _, n := range enumNames {
		vv := make([]schemas.EnumValue, len(pkg.Enums[n]))
		for i, v := range pkg.Enums[n] {
			vv[i] = schemas.EnumValue{Name: v.Name, Value: v.Value}
		}
		types = append(types, reg.AddEnum(schemas.NewQName(pkg.Package, n), nil, vv...))
	}

	// every record is declared up front, so fields may reference types
	// declared later in the package
	builders := make(map[string]schemas.SchemaBuilder, len(typeNames))
	for _, n := range typeNames {
		builders[n] = reg.Add(schemas.NewQName(pkg.Package, n), nil)
	}

	for _, n := range typeNames {
		b := builders[n]
		decl := pkg.Types[n]
		members := unionMembers(decl)
		for _, f := range decl.Fields {
			compileField(reg, pkg, b, f, members[f.Name])
		}
		for _, u := range decl.Unions {
			b.AddUnion(u.Name, u.Members...)
		}
	}

	built := make([]string, 0, len(typeNames))
	for _, n := range typeNames {
		s, err := builders[n].Build()
		if err != nil {
			// Build has already removed the failed type; take back the
			// rest of the package so nothing of it stays registered
			for _, left := range typeNames {
				if left != n && !slices.Contains(built, left) {
					builders[left].Abandon()
				}
			}
			for _, left := range built {
				reg.Remove(schemas.NewQName(pkg.Package, left))
			}
			for _, left := range enumNames {
				reg.Remove(schemas.NewQName(pkg.Package, left))
			}
			return nil, err
		}
		built = append(built, n)
		types = append(types, s)
	}

	return types, nil
}

// Set of field names claimed by the type's union groups. Union absence
// is expressed by the group, so members are always stored required.
func unionMembers(decl TypeDecl) map[string]bool {
	members := make(map[string]bool)
	for _, u := range decl.Unions {
		for _, m := range u.Members {
			members[m] = true
		}
	}
	return members
}

func compileField(reg schemas.Registry, pkg *PackageDecl, b schemas.SchemaBuilder, f FieldDecl, unionMember bool) {
	required := f.Required || unionMember

	if kind, ok := scalarKinds[f.Type]; ok {
		b.AddField(f.Name, kind, required)
	} else {
		ref, kind := resolveRef(reg, pkg, f.Type)
		b.AddRefField(f.Name, kind, ref, required)
	}

	switch strings.ToLower(f.Container) {
	case "list":
		b.SetFieldContainer(f.Name, schemas.ContainerKind_List)
	case "map":
		b.SetFieldContainer(f.Name, schemas.ContainerKind_Map)
	}

	if f.Default != nil {
		b.SetFieldDefault(f.Name, coerceDefault(b.Field(f.Name).DataKind(), f.Default))
	} else if f.Optional {
		b.SetFieldOptional(f.Name)
	}
}

// Resolves a validated type reference: either a name declared in this
// package or a qualified name of a type compiled earlier
func resolveRef(reg schemas.Registry, pkg *PackageDecl, ref string) (schemas.QName, schemas.DataKind) {
	if _, ok := pkg.Enums[ref]; ok {
		return schemas.NewQName(pkg.Package, ref), schemas.DataKind_Enum
	}
	if _, ok := pkg.Types[ref]; ok {
		return schemas.NewQName(pkg.Package, ref), schemas.DataKind_Record
	}
	name := schemas.MustParseQName(ref)
	if reg.Type(name).Kind() == schemas.TypeKind_Enum {
		return name, schemas.DataKind_Enum
	}
	return name, schemas.DataKind_Record
}

// YAML decodes numeric defaults as int or float64, narrow them to the
// declared field kind
func coerceDefault(kind schemas.DataKind, value any) any {
	switch v := value.(type) {
	case int:
		switch kind {
		case schemas.DataKind_int32:
			return int32(v)
		case schemas.DataKind_int64:
			return int64(v)
		case schemas.DataKind_uint32:
			return uint32(v)
		case schemas.DataKind_uint64:
			return uint64(v)
		case schemas.DataKind_float32:
			return float32(v)
		case schemas.DataKind_float64:
			return float64(v)
		}
	case float64:
		if kind == schemas.DataKind_float32 {
			return float32(v)
		}
	}
	return value
}

func sortedKeys[T any](m map[string]T) []string {
	names := maps.Keys(m)
	sort.Strings(names)
	return names
}

func validatePackage(reg schemas.Registry, pkg *PackageDecl) error {
	if ok, err := schemas.ValidIdent(pkg.Package); !ok {
		return fmt.Errorf("package name: %w", err)
	}

	declared := make(map[string]bool)
	checkName := func(n string) error {
		if ok, err := schemas.ValidIdent(n); !ok {
			return err
		}
		if declared[n] {
			return schemas.ErrAlreadyExists("type «%s»", n)
		}
		if reg.Type(schemas.NewQName(pkg.Package, n)) != nil {
			return schemas.ErrConflict("name «%s.%s» is already used by another type", pkg.Package, n)
		}
		declared[n] = true
		return nil
	}

	for _, n := range sortedKeys(pkg.Enums) {
		if err := checkName(n); err != nil {
			return err
		}
		vv := make([]schemas.EnumValue, len(pkg.Enums[n]))
		for i, v := range pkg.Enums[n] {
			vv[i] = schemas.EnumValue{Name: v.Name, Value: v.Value}
		}
		if ok, err := schemas.ValidEnumValues(vv); !ok {
			return fmt.Errorf("enum «%s»: %w", n, err)
		}
	}

	for _, n := range sortedKeys(pkg.Types) {
		if err := checkName(n); err != nil {
			return err
		}
		if err := validateType(reg, pkg, pkg.Types[n]); err != nil {
			return fmt.Errorf("type «%s»: %w", n, err)
		}
	}

	return nil
}

func validateType(reg schemas.Registry, pkg *PackageDecl, decl TypeDecl) error {
	fields := make(map[string]FieldDecl)
	for _, f := range decl.Fields {
		if ok, err := schemas.ValidIdent(f.Name); !ok {
			return fmt.Errorf("field name: %w", err)
		}
		if _, ok := fields[f.Name]; ok {
			return schemas.ErrAlreadyExists("field «%s»", f.Name)
		}
		fields[f.Name] = f

		if err := validateFieldType(reg, pkg, f); err != nil {
			return fmt.Errorf("field «%s»: %w", f.Name, err)
		}
		switch strings.ToLower(f.Container) {
		case "", "list", "map":
		default:
			return schemas.ErrInvalid("field «%s» container «%s»", f.Name, f.Container)
		}
	}

	unions := make(map[string]bool)
	members := make(map[string]string)
	for _, u := range decl.Unions {
		if ok, err := schemas.ValidIdent(u.Name); !ok {
			return fmt.Errorf("union group name: %w", err)
		}
		if unions[u.Name] {
			return schemas.ErrAlreadyExists("union group «%s»", u.Name)
		}
		unions[u.Name] = true
		if len(u.Members) < 2 {
			return schemas.ErrConflict("union group «%s» must have at least two members", u.Name)
		}
		for _, m := range u.Members {
			f, ok := fields[m]
			if !ok {
				return schemas.ErrNotFound("union group «%s» member field «%s»", u.Name, m)
			}
			if g, ok := members[m]; ok {
				return schemas.ErrConflict("field «%s» is a member of union groups «%s» and «%s»", m, g, u.Name)
			}
			members[m] = u.Name
			if (f.Default != nil) || f.Optional {
				return schemas.ErrConflict("union group «%s» member field «%s» must not be optional or defaulted", u.Name, m)
			}
		}
	}

	return nil
}

func validateFieldType(reg schemas.Registry, pkg *PackageDecl, f FieldDecl) error {
	if _, ok := scalarKinds[f.Type]; ok {
		return nil
	}
	if _, ok := pkg.Enums[f.Type]; ok {
		return nil
	}
	if _, ok := pkg.Types[f.Type]; ok {
		return nil
	}
	if strings.Contains(f.Type, schemas.QNameQualifierChar) {
		name, err := schemas.ParseQName(f.Type)
		if err != nil {
			return err
		}
		if reg.Type(name) != nil {
			return nil
		}
	}
	return schemas.ErrResolve("type «%s» is not declared", f.Type)
}
