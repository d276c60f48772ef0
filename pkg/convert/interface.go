/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package convert

import (
	"reflect"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

// Opaque structured value. Fields of this type are compiled to
// schemas.DataKind_JSON.
type JSONDict map[string]any

// Converter compiles declared Go record and enumeration types into
// schemas registered in a schemas.Registry.
//
// Conversion is memoized by source type identity: compiling the same
// type twice returns the same registered schema, and self-referential
// or mutually-referential type graphs compile in finite steps because
// every type is registered as a forward declaration before its field
// types are resolved.
type Converter interface {
	// Convert compiles the type and returns its schema.
	//
	// # Errors:
	//   - schemas.ErrValidationError if the type is not a record struct
	//     and not an enumeration declarer,
	//   - schemas.ErrResolveError if a field type has no schema mapping,
	//   - schemas.ErrConflictError if union group declarations are
	//     violated or the qualified name is taken by another type.
	Convert(t reflect.Type) (schemas.Type, error)

	// ConvertValue is a shortcut to Convert the dynamic type of val
	ConvertValue(val any) (schemas.Type, error)
}

// Resolver is the strategy the Converter consults while resolving
// field types. The default resolver handles plain Go types; the
// registry-aware resolver returned by RegistryResolver also recognizes
// already-compiled record and enumeration types.
type Resolver interface {
	// ConcreteType returns the type the entry should be resolved as,
	// unwrapping nullable wrappers
	ConcreteType(t reflect.Type) reflect.Type

	// Descriptor returns the already-compiled type for the entry.
	//
	// Returns nil if the entry is not compiled yet.
	Descriptor(t reflect.Type) schemas.Type

	// OptionalFields returns schema names of the record type fields that
	// are optional: fields with a user-defined default value and fields
	// with nullable (pointer) types
	OptionalFields(t reflect.Type) []string
}

// Defaulted is implemented by record types that declare user-defined
// field default values. Keys are schema field names.
type Defaulted interface {
	FieldDefaults() map[string]any
}

// Up-front declaration of a group of mutually exclusive fields
type UnionGroupDecl struct {
	Name    string
	Members []string
}

// UnionDeclarer is implemented by record types that declare union
// groups over their fields
type UnionDeclarer interface {
	UnionGroups() []UnionGroupDecl
}

// EnumDeclarer is implemented by named types that represent
// enumerations. Values are returned in declaration order.
type EnumDeclarer interface {
	EnumValues() []schemas.EnumValue
}
