/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package convert

import (
	"reflect"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

// Built-in scalar type map: application-level Go types to wire-level
// data kinds. Callers may overlay it with additional entries, caller
// entries take precedence on conflict.
var builtinScalars = map[reflect.Type]schemas.DataKind{
	reflect.TypeOf(int32(0)):         schemas.DataKind_int32,
	reflect.TypeOf(int64(0)):         schemas.DataKind_int64,
	reflect.TypeOf(int(0)):           schemas.DataKind_int64,
	reflect.TypeOf(uint32(0)):        schemas.DataKind_uint32,
	reflect.TypeOf(uint64(0)):        schemas.DataKind_uint64,
	reflect.TypeOf(uint(0)):          schemas.DataKind_uint64,
	reflect.TypeOf(float32(0)):       schemas.DataKind_float32,
	reflect.TypeOf(float64(0)):       schemas.DataKind_float64,
	reflect.TypeOf([]byte(nil)):      schemas.DataKind_bytes,
	reflect.TypeOf(""):               schemas.DataKind_string,
	reflect.TypeOf(false):            schemas.DataKind_bool,
	reflect.TypeOf(JSONDict(nil)):    schemas.DataKind_JSON,
	reflect.TypeOf(map[string]any{}): schemas.DataKind_JSON,
}

// Named types with basic underlying kinds (type Temperature float64)
// resolve through their kind when no exact mapping exists
var kindScalars = map[reflect.Kind]schemas.DataKind{
	reflect.Int32:   schemas.DataKind_int32,
	reflect.Int64:   schemas.DataKind_int64,
	reflect.Int:     schemas.DataKind_int64,
	reflect.Uint32:  schemas.DataKind_uint32,
	reflect.Uint64:  schemas.DataKind_uint64,
	reflect.Uint:    schemas.DataKind_uint64,
	reflect.Float32: schemas.DataKind_float32,
	reflect.Float64: schemas.DataKind_float64,
	reflect.String:  schemas.DataKind_string,
	reflect.Bool:    schemas.DataKind_bool,
}

// Returns t unwrapped from the nullable (pointer) wrapper
func deref(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// Returns an instance of t as interface I, probing both value and
// pointer method sets
func implementedBy[I any](t reflect.Type) (I, bool) {
	if i, ok := reflect.Zero(t).Interface().(I); ok {
		return i, true
	}
	if i, ok := reflect.New(t).Interface().(I); ok {
		return i, true
	}
	var none I
	return none, false
}

func isEnumType(t reflect.Type) bool {
	_, ok := implementedBy[EnumDeclarer](t)
	return ok
}

func enumValues(t reflect.Type) []schemas.EnumValue {
	if e, ok := implementedBy[EnumDeclarer](t); ok {
		return e.EnumValues()
	}
	return nil
}

func fieldDefaults(t reflect.Type) map[string]any {
	if d, ok := implementedBy[Defaulted](t); ok {
		return d.FieldDefaults()
	}
	return nil
}

func unionDecls(t reflect.Type) []UnionGroupDecl {
	if u, ok := implementedBy[UnionDeclarer](t); ok {
		return u.UnionGroups()
	}
	return nil
}

// Returns schema field name for the struct field and whether the field
// is excluded from the schema
func fieldName(sf reflect.StructField) (name string, skip bool) {
	tag := sf.Tag.Get(fieldTag)
	switch tag {
	case "":
		return sf.Name, false
	case "-":
		return "", true
	}
	return tag, false
}
