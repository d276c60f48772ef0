/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package dynobuf

import (
	"github.com/untillpro/dynobuffers"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

var dataKindToDynoFieldType = map[schemas.DataKind]dynobuffers.FieldType{
	schemas.DataKind_null:    dynobuffers.FieldTypeUnspecified,
	schemas.DataKind_int32:   dynobuffers.FieldTypeInt32,
	schemas.DataKind_int64:   dynobuffers.FieldTypeInt64,
	schemas.DataKind_uint32:  dynobuffers.FieldTypeInt32, // bit-preserving, no unsigned wire kinds
	schemas.DataKind_uint64:  dynobuffers.FieldTypeInt64, // bit-preserving, no unsigned wire kinds
	schemas.DataKind_float32: dynobuffers.FieldTypeFloat32,
	schemas.DataKind_float64: dynobuffers.FieldTypeFloat64,
	schemas.DataKind_bytes:   dynobuffers.FieldTypeByte,
	schemas.DataKind_string:  dynobuffers.FieldTypeString,
	schemas.DataKind_bool:    dynobuffers.FieldTypeBool,
	schemas.DataKind_JSON:    dynobuffers.FieldTypeString, // JSON-encoded
	schemas.DataKind_Record:  dynobuffers.FieldTypeByte,   // nested buffer
	schemas.DataKind_Enum:    dynobuffers.FieldTypeInt32,
}

var dynoFieldTypeToStr = map[dynobuffers.FieldType]string{
	dynobuffers.FieldTypeUnspecified: "null",
	dynobuffers.FieldTypeInt32:       "int32",
	dynobuffers.FieldTypeInt64:       "int64",
	dynobuffers.FieldTypeFloat32:     "float32",
	dynobuffers.FieldTypeFloat64:     "float64",
	dynobuffers.FieldTypeString:      "string",
	dynobuffers.FieldTypeBool:        "bool",
	dynobuffers.FieldTypeByte:        "[]byte",
}
