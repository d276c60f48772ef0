/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package dynobuf

import (
	"github.com/untillpro/dynobuffers"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

// Converts schemas.DataKind to dynobuffers.FieldType
func DataKindToFieldType(kind schemas.DataKind) dynobuffers.FieldType {
	return dataKindToDynoFieldType[kind]
}

// Converts dynobuffers FieldType to string
func FieldTypeToString(ft dynobuffers.FieldType) string {
	return dynoFieldTypeToStr[ft]
}

// NewRecordScheme builds a dynobuffer scheme for the compiled record
// schema. Union members are stored as plain fields, the active
// discriminant is restored on decode from which member is present.
func NewRecordScheme(s schemas.Schema) *dynobuffers.Scheme {
	db := dynobuffers.NewScheme()

	db.Name = s.QName().String()
	s.Fields(
		func(f schemas.Field) {
			ft := DataKindToFieldType(f.DataKind())
			if f.Container() == schemas.ContainerKind_Map {
				// string-keyed mappings travel JSON-encoded
				ft = dynobuffers.FieldTypeString
			}
			switch {
			case ft == dynobuffers.FieldTypeByte:
				db.AddArray(f.Name(), ft, false)
			case f.Container() == schemas.ContainerKind_List:
				db.AddArray(f.Name(), ft, false)
			default:
				db.AddField(f.Name(), ft, false)
			}
		})

	return db
}
