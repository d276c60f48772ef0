/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import "strings"

// Returns is data kind fixed width
func (k DataKind) IsFixed() bool {
	switch k {
	case
		DataKind_int32, DataKind_int64,
		DataKind_uint32, DataKind_uint64,
		DataKind_float32, DataKind_float64,
		DataKind_bool:
		return true
	}
	return false
}

// Returns is data kind a wire-level scalar (not a reference to a
// record or enumeration type)
func (k DataKind) IsScalar() bool {
	return (k > DataKind_null) && (k < DataKind_Record)
}

// Returns is data kind a reference to a compiled type
func (k DataKind) IsRef() bool {
	return (k == DataKind_Record) || (k == DataKind_Enum)
}

func (k DataKind) MarshalText() ([]byte, error) {
	return []byte(k.TrimString()), nil
}

// Renders a DataKind in human-readable form, without "DataKind_" prefix,
// suitable for debugging or error messages
func (k DataKind) TrimString() string {
	const pref = "DataKind_"
	return strings.TrimPrefix(k.String(), pref)
}
