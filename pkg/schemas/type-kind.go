/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import "strings"

func (k TypeKind) MarshalText() ([]byte, error) {
	return []byte(k.TrimString()), nil
}

// Renders a TypeKind in human-readable form, without "TypeKind_" prefix,
// suitable for debugging or error messages
func (k TypeKind) TrimString() string {
	const pref = "TypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

func (k ContainerKind) MarshalText() ([]byte, error) {
	return []byte(k.TrimString()), nil
}

// Renders a ContainerKind in human-readable form, without
// "ContainerKind_" prefix, suitable for debugging or error messages
func (k ContainerKind) TrimString() string {
	const pref = "ContainerKind_"
	return strings.TrimPrefix(k.String(), pref)
}
