/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Qualified name: package name plus entity name.
//
// Entity names of nested types are dotted ("Parent.Child"), so the
// package part of a qualified name always ends at the first delimiter.
type QName struct {
	pkg    string
	entity string
}

// Null (empty) QName
var NullQName = NewQName(NullName, NullName)

// Builds a qualified name from package name and entity name
func NewQName(pkgName, entityName string) QName {
	return QName{pkg: pkgName, entity: entityName}
}

// Parse a qualified name from string.
//
// # Panics:
//   - if string is not a valid qualified name
func MustParseQName(val string) QName {
	q, err := ParseQName(val)
	if err != nil {
		panic(err)
	}
	return q
}

// Parse a qualified name from string. The package name ends at the
// first delimiter, the rest is the entity name.
func ParseQName(val string) (res QName, err error) {
	p, e, found := strings.Cut(val, QNameQualifierChar)
	if !found || (p == NullName) || (e == NullName) {
		return NullQName, ErrInvalid("qualified name «%v»", val)
	}
	return NewQName(p, e), nil
}

// Compare two qualified names
func CompareQName(a, b QName) int {
	if a.pkg != b.pkg {
		return strings.Compare(a.pkg, b.pkg)
	}
	return strings.Compare(a.entity, b.entity)
}

// Returns package name
func (qn QName) Pkg() string { return qn.pkg }

// Returns entity name
func (qn QName) Entity() string { return qn.entity }

// Returns QName as string
func (qn QName) String() string { return qn.pkg + QNameQualifierChar + qn.entity }

// JSON marshaling support
func (qn QName) MarshalJSON() ([]byte, error) {
	return json.Marshal(qn.String())
}

// need to marshal map[QName]any
func (qn QName) MarshalText() (text []byte, err error) {
	return []byte(qn.String()), nil
}

// JSON unmarshaling support
func (qn *QName) UnmarshalJSON(text []byte) (err error) {
	*qn = QName{}

	str, err := strconv.Unquote(string(text))
	if err != nil {
		return err
	}
	*qn, err = ParseQName(str)
	return err
}

// need to unmarshal map[QName]any
func (qn *QName) UnmarshalText(text []byte) (err error) {
	q, err := ParseQName(string(text))
	if err == nil {
		*qn = q
	}
	return err
}
