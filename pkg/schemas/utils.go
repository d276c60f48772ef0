/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import "strings"

// Returns is string valid identifier and error if not
func ValidIdent(ident string) (bool, error) {
	if len(ident) < 1 {
		return false, ErrMissed("ident")
	}

	if l := len(ident); l > MaxIdentLen {
		return false, ErrOutOfBounds("ident «%s» too long (%d runes, max is %d)", ident, l, MaxIdentLen)
	}

	const (
		char_a rune = 97
		char_A rune = 65
		char_z rune = 122
		char_Z rune = 90
		char_0 rune = 48
		char_9 rune = 57
		char__ rune = 95
	)

	digit := func(r rune) bool { return (char_0 <= r) && (r <= char_9) }

	letter := func(r rune) bool { return ((char_a <= r) && (r <= char_z)) || ((char_A <= r) && (r <= char_Z)) }

	underScore := func(r rune) bool { return r == char__ }

	for p, c := range ident {
		if !letter(c) && !underScore(c) {
			if (p == 0) || !digit(c) {
				return false, ErrInvalid("ident «%s» has invalid char «%c» at pos %d", ident, c, p)
			}
		}
	}

	return true, nil
}

// Returns is qualified name valid and error if not.
//
// Package name must be a valid identifier. Entity name must be one or
// more valid identifiers joined by the qualifier char (nested types).
func ValidQName(qName QName) (bool, error) {
	if qName == NullQName {
		return false, ErrMissed("qualified name")
	}
	if ok, err := ValidIdent(qName.Pkg()); !ok {
		return false, err
	}
	for _, ident := range strings.Split(qName.Entity(), QNameQualifierChar) {
		if ok, err := ValidIdent(ident); !ok {
			return false, err
		}
	}
	return true, nil
}
