/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

// Package dataobjects compiles declared Go record and enumeration
// types into portable schemas and materializes them back into runtime
// types with union-aware construction.
//
// Registration is idempotent and memoized process-wide: the same type
// registered twice yields the same compiled schema.
package dataobjects

import (
	"reflect"

	"github.com/untillpro/dataobjects/pkg/convert"
	"github.com/untillpro/dataobjects/pkg/schemas"
)

// DefaultPackage qualifies registered types when no package option is
// supplied
const DefaultPackage = "dataobjects"

// Capability interfaces candidates declare their shape with
type (
	JSONDict       = convert.JSONDict
	Defaulted      = convert.Defaulted
	UnionGroupDecl = convert.UnionGroupDecl
	UnionDeclarer  = convert.UnionDeclarer
	EnumDeclarer   = convert.EnumDeclarer
)

// Option configures a registration call
type Option func(*options)

type options struct {
	pkg     string
	reg     schemas.Registry
	scalars map[reflect.Type]schemas.DataKind
}

// WithPackage qualifies the registered types with the package name
func WithPackage(pkg string) Option {
	return func(o *options) { o.pkg = pkg }
}

// WithRegistry compiles into the specified registry instead of the
// process-wide one
func WithRegistry(reg schemas.Registry) Option {
	return func(o *options) { o.reg = reg }
}

// WithScalarTypes overlays additional scalar type mappings for the
// registration call
func WithScalarTypes(m map[reflect.Type]schemas.DataKind) Option {
	return func(o *options) {
		if o.scalars == nil {
			o.scalars = make(map[reflect.Type]schemas.DataKind)
		}
		for t, k := range m {
			o.scalars[t] = k
		}
	}
}
