/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package convert

import (
	"fmt"
	"reflect"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

type Option func(*converter)

// WithResolver replaces the default registry-backed resolution
// strategy
func WithResolver(r Resolver) Option {
	return func(c *converter) { c.resolver = r }
}

// WithScalarTypes overlays additional exact type to scalar kind
// mappings. Overlay entries win over every other resolution step.
func WithScalarTypes(m map[reflect.Type]schemas.DataKind) Option {
	return func(c *converter) {
		for t, k := range m {
			c.overlay[t] = k
		}
	}
}

// New returns a converter which compiles types into the specified
// registry, qualifying them with the specified package name.
//
// # Panics:
//   - if pkg is empty or invalid.
func New(reg schemas.Registry, pkg string, opts ...Option) Converter {
	if ok, err := schemas.ValidIdent(pkg); !ok {
		panic(fmt.Errorf("package name is invalid: %w", err))
	}
	c := &converter{
		reg:      reg,
		pkg:      pkg,
		resolver: RegistryResolver(reg),
		overlay:  make(map[reflect.Type]schemas.DataKind),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}
