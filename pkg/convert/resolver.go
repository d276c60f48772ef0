/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package convert

import (
	"reflect"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

// # Implements:
//   - Resolver
type defaultResolver struct{}

func (defaultResolver) ConcreteType(t reflect.Type) reflect.Type {
	return deref(t)
}

func (defaultResolver) Descriptor(reflect.Type) schemas.Type {
	return nil
}

// A field is optional iff it has a user-defined default value or its
// declared type is a nullable wrapper. Union membership is resolved
// later by the converter: a union member is never separately optional.
func (defaultResolver) OptionalFields(t reflect.Type) []string {
	optional := make([]string, 0)
	listed := make(map[string]bool)

	for n := range fieldDefaults(t) {
		optional = append(optional, n)
		listed[n] = true
	}

	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name, skip := fieldName(sf)
			if skip || listed[name] {
				continue
			}
			if sf.Type.Kind() == reflect.Pointer {
				optional = append(optional, name)
			}
		}
	}

	return optional
}

// # Implements:
//   - Resolver
//
// Augments the default resolver to also recognize types that are
// already compiled in the registry
type registryResolver struct {
	defaultResolver
	reg schemas.Registry
}

func (r registryResolver) Descriptor(t reflect.Type) schemas.Type {
	return r.reg.TypeByKey(t)
}

// Returns the registry-aware resolver used by default
func RegistryResolver(reg schemas.Registry) Resolver {
	return registryResolver{reg: reg}
}
