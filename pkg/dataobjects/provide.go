/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package dataobjects

import (
	"os"

	"github.com/untillpro/dataobjects/pkg/convert"
	"github.com/untillpro/dataobjects/pkg/objects"
	"github.com/untillpro/dataobjects/pkg/schemas"
)

// Register compiles the candidate record or enumeration type and
// returns its schema. The candidate is a value of the type or its
// reflect.Type.
//
// Registration is idempotent: re-registering an already compiled type
// returns the same schema.
//
// # Errors:
//   - schemas.ErrValidationError if the candidate is neither a record
//     struct nor an enumeration declarer,
//   - schemas.ErrResolveError if a field type has no schema mapping,
//   - schemas.ErrConflictError on union group violations.
func Register(candidate any, opts ...Option) (schemas.Type, error) {
	o := applyOptions(opts)
	t, err := candidateType(candidate)
	if err != nil {
		return nil, err
	}
	c := convert.New(o.reg, o.pkg, convert.WithScalarTypes(o.scalars))
	return c.Convert(t)
}

// MustRegister is a Register shortcut which panics on error
func MustRegister(candidate any, opts ...Option) schemas.Type {
	t, err := Register(candidate, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// ObjectType registers the candidate type if needed and returns its
// materialized runtime type
func ObjectType(candidate any, opts ...Option) (objects.Type, error) {
	o := applyOptions(opts)
	t, err := Register(candidate, opts...)
	if err != nil {
		return nil, err
	}
	return materializerFor(o.reg).Materialize(t.QName())
}

// DefaultRegistry returns the process-wide registry used when no
// WithRegistry option is supplied
func DefaultRegistry() schemas.Registry {
	return registry()
}

// RenderInterfaces emits interface-definition files for the types into
// the target directory, one file per top-level schema. The directory
// must already exist.
//
// The renderer is not implemented yet.
//
// # Errors:
//   - schemas.ErrUnsupportedError always (after the target directory
//     check).
func RenderInterfaces(dir string, types ...schemas.Type) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return schemas.ErrInvalid("«%s» is not a directory", dir)
	}
	return schemas.ErrUnsupported("rendering interface-definition files")
}
