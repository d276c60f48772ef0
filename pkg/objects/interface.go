/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package objects

import "github.com/untillpro/dataobjects/pkg/schemas"

// Materializer builds runtime types from compiled schemas.
//
// Materialization is memoized by qualified name: every schema produces
// exactly one runtime type, so cyclic and diamond schema graphs yield a
// finite set of types with cross-references resolved through the
// memoization store.
type Materializer interface {
	// Materialize returns the runtime type for the named compiled
	// schema.
	//
	// # Errors:
	//   - schemas.ErrNotFoundError if no type with the name is
	//     registered.
	Materialize(name schemas.QName) (Type, error)
}

// Type is a materialized record or enumeration type.
type Type interface {
	// Type qualified name
	QName() schemas.QName

	// Returns the compiled record schema.
	//
	// Returns nil for enumeration types.
	Schema() schemas.Schema

	// Returns the compiled enumeration.
	//
	// Returns nil for record types.
	Enum() schemas.Enum

	// Returns the materialized nested type by local name.
	//
	// Returns nil if not found.
	Nested(name string) Type

	// Returns the materialized type a record or enumeration reference
	// field points to.
	//
	// # Errors:
	//   - schemas.ErrNotFoundError if the field is unknown,
	//   - schemas.ErrInvalidError if the field is scalar.
	FieldType(field string) (Type, error)

	// New constructs an instance. Positional arguments bind to fields
	// in declaration order, keyword arguments bind by field name. Nil
	// argument values mean "not assigned".
	//
	// Union-member arguments are routed into their group: at most one
	// member of a group may be assigned per call.
	//
	// # Errors:
	//   - schemas.ErrValidationError if the type is not a record or a
	//     required field stays unassigned,
	//   - schemas.ErrOutOfBoundsError if there are more positional
	//     arguments than fields,
	//   - schemas.ErrNotFoundError if a keyword names an unknown field,
	//   - schemas.ErrConflictError if one union group or one field
	//     receives more than one argument,
	//   - schemas.ErrInvalidError if a value does not fit the field
	//     data kind.
	New(args []any, kwargs map[string]any) (Object, error)
}

// Object is an instance of a materialized record type.
type Object interface {
	// Returns the materialized type of the instance
	Type() Type

	// Returns the value assigned to the field.
	//
	// Returns false if the field is not assigned.
	Value(field string) (any, bool)

	// Enumerates assigned fields in schema declaration order
	Fields(cb func(f schemas.Field, value any))

	// WhichUnion returns the active member of the union group.
	//
	// Returns false if no member of the group is assigned.
	WhichUnion(group string) (member string, ok bool)
}
