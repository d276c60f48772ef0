/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

// Data kinds enumeration.
//
// Wire-level scalar kinds plus references to compiled record and
// enumeration types.
type DataKind uint8

//go:generate stringer -type=DataKind -output=stringer_datakind.go

const (
	DataKind_null DataKind = iota

	DataKind_int32
	DataKind_int64
	DataKind_uint32
	DataKind_uint64
	DataKind_float32
	DataKind_float64
	DataKind_bytes
	DataKind_string
	DataKind_bool

	// Opaque structured value (JSON-like dictionary)
	DataKind_JSON

	// Reference to a compiled record schema
	DataKind_Record

	// Reference to a compiled enumeration schema
	DataKind_Enum

	DataKind_count
)

// Types kinds enumeration
type TypeKind uint8

//go:generate stringer -type=TypeKind -output=stringer_typekind.go

const (
	TypeKind_null TypeKind = iota

	// Record schema: ordered named fields, nested types, union groups
	TypeKind_Record

	// Enumeration schema: ordered (label, value) pairs
	TypeKind_Enum

	TypeKind_count
)

// Container kinds enumeration.
//
// A field may hold a single value, an ordered sequence of values or a
// string-keyed mapping of values.
type ContainerKind uint8

//go:generate stringer -type=ContainerKind -output=stringer_containerkind.go

const (
	ContainerKind_None ContainerKind = iota

	ContainerKind_List
	ContainerKind_Map

	ContainerKind_count
)

// Enumeration member: label and its integer value
type EnumValue struct {
	Name  string
	Value int32
}

// Type is a compiled record or enumeration schema registered in a Registry.
type Type interface {
	// Parent registry
	Registry() Registry

	// Type qualified name
	QName() QName

	// Type kind
	Kind() TypeKind
}

// Schema describes a compiled record type: ordered fields, owned nested
// record and enumeration schemas, union groups.
type Schema interface {
	Type

	// Finds field by name.
	//
	// Returns nil if not found.
	Field(name string) Field

	// Enumerates all fields in add order.
	Fields(cb func(Field))

	// Returns fields count
	FieldCount() int

	// Finds owned nested schema by local name.
	//
	// Returns nil if not found.
	Nested(name string) Schema

	// Enumerates owned nested schemas in add order.
	NestedSchemas(cb func(Schema))

	// Finds owned nested enumeration by local name.
	//
	// Returns nil if not found.
	NestedEnum(name string) Enum

	// Enumerates owned nested enumerations in add order.
	NestedEnums(cb func(Enum))

	// Finds union group by name.
	//
	// Returns nil if not found.
	UnionGroup(name string) UnionGroup

	// Enumerates union groups in add order.
	UnionGroups(cb func(UnionGroup))

	// Returns the union group the field belongs to.
	//
	// Returns nil if the field is not a union member.
	UnionOf(field string) UnionGroup
}

// Schema builder.
//
// Obtained from Registry.Add. Until Build is called the schema is a
// forward declaration: it is visible to name and key lookups (this is
// what makes self-referencing and mutually-referencing type graphs
// compile), but is not enumerated, and either becomes final via Build
// or disappears via Abandon.
type SchemaBuilder interface {
	Schema

	// Adds field with scalar data kind.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if field with name already exists,
	//   - if kind is not scalar.
	AddField(name string, kind DataKind, required bool) SchemaBuilder

	// Adds field referencing a record or enumeration type.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if field with name already exists,
	//   - if kind is not DataKind_Record or DataKind_Enum,
	//   - if ref is empty.
	AddRefField(name string, kind DataKind, ref QName, required bool) SchemaBuilder

	// Wraps the field into the specified container.
	//
	// # Panics:
	//   - if field not found.
	SetFieldContainer(name string, cont ContainerKind) SchemaBuilder

	// Marks the field optional.
	//
	// # Panics:
	//   - if field not found.
	SetFieldOptional(name string) SchemaBuilder

	// Sets the user-defined default value. The field becomes optional.
	//
	// # Panics:
	//   - if field not found.
	SetFieldDefault(name string, value any) SchemaBuilder

	// Declares a group of mutually exclusive fields. Group membership is
	// validated by Build.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if group with name already declared.
	AddUnion(name string, members ...string) SchemaBuilder

	// Adds an owned nested schema and returns its builder. The nested
	// schema is qualified under this schema and registered in the same
	// registry, under the optional compilation key.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if nested type with name already exists,
	//   - if key is already used.
	AddNested(name string, key any) SchemaBuilder

	// Adds an owned nested enumeration registered under the optional
	// compilation key.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if nested type with name already exists,
	//   - if key is already used,
	//   - if values are empty or contain duplicate labels or numbers.
	AddNestedEnum(name string, key any, values ...EnumValue) Enum

	// Validates union groups and finalizes the schema. On failure all
	// registry entries of the schema (including owned nested types) are
	// removed, so no partial schema is ever left registered.
	Build() (Schema, error)

	// Discards the unfinished schema and removes its registry entries,
	// including owned nested types.
	//
	// # Panics:
	//   - if schema is already built.
	Abandon()
}

// Field describes a single field of a record schema.
type Field interface {
	// Returns field name
	Name() string

	// Returns data kind for field
	DataKind() DataKind

	// Returns qualified name of the referenced record or enumeration
	// type for DataKind_Record and DataKind_Enum fields.
	//
	// Returns NullQName for scalar fields.
	Ref() QName

	// Returns field container kind
	Container() ContainerKind

	// Returns is field required
	Required() bool

	// Returns the user-defined default value, if one is set
	Default() (value any, ok bool)

	// Returns name of the union group the field belongs to.
	//
	// Returns empty string if the field is not a union member.
	UnionGroup() string

	// Returns is field has fixed width data kind
	IsFixedWidth() bool
}

// Enum describes a compiled enumeration type.
type Enum interface {
	Type

	// Finds value by label.
	Value(name string) (int32, bool)

	// Enumerates values in declaration order.
	Values(cb func(EnumValue))

	// Returns values count
	ValueCount() int
}

// UnionGroup is an ordered set of mutually exclusive fields of one
// schema. At most one member may be set on any instance.
type UnionGroup interface {
	// Returns group name
	Name() string

	// Returns member field names in declaration order
	Members() []string

	// Returns members count
	MemberCount() int

	// Returns is the field a member of the group
	HasMember(name string) bool
}

// Registry is the memoization store for compiled types.
//
// Entries are keyed both by qualified name and, optionally, by an
// opaque compilation key (the converter uses source type identity).
// An entry appears when compilation of a type begins and, once
// finalized, lives for the registry lifetime unless explicitly taken
// back with Remove.
type Registry interface {
	// Returns type by qualified name, including types whose compilation
	// has begun but is not finished yet.
	//
	// Returns nil if not found.
	Type(name QName) Type

	// Returns record schema by qualified name.
	//
	// Returns nil if not found or the type is not a record.
	Schema(name QName) Schema

	// Returns enumeration by qualified name.
	//
	// Returns nil if not found or the type is not an enumeration.
	Enum(name QName) Enum

	// Returns type by compilation key, including types whose compilation
	// has begun but is not finished yet.
	//
	// Returns nil if not found.
	TypeByKey(key any) Type

	// Enumerates finalized types in add order.
	Types(cb func(Type))

	// Returns count of finalized types.
	TypeCount() int

	// Adds a new record schema with the specified name and optional
	// compilation key and returns its builder. The schema is registered
	// immediately as a forward declaration.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if type with name already exists,
	//   - if key is already used.
	Add(name QName, key any) SchemaBuilder

	// Adds a new enumeration with the specified name, optional
	// compilation key and pre-validated values.
	//
	// # Panics:
	//   - if name is empty or invalid,
	//   - if type with name already exists,
	//   - if key is already used,
	//   - if values are empty or contain duplicate labels or numbers.
	AddEnum(name QName, key any, values ...EnumValue) Enum

	// Removes the type with the specified name together with its owned
	// nested types. Does nothing if the name is not known.
	//
	// Intended for compilation unwind: callers registering several
	// related types may use it to take back already finalized entries
	// when a later sibling fails to compile. Removing a type that other
	// code already resolved leaves dangling references behind.
	Remove(name QName)
}
