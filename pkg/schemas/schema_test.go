/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SchemaBuilder_AddField(t *testing.T) {
	require := require.New(t)

	reg := New()
	b := reg.Add(NewQName("test", "rec"), nil)

	t.Run("must panic if field name is empty", func(t *testing.T) {
		require.Panics(func() { b.AddField("", DataKind_int32, true) })
	})

	t.Run("must panic if field name is invalid", func(t *testing.T) {
		require.Panics(func() { b.AddField("naked 🔫", DataKind_int32, true) })
	})

	t.Run("must panic if field is redeclared", func(t *testing.T) {
		b.AddField("f", DataKind_int32, true)
		require.Panics(func() { b.AddField("f", DataKind_string, false) })
	})

	t.Run("must panic if scalar field kind is a reference", func(t *testing.T) {
		require.Panics(func() { b.AddField("rec", DataKind_Record, true) })
	})

	t.Run("must panic if reference field kind is scalar", func(t *testing.T) {
		require.Panics(func() { b.AddRefField("ref", DataKind_int32, NewQName("test", "other"), true) })
	})

	t.Run("must panic if referenced name is empty", func(t *testing.T) {
		require.Panics(func() { b.AddRefField("ref", DataKind_Record, NullQName, true) })
	})

	t.Run("must panic if defaulted field is unknown", func(t *testing.T) {
		require.Panics(func() { b.SetFieldDefault("unknown", 0) })
	})

	t.Run("must panic if mutated after build", func(t *testing.T) {
		_, err := b.Build()
		require.NoError(err)
		require.Panics(func() { b.AddField("g", DataKind_bool, false) })
		require.Panics(func() { b.SetFieldOptional("f") })
		require.Panics(func() { b.Abandon() })
	})
}

func Test_SchemaBuilder_Unions(t *testing.T) {
	require := require.New(t)

	newRec := func(reg Registry, name string) SchemaBuilder {
		b := reg.Add(NewQName("test", name), nil)
		b.
			AddField("a", DataKind_int32, true).
			AddField("b", DataKind_string, true).
			AddField("c", DataKind_bool, true)
		return b
	}

	t.Run("must fail if union group has single member", func(t *testing.T) {
		reg := New()
		b := newRec(reg, "rec")
		b.AddUnion("payload", "a")
		_, err := b.Build()
		require.ErrorIs(err, ErrConflictError)
		require.Nil(reg.Type(NewQName("test", "rec")))
	})

	t.Run("must fail if union member is not declared", func(t *testing.T) {
		reg := New()
		b := newRec(reg, "rec")
		b.AddUnion("payload", "a", "unknown")
		_, err := b.Build()
		require.ErrorIs(err, ErrNotFoundError)
	})

	t.Run("must fail if field is in two union groups", func(t *testing.T) {
		reg := New()
		b := newRec(reg, "rec")
		b.AddUnion("first", "a", "b")
		b.AddUnion("second", "a", "c")
		_, err := b.Build()
		require.ErrorIs(err, ErrConflictError)
	})

	t.Run("must fail if union member has default value", func(t *testing.T) {
		reg := New()
		b := newRec(reg, "rec")
		b.SetFieldDefault("a", int32(7))
		b.AddUnion("payload", "a", "b")
		_, err := b.Build()
		require.ErrorIs(err, ErrConflictError)
	})

	t.Run("must fail if union member is marked optional", func(t *testing.T) {
		reg := New()
		b := newRec(reg, "rec")
		b.SetFieldOptional("b")
		b.AddUnion("payload", "a", "b")
		_, err := b.Build()
		require.ErrorIs(err, ErrConflictError)
	})

	t.Run("must panic if union group is redeclared", func(t *testing.T) {
		reg := New()
		b := newRec(reg, "rec")
		b.AddUnion("payload", "a", "b")
		require.Panics(func() { b.AddUnion("payload", "a", "c") })
	})
}

func Test_Schema_NestedNames(t *testing.T) {
	require := require.New(t)

	reg := New()
	b := reg.Add(NewQName("test", "rec"), nil)
	b.AddNested("Child", nil)

	t.Run("must panic if nested schema name is reused", func(t *testing.T) {
		require.Panics(func() { b.AddNested("Child", nil) })
		require.Panics(func() { b.AddNestedEnum("Child", nil, EnumValue{Name: "A", Value: 0}) })
	})
}
