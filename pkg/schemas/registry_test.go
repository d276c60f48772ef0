/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Registry_Add(t *testing.T) {
	require := require.New(t)

	reg := New()

	t.Run("must panic if name is empty", func(t *testing.T) {
		require.Panics(func() { reg.Add(NullQName, nil) })
	})

	t.Run("must panic if name is invalid", func(t *testing.T) {
		require.Panics(func() { reg.Add(NewQName("test", "naked 🔫"), nil) })
	})

	t.Run("must panic if name already used", func(t *testing.T) {
		n := NewQName("test", "record")
		reg.Add(n, nil)
		require.Panics(func() { reg.Add(n, nil) })
	})

	t.Run("must panic if compilation key already used", func(t *testing.T) {
		key := "shared-key"
		reg.Add(NewQName("test", "keyed"), key)
		require.Panics(func() { reg.Add(NewQName("test", "other"), key) })
	})
}

func Test_Registry_ForwardDeclarations(t *testing.T) {
	require := require.New(t)

	reg := New()
	name := NewQName("test", "node")
	key := "node-key"

	b := reg.Add(name, key)

	t.Run("declared type must be visible to lookups before build", func(t *testing.T) {
		require.NotNil(reg.Type(name))
		require.NotNil(reg.TypeByKey(key))
		require.Equal(reg.Type(name), reg.TypeByKey(key))
	})

	t.Run("declared type must not be enumerated before build", func(t *testing.T) {
		require.Equal(0, reg.TypeCount())
		cnt := 0
		reg.Types(func(Type) { cnt++ })
		require.Equal(0, cnt)
	})

	b.AddField("value", DataKind_string, false)
	_, err := b.Build()
	require.NoError(err)

	t.Run("built type must be enumerated", func(t *testing.T) {
		require.Equal(1, reg.TypeCount())
	})

	t.Run("build must be idempotent", func(t *testing.T) {
		again, err := b.Build()
		require.NoError(err)
		require.Equal(Schema(b), again)
		require.Equal(1, reg.TypeCount())
	})
}

func Test_Registry_Abandon(t *testing.T) {
	require := require.New(t)

	reg := New()
	name := NewQName("test", "doomed")

	b := reg.Add(name, "doomed-key")
	b.AddField("f", DataKind_int32, true)
	nested := b.AddNested("Child", "child-key")
	nested.AddField("g", DataKind_string, false)
	b.AddNestedEnum("Color", nil, EnumValue{Name: "Red", Value: 0})

	b.Abandon()

	t.Run("abandon must remove all entries, including nested types", func(t *testing.T) {
		require.Nil(reg.Type(name))
		require.Nil(reg.TypeByKey("doomed-key"))
		require.Nil(reg.Type(NewQName("test", "doomed.Child")))
		require.Nil(reg.TypeByKey("child-key"))
		require.Nil(reg.Type(NewQName("test", "doomed.Color")))
		require.Equal(0, reg.TypeCount())
	})

	t.Run("must be ok to reuse the name after abandon", func(t *testing.T) {
		require.NotPanics(func() { reg.Add(name, nil) })
	})
}

func Test_Registry_AddEnum(t *testing.T) {
	require := require.New(t)

	reg := New()

	week := reg.AddEnum(NewQName("test", "WeekDay"), nil,
		EnumValue{Name: "Monday", Value: 0},
		EnumValue{Name: "Tuesday", Value: 1},
	)
	require.NotNil(week)
	require.Equal(TypeKind_Enum, week.Kind())
	require.Equal(2, week.ValueCount())
	require.Equal(1, reg.TypeCount())

	t.Run("must panic if values are empty", func(t *testing.T) {
		require.Panics(func() { reg.AddEnum(NewQName("test", "Empty"), nil) })
	})

	t.Run("must panic if labels are duplicated", func(t *testing.T) {
		require.Panics(func() {
			reg.AddEnum(NewQName("test", "DupLabel"), nil,
				EnumValue{Name: "A", Value: 0},
				EnumValue{Name: "A", Value: 1},
			)
		})
	})

	t.Run("must panic if numbers are duplicated", func(t *testing.T) {
		require.Panics(func() {
			reg.AddEnum(NewQName("test", "DupValue"), nil,
				EnumValue{Name: "A", Value: 0},
				EnumValue{Name: "B", Value: 0},
			)
		})
	})
}

func Test_Registry_Remove(t *testing.T) {
	require := require.New(t)

	reg := New()

	reg.AddEnum(NewQName("test", "State"), "state-key", EnumValue{Name: "Draft", Value: 0})

	b := reg.Add(NewQName("test", "doc"), "doc-key")
	b.AddField("f", DataKind_int32, true)
	child := b.AddNested("Child", "child-key")
	child.AddField("g", DataKind_string, false)
	_, err := child.Build()
	require.NoError(err)
	_, err = b.Build()
	require.NoError(err)
	require.Equal(3, reg.TypeCount())

	t.Run("must remove a built record together with its nested types", func(t *testing.T) {
		reg.Remove(NewQName("test", "doc"))
		require.Nil(reg.Type(NewQName("test", "doc")))
		require.Nil(reg.TypeByKey("doc-key"))
		require.Nil(reg.Type(NewQName("test", "doc.Child")))
		require.Nil(reg.TypeByKey("child-key"))
		require.Equal(1, reg.TypeCount())
	})

	t.Run("must remove a finalized enumeration", func(t *testing.T) {
		reg.Remove(NewQName("test", "State"))
		require.Nil(reg.Type(NewQName("test", "State")))
		require.Nil(reg.TypeByKey("state-key"))
		require.Equal(0, reg.TypeCount())
	})

	t.Run("must do nothing if name is not known", func(t *testing.T) {
		require.NotPanics(func() { reg.Remove(NewQName("test", "unknown")) })
	})

	t.Run("must be ok to reuse the name after remove", func(t *testing.T) {
		require.NotPanics(func() { reg.Add(NewQName("test", "doc"), "doc-key") })
	})
}
