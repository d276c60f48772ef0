/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package convert

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/untillpro/dataobjects/pkg/schemas"
)

type personPhone struct {
	Number string
	Kind   string
}

type person struct {
	Name     string
	Age      int32
	Weight   *float32
	Tags     []string
	Scores   map[string]int64
	Photo    []byte
	Meta     JSONDict
	Phone    personPhone
	Backup   *personPhone
	Secret   string `schema:"-"`
	FullName string `schema:"Title"`
}

func (person) FieldDefaults() map[string]any {
	return map[string]any{"Age": int32(18)}
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)

	reg := schemas.New()
	c := New(reg, "test")

	tp, err := c.Convert(reflect.TypeOf(person{}))
	require.NoError(err)
	require.NotNil(tp)

	personName := schemas.NewQName("test", "person")
	require.Equal(personName, tp.QName())

	s := reg.Schema(personName)
	require.NotNil(s)
	require.Equal(tp, s)

	t.Run("fields follow declaration order, skipping excluded ones", func(t *testing.T) {
		names := make([]string, 0)
		s.Fields(func(f schemas.Field) { names = append(names, f.Name()) })
		require.Equal(
			[]string{"Name", "Age", "Weight", "Tags", "Scores", "Photo", "Meta", "Phone", "Backup", "Title"},
			names,
			"compiled schema: %s", spew.Sdump(names))
	})

	t.Run("scalar kinds and containers", func(t *testing.T) {
		require.Equal(schemas.DataKind_string, s.Field("Name").DataKind())
		require.True(s.Field("Name").Required())

		require.Equal(schemas.DataKind_string, s.Field("Tags").DataKind())
		require.Equal(schemas.ContainerKind_List, s.Field("Tags").Container())

		require.Equal(schemas.DataKind_int64, s.Field("Scores").DataKind())
		require.Equal(schemas.ContainerKind_Map, s.Field("Scores").Container())

		require.Equal(schemas.DataKind_bytes, s.Field("Photo").DataKind())
		require.Equal(schemas.ContainerKind_None, s.Field("Photo").Container())

		require.Equal(schemas.DataKind_JSON, s.Field("Meta").DataKind())
		require.Equal(schemas.ContainerKind_None, s.Field("Meta").Container())
	})

	t.Run("optional classification", func(t *testing.T) {
		age := s.Field("Age")
		require.False(age.Required(), "defaulted field must be optional")
		v, ok := age.Default()
		require.True(ok)
		require.EqualValues(18, v)

		weight := s.Field("Weight")
		require.False(weight.Required(), "nullable field must be optional")
		_, ok = weight.Default()
		require.False(ok)

		require.True(s.Field("Title").Required())
	})

	t.Run("nested record compiled once, referenced twice", func(t *testing.T) {
		phone := s.Nested("personPhone")
		require.NotNil(phone)
		require.Equal(schemas.NewQName("test", "person.personPhone"), phone.QName())
		require.Equal(2, phone.FieldCount())

		require.Equal(schemas.DataKind_Record, s.Field("Phone").DataKind())
		require.Equal(phone.QName(), s.Field("Phone").Ref())

		require.Equal(phone.QName(), s.Field("Backup").Ref())
		require.False(s.Field("Backup").Required())

		// nested type is memoized under its source type
		require.Equal(schemas.Type(phone), reg.TypeByKey(reflect.TypeOf(personPhone{})))
	})

	t.Run("conversion is memoized", func(t *testing.T) {
		again, err := c.Convert(reflect.TypeOf(person{}))
		require.NoError(err)
		require.Same(tp, again)

		nested, err := c.Convert(reflect.TypeOf(personPhone{}))
		require.NoError(err)
		require.Equal(schemas.Type(s.Nested("personPhone")), nested)

		byValue, err := c.ConvertValue(&person{})
		require.NoError(err)
		require.Same(tp, byValue)

		require.Equal(2, reg.TypeCount())
	})
}

type color int32

func (color) EnumValues() []schemas.EnumValue {
	return []schemas.EnumValue{
		{Name: "Red", Value: 0},
		{Name: "Green", Value: 1},
		{Name: "Blue", Value: 2},
	}
}

type palette struct {
	Primary   color
	Secondary *color
}

func TestConvertEnums(t *testing.T) {
	require := require.New(t)

	t.Run("standalone enumeration", func(t *testing.T) {
		reg := schemas.New()
		c := New(reg, "test")

		tp, err := c.Convert(reflect.TypeOf(color(0)))
		require.NoError(err)
		require.Equal(schemas.TypeKind_Enum, tp.Kind())

		e := reg.Enum(schemas.NewQName("test", "color"))
		require.NotNil(e)
		require.Equal(3, e.ValueCount())
		v, ok := e.Value("Green")
		require.True(ok)
		require.EqualValues(1, v)
	})

	reg := schemas.New()
	c := New(reg, "test")

	tp, err := c.Convert(reflect.TypeOf(palette{}))
	require.NoError(err)

	s := reg.Schema(tp.QName())
	require.NotNil(s)

	e := s.NestedEnum("color")
	require.NotNil(e)
	require.Equal(schemas.NewQName("test", "palette.color"), e.QName())

	require.Equal(schemas.DataKind_Enum, s.Field("Primary").DataKind())
	require.Equal(e.QName(), s.Field("Primary").Ref())

	require.Equal(e.QName(), s.Field("Secondary").Ref())
	require.False(s.Field("Secondary").Required())

	// the nested enumeration is memoized as the compiled form of its type
	again, err := c.Convert(reflect.TypeOf(color(0)))
	require.NoError(err)
	require.Equal(schemas.Type(e), again)
}

type payment struct {
	Total int64
	Cash  int64
	Card  string
}

func (payment) UnionGroups() []UnionGroupDecl {
	return []UnionGroupDecl{{Name: "Method", Members: []string{"Cash", "Card"}}}
}

func TestConvertUnions(t *testing.T) {
	require := require.New(t)

	reg := schemas.New()
	c := New(reg, "test")

	tp, err := c.Convert(reflect.TypeOf(payment{}))
	require.NoError(err)

	s := reg.Schema(tp.QName())
	require.NotNil(s)

	u := s.UnionGroup("Method")
	require.NotNil(u)
	require.Equal([]string{"Cash", "Card"}, u.Members())

	require.Equal("Method", s.Field("Cash").UnionGroup())
	require.Equal("Method", s.Field("Card").UnionGroup())
	require.Empty(s.Field("Total").UnionGroup())

	// union members stay required in storage, absence is expressed
	// through the group
	require.True(s.Field("Cash").Required())
	require.True(s.Field("Card").Required())
}

type node struct {
	Value string
	Next  *node
}

type treeA struct {
	Label string
	B     *treeB
}

type treeB struct {
	Label string
	A     *treeA
}

func TestConvertCycles(t *testing.T) {
	require := require.New(t)

	t.Run("self-referencing type", func(t *testing.T) {
		reg := schemas.New()
		c := New(reg, "test")

		tp, err := c.Convert(reflect.TypeOf(node{}))
		require.NoError(err)

		s := reg.Schema(tp.QName())
		require.Equal(schemas.DataKind_Record, s.Field("Next").DataKind())
		require.Equal(s.QName(), s.Field("Next").Ref())
		require.False(s.Field("Next").Required())
	})

	t.Run("mutually referencing types", func(t *testing.T) {
		reg := schemas.New()
		c := New(reg, "test")

		tp, err := c.Convert(reflect.TypeOf(treeA{}))
		require.NoError(err)

		a := reg.Schema(tp.QName())
		require.NotNil(a)

		// treeB is first reached through treeA, so it is owned by it
		b := a.Nested("treeB")
		require.NotNil(b)
		require.Equal(a.QName(), b.Field("A").Ref())
		require.Equal(b.QName(), a.Field("B").Ref())

		again, err := c.Convert(reflect.TypeOf(treeB{}))
		require.NoError(err)
		require.Equal(schemas.Type(b), again)
	})
}
