/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package dynobuf

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/untillpro/dynobuffers"

	"github.com/untillpro/dataobjects/pkg/objects"
	"github.com/untillpro/dataobjects/pkg/schemas"
)

func orderRegistry(t *testing.T) (schemas.Registry, schemas.QName) {
	require := require.New(t)

	reg := schemas.New()
	name := schemas.NewQName("test", "Order")

	b := reg.Add(name, nil)
	b.
		AddField("Buyer", schemas.DataKind_string, true).
		AddField("Qty", schemas.DataKind_int32, true).
		AddField("Weight", schemas.DataKind_float64, false).
		AddField("Seq", schemas.DataKind_uint32, false).
		AddField("Photo", schemas.DataKind_bytes, false).
		AddField("Tags", schemas.DataKind_string, false).
		SetFieldContainer("Tags", schemas.ContainerKind_List).
		AddField("Scores", schemas.DataKind_int64, false).
		SetFieldContainer("Scores", schemas.ContainerKind_Map).
		AddField("Meta", schemas.DataKind_JSON, false).
		AddField("Cash", schemas.DataKind_int64, true).
		AddField("Card", schemas.DataKind_string, true).
		AddUnion("Payment", "Cash", "Card")

	b.AddNested("Basket", nil).
		AddField("GoodCount", schemas.DataKind_int32, true)
	basket := b.Nested("Basket").(schemas.SchemaBuilder)

	state := b.AddNestedEnum("State", nil,
		schemas.EnumValue{Name: "Draft", Value: 0},
		schemas.EnumValue{Name: "Paid", Value: 1},
	)
	b.
		AddRefField("Items", schemas.DataKind_Record, basket.QName(), false).
		AddRefField("CurrentState", schemas.DataKind_Enum, state.QName(), false)

	_, err := basket.Build()
	require.NoError(err)
	_, err = b.Build()
	require.NoError(err)

	return reg, name
}

func TestSchemes(t *testing.T) {
	require := require.New(t)

	reg, orderName := orderRegistry(t)

	schemes := New()
	schemes.Prepare(reg)

	checkScheme := func(name schemas.QName) {
		scheme := schemes.Scheme(name)
		require.NotNil(scheme)
		require.Equal(name.String(), scheme.Name)

		s := reg.Schema(name)
		require.NotNil(s)

		for _, fld := range scheme.Fields {
			f := s.Field(fld.Name)
			require.NotNil(f)
			switch {
			case f.Container() == schemas.ContainerKind_Map:
				require.Equal(dynobuffers.FieldTypeString, fld.Ft, "mappings must travel JSON-encoded")
			default:
				require.Equal(DataKindToFieldType(f.DataKind()), fld.Ft)
				require.Equal(
					(fld.Ft == dynobuffers.FieldTypeByte) || (f.Container() == schemas.ContainerKind_List),
					fld.IsArray)
			}
		}
	}

	checkScheme(orderName)
	checkScheme(schemas.NewQName("test", "Order.Basket"))

	require.Nil(schemes.Scheme(schemas.NewQName("test", "Order.State")), "no schemes for enumerations")
	require.Nil(schemes.Scheme(schemas.NewQName("test", "Unknown")))
}

func TestCodecBasicUsage(t *testing.T) {
	require := require.New(t)

	reg, orderName := orderRegistry(t)
	mat := objects.New(reg)
	codec := NewCodec(reg, mat)

	order, err := mat.Materialize(orderName)
	require.NoError(err)

	basket, err := order.Nested("Basket").New([]any{int32(3)}, nil)
	require.NoError(err)

	o, err := order.New(nil, map[string]any{
		"Buyer":        "Ken",
		"Qty":          int32(2),
		"Weight":       1.5,
		"Seq":          uint32(7),
		"Photo":        []byte{1, 2, 3},
		"Tags":         []string{"new", "vip"},
		"Scores":       map[string]int64{"total": 100},
		"Meta":         map[string]any{"note": "asap"},
		"Card":         "****1234",
		"Items":        basket,
		"CurrentState": "Paid",
	})
	require.NoError(err)

	data, err := codec.Encode(o)
	require.NoError(err)
	require.NotEmpty(data)

	back, err := codec.Decode(orderName, data)
	require.NoError(err)

	value := func(name string) any {
		v, ok := back.Value(name)
		require.True(ok, "field «%s» must survive the round trip", name)
		return v
	}

	require.Equal("Ken", value("Buyer"))
	require.EqualValues(2, value("Qty"))
	require.EqualValues(1.5, value("Weight"))
	require.Equal(uint32(7), value("Seq"))
	require.Equal([]byte{1, 2, 3}, value("Photo"))
	require.EqualValues([]string{"new", "vip"}, value("Tags"))
	require.Equal(map[string]any{"total": int64(100)}, value("Scores"))
	require.Equal(map[string]any{"note": "asap"}, value("Meta"))
	require.Equal("****1234", value("Card"))
	require.EqualValues(1, value("CurrentState"), "labels travel by numeric value")

	items, ok := back.Value("Items")
	require.True(ok)
	cnt, ok := items.(objects.Object).Value("GoodCount")
	require.True(ok)
	require.EqualValues(3, cnt)

	member, ok := back.WhichUnion("Payment")
	require.True(ok, "discriminant must be restored from the present member")
	require.Equal("Card", member)

	_, ok = back.Value("Cash")
	require.False(ok)
}

func TestCodecErrors(t *testing.T) {
	require := require.New(t)

	reg, _ := orderRegistry(t)
	mat := objects.New(reg)
	codec := NewCodec(reg, mat)

	t.Run("must be error to decode an unknown type", func(t *testing.T) {
		_, err := codec.Decode(schemas.NewQName("test", "Unknown"), nil)
		require.ErrorIs(err, schemas.ErrNotFoundError)
	})

	t.Run("must be error to decode an enumeration", func(t *testing.T) {
		_, err := codec.Decode(schemas.NewQName("test", "Order.State"), nil)
		require.ErrorIs(err, schemas.ErrValidationError)
	})

	t.Run("must be error to encode with an unprepared scheme", func(t *testing.T) {
		lateName := schemas.NewQName("test", "Late")
		b := reg.Add(lateName, nil)
		b.AddField("Name", schemas.DataKind_string, false)
		_, err := b.Build()
		require.NoError(err)

		late, err := mat.Materialize(lateName)
		require.NoError(err)
		o, err := late.New(nil, nil)
		require.NoError(err)

		_, err = codec.Encode(o)
		require.ErrorIs(err, schemas.ErrNotFoundError)
	})
}
