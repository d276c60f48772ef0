/*
 * Copyright (c) 2023-present unTill Software Development Group B.V.
 */

package schemas

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_QName(t *testing.T) {
	require := require.New(t)

	// Create from pkg + entity

	qname := NewQName("sale", "orders")
	require.Equal(NewQName("sale", "orders"), qname)
	require.Equal("sale", qname.Pkg())
	require.Equal("orders", qname.Entity())

	require.Equal("sale.orders", fmt.Sprint(qname))

	// Parse string

	qname2, err := ParseQName("sale.orders")
	require.NoError(err)
	require.Equal(qname, qname2)

	// Entity names of nested types keep their dots

	nested, err := ParseQName("sale.orders.item")
	require.NoError(err)
	require.Equal("sale", nested.Pkg())
	require.Equal("orders.item", nested.Entity())

	// Errors

	for _, bad := range []string{"", "saleOrders", ".orders", "sale."} {
		_, err = ParseQName(bad)
		require.ErrorIs(err, ErrInvalidError, "ParseQName(%q)", bad)
	}

	require.Panics(func() { MustParseQName("saleOrders") })
}

func TestBasicUsage_QName_JSON(t *testing.T) {
	require := require.New(t)

	t.Run("marshal and unmarshal QName", func(t *testing.T) {
		qname := NewQName("test", "Sale.Basket")

		j, err := json.Marshal(&qname)
		require.NoError(err)

		var qname2 QName
		require.NoError(json.Unmarshal(j, &qname2))
		require.Equal(qname, qname2)
	})

	t.Run("marshal and unmarshal QName as a map key", func(t *testing.T) {
		m := map[QName]int{NewQName("test", "rec"): 1}

		j, err := json.Marshal(m)
		require.NoError(err)

		var m2 map[QName]int
		require.NoError(json.Unmarshal(j, &m2))
		require.Equal(m, m2)
	})
}

func Test_ValidQName(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name  QName
		valid bool
	}{
		{NullQName, false},
		{NewQName("test", "rec"), true},
		{NewQName("test", "Rec.Nested"), true},
		{NewQName("", "rec"), false},
		{NewQName("test", ""), false},
		{NewQName("te st", "rec"), false},
		{NewQName("test", "re.c."), false},
	}

	for _, tt := range tests {
		ok, err := ValidQName(tt.name)
		require.Equal(tt.valid, ok, "ValidQName(%v)", tt.name)
		if !tt.valid {
			require.Error(err)
		}
	}
}
