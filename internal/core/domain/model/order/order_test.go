package order_test

import (
	"testing"

	"deliverymanager/internal/core/domain/model/kernel"
	"deliverymanager/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, code string, quantity int) order.Line {
	t.Helper()
	l, err := order.NewLine(code, quantity)
	require.NoError(t, err)
	return l
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with valid identity", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.Lines())
		assert.True(t, o.DeliveryFee().IsZero())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should reject order that bypassed the constructor", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Setters(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)
		return o
	}

	t.Run("should trim free-text fields", func(t *testing.T) {
		o := newOrder(t)

		o.SetClientName("  Rakoto Jean  ")
		o.SetPhone(" 034 12 345 67 ")
		o.SetAddress("  Lot II A 23 Andoharanofotsy  ")
		o.SetAgent("  Hery ")
		o.SetNotes("  call before noon ")

		assert.Equal(t, "Rakoto Jean", o.ClientName())
		assert.Equal(t, "034 12 345 67", o.Phone())
		assert.Equal(t, "Lot II A 23 Andoharanofotsy", o.Address())
		assert.Equal(t, "Hery", o.Agent())
		assert.Equal(t, "call before noon", o.Notes())
	})

	t.Run("should reject negative delivery fee", func(t *testing.T) {
		o := newOrder(t)

		err := o.SetDeliveryFee(kernel.MoneyFromInt(-100))

		require.Error(t, err)
		assert.True(t, o.DeliveryFee().IsZero())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o := newOrder(t)

		err := o.SetStatus(order.Unknown)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should accept any valid status from any other", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.SetStatus(order.Cancelled))
		require.NoError(t, o.SetStatus(order.Ok))
		assert.Equal(t, order.Ok, o.Status())
	})

	t.Run("should reject lines that bypassed the constructor", func(t *testing.T) {
		o := newOrder(t)
		var rogue order.Line

		err := o.SetLines([]order.Line{rogue})

		require.ErrorIs(t, err, order.ErrLineIsNotConstructed)
		assert.Empty(t, o.Lines())
	})

	t.Run("Lines returns a copy", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.SetLines([]order.Line{mustLine(t, "CA", 2)}))

		lines := o.Lines()
		lines[0] = mustLine(t, "ZZ", 9)

		assert.Equal(t, "CA", o.Lines()[0].ProductCode())
	})
}

func TestOrder_Total(t *testing.T) {
	catalog := testCatalog(t)

	newOrderWithLines := func(t *testing.T, lines []order.Line) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, o.SetLines(lines))
		require.NoError(t, o.SetDeliveryFee(kernel.MoneyFromInt(3000)))
		return o
	}

	t.Run("should sum line totals plus delivery fee", func(t *testing.T) {
		o := newOrderWithLines(t, []order.Line{
			mustLine(t, "CA", 2), // 50 000
			mustLine(t, "TA", 1), // 25 000
		})

		assert.True(t, kernel.MoneyFromInt(78000).Equals(o.Total(catalog)))
	})

	t.Run("should be invariant to line order", func(t *testing.T) {
		forward := newOrderWithLines(t, []order.Line{
			mustLine(t, "CA", 2),
			mustLine(t, "BS", 100),
		})
		reversed := newOrderWithLines(t, []order.Line{
			mustLine(t, "BS", 100),
			mustLine(t, "CA", 2),
		})

		assert.True(t, forward.Total(catalog).Equals(reversed.Total(catalog)))
	})

	t.Run("should recompute after edits rather than cache", func(t *testing.T) {
		o := newOrderWithLines(t, []order.Line{mustLine(t, "CA", 1)})
		first := o.Total(catalog)

		require.NoError(t, o.SetLines([]order.Line{mustLine(t, "CA", 2)}))

		assert.False(t, first.Equals(o.Total(catalog)))
		assert.True(t, kernel.MoneyFromInt(53000).Equals(o.Total(catalog)))
	})

	t.Run("unresolved codes contribute zero", func(t *testing.T) {
		o := newOrderWithLines(t, []order.Line{
			mustLine(t, "CA", 1),
			mustLine(t, "ZZ", 5),
		})

		assert.True(t, kernel.MoneyFromInt(28000).Equals(o.Total(catalog)))
		assert.Equal(t, []string{"ZZ"}, o.UnresolvedCodes(catalog))
	})
}

func TestOrder_ProductsText(t *testing.T) {
	t.Run("should reconstruct the products field from lines", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, o.SetLines([]order.Line{
			mustLine(t, "CA", 2),
			mustLine(t, "TA", 1),
		}))

		assert.Equal(t, "CA x 2, TA", o.ProductsText())
	})
}
