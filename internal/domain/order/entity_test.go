//go:build unit

package order_test

import (
	"testing"
	"time"

	"auction-market/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func items() []order.Item {
	return []order.Item{
		{ProductID: "PRODAAAA1111", Quantity: 2, SellerID: "seller-1", UnitPrice: 300},
		{ProductID: "PRODBBBB2222", Quantity: 1, SellerID: "seller-2", UnitPrice: 600},
		{ProductID: "PRODCCCC3333", Quantity: 1, SellerID: "seller-1", UnitPrice: 450},
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("totals items plus shipping", func(t *testing.T) {
		o, err := order.NewOrder("ORD1", "buyer-1", order.TypeDirect, items(), 100, now)
		require.NoError(t, err)

		assert.Equal(t, 1750.0, o.TotalPrice())
		assert.Equal(t, 1650.0, o.ProductTotal())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.True(t, o.IsPending())
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		_, err := order.NewOrder("ORD1", "buyer-1", order.TypeDirect, nil, 100, now)
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("rejects non positive quantity", func(t *testing.T) {
		bad := items()
		bad[0].Quantity = 0
		_, err := order.NewOrder("ORD1", "buyer-1", order.TypeDirect, bad, 100, now)
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})
}

func TestGiveawayItem(t *testing.T) {
	o, err := order.NewOrder("ORD1", "buyer-1", order.TypeDirect, items(), 100, now)
	require.NoError(t, err)

	t.Run("picks priciest item under the ceiling", func(t *testing.T) {
		// 600 is over the ceiling, so 450 beats 300.
		item, err := o.GiveawayItem(500)
		require.NoError(t, err)
		assert.Equal(t, "PRODCCCC3333", item.ProductID)
		assert.Equal(t, 450.0, item.UnitPrice)
	})

	t.Run("no item fits under a tiny ceiling", func(t *testing.T) {
		_, err := o.GiveawayItem(100)
		assert.ErrorIs(t, err, order.ErrNoGiveawayItem)
	})
}

func TestAwardGiveaway(t *testing.T) {
	o, err := order.NewOrder("ORD1", "buyer-1", order.TypeDirect, items(), 100, now)
	require.NoError(t, err)

	o.AwardGiveaway("PRODCCCC3333")

	var qty int
	for _, it := range o.Items() {
		if it.ProductID == "PRODCCCC3333" {
			qty = it.Quantity
		}
	}
	assert.Equal(t, 2, qty)
	// The giveaway unit is free: totals are untouched.
	assert.Equal(t, 1750.0, o.TotalPrice())
}

func TestSettle(t *testing.T) {
	t.Run("completes a pending order", func(t *testing.T) {
		o, err := order.NewOrder("ORD1", "buyer-1", order.TypeDirect, items(), 100, now)
		require.NoError(t, err)

		require.NoError(t, o.Settle(1420, 0))
		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, 1420.0, o.TotalPrice())
		assert.Equal(t, 0.0, o.ShippingFee())
	})

	t.Run("settling twice fails", func(t *testing.T) {
		o, _ := order.NewOrder("ORD1", "buyer-1", order.TypeDirect, items(), 100, now)
		require.NoError(t, o.Settle(1750, 100))
		assert.ErrorIs(t, o.Settle(1750, 100), order.ErrNotPending)
	})

	t.Run("rejects negative total", func(t *testing.T) {
		o, _ := order.NewOrder("ORD1", "buyer-1", order.TypeDirect, items(), 100, now)
		assert.ErrorIs(t, o.Settle(-1, 100), order.ErrNegativeTotalPrice)
	})
}
