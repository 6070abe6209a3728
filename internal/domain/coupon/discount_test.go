//go:build unit

package coupon_test

import (
	"testing"

	"auction-market/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestNewDiscount(t *testing.T) {
	cases := []struct {
		name  string
		kind  coupon.DiscountType
		value *float64
		errIs error
	}{
		{name: "valid percent", kind: coupon.Percent, value: f(0.8)},
		{name: "percent requires value", kind: coupon.Percent, errIs: coupon.ErrDiscountValueRequired},
		{name: "percent of zero", kind: coupon.Percent, value: f(0), errIs: coupon.ErrInvalidPercentValue},
		{name: "percent of one", kind: coupon.Percent, value: f(1), errIs: coupon.ErrInvalidPercentValue},
		{name: "valid fixed", kind: coupon.Fixed, value: f(500)},
		{name: "fixed requires value", kind: coupon.Fixed, errIs: coupon.ErrDiscountValueRequired},
		{name: "negative fixed", kind: coupon.Fixed, value: f(-1), errIs: coupon.ErrInvalidFixedValue},
		{name: "free shipping", kind: coupon.FreeShipping},
		{name: "buy one get one", kind: coupon.BuyOneGetOne},
		{name: "unknown kind", kind: coupon.DiscountType("HALF_OFF"), errIs: coupon.ErrInvalidDiscountType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := coupon.NewDiscount(tc.kind, tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.kind, d.Kind())
		})
	}

	t.Run("value less kinds discard a supplied value", func(t *testing.T) {
		d, err := coupon.NewDiscount(coupon.FreeShipping, f(0.5))
		require.NoError(t, err)
		assert.Nil(t, d.Value())
	})
}

func TestAmountFor(t *testing.T) {
	t.Run("percent value is the fraction discounted", func(t *testing.T) {
		d, err := coupon.NewDiscount(coupon.Percent, f(0.2))
		require.NoError(t, err)

		amount, err := d.AmountFor(1000)
		require.NoError(t, err)
		assert.InDelta(t, 200, amount, 1e-9)
	})

	t.Run("fixed discount capped at the total", func(t *testing.T) {
		d, err := coupon.NewDiscount(coupon.Fixed, f(500))
		require.NoError(t, err)

		amount, err := d.AmountFor(1000)
		require.NoError(t, err)
		assert.Equal(t, 500.0, amount)

		amount, err = d.AmountFor(300)
		require.NoError(t, err)
		assert.Equal(t, 300.0, amount)
	})

	t.Run("order dependent kinds are not computable here", func(t *testing.T) {
		d, err := coupon.NewDiscount(coupon.BuyOneGetOne, nil)
		require.NoError(t, err)

		_, err = d.AmountFor(1000)
		assert.ErrorIs(t, err, coupon.ErrDiscountNotComputable)
	})
}
