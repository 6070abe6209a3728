//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"auction-market/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validTemplateParams() coupon.NewTemplateParams {
	return coupon.NewTemplateParams{
		ID:                "COUPAAAA1111",
		Name:              "spring sale",
		DiscountType:      coupon.Percent,
		DiscountValue:     f(0.8),
		MinPurchaseAmount: 500,
		CouponCount:       10,
		MaxUsage:          2,
		ValidityDays:      30,
	}
}

func TestNewTemplate(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		tpl, err := coupon.NewTemplate(validTemplateParams(), now)
		require.NoError(t, err)

		assert.Equal(t, "spring sale", tpl.Name())
		assert.Equal(t, now.AddDate(0, 0, 30), tpl.ExpireTime())
		assert.Equal(t, now, tpl.CreatedTime())
	})

	t.Run("explicit expire time wins over validity days", func(t *testing.T) {
		params := validTemplateParams()
		expire := now.Add(48 * time.Hour)
		params.ExpireTime = &expire

		tpl, err := coupon.NewTemplate(params, now)
		require.NoError(t, err)
		assert.Equal(t, expire, tpl.ExpireTime())
	})

	cases := []struct {
		name   string
		mutate func(*coupon.NewTemplateParams)
		errIs  error
	}{
		{
			name:   "blank name",
			mutate: func(p *coupon.NewTemplateParams) { p.Name = "   " },
			errIs:  coupon.ErrEmptyName,
		},
		{
			name:   "negative minimum amount",
			mutate: func(p *coupon.NewTemplateParams) { p.MinPurchaseAmount = -1 },
			errIs:  coupon.ErrNegativeMinAmount,
		},
		{
			name:   "negative max usage",
			mutate: func(p *coupon.NewTemplateParams) { p.MaxUsage = -1 },
			errIs:  coupon.ErrNegativeMaxUsage,
		},
		{
			name:   "negative count",
			mutate: func(p *coupon.NewTemplateParams) { p.CouponCount = -1 },
			errIs:  coupon.ErrNegativeCount,
		},
		{
			name: "expire before creation",
			mutate: func(p *coupon.NewTemplateParams) {
				past := now.Add(-time.Hour)
				p.ExpireTime = &past
			},
			errIs: coupon.ErrExpireBeforeCreate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validTemplateParams()
			tc.mutate(&params)
			_, err := coupon.NewTemplate(params, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestCanIssue(t *testing.T) {
	t.Run("issuable while stocked and unexpired", func(t *testing.T) {
		tpl, err := coupon.NewTemplate(validTemplateParams(), now)
		require.NoError(t, err)
		assert.NoError(t, tpl.CanIssue(now))
		assert.True(t, tpl.Available(now))
	})

	t.Run("exhausted pool", func(t *testing.T) {
		params := validTemplateParams()
		params.CouponCount = 0
		tpl, err := coupon.NewTemplate(params, now)
		require.NoError(t, err)
		assert.ErrorIs(t, tpl.CanIssue(now), coupon.ErrTemplateExhausted)
	})

	t.Run("expired template", func(t *testing.T) {
		tpl, err := coupon.NewTemplate(validTemplateParams(), now)
		require.NoError(t, err)
		later := tpl.ExpireTime().Add(time.Second)
		assert.ErrorIs(t, tpl.CanIssue(later), coupon.ErrTemplateExpired)
		assert.False(t, tpl.Available(later))
	})
}

func TestMeetsMinimum(t *testing.T) {
	tpl, err := coupon.NewTemplate(validTemplateParams(), now)
	require.NoError(t, err)

	assert.True(t, tpl.MeetsMinimum(500))
	assert.False(t, tpl.MeetsMinimum(499.99))
}

func TestUserCoupon(t *testing.T) {
	tpl, err := coupon.NewTemplate(validTemplateParams(), now)
	require.NoError(t, err)

	t.Run("issue copies template usage and expiry", func(t *testing.T) {
		uc := coupon.Issue("UC1", "user-1", tpl, now)
		assert.Equal(t, 2, uc.RemainingUsage())
		assert.Equal(t, tpl.ExpireTime(), uc.ExpireTime())
		assert.NoError(t, uc.CanApply(now))
	})

	t.Run("top up adds usage without a new instance", func(t *testing.T) {
		uc := coupon.Issue("UC1", "user-1", tpl, now)
		uc.TopUp(tpl)
		assert.Equal(t, 4, uc.RemainingUsage())
	})

	t.Run("consume spends one credit and records the order", func(t *testing.T) {
		uc := coupon.Issue("UC1", "user-1", tpl, now)
		require.NoError(t, uc.Consume("ORD1", now))
		assert.Equal(t, 1, uc.RemainingUsage())
		require.NotNil(t, uc.OrderID())
		assert.Equal(t, "ORD1", *uc.OrderID())
		require.NotNil(t, uc.UsedTime())
	})

	t.Run("exhausted credits reject application", func(t *testing.T) {
		uc := coupon.Issue("UC1", "user-1", tpl, now)
		require.NoError(t, uc.Consume("ORD1", now))
		require.NoError(t, uc.Consume("ORD2", now))
		assert.ErrorIs(t, uc.CanApply(now), coupon.ErrNoRemainingUsage)
	})

	t.Run("expired instance rejects application", func(t *testing.T) {
		uc := coupon.Issue("UC1", "user-1", tpl, now)
		assert.ErrorIs(t, uc.CanApply(uc.ExpireTime().Add(time.Second)), coupon.ErrCouponExpired)
	})

	t.Run("owner check", func(t *testing.T) {
		uc := coupon.Issue("UC1", "user-1", tpl, now)
		assert.NoError(t, uc.CheckOwner("user-1"))
		assert.ErrorIs(t, uc.CheckOwner("user-2"), coupon.ErrNotCouponOwner)
	})
}
