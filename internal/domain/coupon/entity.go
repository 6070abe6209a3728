package coupon

import (
	"strings"
	"time"

	"auction-market/internal/pkg/errs"
)

var (
	ErrEmptyName          = errs.New("coupon name is required")
	ErrNegativeMinAmount  = errs.New("minimum purchase amount cannot be negative")
	ErrNegativeMaxUsage   = errs.New("max usage cannot be negative")
	ErrNegativeCount      = errs.New("coupon count cannot be negative")
	ErrExpireBeforeCreate = errs.New("expire time cannot precede creation time")
	ErrTemplateExhausted  = errs.New("coupon template out of stock")
	ErrTemplateExpired    = errs.New("coupon template expired")
)

// Template is the shared, limited-count definition of a discount offer.
// Per-user redeemable instances are derived from it at issuance.
type Template struct {
	id                string
	name              string
	discount          Discount
	minPurchaseAmount float64
	couponCount       int
	maxUsage          int
	expireTime        time.Time
	createdTime       time.Time
}

type NewTemplateParams struct {
	ID                string
	Name              string
	DiscountType      DiscountType
	DiscountValue     *float64
	MinPurchaseAmount float64
	CouponCount       int
	MaxUsage          int
	ExpireTime        *time.Time
	ValidityDays      int
}

func NewTemplate(p NewTemplateParams, now time.Time) (*Template, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	discount, err := NewDiscount(p.DiscountType, p.DiscountValue)
	if err != nil {
		return nil, err
	}
	if p.MinPurchaseAmount < 0 {
		return nil, ErrNegativeMinAmount
	}
	if p.MaxUsage < 0 {
		return nil, ErrNegativeMaxUsage
	}
	if p.CouponCount < 0 {
		return nil, ErrNegativeCount
	}

	expire := now.AddDate(0, 0, p.ValidityDays)
	if p.ExpireTime != nil {
		if p.ExpireTime.Before(now) {
			return nil, ErrExpireBeforeCreate
		}
		expire = *p.ExpireTime
	}

	return &Template{
		id:                p.ID,
		name:              name,
		discount:          discount,
		minPurchaseAmount: p.MinPurchaseAmount,
		couponCount:       p.CouponCount,
		maxUsage:          p.MaxUsage,
		expireTime:        expire,
		createdTime:       now,
	}, nil
}

func ReconstructTemplate(
	id, name string,
	discount Discount,
	minPurchaseAmount float64,
	couponCount, maxUsage int,
	expireTime, createdTime time.Time,
) *Template {
	return &Template{
		id:                id,
		name:              name,
		discount:          discount,
		minPurchaseAmount: minPurchaseAmount,
		couponCount:       couponCount,
		maxUsage:          maxUsage,
		expireTime:        expireTime,
		createdTime:       createdTime,
	}
}

// Available reports whether the template can still be issued.
func (t *Template) Available(now time.Time) bool {
	return t.couponCount > 0 && t.expireTime.After(now)
}

// CanIssue reports why issuance would be rejected, nil if allowed.
func (t *Template) CanIssue(now time.Time) error {
	if t.couponCount <= 0 {
		return ErrTemplateExhausted
	}
	if !t.expireTime.After(now) {
		return ErrTemplateExpired
	}
	return nil
}

// MeetsMinimum gates discount application on the order's product total.
func (t *Template) MeetsMinimum(productTotal float64) bool {
	return productTotal >= t.minPurchaseAmount
}

func (t *Template) ID() string                 { return t.id }
func (t *Template) Name() string               { return t.name }
func (t *Template) Discount() Discount         { return t.discount }
func (t *Template) MinPurchaseAmount() float64 { return t.minPurchaseAmount }
func (t *Template) CouponCount() int           { return t.couponCount }
func (t *Template) MaxUsage() int              { return t.maxUsage }
func (t *Template) ExpireTime() time.Time      { return t.expireTime }
func (t *Template) CreatedTime() time.Time     { return t.createdTime }
