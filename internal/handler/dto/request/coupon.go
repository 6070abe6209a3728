package request

import (
	"time"

	"auction-market/internal/usecase/commands"
)

type CreateCouponRequest struct {
	Name              string     `json:"name" binding:"required"`
	DiscountType      string     `json:"discount_type" binding:"required,oneof=PERCENT FIXED FREESHIP BUY_ONE_GET_ONE"`
	DiscountValue     *float64   `json:"discount_value,omitempty"`
	MinPurchaseAmount float64    `json:"min_purchase_amount" binding:"min=0"`
	CouponCount       int        `json:"coupon_count" binding:"required,gt=0"`
	MaxUsage          int        `json:"max_usage" binding:"required,gt=0"`
	ExpireTime        *time.Time `json:"expire_time,omitempty"`
}

func (r CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Name:              r.Name,
		DiscountType:      r.DiscountType,
		DiscountValue:     r.DiscountValue,
		MinPurchaseAmount: r.MinPurchaseAmount,
		CouponCount:       r.CouponCount,
		MaxUsage:          r.MaxUsage,
		ExpireTime:        r.ExpireTime,
	}
}
