package response

import (
	"time"

	"auction-market/internal/usecase/queries"
)

type CouponResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	DiscountType      string    `json:"discountType"`
	DiscountValue     *float64  `json:"discountValue,omitempty"`
	MinPurchaseAmount float64   `json:"minPurchaseAmount"`
	CouponCount       int       `json:"couponCount"`
	MaxUsage          int       `json:"maxUsage"`
	ExpireTime        time.Time `json:"expireTime"`
	CreatedAt         time.Time `json:"createdAt"`
}

type UserCouponResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	CouponID       string     `json:"couponId"`
	GetTime        time.Time  `json:"getTime"`
	ExpireTime     time.Time  `json:"expireTime"`
	RemainingUsage int        `json:"remainingUsage"`
	UsedTime       *time.Time `json:"usedTime,omitempty"`
	OrderID        *string    `json:"orderId,omitempty"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	return &CouponResponse{
		ID:                v.ID,
		Name:              v.Name,
		DiscountType:      v.DiscountType,
		DiscountValue:     v.DiscountValue,
		MinPurchaseAmount: v.MinPurchaseAmount,
		CouponCount:       v.CouponCount,
		MaxUsage:          v.MaxUsage,
		ExpireTime:        v.ExpireTime,
		CreatedAt:         v.CreatedAt,
	}
}

func FromCouponViews(views []*queries.CouponView) []*CouponResponse {
	out := make([]*CouponResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCouponView(v))
	}
	return out
}

func FromUserCouponView(v *queries.UserCouponView) *UserCouponResponse {
	return &UserCouponResponse{
		ID:             v.ID,
		UserID:         v.UserID,
		CouponID:       v.CouponID,
		GetTime:        v.GetTime,
		ExpireTime:     v.ExpireTime,
		RemainingUsage: v.RemainingUsage,
		UsedTime:       v.UsedTime,
		OrderID:        v.OrderID,
	}
}

func FromUserCouponViews(views []*queries.UserCouponView) []*UserCouponResponse {
	out := make([]*UserCouponResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromUserCouponView(v))
	}
	return out
}
