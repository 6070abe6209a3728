package queries

import (
	"context"
	"time"

	"auction-market/internal/domain/coupon"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
)

type CouponView struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	DiscountType      string    `json:"discount_type"`
	DiscountValue     *float64  `json:"discount_value,omitempty"`
	MinPurchaseAmount float64   `json:"min_purchase_amount"`
	CouponCount       int       `json:"coupon_count"`
	MaxUsage          int       `json:"max_usage"`
	ExpireTime        time.Time `json:"expire_time"`
	CreatedAt         time.Time `json:"created_at"`
}

type UserCouponView struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	CouponID       string     `json:"coupon_id"`
	GetTime        time.Time  `json:"get_time"`
	ExpireTime     time.Time  `json:"expire_time"`
	RemainingUsage int        `json:"remaining_usage"`
	UsedTime       *time.Time `json:"used_time,omitempty"`
	OrderID        *string    `json:"order_id,omitempty"`
}

type CouponQueries interface {
	GetByID(ctx context.Context, id string) (*CouponView, error)
	List(ctx context.Context) ([]*CouponView, error)
	ListAvailable(ctx context.Context) ([]*CouponView, error)
	ListUserCoupons(ctx context.Context, userID string) ([]*UserCouponView, error)
}

type couponQueriesImpl struct {
	coupons     *repository.CouponRepository
	userCoupons *repository.UserCouponRepository
	clock       clock.Clock
}

func NewCouponQueries(
	coupons *repository.CouponRepository,
	userCoupons *repository.UserCouponRepository,
	clk clock.Clock,
) CouponQueries {
	return &couponQueriesImpl{coupons: coupons, userCoupons: userCoupons, clock: clk}
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id string) (*CouponView, error) {
	t, err := q.coupons.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	return toCouponView(t), nil
}

func (q *couponQueriesImpl) List(ctx context.Context) ([]*CouponView, error) {
	list, err := q.coupons.List(ctx)
	if err != nil {
		return nil, err
	}
	return toCouponViews(list), nil
}

func (q *couponQueriesImpl) ListAvailable(ctx context.Context) ([]*CouponView, error) {
	list, err := q.coupons.ListAvailable(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}
	return toCouponViews(list), nil
}

func (q *couponQueriesImpl) ListUserCoupons(ctx context.Context, userID string) ([]*UserCouponView, error) {
	list, err := q.userCoupons.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]*UserCouponView, 0, len(list))
	for _, uc := range list {
		views = append(views, &UserCouponView{
			ID:             uc.ID(),
			UserID:         uc.UserID(),
			CouponID:       uc.CouponID(),
			GetTime:        uc.GetTime(),
			ExpireTime:     uc.ExpireTime(),
			RemainingUsage: uc.RemainingUsage(),
			UsedTime:       uc.UsedTime(),
			OrderID:        uc.OrderID(),
		})
	}
	return views, nil
}

func toCouponViews(list []*coupon.Template) []*CouponView {
	views := make([]*CouponView, 0, len(list))
	for _, t := range list {
		views = append(views, toCouponView(t))
	}
	return views
}

func toCouponView(t *coupon.Template) *CouponView {
	return &CouponView{
		ID:                t.ID(),
		Name:              t.Name(),
		DiscountType:      string(t.Discount().Kind()),
		DiscountValue:     t.Discount().Value(),
		MinPurchaseAmount: t.MinPurchaseAmount(),
		CouponCount:       t.CouponCount(),
		MaxUsage:          t.MaxUsage(),
		ExpireTime:        t.ExpireTime(),
		CreatedAt:         t.CreatedTime(),
	}
}
