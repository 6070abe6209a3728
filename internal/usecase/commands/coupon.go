package commands

import (
	"context"
	"time"

	domcoupon "auction-market/internal/domain/coupon"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
	"auction-market/internal/pkg/config"
	"auction-market/internal/pkg/errs"
	"auction-market/internal/pkg/identifier"
)

var ErrCouponNameTaken = errs.New("coupon name already in use")

type CreateCouponRequest struct {
	Name              string
	DiscountType      string
	DiscountValue     *float64
	MinPurchaseAmount float64
	CouponCount       int
	MaxUsage          int
	ExpireTime        *time.Time
}

type CreateCouponResult struct {
	CouponID string
}

type CouponCommands interface {
	CreateCoupon(ctx context.Context, req CreateCouponRequest) (*CreateCouponResult, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}

type couponUseCaseImpl struct {
	coupons *repository.CouponRepository
	cfg     config.CouponConfig
	clock   clock.Clock
}

func NewCouponUseCase(coupons *repository.CouponRepository, cfg config.CouponConfig, clk clock.Clock) CouponCommands {
	return &couponUseCaseImpl{coupons: coupons, cfg: cfg, clock: clk}
}

func (uc *couponUseCaseImpl) CreateCoupon(ctx context.Context, req CreateCouponRequest) (*CreateCouponResult, error) {
	taken, err := uc.coupons.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCouponNameTaken
	}

	id, err := identifier.NewCouponID(ctx, uc.coupons.Exists)
	if err != nil {
		return nil, err
	}

	t, err := domcoupon.NewTemplate(domcoupon.NewTemplateParams{
		ID:                id,
		Name:              req.Name,
		DiscountType:      domcoupon.DiscountType(req.DiscountType),
		DiscountValue:     req.DiscountValue,
		MinPurchaseAmount: req.MinPurchaseAmount,
		CouponCount:       req.CouponCount,
		MaxUsage:          req.MaxUsage,
		ExpireTime:        req.ExpireTime,
		ValidityDays:      uc.cfg.DefaultValidityDays,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.coupons.Create(ctx, t); err != nil {
		return nil, err
	}
	return &CreateCouponResult{CouponID: t.ID()}, nil
}

func (uc *couponUseCaseImpl) DeleteCoupon(ctx context.Context, couponID string) error {
	return uc.coupons.Delete(ctx, couponID)
}
