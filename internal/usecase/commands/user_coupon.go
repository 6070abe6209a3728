package commands

import (
	"context"
	"log/slog"
	"math/rand/v2"

	domcoupon "auction-market/internal/domain/coupon"
	"auction-market/internal/events"
	"auction-market/internal/infra"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
	"auction-market/internal/pkg/config"
	"auction-market/internal/pkg/errs"
	"auction-market/internal/pkg/identifier"
	"auction-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNoCouponAvailable = errs.New("no coupon available to draw")
	ErrNotCouponHolder   = errs.New("coupon belongs to another user")
)

type IssueCouponResult struct {
	UserCouponID string
}

type UserCouponCommands interface {
	IssueCoupon(ctx context.Context, couponID, userID string) (*IssueCouponResult, error)
	DrawRandomCoupon(ctx context.Context, userID string) (*IssueCouponResult, error)
	DeleteUserCoupon(ctx context.Context, userCouponID, userID string) error
}

// FirstPurchaseIssuer hands out the welcome coupon after a buyer's first
// completed order. Settlement calls it outside its own transaction so reward
// failures never fail a payment.
type FirstPurchaseIssuer interface {
	IssueFirstPurchaseCoupon(ctx context.Context, userID string)
}

type UserCouponUseCase interface {
	UserCouponCommands
	FirstPurchaseIssuer
}

type userCouponUseCaseImpl struct {
	pool        *pgxpool.Pool
	coupons     *repository.CouponRepository
	userCoupons *repository.UserCouponRepository
	producer    events.Producer
	cfg         config.CouponConfig
	clock       clock.Clock
}

func NewUserCouponUseCase(
	pool *pgxpool.Pool,
	coupons *repository.CouponRepository,
	userCoupons *repository.UserCouponRepository,
	producer events.Producer,
	cfg config.CouponConfig,
	clk clock.Clock,
) UserCouponUseCase {
	return &userCouponUseCaseImpl{
		pool:        pool,
		coupons:     coupons,
		userCoupons: userCoupons,
		producer:    producer,
		cfg:         cfg,
		clock:       clk,
	}
}

// IssueCoupon grants a user one instance of a template. The shared pool is
// decremented only on the first issuance; re-issuing the same template tops
// up the existing instance without touching the pool again.
func (uc *userCouponUseCaseImpl) IssueCoupon(ctx context.Context, couponID, userID string) (*IssueCouponResult, error) {
	now := uc.clock.Now()

	result, err := shared.RunInTx(ctx, uc.pool, func(tx repository.DBTX) (*IssueCouponResult, error) {
		t, err := uc.coupons.FindByID(ctx, tx, couponID)
		if err != nil {
			return nil, err
		}
		if err := t.CanIssue(now); err != nil {
			return nil, err
		}

		existing, err := uc.userCoupons.FindByUserAndCoupon(ctx, tx, userID, couponID)
		switch {
		case err == nil:
			existing.TopUp(t)
			if err := uc.userCoupons.TopUp(ctx, tx, existing); err != nil {
				return nil, err
			}
			return &IssueCouponResult{UserCouponID: existing.ID()}, nil
		case !infra.IsKind(err, infra.KindNotFound):
			return nil, err
		}

		ok, err := uc.coupons.DecrementCount(ctx, tx, couponID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domcoupon.ErrTemplateExhausted
		}

		id, err := identifier.NewUserCouponID(ctx, uc.userCoupons.Exists)
		if err != nil {
			return nil, err
		}
		instance := domcoupon.Issue(id, userID, t, now)
		if err := uc.userCoupons.Create(ctx, tx, instance); err != nil {
			return nil, err
		}
		return &IssueCouponResult{UserCouponID: id}, nil
	})
	if err != nil {
		return nil, err
	}

	if perr := uc.producer.Publish(ctx, events.TypeCouponIssued, userID, events.CouponIssued{
		UserCouponID: result.UserCouponID,
		UserID:       userID,
		CouponID:     couponID,
		IssuedAt:     now,
	}); perr != nil {
		slog.Warn("failed to publish coupon event", "coupon_id", couponID, "error", perr)
	}
	return result, nil
}

// DrawRandomCoupon issues a uniformly random template from the ones still in
// stock and unexpired.
func (uc *userCouponUseCaseImpl) DrawRandomCoupon(ctx context.Context, userID string) (*IssueCouponResult, error) {
	available, err := uc.coupons.ListAvailable(ctx, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, ErrNoCouponAvailable
	}
	picked := available[rand.IntN(len(available))]
	return uc.IssueCoupon(ctx, picked.ID(), userID)
}

func (uc *userCouponUseCaseImpl) DeleteUserCoupon(ctx context.Context, userCouponID, userID string) error {
	existing, err := uc.userCoupons.FindByID(ctx, nil, userCouponID)
	if err != nil {
		return err
	}
	if err := existing.CheckOwner(userID); err != nil {
		return ErrNotCouponHolder
	}
	return uc.userCoupons.Delete(ctx, userCouponID)
}

// IssueFirstPurchaseCoupon rewards the welcome template to buyers who hold
// no coupons at all, falling back to a random draw when it is unset,
// missing, or exhausted. Errors are logged and swallowed: the payment
// already succeeded.
func (uc *userCouponUseCaseImpl) IssueFirstPurchaseCoupon(ctx context.Context, userID string) {
	held, err := uc.userCoupons.ListByUser(ctx, userID)
	if err != nil {
		slog.Warn("failed to check held coupons", "user_id", userID, "error", err)
		return
	}
	if len(held) > 0 {
		return
	}
	if uc.cfg.FirstPurchaseCouponID != "" {
		_, err := uc.IssueCoupon(ctx, uc.cfg.FirstPurchaseCouponID, userID)
		if err == nil {
			return
		}
		slog.Warn("failed to issue first purchase coupon, drawing random",
			"user_id", userID,
			"coupon_id", uc.cfg.FirstPurchaseCouponID,
			"error", err)
	}
	if _, err := uc.DrawRandomCoupon(ctx, userID); err != nil {
		slog.Warn("failed to issue random welcome coupon", "user_id", userID, "error", err)
	}
}
