package coupon

import (
	"time"

	"auction-market/internal/pkg/errs"
)

var (
	ErrCouponExpired    = errs.New("coupon expired")
	ErrNoRemainingUsage = errs.New("no remaining usage")
	ErrNotCouponOwner   = errs.New("coupon belongs to another user")
)

// UserCoupon is a per-user redeemable instance of a Template. A user holds at
// most one instance per template; re-issuance tops up remainingUsage instead
// of creating a second row. remainingUsage reaching 0 marks exhaustion, not
// deletion.
type UserCoupon struct {
	id             string
	userID         string
	couponID       string
	getTime        time.Time
	expireTime     time.Time
	remainingUsage int
	usedTime       *time.Time
	orderID        *string
}

// Issue creates the first instance of a template for a user.
func Issue(id, userID string, t *Template, now time.Time) *UserCoupon {
	return &UserCoupon{
		id:             id,
		userID:         userID,
		couponID:       t.ID(),
		getTime:        now,
		expireTime:     t.ExpireTime(),
		remainingUsage: t.MaxUsage(),
	}
}

func ReconstructUserCoupon(
	id, userID, couponID string,
	getTime, expireTime time.Time,
	remainingUsage int,
	usedTime *time.Time,
	orderID *string,
) *UserCoupon {
	return &UserCoupon{
		id:             id,
		userID:         userID,
		couponID:       couponID,
		getTime:        getTime,
		expireTime:     expireTime,
		remainingUsage: remainingUsage,
		usedTime:       usedTime,
		orderID:        orderID,
	}
}

// TopUp handles re-issuance of the same template: more usage credits and a
// refreshed expiry, no second row.
func (uc *UserCoupon) TopUp(t *Template) {
	uc.remainingUsage += t.MaxUsage()
	uc.expireTime = t.ExpireTime()
}

// CheckOwner guards against using another user's coupon.
func (uc *UserCoupon) CheckOwner(userID string) error {
	if uc.userID != userID {
		return ErrNotCouponOwner
	}
	return nil
}

// CanApply reports why redemption would be rejected, nil if allowed.
func (uc *UserCoupon) CanApply(now time.Time) error {
	if uc.expireTime.Before(now) {
		return ErrCouponExpired
	}
	if uc.remainingUsage <= 0 {
		return ErrNoRemainingUsage
	}
	return nil
}

// Consume spends one usage credit against an order.
func (uc *UserCoupon) Consume(orderID string, now time.Time) error {
	if err := uc.CanApply(now); err != nil {
		return err
	}
	uc.remainingUsage--
	uc.orderID = &orderID
	uc.usedTime = &now
	return nil
}

func (uc *UserCoupon) ID() string            { return uc.id }
func (uc *UserCoupon) UserID() string        { return uc.userID }
func (uc *UserCoupon) CouponID() string      { return uc.couponID }
func (uc *UserCoupon) GetTime() time.Time    { return uc.getTime }
func (uc *UserCoupon) ExpireTime() time.Time { return uc.expireTime }
func (uc *UserCoupon) RemainingUsage() int   { return uc.remainingUsage }
func (uc *UserCoupon) UsedTime() *time.Time  { return uc.usedTime }
func (uc *UserCoupon) OrderID() *string      { return uc.orderID }
