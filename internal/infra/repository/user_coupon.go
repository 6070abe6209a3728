package repository

import (
	"context"
	"time"

	"auction-market/internal/domain/coupon"
	"auction-market/internal/infra"
)

type UserCouponRepository struct {
	db DBTX
}

func NewUserCouponRepository(db DBTX) *UserCouponRepository {
	return &UserCouponRepository{db: db}
}

const userCouponColumns = `user_coupon_id, user_id, coupon_id, get_time, expire_time,
	remaining_usage, used_time, order_id`

func (r *UserCouponRepository) scanUserCoupon(row interface{ Scan(dest ...any) error }) (*coupon.UserCoupon, error) {
	var (
		id, userID, couponID string
		getTime, expireTime  time.Time
		remainingUsage       int
		usedTime             *time.Time
		orderID              *string
	)
	err := row.Scan(&id, &userID, &couponID, &getTime, &expireTime,
		&remainingUsage, &usedTime, &orderID)
	if err != nil {
		return nil, err
	}
	return coupon.ReconstructUserCoupon(
		id, userID, couponID,
		getTime, expireTime, remainingUsage,
		usedTime, orderID,
	), nil
}

func (r *UserCouponRepository) Create(ctx context.Context, db DBTX, uc *coupon.UserCoupon) error {
	if db == nil {
		db = r.db
	}
	_, err := db.Exec(ctx, `
		INSERT INTO user_coupons (`+userCouponColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uc.ID(), uc.UserID(), uc.CouponID(), uc.GetTime(), uc.ExpireTime(),
		uc.RemainingUsage(), uc.UsedTime(), uc.OrderID())
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("user already holds this coupon", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user coupon", err)
	}
	return nil
}

func (r *UserCouponRepository) FindByID(ctx context.Context, db DBTX, id string) (*coupon.UserCoupon, error) {
	if db == nil {
		db = r.db
	}
	row := db.QueryRow(ctx, `SELECT `+userCouponColumns+` FROM user_coupons WHERE user_coupon_id = $1`, id)
	uc, err := r.scanUserCoupon(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user coupon", err)
	}
	return uc, nil
}

// FindByUserAndCoupon resolves the single instance a user holds for a
// template, if any. Issuance uses it to decide between insert and top-up.
func (r *UserCouponRepository) FindByUserAndCoupon(ctx context.Context, db DBTX, userID, couponID string) (*coupon.UserCoupon, error) {
	if db == nil {
		db = r.db
	}
	row := db.QueryRow(ctx,
		`SELECT `+userCouponColumns+` FROM user_coupons WHERE user_id = $1 AND coupon_id = $2`,
		userID, couponID)
	uc, err := r.scanUserCoupon(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user coupon", err)
	}
	return uc, nil
}

func (r *UserCouponRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_coupons WHERE user_coupon_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user coupon existence", err)
	}
	return exists, nil
}

func (r *UserCouponRepository) ListByUser(ctx context.Context, userID string) ([]*coupon.UserCoupon, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userCouponColumns+` FROM user_coupons WHERE user_id = $1 ORDER BY get_time DESC`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user coupons", err)
	}
	defer rows.Close()

	var result []*coupon.UserCoupon
	for rows.Next() {
		uc, err := r.scanUserCoupon(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user coupon row", err)
		}
		result = append(result, uc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user coupon rows", err)
	}
	return result, nil
}

// TopUp credits additional usage and refreshes expiry on re-issuance.
func (r *UserCouponRepository) TopUp(ctx context.Context, db DBTX, uc *coupon.UserCoupon) error {
	if db == nil {
		db = r.db
	}
	tag, err := db.Exec(ctx, `
		UPDATE user_coupons SET remaining_usage = $2, expire_time = $3
		WHERE user_coupon_id = $1`,
		uc.ID(), uc.RemainingUsage(), uc.ExpireTime())
	if err != nil {
		return infra.WrapRepoErr("failed to top up user coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

// Consume spends one usage credit, conditionally on credit remaining and the
// coupon being unexpired. A false return means redemption lost the race or
// the coupon lapsed.
func (r *UserCouponRepository) Consume(ctx context.Context, db DBTX, id, orderID string, now time.Time) (bool, error) {
	if db == nil {
		db = r.db
	}
	tag, err := db.Exec(ctx, `
		UPDATE user_coupons SET
			remaining_usage = remaining_usage - 1, used_time = $3, order_id = $2
		WHERE user_coupon_id = $1
		  AND remaining_usage > 0
		  AND expire_time >= $3`,
		id, orderID, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume user coupon", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserCouponRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_coupons WHERE user_coupon_id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user coupon not found", nil, infra.KindNotFound)
	}
	return nil
}
