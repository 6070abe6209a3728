package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"auction-market/internal/domain/coupon"
	"auction-market/internal/infra"
)

type CouponRepository struct {
	db DBTX
}

func NewCouponRepository(db DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

const couponColumns = `coupon_id, coupon_name, discount_type, discount_value,
	min_purchase_amount, coupon_count, max_usage, expire_time, created_time`

func (r *CouponRepository) scanTemplate(row interface{ Scan(dest ...any) error }) (*coupon.Template, error) {
	var (
		id, name, discountType   string
		discountValue            *float64
		minPurchaseAmount        float64
		couponCount, maxUsage    int
		expireTime, createdTime  time.Time
	)
	err := row.Scan(&id, &name, &discountType, &discountValue,
		&minPurchaseAmount, &couponCount, &maxUsage, &expireTime, &createdTime)
	if err != nil {
		return nil, err
	}
	discount, err := coupon.NewDiscount(coupon.DiscountType(discountType), discountValue)
	if err != nil {
		return nil, err
	}
	return coupon.ReconstructTemplate(
		id, name, discount,
		minPurchaseAmount, couponCount, maxUsage,
		expireTime, createdTime,
	), nil
}

func (r *CouponRepository) Create(ctx context.Context, t *coupon.Template) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupons (`+couponColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID(), t.Name(), string(t.Discount().Kind()), t.Discount().Value(),
		t.MinPurchaseAmount(), t.CouponCount(), t.MaxUsage(), t.ExpireTime(), t.CreatedTime())
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("coupon already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) FindByID(ctx context.Context, db DBTX, id string) (*coupon.Template, error) {
	if db == nil {
		db = r.db
	}
	row := db.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE coupon_id = $1`, id)
	t, err := r.scanTemplate(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return t, nil
}

func (r *CouponRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM coupons WHERE coupon_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check coupon existence", err)
	}
	return exists, nil
}

func (r *CouponRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM coupons WHERE coupon_name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check coupon name", err)
	}
	return exists, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE coupon_id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) List(ctx context.Context) ([]*coupon.Template, error) {
	rows, err := r.db.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_time DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	return r.collect(rows)
}

// ListAvailable returns templates that still have stock and have not
// expired, the pool the random draw picks from.
func (r *CouponRepository) ListAvailable(ctx context.Context, now time.Time) ([]*coupon.Template, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+couponColumns+` FROM coupons
		WHERE coupon_count > 0 AND expire_time > $1
		ORDER BY created_time DESC`, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available coupons", err)
	}
	return r.collect(rows)
}

func (r *CouponRepository) collect(rows pgx.Rows) ([]*coupon.Template, error) {
	defer rows.Close()
	var result []*coupon.Template
	for rows.Next() {
		t, err := r.scanTemplate(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}
	return result, nil
}

// DecrementCount takes one coupon from the shared pool. The condition makes
// concurrent issuance safe: a false return means the pool ran out first.
func (r *CouponRepository) DecrementCount(ctx context.Context, db DBTX, id string) (bool, error) {
	if db == nil {
		db = r.db
	}
	tag, err := db.Exec(ctx, `
		UPDATE coupons SET coupon_count = coupon_count - 1
		WHERE coupon_id = $1 AND coupon_count > 0`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement coupon count", err)
	}
	return tag.RowsAffected() > 0, nil
}
