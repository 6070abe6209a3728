//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var fixtureSeq atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s%010d", prefix, fixtureSeq.Add(1))
}

// CreateTestProduct inserts an active direct-sale listing and returns its id.
func CreateTestProduct(t *testing.T, db DBLike, sellerID, name string, stock int, price float64) string {
	t.Helper()

	id := nextID("PROD")
	now := time.Now()
	_, err := db.Exec(context.Background(), `
		INSERT INTO products (product_id, seller_id, product_name, product_type, product_status,
		                      product_stock, product_price, created_time, updated_time)
		VALUES ($1, $2, $3, 'DIRECT', 'ACTIVE', $4, $5, $6, $6)`,
		id, sellerID, name, stock, price, now)
	require.NoError(t, err)
	return id
}

// CreateTestAuction inserts a live auction ending at the given time.
func CreateTestAuction(t *testing.T, db DBLike, sellerID, name string, basicPrice float64, endTime time.Time) string {
	t.Helper()

	id := nextID("PROD")
	now := time.Now()
	_, err := db.Exec(context.Background(), `
		INSERT INTO products (product_id, seller_id, product_name, product_type, product_status,
		                      product_stock, product_price, now_highest_bid, auction_end_time,
		                      created_time, updated_time)
		VALUES ($1, $2, $3, 'AUCTION', 'ACTIVE', 1, $4, $4, $5, $6, $6)`,
		id, sellerID, name, basicPrice, endTime, now)
	require.NoError(t, err)
	return id
}

// CreateTestCoupon inserts a claimable coupon template and returns its id.
func CreateTestCoupon(t *testing.T, db DBLike, name, discountType string, value *float64, count int) string {
	t.Helper()

	id := nextID("COUP")
	now := time.Now()
	_, err := db.Exec(context.Background(), `
		INSERT INTO coupons (coupon_id, coupon_name, discount_type, discount_value,
		                     min_purchase_amount, coupon_count, max_usage, expire_time, created_time)
		VALUES ($1, $2, $3, $4, 0, $5, 1, $6, $7)`,
		id, name, discountType, value, count, now.Add(30*24*time.Hour), now)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
