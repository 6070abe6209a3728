package repository

import (
	"context"
	"strconv"
	"time"

	"auction-market/internal/domain/product"
	"auction-market/internal/infra"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `product_id, seller_id, product_name, product_description, product_category,
	product_type, product_status, product_stock, product_price,
	now_highest_bid, highest_bidder_id, auction_end_time, created_time, updated_time`

func (r *ProductRepository) scanProduct(row interface{ Scan(dest ...any) error }) (*product.Product, error) {
	var (
		id, sellerID, name, description, category string
		ptype, status                             string
		stock                                     int
		price, nowHighestBid                      float64
		highestBidder                             *string
		auctionEnd                                *time.Time
		createdTime, updatedTime                  time.Time
	)
	err := row.Scan(&id, &sellerID, &name, &description, &category,
		&ptype, &status, &stock, &price,
		&nowHighestBid, &highestBidder, &auctionEnd, &createdTime, &updatedTime)
	if err != nil {
		return nil, err
	}
	return product.Reconstruct(
		id, sellerID, name, description, category,
		product.Type(ptype), product.Status(status),
		stock, price, nowHighestBid, highestBidder, auctionEnd,
		createdTime, updatedTime,
	), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, db DBTX, id string) (*product.Product, error) {
	if db == nil {
		db = r.db
	}
	row := db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE product_id = $1`, id)
	p, err := r.scanProduct(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return p, nil
}

// FindByIDForUpdate locks the product row for the duration of the enclosing
// transaction. Order creation and settlement use this to serialize stock
// mutation against concurrent checkouts and the auction sweep.
func (r *ProductRepository) FindByIDForUpdate(ctx context.Context, tx DBTX, id string) (*product.Product, error) {
	row := tx.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE product_id = $1 FOR UPDATE`, id)
	p, err := r.scanProduct(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}
	return p, nil
}

func (r *ProductRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE product_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check product existence", err)
	}
	return exists, nil
}

func (r *ProductRepository) ExistsBySellerAndName(ctx context.Context, sellerID, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE seller_id = $1 AND product_name = $2)`,
		sellerID, name).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check product name", err)
	}
	return exists, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID(), p.SellerID(), p.Name(), p.Description(), p.Category(),
		string(p.Type()), string(p.Status()), p.Stock(), p.Price(),
		p.NowHighestBid(), p.HighestBidderID(), p.AuctionEndTime(), p.CreatedTime(), p.UpdatedTime())
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("product already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, db DBTX, p *product.Product) error {
	if db == nil {
		db = r.db
	}
	tag, err := db.Exec(ctx, `
		UPDATE products SET
			product_name = $2, product_description = $3, product_category = $4,
			product_type = $5, product_status = $6, product_stock = $7, product_price = $8,
			now_highest_bid = $9, highest_bidder_id = $10, auction_end_time = $11, updated_time = $12
		WHERE product_id = $1`,
		p.ID(), p.Name(), p.Description(), p.Category(),
		string(p.Type()), string(p.Status()), p.Stock(), p.Price(),
		p.NowHighestBid(), p.HighestBidderID(), p.AuctionEndTime(), p.UpdatedTime())
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

type ProductFilter struct {
	SellerID *string
	Type     *product.Type
	Status   *product.Status
}

func (r *ProductRepository) List(ctx context.Context, filter ProductFilter) ([]*product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	if filter.SellerID != nil {
		args = append(args, *filter.SellerID)
		query += ` AND seller_id = $` + strconv.Itoa(len(args))
	}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += ` AND product_type = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND product_status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_time DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var result []*product.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return result, nil
}

// PlaceBid is a single conditional update: it succeeds only while the product
// is a live auction and the bid strictly exceeds the current highest. A false
// return means the precondition did not hold at commit time; the caller
// re-reads to classify why.
func (r *ProductRepository) PlaceBid(ctx context.Context, id string, bidPrice float64, bidderID string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET
			now_highest_bid = $2, product_price = $2, highest_bidder_id = $3, updated_time = $4
		WHERE product_id = $1
		  AND product_type = 'AUCTION'
		  AND product_status = 'ACTIVE'
		  AND auction_end_time > $4
		  AND now_highest_bid < $2`,
		id, bidPrice, bidderID, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to place bid", err)
	}
	return tag.RowsAffected() > 0, nil
}

// TerminateAuction marks an expired, bid-on auction SOLD. The conditions make
// the sweep idempotent and arbitrate the race against in-flight bids: a bid
// that already flipped nothing here simply loses, a terminated auction
// rejects later bids via its status.
func (r *ProductRepository) TerminateAuction(ctx context.Context, id string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET product_status = 'SOLD', updated_time = $2
		WHERE product_id = $1
		  AND product_type = 'AUCTION'
		  AND product_status = 'ACTIVE'
		  AND auction_end_time < $2
		  AND highest_bidder_id IS NOT NULL`,
		id, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to terminate auction", err)
	}
	return tag.RowsAffected() > 0, nil
}

// LapseAuction deactivates an expired auction nobody bid on.
func (r *ProductRepository) LapseAuction(ctx context.Context, id string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE products SET product_status = 'INACTIVE', updated_time = $2
		WHERE product_id = $1
		  AND product_type = 'AUCTION'
		  AND product_status = 'ACTIVE'
		  AND auction_end_time < $2
		  AND highest_bidder_id IS NULL`,
		id, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to lapse auction", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListExpiredAuctions returns live auctions past their end time, the sweep's
// work list.
func (r *ProductRepository) ListExpiredAuctions(ctx context.Context, now time.Time) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE product_type = 'AUCTION'
		  AND product_status = 'ACTIVE'
		  AND auction_end_time < $1`, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired auctions", err)
	}
	defer rows.Close()

	var result []*product.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return result, nil
}

// DeductStock decrements stock only when enough remains, deactivating the
// listing when it hits zero. A false return means insufficient stock.
func (r *ProductRepository) DeductStock(ctx context.Context, tx DBTX, id string, qty int, now time.Time) (bool, error) {
	if tx == nil {
		tx = r.db
	}
	tag, err := tx.Exec(ctx, `
		UPDATE products SET
			product_stock = product_stock - $2,
			product_status = CASE WHEN product_stock - $2 = 0 THEN 'SOLD' ELSE product_status END,
			updated_time = $3
		WHERE product_id = $1 AND product_stock >= $2`,
		id, qty, now)
	if err != nil {
		return false, infra.WrapRepoErr("failed to deduct stock", err)
	}
	return tag.RowsAffected() > 0, nil
}
