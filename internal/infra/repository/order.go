package repository

import (
	"context"
	"encoding/json"
	"time"

	"auction-market/internal/domain/order"
	"auction-market/internal/infra"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `order_id, buyer_id, order_type, order_status, items, total_price, shipping_fee, order_time`

func (r *OrderRepository) scanOrder(row interface{ Scan(dest ...any) error }) (*order.Order, error) {
	var (
		id, buyerID, otype, status string
		itemsJSON                  []byte
		totalPrice, shippingFee    float64
		orderTime                  time.Time
	)
	err := row.Scan(&id, &buyerID, &otype, &status, &itemsJSON, &totalPrice, &shippingFee, &orderTime)
	if err != nil {
		return nil, err
	}
	var items []order.Item
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return nil, err
	}
	return order.Reconstruct(
		id, buyerID,
		order.Type(otype), order.Status(status),
		items, totalPrice, shippingFee, orderTime,
	), nil
}

func (r *OrderRepository) Create(ctx context.Context, db DBTX, o *order.Order) error {
	if db == nil {
		db = r.db
	}
	itemsJSON, err := json.Marshal(o.Items())
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err)
	}
	_, err = db.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID(), o.BuyerID(), string(o.Type()), string(o.Status()),
		itemsJSON, o.TotalPrice(), o.ShippingFee(), o.OrderTime())
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("order already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, db DBTX, id string) (*order.Order, error) {
	if db == nil {
		db = r.db
	}
	row := db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, id)
	o, err := r.scanOrder(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return o, nil
}

// FindByIDForUpdate locks the order row so settlement runs at most once even
// under concurrent pay requests.
func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, tx DBTX, id string) (*order.Order, error) {
	row := tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_id = $1 FOR UPDATE`, id)
	o, err := r.scanOrder(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return o, nil
}

func (r *OrderRepository) Update(ctx context.Context, db DBTX, o *order.Order) error {
	if db == nil {
		db = r.db
	}
	itemsJSON, err := json.Marshal(o.Items())
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err)
	}
	tag, err := db.Exec(ctx, `
		UPDATE orders SET
			order_status = $2, items = $3, total_price = $4, shipping_fee = $5
		WHERE order_id = $1`,
		o.ID(), string(o.Status()), itemsJSON, o.TotalPrice(), o.ShippingFee())
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE order_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check order existence", err)
	}
	return exists, nil
}

func (r *OrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*order.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE buyer_id = $1 ORDER BY order_time DESC`,
		buyerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var result []*order.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return result, nil
}
