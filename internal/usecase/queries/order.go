package queries

import (
	"context"
	"time"

	"auction-market/internal/domain/order"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/errs"
)

var ErrOrderAccess = errs.New("order belongs to another buyer")

type OrderItemView struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	SellerID  string  `json:"seller_id"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderView struct {
	ID          string          `json:"id"`
	BuyerID     string          `json:"buyer_id"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Items       []OrderItemView `json:"items"`
	TotalPrice  float64         `json:"total_price"`
	ShippingFee float64         `json:"shipping_fee"`
	OrderTime   time.Time       `json:"order_time"`
}

type OrderQueries interface {
	GetByID(ctx context.Context, id string, actorID string) (*OrderView, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	orders *repository.OrderRepository
}

func NewOrderQueries(orders *repository.OrderRepository) OrderQueries {
	return &orderQueriesImpl{orders: orders}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id string, actorID string) (*OrderView, error) {
	o, err := q.orders.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if o.BuyerID() != actorID {
		return nil, ErrOrderAccess
	}
	return toOrderView(o), nil
}

func (q *orderQueriesImpl) ListByBuyer(ctx context.Context, buyerID string) ([]*OrderView, error) {
	list, err := q.orders.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	views := make([]*OrderView, 0, len(list))
	for _, o := range list {
		views = append(views, toOrderView(o))
	}
	return views, nil
}

func toOrderView(o *order.Order) *OrderView {
	items := make([]OrderItemView, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItemView{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			SellerID:  it.SellerID,
			UnitPrice: it.UnitPrice,
		})
	}
	return &OrderView{
		ID:          o.ID(),
		BuyerID:     o.BuyerID(),
		Type:        string(o.Type()),
		Status:      string(o.Status()),
		Items:       items,
		TotalPrice:  o.TotalPrice(),
		ShippingFee: o.ShippingFee(),
		OrderTime:   o.OrderTime(),
	}
}
