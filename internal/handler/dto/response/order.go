package response

import (
	"time"

	"auction-market/internal/usecase/queries"
)

type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	SellerID  string  `json:"sellerId"`
	UnitPrice float64 `json:"unitPrice"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	BuyerID     string              `json:"buyerId"`
	Type        string              `json:"type"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	TotalPrice  float64             `json:"totalPrice"`
	ShippingFee float64             `json:"shippingFee"`
	OrderTime   time.Time           `json:"orderTime"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			SellerID:  it.SellerID,
			UnitPrice: it.UnitPrice,
		})
	}
	return &OrderResponse{
		ID:          v.ID,
		BuyerID:     v.BuyerID,
		Type:        v.Type,
		Status:      v.Status,
		Items:       items,
		TotalPrice:  v.TotalPrice,
		ShippingFee: v.ShippingFee,
		OrderTime:   v.OrderTime,
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOrderView(v))
	}
	return out
}
