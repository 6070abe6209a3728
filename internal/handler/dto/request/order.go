package request

import (
	"auction-market/internal/usecase/commands"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateOrderRequest) ToCommand() commands.CreateOrderRequest {
	items := make([]commands.OrderItemRequest, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.OrderItemRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return commands.CreateOrderRequest{Items: items}
}

type CreateAuctionOrderRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type PayOrderRequest struct {
	UserCouponID *string `json:"user_coupon_id,omitempty"`
}

func (r PayOrderRequest) ToCommand() commands.PayOrderRequest {
	return commands.PayOrderRequest{UserCouponID: r.UserCouponID}
}
