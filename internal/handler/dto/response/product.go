package response

import (
	"time"

	"auction-market/internal/usecase/queries"
)

type ProductResponse struct {
	ID              string     `json:"id"`
	SellerID        string     `json:"sellerId"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Stock           int        `json:"stock"`
	Price           float64    `json:"price"`
	NowHighestBid   float64    `json:"nowHighestBid,omitempty"`
	HighestBidderID *string    `json:"highestBidderId,omitempty"`
	AuctionEndTime  *time.Time `json:"auctionEndTime,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:              v.ID,
		SellerID:        v.SellerID,
		Name:            v.Name,
		Description:     v.Description,
		Category:        v.Category,
		Type:            v.Type,
		Status:          v.Status,
		Stock:           v.Stock,
		Price:           v.Price,
		NowHighestBid:   v.NowHighestBid,
		HighestBidderID: v.HighestBidderID,
		AuctionEndTime:  v.AuctionEndTime,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromProductView(v))
	}
	return out
}
