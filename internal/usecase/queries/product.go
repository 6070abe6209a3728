package queries

import (
	"context"
	"time"

	"auction-market/internal/domain/product"
	"auction-market/internal/infra/repository"
)

type ProductView struct {
	ID              string     `json:"id"`
	SellerID        string     `json:"seller_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Stock           int        `json:"stock"`
	Price           float64    `json:"price"`
	NowHighestBid   float64    `json:"now_highest_bid,omitempty"`
	HighestBidderID *string    `json:"highest_bidder_id,omitempty"`
	AuctionEndTime  *time.Time `json:"auction_end_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ProductFilters struct {
	SellerID *string
	Type     *string
	Status   *string
}

type ProductQueries interface {
	GetByID(ctx context.Context, id string) (*ProductView, error)
	List(ctx context.Context, filters ProductFilters) ([]*ProductView, error)
}

type productQueriesImpl struct {
	products *repository.ProductRepository
}

func NewProductQueries(products *repository.ProductRepository) ProductQueries {
	return &productQueriesImpl{products: products}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id string) (*ProductView, error) {
	p, err := q.products.FindByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	return toProductView(p), nil
}

func (q *productQueriesImpl) List(ctx context.Context, filters ProductFilters) ([]*ProductView, error) {
	filter := repository.ProductFilter{SellerID: filters.SellerID}
	if filters.Type != nil {
		t, err := product.ParseType(*filters.Type)
		if err != nil {
			return nil, err
		}
		filter.Type = &t
	}
	if filters.Status != nil {
		s, err := product.ParseStatus(*filters.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &s
	}

	list, err := q.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	views := make([]*ProductView, 0, len(list))
	for _, p := range list {
		views = append(views, toProductView(p))
	}
	return views, nil
}

func toProductView(p *product.Product) *ProductView {
	return &ProductView{
		ID:              p.ID(),
		SellerID:        p.SellerID(),
		Name:            p.Name(),
		Description:     p.Description(),
		Category:        p.Category(),
		Type:            string(p.Type()),
		Status:          string(p.Status()),
		Stock:           p.Stock(),
		Price:           p.Price(),
		NowHighestBid:   p.NowHighestBid(),
		HighestBidderID: p.HighestBidderID(),
		AuctionEndTime:  p.AuctionEndTime(),
		CreatedAt:       p.CreatedTime(),
		UpdatedAt:       p.UpdatedTime(),
	}
}
