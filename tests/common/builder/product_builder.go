//go:build unit || e2e

package builder

import (
	"time"

	reqdto "auction-market/internal/handler/dto/request"
	"auction-market/internal/usecase/queries"
)

type ProductBuilder struct {
	ID          string
	SellerID    string
	Name        string
	Description string
	Category    string
	Type        string
	Status      string
	Stock       int
	Price       float64
	AuctionEnd  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Now()
	return &ProductBuilder{
		ID:          "PROD1A2B3C4D",
		SellerID:    "seller-1",
		Name:        "Mechanical Keyboard",
		Description: "Hot-swappable 75% board",
		Category:    "electronics",
		Type:        "DIRECT",
		Status:      "ACTIVE",
		Stock:       10,
		Price:       180,
		AuctionEnd:  now.Add(48 * time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Name:        b.Name,
		Description: b.Description,
		Category:    b.Category,
		Stock:       b.Stock,
		Price:       b.Price,
	}
}

func (b *ProductBuilder) BuildUpdateRequestDTO() reqdto.UpdateProductRequest {
	return reqdto.UpdateProductRequest{
		Name:        b.Name,
		Description: b.Description,
		Category:    b.Category,
		Stock:       b.Stock,
		Price:       b.Price,
	}
}

func (b *ProductBuilder) BuildStartAuctionRequestDTO() reqdto.StartAuctionRequest {
	return reqdto.StartAuctionRequest{
		BasicPrice: b.Price,
		EndTime:    b.AuctionEnd,
	}
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:          b.ID,
		SellerID:    b.SellerID,
		Name:        b.Name,
		Description: b.Description,
		Category:    b.Category,
		Type:        b.Type,
		Status:      b.Status,
		Stock:       b.Stock,
		Price:       b.Price,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
