package request

import (
	"time"

	"auction-market/internal/usecase/commands"
)

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock" binding:"min=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

func (r CreateProductRequest) ToCommand() commands.CreateProductRequest {
	return commands.CreateProductRequest{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Stock:       r.Stock,
		Price:       r.Price,
	}
}

type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	Stock       int     `json:"stock" binding:"min=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

func (r UpdateProductRequest) ToCommand() commands.UpdateProductRequest {
	return commands.UpdateProductRequest{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Stock:       r.Stock,
		Price:       r.Price,
	}
}

type StartAuctionRequest struct {
	BasicPrice float64   `json:"basic_price" binding:"required,gt=0"`
	EndTime    time.Time `json:"end_time" binding:"required"`
}

func (r StartAuctionRequest) ToCommand() commands.StartAuctionRequest {
	return commands.StartAuctionRequest{
		BasicPrice: r.BasicPrice,
		EndTime:    r.EndTime,
	}
}

type PlaceBidRequest struct {
	BidPrice float64 `json:"bid_price" binding:"required,gt=0"`
}

func (r PlaceBidRequest) ToCommand() commands.PlaceBidRequest {
	return commands.PlaceBidRequest{BidPrice: r.BidPrice}
}
