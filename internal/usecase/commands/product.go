package commands

import (
	"context"
	"time"

	domproduct "auction-market/internal/domain/product"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
	"auction-market/internal/pkg/errs"
	"auction-market/internal/pkg/identifier"
)

var (
	ErrNotProductSeller = errs.New("product belongs to another seller")
	ErrProductNameTaken = errs.New("seller already lists a product with this name")
)

type CreateProductRequest struct {
	Name        string
	Description string
	Category    string
	Stock       int
	Price       float64
}

type UpdateProductRequest struct {
	Name        string
	Description string
	Category    string
	Stock       int
	Price       float64
}

type CreateProductResult struct {
	ProductID string
}

type ProductCommands interface {
	CreateProduct(ctx context.Context, req CreateProductRequest, sellerID string) (*CreateProductResult, error)
	UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest, sellerID string) error
	PublishProduct(ctx context.Context, productID string, sellerID string) error
	WithdrawProduct(ctx context.Context, productID string, sellerID string) error
	DeleteProduct(ctx context.Context, productID string, sellerID string) error
}

type productUseCaseImpl struct {
	products *repository.ProductRepository
	clock    clock.Clock
}

func NewProductUseCase(products *repository.ProductRepository, clk clock.Clock) ProductCommands {
	return &productUseCaseImpl{products: products, clock: clk}
}

func (uc *productUseCaseImpl) CreateProduct(ctx context.Context, req CreateProductRequest, sellerID string) (*CreateProductResult, error) {
	taken, err := uc.products.ExistsBySellerAndName(ctx, sellerID, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrProductNameTaken
	}

	id, err := identifier.NewProductID(ctx, uc.products.Exists)
	if err != nil {
		return nil, err
	}

	p, err := domproduct.NewProduct(domproduct.NewProductParams{
		ID:          id,
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Type:        domproduct.TypeDirect,
		Stock:       req.Stock,
		Price:       req.Price,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return &CreateProductResult{ProductID: p.ID()}, nil
}

func (uc *productUseCaseImpl) UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest, sellerID string) error {
	existing, err := uc.products.FindByID(ctx, nil, productID)
	if err != nil {
		return err
	}
	if existing.SellerID() != sellerID {
		return ErrNotProductSeller
	}
	if req.Name != existing.Name() {
		taken, err := uc.products.ExistsBySellerAndName(ctx, sellerID, req.Name)
		if err != nil {
			return err
		}
		if taken {
			return ErrProductNameTaken
		}
	}

	// Edit in place so the live bid state survives the update.
	if err := existing.ApplyEdit(req.Name, req.Description, req.Category,
		req.Stock, req.Price, uc.clock.Now()); err != nil {
		return err
	}
	return uc.products.Update(ctx, nil, existing)
}

func (uc *productUseCaseImpl) PublishProduct(ctx context.Context, productID string, sellerID string) error {
	return uc.setStatus(ctx, productID, sellerID, domproduct.StatusActive)
}

func (uc *productUseCaseImpl) WithdrawProduct(ctx context.Context, productID string, sellerID string) error {
	return uc.setStatus(ctx, productID, sellerID, domproduct.StatusInactive)
}

func (uc *productUseCaseImpl) setStatus(ctx context.Context, productID, sellerID string, status domproduct.Status) error {
	existing, err := uc.products.FindByID(ctx, nil, productID)
	if err != nil {
		return err
	}
	if existing.SellerID() != sellerID {
		return ErrNotProductSeller
	}

	now := uc.clock.Now()
	updated := reconstructWithStatus(existing, status, now)
	updated.NormalizeStatus()
	return uc.products.Update(ctx, nil, updated)
}

func (uc *productUseCaseImpl) DeleteProduct(ctx context.Context, productID string, sellerID string) error {
	existing, err := uc.products.FindByID(ctx, nil, productID)
	if err != nil {
		return err
	}
	if existing.SellerID() != sellerID {
		return ErrNotProductSeller
	}
	return uc.products.Delete(ctx, productID)
}

func reconstructWithStatus(p *domproduct.Product, status domproduct.Status, now time.Time) *domproduct.Product {
	return domproduct.Reconstruct(
		p.ID(), p.SellerID(), p.Name(), p.Description(), p.Category(),
		p.Type(), status,
		p.Stock(), p.Price(), p.NowHighestBid(), p.HighestBidderID(), p.AuctionEndTime(),
		p.CreatedTime(), now,
	)
}
