package commands

import (
	"context"
	"log/slog"
	"time"

	"auction-market/internal/events"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
	"auction-market/internal/pkg/errs"
)

var (
	ErrAuctionEnded  = errs.New("auction already ended")
	ErrOwnProductBid = errs.New("sellers cannot bid on their own product")
	ErrBidConflict   = errs.New("bid lost to a concurrent higher bid")
)

type StartAuctionRequest struct {
	BasicPrice float64
	EndTime    time.Time
}

type PlaceBidRequest struct {
	BidPrice float64
}

type AuctionCommands interface {
	StartAuction(ctx context.Context, productID string, req StartAuctionRequest, sellerID string) error
	PlaceBid(ctx context.Context, productID string, req PlaceBidRequest, bidderID string) error
}

type auctionUseCaseImpl struct {
	products *repository.ProductRepository
	producer events.Producer
	clock    clock.Clock
}

func NewAuctionUseCase(products *repository.ProductRepository, producer events.Producer, clk clock.Clock) AuctionCommands {
	return &auctionUseCaseImpl{products: products, producer: producer, clock: clk}
}

func (uc *auctionUseCaseImpl) StartAuction(ctx context.Context, productID string, req StartAuctionRequest, sellerID string) error {
	p, err := uc.products.FindByID(ctx, nil, productID)
	if err != nil {
		return err
	}
	if p.SellerID() != sellerID {
		return ErrNotProductSeller
	}
	if err := p.StartAuction(req.BasicPrice, req.EndTime, uc.clock.Now()); err != nil {
		return err
	}
	return uc.products.Update(ctx, nil, p)
}

// PlaceBid is optimistic: a single conditional update carries the bid, and a
// rejected update is classified by re-reading the product. Two bids racing
// each other never both win; the loser sees either ErrBidTooLow or
// ErrBidConflict depending on what it observes afterwards.
func (uc *auctionUseCaseImpl) PlaceBid(ctx context.Context, productID string, req PlaceBidRequest, bidderID string) error {
	now := uc.clock.Now()

	p, err := uc.products.FindByID(ctx, nil, productID)
	if err != nil {
		return err
	}
	if p.SellerID() == bidderID {
		return ErrOwnProductBid
	}
	if p.Expired(now) {
		return ErrAuctionEnded
	}
	if err := p.CanBid(req.BidPrice); err != nil {
		return err
	}

	won, err := uc.products.PlaceBid(ctx, productID, req.BidPrice, bidderID, now)
	if err != nil {
		return err
	}
	if !won {
		return uc.classifyRejectedBid(ctx, productID, req.BidPrice, now)
	}

	if err := uc.producer.Publish(ctx, events.TypeBidPlaced, productID, events.BidPlaced{
		ProductID: productID,
		BidderID:  bidderID,
		BidPrice:  req.BidPrice,
		BidTime:   now,
	}); err != nil {
		slog.Warn("failed to publish bid event", "product_id", productID, "error", err)
	}
	return nil
}

func (uc *auctionUseCaseImpl) classifyRejectedBid(ctx context.Context, productID string, bidPrice float64, now time.Time) error {
	p, err := uc.products.FindByID(ctx, nil, productID)
	if err != nil {
		return err
	}
	if p.Expired(now) {
		return ErrAuctionEnded
	}
	if cerr := p.CanBid(bidPrice); cerr != nil {
		return cerr
	}
	// The precondition held on re-read, so the update lost a race that has
	// since resolved in the caller's favor logically but not physically.
	return ErrBidConflict
}
