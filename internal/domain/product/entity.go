package product

import (
	"strings"
	"time"

	"auction-market/internal/pkg/errs"
)

const maxPriceDigits = 8

var (
	ErrEmptyName          = errs.New("product name cannot be empty")
	ErrEmptyCategory      = errs.New("product category cannot be empty")
	ErrEmptySeller        = errs.New("seller id cannot be empty")
	ErrInvalidPrice       = errs.New("product price must be a positive integer within 8 digits")
	ErrNegativeStock      = errs.New("product stock cannot be negative")
	ErrMissingAuctionEnd  = errs.New("auction end time must be set for auction products")
	ErrAuctionEndInPast   = errs.New("auction end time cannot be in the past")
	ErrNotAuction         = errs.New("product is not an auction")
	ErrNotActive          = errs.New("product is not active")
	ErrBidNotPositive     = errs.New("bid price must be greater than zero")
	ErrBidTooLow          = errs.New("bid must be higher than the current highest bid")
	ErrInsufficientStock  = errs.New("insufficient product stock")
	ErrAuctionNotFinished = errs.New("auction has not yet completed")
)

// Product is the catalog aggregate. Auction-only fields (nowHighestBid,
// highestBidderID, auctionEndTime) are zero-valued for DIRECT listings.
type Product struct {
	id             string
	sellerID       string
	name           string
	description    string
	category       string
	productType    Type
	status         Status
	stock          int
	price          float64
	nowHighestBid  float64
	highestBidder  *string
	auctionEndTime *time.Time
	createdTime    time.Time
	updatedTime    time.Time
}

type NewProductParams struct {
	ID          string
	SellerID    string
	Name        string
	Description string
	Category    string
	Type        Type
	Status      Status
	Stock       int
	Price       float64
	AuctionEnd  *time.Time
}

func NewProduct(p NewProductParams, now time.Time) (*Product, error) {
	prod := &Product{
		id:             p.ID,
		sellerID:       strings.TrimSpace(p.SellerID),
		name:           strings.TrimSpace(p.Name),
		description:    strings.TrimSpace(p.Description),
		category:       strings.TrimSpace(p.Category),
		productType:    p.Type,
		status:         p.Status,
		stock:          p.Stock,
		price:          p.Price,
		auctionEndTime: p.AuctionEnd,
		createdTime:    now,
		updatedTime:    now,
	}
	if prod.status == "" {
		prod.status = StatusActive
	}
	if err := prod.validate(); err != nil {
		return nil, err
	}
	prod.NormalizeStatus()
	return prod, nil
}

func Reconstruct(
	id, sellerID, name, description, category string,
	productType Type,
	status Status,
	stock int,
	price, nowHighestBid float64,
	highestBidder *string,
	auctionEndTime *time.Time,
	createdTime, updatedTime time.Time,
) *Product {
	return &Product{
		id:             id,
		sellerID:       sellerID,
		name:           name,
		description:    description,
		category:       category,
		productType:    productType,
		status:         status,
		stock:          stock,
		price:          price,
		nowHighestBid:  nowHighestBid,
		highestBidder:  highestBidder,
		auctionEndTime: auctionEndTime,
		createdTime:    createdTime,
		updatedTime:    updatedTime,
	}
}

func (p *Product) validate() error {
	if p.name == "" {
		return ErrEmptyName
	}
	if p.category == "" {
		return ErrEmptyCategory
	}
	if p.sellerID == "" {
		return ErrEmptySeller
	}
	if p.price <= 0 || p.price >= 1e8 {
		return ErrInvalidPrice
	}
	if p.stock < 0 {
		return ErrNegativeStock
	}
	if p.productType == TypeAuction {
		if p.auctionEndTime == nil {
			return ErrMissingAuctionEnd
		}
		if p.auctionEndTime.Before(p.createdTime) {
			return ErrAuctionEndInPast
		}
	}
	return nil
}

// NormalizeStatus applies the stock-driven status transitions: zero stock
// marks a listing SOLD; restocking a stock-induced SOLD listing revives it.
func (p *Product) NormalizeStatus() {
	if p.stock == 0 {
		p.status = StatusSold
	} else if p.status == StatusSold {
		p.status = StatusActive
	}
}

// ApplyEdit rewrites the seller-editable fields in place, re-running
// validation and the stock-driven status transitions. Bid state and the
// auction schedule are untouched.
func (p *Product) ApplyEdit(name, description, category string, stock int, price float64, now time.Time) error {
	prev := *p
	p.name = strings.TrimSpace(name)
	p.description = strings.TrimSpace(description)
	p.category = strings.TrimSpace(category)
	p.stock = stock
	p.price = price
	p.updatedTime = now
	if err := p.validate(); err != nil {
		*p = prev
		return err
	}
	p.NormalizeStatus()
	return nil
}

// StartAuction converts the listing into a live auction with the given
// starting price.
func (p *Product) StartAuction(basicPrice float64, endTime time.Time, now time.Time) error {
	if basicPrice <= 0 {
		return ErrBidNotPositive
	}
	if endTime.Before(now) {
		return ErrAuctionEndInPast
	}
	p.productType = TypeAuction
	p.nowHighestBid = basicPrice
	p.price = basicPrice
	p.auctionEndTime = &endTime
	p.updatedTime = now
	return nil
}

// CanBid reports why a bid of the given price would be rejected, nil if it
// would be accepted. The actual mutation happens through a conditional store
// update; this classifies its failure.
func (p *Product) CanBid(bidPrice float64) error {
	if p.productType != TypeAuction {
		return ErrNotAuction
	}
	if p.status != StatusActive {
		return ErrNotActive
	}
	if bidPrice <= 0 {
		return ErrBidNotPositive
	}
	if bidPrice <= p.nowHighestBid {
		return ErrBidTooLow
	}
	return nil
}

// Expired reports whether a live auction has passed its end time.
func (p *Product) Expired(now time.Time) bool {
	return p.productType == TypeAuction &&
		p.status == StatusActive &&
		p.auctionEndTime != nil &&
		now.After(*p.auctionEndTime)
}

// HasWinner reports whether anyone has bid on the auction.
func (p *Product) HasWinner() bool {
	return p.highestBidder != nil && *p.highestBidder != ""
}

// CanFulfill reports why an order for qty units would be rejected, nil if it
// would succeed. auction=true adds the settled-auction requirement.
func (p *Product) CanFulfill(qty int, auction bool) error {
	if auction {
		if p.status != StatusSold || !p.HasWinner() {
			return ErrAuctionNotFinished
		}
	}
	if p.stock < qty {
		return ErrInsufficientStock
	}
	return nil
}

// UnitPrice is the price snapshot an order item captures: the winning bid for
// auctions, the listed price otherwise.
func (p *Product) UnitPrice(auction bool) float64 {
	if auction {
		return p.nowHighestBid
	}
	return p.price
}

func (p *Product) ID() string                 { return p.id }
func (p *Product) SellerID() string           { return p.sellerID }
func (p *Product) Name() string               { return p.name }
func (p *Product) Description() string        { return p.description }
func (p *Product) Category() string           { return p.category }
func (p *Product) Type() Type                 { return p.productType }
func (p *Product) Status() Status             { return p.status }
func (p *Product) Stock() int                 { return p.stock }
func (p *Product) Price() float64             { return p.price }
func (p *Product) NowHighestBid() float64     { return p.nowHighestBid }
func (p *Product) HighestBidderID() *string   { return p.highestBidder }
func (p *Product) AuctionEndTime() *time.Time { return p.auctionEndTime }
func (p *Product) CreatedTime() time.Time     { return p.createdTime }
func (p *Product) UpdatedTime() time.Time     { return p.updatedTime }
