package order

import (
	"time"

	"auction-market/internal/pkg/errs"
)

var (
	ErrEmptyCart          = errs.New("order must contain at least one item")
	ErrInvalidQuantity    = errs.New("item quantity must be positive")
	ErrNotPending         = errs.New("order is not in pending status")
	ErrNoGiveawayItem     = errs.New("no suitable item for buy one get one")
	ErrNegativeTotalPrice = errs.New("total price cannot be negative")
)

type Type string

const (
	TypeDirect  Type = "DIRECT"
	TypeAuction Type = "AUCTION"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// Item is an immutable snapshot captured at order creation. SellerID and
// UnitPrice are never re-derived from the live product, so the order stays
// historically accurate after catalog changes.
type Item struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	SellerID  string  `json:"sellerId"`
	UnitPrice float64 `json:"unitPrice"`
}

type Order struct {
	id          string
	buyerID     string
	orderType   Type
	status      Status
	items       []Item
	totalPrice  float64
	shippingFee float64
	orderTime   time.Time
}

// NewOrder assembles a pending order from item snapshots. The total is the
// item sum plus the shipping fee.
func NewOrder(id, buyerID string, orderType Type, items []Item, shippingFee float64, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := 0.0
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		total += it.UnitPrice * float64(it.Quantity)
	}
	return &Order{
		id:          id,
		buyerID:     buyerID,
		orderType:   orderType,
		status:      StatusPending,
		items:       items,
		totalPrice:  total + shippingFee,
		shippingFee: shippingFee,
		orderTime:   now,
	}, nil
}

func Reconstruct(
	id, buyerID string,
	orderType Type,
	status Status,
	items []Item,
	totalPrice, shippingFee float64,
	orderTime time.Time,
) *Order {
	return &Order{
		id:          id,
		buyerID:     buyerID,
		orderType:   orderType,
		status:      status,
		items:       items,
		totalPrice:  totalPrice,
		shippingFee: shippingFee,
		orderTime:   orderTime,
	}
}

// ProductTotal is the order total excluding shipping, the base every
// discount computation works from.
func (o *Order) ProductTotal() float64 {
	return o.totalPrice - o.shippingFee
}

// GiveawayItem picks the item a buy-one-get-one coupon gives away: the
// highest unit price still at or below the ceiling.
func (o *Order) GiveawayItem(ceiling float64) (*Item, error) {
	idx := -1
	currentMax := 0.0
	for i, it := range o.items {
		if it.UnitPrice > currentMax && it.UnitPrice <= ceiling {
			currentMax = it.UnitPrice
			idx = i
		}
	}
	if idx < 0 {
		return nil, ErrNoGiveawayItem
	}
	return &o.items[idx], nil
}

// AwardGiveaway adds one uncharged unit of the given product to the order.
func (o *Order) AwardGiveaway(productID string) {
	for i := range o.items {
		if o.items[i].ProductID == productID {
			o.items[i].Quantity++
			return
		}
	}
}

// Settle completes a pending order with the final pricing.
func (o *Order) Settle(totalPrice, shippingFee float64) error {
	if o.status != StatusPending {
		return ErrNotPending
	}
	if totalPrice < 0 {
		return ErrNegativeTotalPrice
	}
	o.totalPrice = totalPrice
	o.shippingFee = shippingFee
	o.status = StatusCompleted
	return nil
}

func (o *Order) IsPending() bool {
	return o.status == StatusPending
}

func (o *Order) ID() string           { return o.id }
func (o *Order) BuyerID() string      { return o.buyerID }
func (o *Order) Type() Type           { return o.orderType }
func (o *Order) Status() Status       { return o.status }
func (o *Order) Items() []Item        { return o.items }
func (o *Order) TotalPrice() float64  { return o.totalPrice }
func (o *Order) ShippingFee() float64 { return o.shippingFee }
func (o *Order) OrderTime() time.Time { return o.orderTime }
