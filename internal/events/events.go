package events

import "time"

// Event types emitted on the marketplace topic. Downstream consumers
// (notifications, analytics) key on Type.
const (
	TypeBidPlaced         = "BID_PLACED"
	TypeAuctionTerminated = "AUCTION_TERMINATED"
	TypeOrderCompleted    = "ORDER_COMPLETED"
	TypeCouponIssued      = "COUPON_ISSUED"
)

type BidPlaced struct {
	ProductID string    `json:"productId"`
	BidderID  string    `json:"bidderId"`
	BidPrice  float64   `json:"bidPrice"`
	BidTime   time.Time `json:"bidTime"`
}

type AuctionTerminated struct {
	ProductID  string    `json:"productId"`
	WinnerID   string    `json:"winnerId"`
	FinalPrice float64   `json:"finalPrice"`
	EndedAt    time.Time `json:"endedAt"`
}

type OrderCompleted struct {
	OrderID     string    `json:"orderId"`
	BuyerID     string    `json:"buyerId"`
	TotalPrice  float64   `json:"totalPrice"`
	CompletedAt time.Time `json:"completedAt"`
}

type CouponIssued struct {
	UserCouponID string    `json:"userCouponId"`
	UserID       string    `json:"userId"`
	CouponID     string    `json:"couponId"`
	IssuedAt     time.Time `json:"issuedAt"`
}
