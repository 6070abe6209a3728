package commands

import (
	"context"
	"log/slog"
	"time"

	domcoupon "auction-market/internal/domain/coupon"
	domorder "auction-market/internal/domain/order"
	domproduct "auction-market/internal/domain/product"
	"auction-market/internal/events"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
	"auction-market/internal/pkg/config"
	"auction-market/internal/pkg/errs"
	"auction-market/internal/pkg/identifier"
	"auction-market/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotOrderBuyer            = errs.New("order belongs to another buyer")
	ErrNotAuctionWinner         = errs.New("buyer is not the winning bidder")
	ErrCouponNotUsableOnAuction = errs.New("coupons cannot be applied to auction orders")
	ErrMinPurchaseNotMet        = errs.New("order total below coupon minimum purchase amount")
	ErrCouponConflict           = errs.New("coupon redemption lost to a concurrent request")
)

type OrderItemRequest struct {
	ProductID string
	Quantity  int
}

type CreateOrderRequest struct {
	Items []OrderItemRequest
}

type PayOrderRequest struct {
	UserCouponID *string
}

type CreateOrderResult struct {
	OrderID    string
	TotalPrice float64
}

type PayOrderResult struct {
	OrderID    string
	TotalPrice float64
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest, buyerID string) (*CreateOrderResult, error)
	CreateAuctionOrder(ctx context.Context, productID string, buyerID string) (*CreateOrderResult, error)
	PayOrder(ctx context.Context, orderID string, req PayOrderRequest, buyerID string) (*PayOrderResult, error)
}

type orderUseCaseImpl struct {
	pool        *pgxpool.Pool
	orders      *repository.OrderRepository
	products    *repository.ProductRepository
	coupons     *repository.CouponRepository
	userCoupons *repository.UserCouponRepository
	issuer      FirstPurchaseIssuer
	producer    events.Producer
	cfg         config.OrderConfig
	clock       clock.Clock
}

func NewOrderUseCase(
	pool *pgxpool.Pool,
	orders *repository.OrderRepository,
	products *repository.ProductRepository,
	coupons *repository.CouponRepository,
	userCoupons *repository.UserCouponRepository,
	issuer FirstPurchaseIssuer,
	producer events.Producer,
	cfg config.OrderConfig,
	clk clock.Clock,
) OrderCommands {
	return &orderUseCaseImpl{
		pool:        pool,
		orders:      orders,
		products:    products,
		coupons:     coupons,
		userCoupons: userCoupons,
		issuer:      issuer,
		producer:    producer,
		cfg:         cfg,
		clock:       clk,
	}
}

// CreateOrder reserves stock and snapshots pricing for a direct purchase.
// Each product row is locked for the transaction, so concurrent checkouts of
// the same product serialize and the conditional stock deduction can only
// fail when stock genuinely ran out.
func (uc *orderUseCaseImpl) CreateOrder(ctx context.Context, req CreateOrderRequest, buyerID string) (*CreateOrderResult, error) {
	now := uc.clock.Now()

	o, err := shared.RunInTxWithRetry(ctx, uc.pool, 3, func(tx repository.DBTX) (*domorder.Order, error) {
		items := make([]domorder.Item, 0, len(req.Items))
		for _, it := range req.Items {
			p, err := uc.products.FindByIDForUpdate(ctx, tx, it.ProductID)
			if err != nil {
				return nil, err
			}
			if p.Status() != domproduct.StatusActive {
				return nil, domproduct.ErrNotActive
			}
			if err := p.CanFulfill(it.Quantity, false); err != nil {
				return nil, err
			}

			ok, err := uc.products.DeductStock(ctx, tx, it.ProductID, it.Quantity, now)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, domproduct.ErrInsufficientStock
			}

			items = append(items, domorder.Item{
				ProductID: p.ID(),
				Quantity:  it.Quantity,
				SellerID:  p.SellerID(),
				UnitPrice: p.UnitPrice(false),
			})
		}

		id, err := identifier.NewOrderID(ctx, uc.orders.Exists)
		if err != nil {
			return nil, err
		}
		o, err := domorder.NewOrder(id, buyerID, domorder.TypeDirect, items, uc.cfg.DefaultShippingFee, now)
		if err != nil {
			return nil, err
		}
		if err := uc.orders.Create(ctx, tx, o); err != nil {
			return nil, err
		}
		return o, nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateOrderResult{OrderID: o.ID(), TotalPrice: o.TotalPrice()}, nil
}

// CreateAuctionOrder lets the winning bidder claim a settled auction. The
// unit price is the winning bid, quantity is always one.
func (uc *orderUseCaseImpl) CreateAuctionOrder(ctx context.Context, productID string, buyerID string) (*CreateOrderResult, error) {
	now := uc.clock.Now()

	o, err := shared.RunInTx(ctx, uc.pool, func(tx repository.DBTX) (*domorder.Order, error) {
		p, err := uc.products.FindByIDForUpdate(ctx, tx, productID)
		if err != nil {
			return nil, err
		}
		if err := p.CanFulfill(1, true); err != nil {
			return nil, err
		}
		winner := p.HighestBidderID()
		if winner == nil || *winner != buyerID {
			return nil, ErrNotAuctionWinner
		}

		ok, err := uc.products.DeductStock(ctx, tx, productID, 1, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domproduct.ErrInsufficientStock
		}

		id, err := identifier.NewOrderID(ctx, uc.orders.Exists)
		if err != nil {
			return nil, err
		}
		items := []domorder.Item{{
			ProductID: p.ID(),
			Quantity:  1,
			SellerID:  p.SellerID(),
			UnitPrice: p.UnitPrice(true),
		}}
		o, err := domorder.NewOrder(id, buyerID, domorder.TypeAuction, items, uc.cfg.DefaultShippingFee, now)
		if err != nil {
			return nil, err
		}
		if err := uc.orders.Create(ctx, tx, o); err != nil {
			return nil, err
		}
		return o, nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateOrderResult{OrderID: o.ID(), TotalPrice: o.TotalPrice()}, nil
}

// PayOrder settles a pending order, applying an optional coupon. The order
// row is locked so settlement runs at most once; coupon usage is spent
// through a conditional update inside the same transaction, so a coupon can
// never pay for two orders with its last credit.
func (uc *orderUseCaseImpl) PayOrder(ctx context.Context, orderID string, req PayOrderRequest, buyerID string) (*PayOrderResult, error) {
	now := uc.clock.Now()

	o, err := shared.RunInTx(ctx, uc.pool, func(tx repository.DBTX) (*domorder.Order, error) {
		o, err := uc.orders.FindByIDForUpdate(ctx, tx, orderID)
		if err != nil {
			return nil, err
		}
		if o.BuyerID() != buyerID {
			return nil, ErrNotOrderBuyer
		}
		if !o.IsPending() {
			return nil, domorder.ErrNotPending
		}

		totalPrice := o.ProductTotal()
		shippingFee := o.ShippingFee()

		if req.UserCouponID != nil {
			totalPrice, shippingFee, err = uc.applyCoupon(ctx, tx, o, *req.UserCouponID, buyerID, now)
			if err != nil {
				return nil, err
			}
		} else {
			totalPrice += shippingFee
		}

		if err := o.Settle(totalPrice, shippingFee); err != nil {
			return nil, err
		}
		if err := uc.orders.Update(ctx, tx, o); err != nil {
			return nil, err
		}
		return o, nil
	})
	if err != nil {
		return nil, err
	}

	// The payment is final at this point. Reward issuance and event
	// publication are best-effort.
	uc.issuer.IssueFirstPurchaseCoupon(ctx, buyerID)

	if perr := uc.producer.Publish(ctx, events.TypeOrderCompleted, o.ID(), events.OrderCompleted{
		OrderID:     o.ID(),
		BuyerID:     o.BuyerID(),
		TotalPrice:  o.TotalPrice(),
		CompletedAt: now,
	}); perr != nil {
		slog.Warn("failed to publish order event", "order_id", o.ID(), "error", perr)
	}

	return &PayOrderResult{OrderID: o.ID(), TotalPrice: o.TotalPrice()}, nil
}

// applyCoupon resolves the discount and spends one usage credit. It returns
// the settled total price and shipping fee.
func (uc *orderUseCaseImpl) applyCoupon(ctx context.Context, tx repository.DBTX, o *domorder.Order, userCouponID, buyerID string, now time.Time) (float64, float64, error) {
	if o.Type() == domorder.TypeAuction {
		return 0, 0, ErrCouponNotUsableOnAuction
	}

	instance, err := uc.userCoupons.FindByID(ctx, tx, userCouponID)
	if err != nil {
		return 0, 0, err
	}
	if err := instance.CheckOwner(buyerID); err != nil {
		return 0, 0, ErrNotCouponHolder
	}
	if err := instance.CanApply(now); err != nil {
		return 0, 0, err
	}

	t, err := uc.coupons.FindByID(ctx, tx, instance.CouponID())
	if err != nil {
		return 0, 0, err
	}

	productTotal := o.ProductTotal()
	shippingFee := o.ShippingFee()
	if !t.MeetsMinimum(productTotal) {
		return 0, 0, ErrMinPurchaseNotMet
	}

	var totalPrice float64
	switch t.Discount().Kind() {
	case domcoupon.Percent, domcoupon.Fixed:
		amount, derr := t.Discount().AmountFor(productTotal)
		if derr != nil {
			return 0, 0, derr
		}
		totalPrice = productTotal - amount + shippingFee
	case domcoupon.FreeShipping:
		shippingFee = 0
		totalPrice = productTotal
	case domcoupon.BuyOneGetOne:
		item, derr := o.GiveawayItem(uc.cfg.BogoPriceCeiling)
		if derr != nil {
			return 0, 0, derr
		}
		ok, derr := uc.products.DeductStock(ctx, tx, item.ProductID, 1, now)
		if derr != nil {
			return 0, 0, derr
		}
		if !ok {
			return 0, 0, domproduct.ErrInsufficientStock
		}
		o.AwardGiveaway(item.ProductID)
		totalPrice = productTotal - item.UnitPrice + shippingFee
	default:
		return 0, 0, domcoupon.ErrInvalidDiscountType
	}

	spent, err := uc.userCoupons.Consume(ctx, tx, userCouponID, o.ID(), now)
	if err != nil {
		return 0, 0, err
	}
	if !spent {
		// The conditional update rejected: credit ran out or the coupon
		// lapsed since the read above.
		refreshed, rerr := uc.userCoupons.FindByID(ctx, tx, userCouponID)
		if rerr != nil {
			return 0, 0, rerr
		}
		if cerr := refreshed.CanApply(now); cerr != nil {
			return 0, 0, cerr
		}
		return 0, 0, ErrCouponConflict
	}

	return totalPrice, shippingFee, nil
}
