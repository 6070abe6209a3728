//go:build e2e

package market_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"auction-market/internal/events"
	"auction-market/internal/handler/dto/request"
	"auction-market/internal/handler/dto/response"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
	"auction-market/internal/pkg/config"
	"auction-market/internal/scheduler"
	"auction-market/tests/common/authtest"
	"auction-market/tests/common/dbtest"
	"auction-market/tests/common/httptest"
	"auction-market/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productsURL    = "/api/products"
	ordersURL      = "/api/orders"
	couponsURL     = "/api/coupons"
	userCouponsURL = "/api/users/coupons"
)

type MarketSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *MarketSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestMarketSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MarketSuite))
}

func (s *MarketSuite) TestDirectPurchase() {
	s.Run("order then pay completes the purchase and deducts stock", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "seller-1", "Walnut Desk", 3, 400)
		buyerToken := s.jwt.GenerateToken(t, "buyer-1")

		reqBody := request.CreateOrderRequest{
			Items: []request.OrderItemRequest{{ProductID: productID, Quantity: 2}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, buyerToken)

		var created response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "PENDING", created.Status)

		var stock int
		err := s.DB.QueryRow(context.Background(),
			"SELECT product_stock FROM products WHERE product_id = $1", productID).Scan(&stock)
		require.NoError(t, err)
		require.Equal(t, 1, stock, "stock should be reserved at order time")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/pay", ordersURL, created.ID), request.PayOrderRequest{}, buyerToken)

		var paid response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)

		want := created
		want.Status = "COMPLETED"
		want.TotalPrice = 2*400 + created.ShippingFee
		if diff := cmp.Diff(&want, &paid, cmpopts.EquateApproxTime(time.Second)); diff != "" {
			t.Errorf("settled order mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("ordering more than the remaining stock is rejected", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "seller-1", "Single Lamp", 1, 50)
		buyerToken := s.jwt.GenerateToken(t, "buyer-1")

		reqBody := request.CreateOrderRequest{
			Items: []request.OrderItemRequest{{ProductID: productID, Quantity: 2}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, buyerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("requests without a token are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL,
			request.CreateOrderRequest{}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *MarketSuite) TestCouponSettlement() {
	s.Run("fixed coupon reduces the settled total and is consumed", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "seller-1", "Record Player", 5, 300)
		fixed := 50.0
		couponID := dbtest.CreateTestCoupon(t, s.DB, "fifty-off", "FIXED", &fixed, 10)
		buyerToken := s.jwt.GenerateToken(t, "buyer-1")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/claim", couponsURL, couponID), nil, buyerToken)
		var claimed map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &claimed)
		userCouponID := claimed["user_coupon_id"]
		require.NotEmpty(t, userCouponID)

		orderReq := request.CreateOrderRequest{
			Items: []request.OrderItemRequest{{ProductID: productID, Quantity: 1}},
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, orderReq, buyerToken)
		var created response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		payReq := request.PayOrderRequest{UserCouponID: &userCouponID}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/pay", ordersURL, created.ID), payReq, buyerToken)
		var paid response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.Equal(t, 300-fixed+created.ShippingFee, paid.TotalPrice)

		// The buyer already holds a coupon, so settlement issues no welcome
		// coupon and the spent credit stays spent.
		var usedOrderID *string
		var remaining int
		err := s.DB.QueryRow(context.Background(),
			"SELECT order_id, remaining_usage FROM user_coupons WHERE user_coupon_id = $1",
			userCouponID).Scan(&usedOrderID, &remaining)
		require.NoError(t, err)
		require.NotNil(t, usedOrderID)
		require.Equal(t, paid.ID, *usedOrderID)
		require.Equal(t, 0, remaining)
	})

	s.Run("buy one get one gives away the priciest item under the ceiling", func() {
		t := s.T()

		cheapID := dbtest.CreateTestProduct(t, s.DB, "seller-1", "Desk Mat", 5, 300)
		dearID := dbtest.CreateTestProduct(t, s.DB, "seller-1", "Floor Lamp", 5, 600)
		giveawayID := dbtest.CreateTestProduct(t, s.DB, "seller-1", "Table Lamp", 5, 450)
		couponID := dbtest.CreateTestCoupon(t, s.DB, "bogo", "BUY_ONE_GET_ONE", nil, 10)
		buyerToken := s.jwt.GenerateToken(t, "buyer-2")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/claim", couponsURL, couponID), nil, buyerToken)
		var claimed map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &claimed)
		userCouponID := claimed["user_coupon_id"]

		orderReq := request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: cheapID, Quantity: 1},
				{ProductID: dearID, Quantity: 1},
				{ProductID: giveawayID, Quantity: 1},
			},
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, orderReq, buyerToken)
		var created response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		payReq := request.PayOrderRequest{UserCouponID: &userCouponID}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/pay", ordersURL, created.ID), payReq, buyerToken)
		var paid response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)

		// 450 is the priciest item at or under the 500 ceiling: its price
		// comes off the total and one extra unit leaves stock.
		require.Equal(t, 300+600+450-450+created.ShippingFee, paid.TotalPrice)

		var stock int
		err := s.DB.QueryRow(context.Background(),
			"SELECT product_stock FROM products WHERE product_id = $1", giveawayID).Scan(&stock)
		require.NoError(t, err)
		require.Equal(t, 3, stock, "ordered unit plus giveaway unit should leave stock")
	})

	s.Run("claiming a held coupon tops it up instead of adding a row", func() {
		t := s.T()

		fixed := 50.0
		couponID := dbtest.CreateTestCoupon(t, s.DB, "fifty-again", "FIXED", &fixed, 10)
		buyerToken := s.jwt.GenerateToken(t, "buyer-1")
		claimURL := fmt.Sprintf("%s/%s/claim", couponsURL, couponID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL, nil, buyerToken)
		var first map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &first)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, claimURL, nil, buyerToken)
		var second map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &second)
		require.Equal(t, first["user_coupon_id"], second["user_coupon_id"])

		var rows, remaining int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*), MAX(remaining_usage) FROM user_coupons WHERE user_id = $1 AND coupon_id = $2",
			"buyer-1", couponID).Scan(&rows, &remaining)
		require.NoError(t, err)
		require.Equal(t, 1, rows)
		require.Equal(t, 2, remaining, "second claim adds the template max usage")

		var poolCount int
		err = s.DB.QueryRow(context.Background(),
			"SELECT coupon_count FROM coupons WHERE coupon_id = $1", couponID).Scan(&poolCount)
		require.NoError(t, err)
		require.Equal(t, 9, poolCount, "the pool is decremented only on first issuance")
	})

	s.Run("claiming an exhausted coupon is rejected", func() {
		t := s.T()

		couponID := dbtest.CreateTestCoupon(t, s.DB, "gone", "FREESHIP", nil, 0)
		buyerToken := s.jwt.GenerateToken(t, "buyer-1")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/claim", couponsURL, couponID), nil, buyerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})
}

func (s *MarketSuite) TestFirstPurchaseReward() {
	s.Run("settlement rewards only buyers holding no coupons", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "seller-1", "Wool Blanket", 5, 200)
		dbtest.CreateTestCoupon(t, s.DB, "welcome", "FREESHIP", nil, 5)
		buyerToken := s.jwt.GenerateToken(t, "buyer-3")

		payFor := func() {
			reqBody := request.CreateOrderRequest{
				Items: []request.OrderItemRequest{{ProductID: productID, Quantity: 1}},
			}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, buyerToken)
			var created response.OrderResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

			w = httptest.PerformRequest(t, s.Router, http.MethodPost,
				fmt.Sprintf("%s/%s/pay", ordersURL, created.ID), request.PayOrderRequest{}, buyerToken)
			var paid response.OrderResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		}

		heldCoupons := func() int {
			var n int
			err := s.DB.QueryRow(context.Background(),
				"SELECT COUNT(*) FROM user_coupons WHERE user_id = $1", "buyer-3").Scan(&n)
			require.NoError(t, err)
			return n
		}

		payFor()
		require.Equal(t, 1, heldCoupons(), "first settlement should issue a welcome coupon")

		payFor()
		require.Equal(t, 1, heldCoupons(), "a coupon holder gets no further reward")
	})
}

func (s *MarketSuite) TestAuctionBidding() {
	s.Run("higher bid wins, lower bid conflicts, seller cannot bid", func() {
		t := s.T()

		end := time.Now().Add(time.Hour)
		productID := dbtest.CreateTestAuction(t, s.DB, "seller-1", "Oil Painting", 100, end)

		bidderToken := s.jwt.GenerateToken(t, "bidder-1")
		sellerToken := s.jwt.GenerateToken(t, "seller-1")
		bidsURL := fmt.Sprintf("%s/%s/bids", productsURL, productID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bidsURL,
			request.PlaceBidRequest{BidPrice: 150}, bidderToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bidsURL,
			request.PlaceBidRequest{BidPrice: 120}, bidderToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bidsURL,
			request.PlaceBidRequest{BidPrice: 200}, sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		var highest float64
		var bidder string
		err := s.DB.QueryRow(context.Background(),
			"SELECT now_highest_bid, highest_bidder_id FROM products WHERE product_id = $1", productID).
			Scan(&highest, &bidder)
		require.NoError(t, err)
		require.Equal(t, 150.0, highest)
		require.Equal(t, "bidder-1", bidder)
	})

	s.Run("sweep closes a bid-on auction and the winner settles it", func() {
		t := s.T()

		end := time.Now().Add(time.Minute)
		productID := dbtest.CreateTestAuction(t, s.DB, "seller-1", "Bronze Clock", 100, end)
		bidderToken := s.jwt.GenerateToken(t, "bidder-1")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/bids", productsURL, productID),
			request.PlaceBidRequest{BidPrice: 180}, bidderToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		_, err := s.DB.Exec(context.Background(),
			"UPDATE products SET auction_end_time = $1 WHERE product_id = $2",
			time.Now().Add(-time.Minute), productID)
		require.NoError(t, err)

		sweeper := scheduler.NewAuctionSweeper(
			repository.NewProductRepository(s.DB),
			events.NopProducer{},
			clock.NewRealClock(),
			config.AuctionConfig{SweepInterval: time.Second},
		)
		sweeper.Sweep(context.Background())

		var status string
		err = s.DB.QueryRow(context.Background(),
			"SELECT product_status FROM products WHERE product_id = $1", productID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "SOLD", status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL+"/auction",
			request.CreateAuctionOrderRequest{ProductID: productID}, bidderToken)
		var created response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "AUCTION", created.Type)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/pay", ordersURL, created.ID), request.PayOrderRequest{}, bidderToken)
		var paid response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.Equal(t, 180+created.ShippingFee, paid.TotalPrice)
	})

	s.Run("a sweep lapses an auction nobody bid on", func() {
		t := s.T()

		productID := dbtest.CreateTestAuction(t, s.DB, "seller-1", "Quiet Auction", 100,
			time.Now().Add(-time.Minute))

		sweeper := scheduler.NewAuctionSweeper(
			repository.NewProductRepository(s.DB),
			events.NopProducer{},
			clock.NewRealClock(),
			config.AuctionConfig{SweepInterval: time.Second},
		)
		sweeper.Sweep(context.Background())

		var status string
		err := s.DB.QueryRow(context.Background(),
			"SELECT product_status FROM products WHERE product_id = $1", productID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "INACTIVE", status)
	})

	s.Run("bids after the end time are rejected", func() {
		t := s.T()

		end := time.Now().Add(-time.Minute)
		productID := dbtest.CreateTestAuction(t, s.DB, "seller-1", "Late Auction", 100, end)
		bidderToken := s.jwt.GenerateToken(t, "bidder-1")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/bids", productsURL, productID),
			request.PlaceBidRequest{BidPrice: 500}, bidderToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})
}

func (s *MarketSuite) TestExpiredTokens() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		token := s.jwt.CreateExpiredToken(t, "buyer-1")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, userCouponsURL, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
