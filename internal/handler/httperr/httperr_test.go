//go:build unit

package httperr_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domcoupon "auction-market/internal/domain/coupon"
	domorder "auction-market/internal/domain/order"
	domproduct "auction-market/internal/domain/product"
	"auction-market/internal/handler/httperr"
	"auction-market/internal/infra"
	"auction-market/internal/pkg/errs"
	"auction-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.FromError(c, err)
	return w.Code
}

func TestFromError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"missing row", infra.WrapRepoErr("product not found", nil, infra.KindNotFound), http.StatusNotFound},
		{"duplicate key", infra.WrapRepoErr("order exists", nil, infra.KindDuplicateKey), http.StatusConflict},
		{"invalid price", domproduct.ErrInvalidPrice, http.StatusBadRequest},
		{"empty cart", domorder.ErrEmptyCart, http.StatusBadRequest},
		{"invalid percent", domcoupon.ErrInvalidPercentValue, http.StatusBadRequest},
		{"bid too low", domproduct.ErrBidTooLow, http.StatusConflict},
		{"insufficient stock", domproduct.ErrInsufficientStock, http.StatusConflict},
		{"auction ended", commands.ErrAuctionEnded, http.StatusConflict},
		{"coupon exhausted", domcoupon.ErrTemplateExhausted, http.StatusConflict},
		{"order already paid", domorder.ErrNotPending, http.StatusConflict},
		{"coupon on auction order", commands.ErrCouponNotUsableOnAuction, http.StatusConflict},
		{"below minimum purchase", commands.ErrMinPurchaseNotMet, http.StatusConflict},
		{"foreign seller", commands.ErrNotProductSeller, http.StatusForbidden},
		{"foreign order", commands.ErrNotOrderBuyer, http.StatusForbidden},
		{"foreign coupon", commands.ErrNotCouponHolder, http.StatusForbidden},
		{"not the winner", commands.ErrNotAuctionWinner, http.StatusForbidden},
		{"bid on own product", commands.ErrOwnProductBid, http.StatusForbidden},
		{"unknown failure", errs.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, statusFor(t, tc.err))
		})
	}

	t.Run("wrapped usecase errors keep their status", func(t *testing.T) {
		err := errs.Mark(errs.New("update rejected"), commands.ErrBidConflict)
		assert.Equal(t, http.StatusConflict, statusFor(t, err))
	})

	t.Run("internal errors hide the cause", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		httperr.FromError(c, errs.New("pg: connection refused"))
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}
