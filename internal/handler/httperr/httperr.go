package httperr

import (
	"errors"
	"net/http"

	domcoupon "auction-market/internal/domain/coupon"
	domorder "auction-market/internal/domain/order"
	domproduct "auction-market/internal/domain/product"
	"auction-market/internal/infra"
	"auction-market/internal/usecase/commands"
	"auction-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Rejected input: the request can never succeed as written.
var badRequestErrors = []error{
	domproduct.ErrEmptyName,
	domproduct.ErrEmptyCategory,
	domproduct.ErrEmptySeller,
	domproduct.ErrInvalidPrice,
	domproduct.ErrNegativeStock,
	domproduct.ErrMissingAuctionEnd,
	domproduct.ErrAuctionEndInPast,
	domproduct.ErrBidNotPositive,
	domproduct.ErrInvalidType,
	domproduct.ErrInvalidStatus,
	domorder.ErrEmptyCart,
	domorder.ErrInvalidQuantity,
	domcoupon.ErrEmptyName,
	domcoupon.ErrInvalidDiscountType,
	domcoupon.ErrInvalidPercentValue,
	domcoupon.ErrInvalidFixedValue,
	domcoupon.ErrDiscountValueRequired,
	domcoupon.ErrNegativeMinAmount,
	domcoupon.ErrNegativeMaxUsage,
	domcoupon.ErrNegativeCount,
	domcoupon.ErrExpireBeforeCreate,
}

// Rejected state: valid request, but the aggregate is not in a state that
// admits it right now.
var conflictErrors = []error{
	domproduct.ErrNotAuction,
	domproduct.ErrNotActive,
	domproduct.ErrBidTooLow,
	domproduct.ErrInsufficientStock,
	domproduct.ErrAuctionNotFinished,
	domorder.ErrNotPending,
	domorder.ErrNoGiveawayItem,
	domcoupon.ErrTemplateExhausted,
	domcoupon.ErrTemplateExpired,
	domcoupon.ErrCouponExpired,
	domcoupon.ErrNoRemainingUsage,
	commands.ErrAuctionEnded,
	commands.ErrBidConflict,
	commands.ErrCouponConflict,
	commands.ErrCouponNotUsableOnAuction,
	commands.ErrMinPurchaseNotMet,
	commands.ErrProductNameTaken,
	commands.ErrCouponNameTaken,
	commands.ErrNoCouponAvailable,
}

var forbiddenErrors = []error{
	commands.ErrOwnProductBid,
	commands.ErrNotProductSeller,
	commands.ErrNotOrderBuyer,
	commands.ErrNotCouponHolder,
	commands.ErrNotAuctionWinner,
	queries.ErrOrderAccess,
}

// FromError maps a usecase failure onto an HTTP status and aborts the
// request with it.
func FromError(c *gin.Context, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, nil)
}

func statusOf(err error) int {
	if infra.IsKind(err, infra.KindNotFound) {
		return http.StatusNotFound
	}
	if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindConflict) {
		return http.StatusConflict
	}
	for _, target := range forbiddenErrors {
		if errors.Is(err, target) {
			return http.StatusForbidden
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}
