package api

import (
	"net/http"

	reqdto "auction-market/internal/handler/dto/request"
	resdto "auction-market/internal/handler/dto/response"
	"auction-market/internal/handler/httperr"
	"auction-market/internal/handler/middleware"
	"auction-market/internal/usecase/commands"
	"auction-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Create a pending direct-sale order, reserving stock for each item
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateOrder(c.Request.Context(), req.ToCommand(), buyerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.OrderID, buyerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary Claim auction win
// @Description Create a pending order for a settled auction; only the winning bidder may claim
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAuctionOrderRequest true "Claim auction request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/auction [post]
func (h *OrderHandler) CreateAuction(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateAuctionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateAuctionOrder(c.Request.Context(), req.ProductID, buyerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.OrderID, buyerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary Pay order
// @Description Settle a pending order, optionally applying one of the buyer's coupons
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.PayOrderRequest true "Pay order request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/pay [post]
func (h *OrderHandler) Pay(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.PayOrder(c.Request.Context(), c.Param("id"), req.ToCommand(), buyerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.OrderID, buyerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"), buyerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListByBuyer(c.Request.Context(), buyerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}
