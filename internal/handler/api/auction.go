package api

import (
	"net/http"

	reqdto "auction-market/internal/handler/dto/request"
	"auction-market/internal/handler/httperr"
	"auction-market/internal/handler/middleware"
	"auction-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuctionHandler struct {
	cmds commands.AuctionCommands
}

func NewAuctionHandler(cmds commands.AuctionCommands) *AuctionHandler {
	return &AuctionHandler{cmds: cmds}
}

// @Summary Start auction
// @Description Convert an own listing into a live auction with a starting price and end time
// @Tags auctions
// @Accept json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.StartAuctionRequest true "Start auction request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/auction [post]
func (h *AuctionHandler) Start(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.StartAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.StartAuction(c.Request.Context(), c.Param("id"), req.ToCommand(), sellerID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Place bid
// @Description Bid on a live auction; the bid must exceed the current highest
// @Tags auctions
// @Accept json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.PlaceBidRequest true "Place bid request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products/{id}/bids [post]
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	bidderID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.PlaceBid(c.Request.Context(), c.Param("id"), req.ToCommand(), bidderID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
