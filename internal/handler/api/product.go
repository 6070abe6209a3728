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

type ProductHandler struct {
	cmds commands.ProductCommands
	q    queries.ProductQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q}
}

// @Summary Create product
// @Description List a new direct-sale product under the authenticated seller
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Create product request"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateProduct(c.Request.Context(), req.ToCommand(), sellerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ProductID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProductView(view))
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary List products
// @Description List products with optional seller, type and status filters
// @Tags products
// @Produce json
// @Param seller_id query string false "Filter by seller"
// @Param type query string false "DIRECT or AUCTION"
// @Param status query string false "ACTIVE, INACTIVE, SOLD or BANNED"
// @Success 200 {array} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filters queries.ProductFilters
	if v := c.Query("seller_id"); v != "" {
		filters.SellerID = &v
	}
	if v := c.Query("type"); v != "" {
		filters.Type = &v
	}
	if v := c.Query("status"); v != "" {
		filters.Status = &v
	}
	views, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary Update product
// @Description Edit an own listing; re-runs validation and stock-driven status transitions
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Update product request"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id := c.Param("id")
	if err := h.cmds.UpdateProduct(c.Request.Context(), id, req.ToCommand(), sellerID); err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Publish product
// @Description Put an own listing back on sale
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/publish [post]
func (h *ProductHandler) Publish(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	if err := h.cmds.PublishProduct(c.Request.Context(), c.Param("id"), sellerID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Withdraw product
// @Description Take an own listing off sale
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/withdraw [post]
func (h *ProductHandler) Withdraw(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	if err := h.cmds.WithdrawProduct(c.Request.Context(), c.Param("id"), sellerID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete product
// @Description Remove an own listing
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	if err := h.cmds.DeleteProduct(c.Request.Context(), c.Param("id"), sellerID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
