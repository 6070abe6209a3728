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

type CouponHandler struct {
	cmds     commands.CouponCommands
	userCmds commands.UserCouponCommands
	q        queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, userCmds commands.UserCouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, userCmds: userCmds, q: q}
}

// @Summary Create coupon template
// @Description Define a discount offer with a shared issuance pool
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateCoupon(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.CouponID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCouponView(view))
}

// @Summary Get coupon template
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary List coupon templates
// @Tags coupons
// @Produce json
// @Param available query bool false "Only templates still in stock and unexpired"
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	var (
		views []*queries.CouponView
		err   error
	)
	if c.Query("available") == "true" {
		views, err = h.q.ListAvailable(c.Request.Context())
	} else {
		views, err = h.q.List(c.Request.Context())
	}
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponViews(views))
}

// @Summary Delete coupon template
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.cmds.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Claim coupon
// @Description Issue one instance of a template to the authenticated user; re-claiming tops up usage
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 201 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /coupons/{id}/claim [post]
func (h *CouponHandler) Claim(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	result, err := h.userCmds.IssueCoupon(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_coupon_id": result.UserCouponID})
}

// @Summary Draw random coupon
// @Description Issue a uniformly random available template to the authenticated user
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /coupons/draw [post]
func (h *CouponHandler) Draw(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	result, err := h.userCmds.DrawRandomCoupon(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_coupon_id": result.UserCouponID})
}

// @Summary List own coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UserCouponResponse
// @Router /users/coupons [get]
func (h *CouponHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	views, err := h.q.ListUserCoupons(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserCouponViews(views))
}

// @Summary Discard own coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "User coupon ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/coupons/{id} [delete]
func (h *CouponHandler) DeleteMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	if err := h.userCmds.DeleteUserCoupon(c.Request.Context(), c.Param("id"), userID); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
