package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"auction-market/internal/handler/api"
	"auction-market/internal/handler/middleware"
	"auction-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	productHandler *api.ProductHandler,
	auctionHandler *api.AuctionHandler,
	orderHandler *api.OrderHandler,
	couponHandler *api.CouponHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, productHandler, auctionHandler, orderHandler, couponHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	productHandler *api.ProductHandler,
	auctionHandler *api.AuctionHandler,
	orderHandler *api.OrderHandler,
	couponHandler *api.CouponHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: productHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: productHandler.Get},
			})

			sellerRequired := products.Group("")
			sellerRequired.Use(authMiddleware.RequireAuth())
			addRoutes(sellerRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: productHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: productHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: productHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/publish", Handler: productHandler.Publish},
				{Method: http.MethodPost, Path: "/:id/withdraw", Handler: productHandler.Withdraw},
				{Method: http.MethodPost, Path: "/:id/auction", Handler: auctionHandler.Start},
				{Method: http.MethodPost, Path: "/:id/bids", Handler: auctionHandler.PlaceBid},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Create},
				{Method: http.MethodPost, Path: "/auction", Handler: orderHandler.CreateAuction},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: orderHandler.Pay},
			})
		}

		coupons := apiGroup.Group("/coupons")
		{
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get},
			})

			authRequired := coupons.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: couponHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/claim", Handler: couponHandler.Claim},
				{Method: http.MethodPost, Path: "/draw", Handler: couponHandler.Draw},
			})
		}

		userCoupons := apiGroup.Group("/users/coupons")
		userCoupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(userCoupons, []route{
				{Method: http.MethodGet, Path: "", Handler: couponHandler.ListMine},
				{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.DeleteMine},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
