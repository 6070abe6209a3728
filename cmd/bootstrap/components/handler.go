package components

import (
	"auction-market/internal/handler"
	"auction-market/internal/handler/api"
	"auction-market/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewAuctionHandler,
		api.NewOrderHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
