package components

import (
	"auction-market/internal/events"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
	"auction-market/internal/pkg/config"
	"auction-market/internal/usecase/commands"
	"auction-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewProductUseCase,
		commands.NewAuctionUseCase,
		commands.NewCouponUseCase,
		NewUserCouponUseCase,
		NewOrderUseCase,
		queries.NewProductQueries,
		queries.NewOrderQueries,
		queries.NewCouponQueries,
		// Config slices the usecases depend on.
		func(cfg config.Config) config.CouponConfig { return cfg.Coupon },
		func(uc commands.UserCouponUseCase) commands.UserCouponCommands { return uc },
	),
)

func NewUserCouponUseCase(
	pool *pgxpool.Pool,
	coupons *repository.CouponRepository,
	userCoupons *repository.UserCouponRepository,
	producer events.Producer,
	cfg config.Config,
	clk clock.Clock,
) commands.UserCouponUseCase {
	return commands.NewUserCouponUseCase(pool, coupons, userCoupons, producer, cfg.Coupon, clk)
}

func NewOrderUseCase(
	pool *pgxpool.Pool,
	orders *repository.OrderRepository,
	products *repository.ProductRepository,
	coupons *repository.CouponRepository,
	userCoupons *repository.UserCouponRepository,
	userCouponUC commands.UserCouponUseCase,
	producer events.Producer,
	cfg config.Config,
	clk clock.Clock,
) commands.OrderCommands {
	return commands.NewOrderUseCase(pool, orders, products, coupons, userCoupons, userCouponUC, producer, cfg.Order, clk)
}
