package bootstrap

import (
	"context"

	"auction-market/internal/events"
	"auction-market/internal/infra/repository"
	"auction-market/internal/pkg/clock"
	"auction-market/internal/pkg/config"
	"auction-market/internal/scheduler"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewAuctionSweeper,
	),
	fx.Invoke(StartAuctionSweeper),
)

func NewAuctionSweeper(
	products *repository.ProductRepository,
	producer events.Producer,
	clk clock.Clock,
	cfg config.Config,
) *scheduler.AuctionSweeper {
	return scheduler.NewAuctionSweeper(products, producer, clk, cfg.Auction)
}

func StartAuctionSweeper(lc fx.Lifecycle, sweeper *scheduler.AuctionSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
