package components

import (
	"auction-market/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		repository.NewProductRepository,
		repository.NewOrderRepository,
		repository.NewCouponRepository,
		repository.NewUserCouponRepository,
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
