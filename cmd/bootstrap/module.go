package bootstrap

import (
	"auction-market/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	ClockModule,
	EventsModule,
	SchedulerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
