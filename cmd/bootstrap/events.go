package bootstrap

import (
	"context"

	"auction-market/internal/events"
	"auction-market/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewProducer,
	),
)

func NewProducer(lc fx.Lifecycle, cfg config.Config) events.Producer {
	producer := events.NewKafkaProducer(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
